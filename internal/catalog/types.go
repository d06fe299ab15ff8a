package catalog

// Product categories, in storefront tab order.
var Categories = []string{"T-Shirts", "Hoodies", "Hats", "Accessories"}

// Product is a single sellable item. Prices are integer minor units (cents);
// the catalog copy is the only authoritative price in the system.
type Product struct {
	ID          string   `json:"id"`  // business identifier, unique
	SKU         string   `json:"sku"` // stock keeping unit
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"` // minor units, >= 0
	Currency    string   `json:"currency"`
	Sizes       []string `json:"sizes"` // non-empty, display order
	Color       string   `json:"color"`
	Images      []string `json:"images"` // site-relative paths
}
