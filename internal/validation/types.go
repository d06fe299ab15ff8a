package validation

// CartLine is one submitted cart entry. There is intentionally no price
// field: the server reprices every line from the catalog, and anything a
// client sent would be ignored anyway.
type CartLine struct {
	ID    string `json:"id" validate:"required"` // product id
	Qty   int    `json:"qty"`                    // clamped server-side, never rejected
	Size  string `json:"size" validate:"required"`
	Color string `json:"color"`
}

// Customer carries the contact fields forwarded to the payment provider.
type Customer struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}

// Address is the shipping address as entered in the checkout form.
type Address struct {
	Line1      string `json:"line1" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country" validate:"required,len=2"`
}

// Shipping wraps the address to match the checkout form payload shape.
type Shipping struct {
	Address Address `json:"address" validate:"required"`
}

// CreateCheckoutSessionRequest is the payload for POST /create-checkout-session.
// Cart emptiness is checked by the handler, not here, so an empty cart maps
// to the dedicated 400 instead of a generic validation failure.
type CreateCheckoutSessionRequest struct {
	Cart         []CartLine `json:"cart" validate:"dive"`
	Customer     Customer   `json:"customer" validate:"required"`
	Shipping     Shipping   `json:"shipping" validate:"required"`
	ShippingTier string     `json:"shippingTier"`
}
