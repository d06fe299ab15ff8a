package catalog

// Seed returns the fixed launch catalog. All prices are USD cents.
func Seed() []Product {
	return []Product{
		{
			ID:          "belize-belizeit-handprint",
			SKU:         "BLZ-001",
			Category:    "T-Shirts",
			Name:        "You Better Belize It / Handprint Back",
			Description: "Premium ringspun cotton. Unisex fit.",
			Price:       2499,
			Currency:    "usd",
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Color:       "Black",
			Images:      []string{"/img/belize-tee-1-front.png", "/img/belize-tee-1-back.png"},
		},
		{
			ID:          "belize-independence-crest",
			SKU:         "BLZ-002",
			Category:    "T-Shirts",
			Name:        "Mini Crest Front / Independence Back",
			Description: "Soft cotton tee. Unisex fit.",
			Price:       2499,
			Currency:    "usd",
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Color:       "Charcoal",
			Images:      []string{"/img/belize-tee-2-front.png", "/img/belize-tee-2-back.png"},
		},
		{
			ID:          "belize-ladies-blessed-pink",
			SKU:         "BLZ-003",
			Category:    "T-Shirts",
			Name:        "Belize, Blessed & Beautiful (Pink)",
			Description: "Soft cotton tee. Relaxed unisex fit.",
			Price:       2499,
			Currency:    "usd",
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Color:       "White",
			Images:      []string{"/img/belize-ladies-1.png"},
		},
		{
			ID:          "belize-ladies-blessed-rasta",
			SKU:         "BLZ-004",
			Category:    "T-Shirts",
			Name:        "Belize, Blessed & Beautiful (Rasta)",
			Description: "Soft cotton tee. Relaxed unisex fit.",
			Price:       2499,
			Currency:    "usd",
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Color:       "White",
			Images:      []string{"/img/belize-ladies-2.png"},
		},
		{
			ID:          "belize-ladies-barbie",
			SKU:         "BLZ-005",
			Category:    "T-Shirts",
			Name:        "Belizian Barbie",
			Description: "Soft cotton tee. Relaxed unisex fit.",
			Price:       2499,
			Currency:    "usd",
			Sizes:       []string{"S", "M", "L", "XL", "2XL"},
			Color:       "White",
			Images:      []string{"/img/belize-ladies-3.png"},
		},
	}
}
