package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownProduct indicates a lookup for an id the catalog does not carry.
var ErrUnknownProduct = errors.New("unknown product")

// Store is a read-only product repository. It is built once at startup and
// never mutated afterwards, so it is safe to share across concurrent requests.
type Store struct {
	products []Product
	byID     map[string]int
}

// NewStore builds a Store from the given products, preserving their order.
// Duplicate ids and structurally invalid products are rejected so a bad seed
// fails at startup instead of at checkout time.
func NewStore(products []Product) (*Store, error) {
	s := &Store{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(s.products, products)

	for i, p := range s.products {
		if p.ID == "" {
			return nil, fmt.Errorf("product at index %d has empty id", i)
		}
		if _, exists := s.byID[p.ID]; exists {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %q has negative price %d", p.ID, p.Price)
		}
		if len(p.Sizes) == 0 {
			return nil, fmt.Errorf("product %q has no sizes", p.ID)
		}
		s.byID[p.ID] = i
	}
	return s, nil
}

// FindByID returns the product for id, or ErrUnknownProduct.
func (s *Store) FindByID(id string) (Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, fmt.Errorf("%w: %s", ErrUnknownProduct, id)
	}
	return s.products[i], nil
}

// List returns all products in catalog order. The returned slice is a copy;
// callers may not mutate the store through it.
func (s *Store) List() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// CountByCategory returns how many products each known category holds.
// Categories with no products are present with a zero count so the
// storefront tabs always render the full set.
func (s *Store) CountByCategory() map[string]int {
	counts := make(map[string]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, p := range s.products {
		if _, ok := counts[p.Category]; ok {
			counts[p.Category]++
		}
	}
	return counts
}
