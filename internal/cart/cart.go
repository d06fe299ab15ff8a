// Package cart implements the browsing-session cart as an explicit state
// object. It is single-threaded by contract: one cart belongs to one
// session and is only mutated by direct user actions.
package cart

import (
	"errors"
	"fmt"

	"github.com/belizemerch/storefront/internal/catalog"
)

var (
	// ErrInvalidSize indicates the chosen size is not offered for the product.
	ErrInvalidSize = errors.New("invalid size for product")
	// ErrIndexOutOfRange indicates a line index that doesn't exist.
	ErrIndexOutOfRange = errors.New("cart line index out of range")
)

// Line is one cart entry. It deliberately carries no price: every money
// amount is dereferenced from the catalog at read time so a stale or
// tampered copy can never be charged.
type Line struct {
	ProductID string
	Size      string
	Color     string
	Qty       int
}

// Cart aggregates selected lines against a catalog.
// OnChange, when set, fires after every successful mutation so the caller
// can recompute whatever totals it displays.
type Cart struct {
	store    *catalog.Store
	lines    []Line
	OnChange func()
}

// New returns an empty cart bound to the given catalog.
func New(store *catalog.Store) *Cart {
	return &Cart{store: store}
}

func (c *Cart) changed() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// Add puts qty units of (productID, size, color) in the cart. If a line with
// the same triple already exists its quantity is incremented; the cart never
// holds duplicate lines. qty is clamped to a minimum of 1.
func (c *Cart) Add(productID, size, color string, qty int) error {
	p, err := c.store.FindByID(productID)
	if err != nil {
		return err
	}
	if !hasSize(p, size) {
		return fmt.Errorf("%w: %s does not come in %q", ErrInvalidSize, productID, size)
	}
	if qty < 1 {
		qty = 1
	}

	for i := range c.lines {
		l := &c.lines[i]
		if l.ProductID == productID && l.Size == size && l.Color == color {
			l.Qty += qty
			c.changed()
			return nil
		}
	}
	c.lines = append(c.lines, Line{ProductID: productID, Size: size, Color: color, Qty: qty})
	c.changed()
	return nil
}

// SetQuantity updates the quantity of line i, clamped to a minimum of 1.
// Dropping a line is an explicit Remove, never a zero-quantity edit.
func (c *Cart) SetQuantity(i, qty int) error {
	if i < 0 || i >= len(c.lines) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if qty < 1 {
		qty = 1
	}
	c.lines[i].Qty = qty
	c.changed()
	return nil
}

// Remove deletes line i.
func (c *Cart) Remove(i int) error {
	if i < 0 || i >= len(c.lines) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	c.changed()
	return nil
}

// Clear empties the cart (checkout completion or session end).
func (c *Cart) Clear() {
	c.lines = nil
	c.changed()
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums catalog price × quantity over all lines, in minor units.
// Prices come from the catalog on every call.
func (c *Cart) Subtotal() int64 {
	var sum int64
	for _, l := range c.lines {
		p, err := c.store.FindByID(l.ProductID)
		if err != nil {
			// lines are validated on Add; an unknown id here means the
			// catalog shrank underneath us, and the line prices as zero
			continue
		}
		sum += p.Price * int64(l.Qty)
	}
	return sum
}

// TotalQuantity sums quantities over all lines, for the cart badge.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Qty
	}
	return total
}

func hasSize(p catalog.Product, size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
