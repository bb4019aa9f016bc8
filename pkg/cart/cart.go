package cart

import (
	"sync"

	"vitrine/pkg/domain"
)

// Cart keeps the in-memory list of selected products. Entries are keyed
// by product ID: adding a product that is already present increments its
// quantity instead of inserting a duplicate. The cart owns snapshots of
// the products it was given; it never holds live catalog references.
type Cart struct {
	mu      sync.Mutex
	entries []domain.CartEntry
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add inserts the product with quantity 1, or bumps the quantity of the
// existing entry for the same product ID.
func (c *Cart) Add(p domain.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.entries {
		if c.entries[i].Product.ID == p.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, domain.CartEntry{Product: p, Quantity: 1})
}

// Remove drops the entry with the given product ID. Removing an absent
// ID is a no-op.
func (c *Cart) Remove(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	filtered := c.entries[:0]
	for _, e := range c.entries {
		if e.Product.ID != productID {
			filtered = append(filtered, e)
		}
	}
	c.entries = filtered
}

// Items returns a copy of the current entries in insertion order.
func (c *Cart) Items() []domain.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]domain.CartEntry, len(c.entries))
	copy(items, c.entries)
	return items
}

// Total recomputes the sum of price times quantity over all entries.
// It is always derived, never cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var total float64
	for _, e := range c.entries {
		total += e.Subtotal()
	}
	return total
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
