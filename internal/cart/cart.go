// Package cart owns the shopping cart: one line per product id, quantity
// always >= 1, written through to the store after every mutation.
package cart

import (
	"context"
	"sync"

	"github.com/nstore-core/server/internal/catalog/model"
	"github.com/nstore-core/server/internal/store"
	logx "github.com/nstore-core/server/pkg/logger"
)

type Cart struct {
	mu    sync.Mutex
	items []model.CartItem
	store store.Store
}

// New builds a Cart backed by st, restoring any previously saved lines.
func New(ctx context.Context, st store.Store) (*Cart, error) {
	items, err := st.LoadCart(ctx)
	if err != nil {
		return nil, err
	}
	return &Cart{items: items, store: st}, nil
}

// Add puts one unit of the product in the cart. Out-of-stock products are
// silently ignored. An existing line for the same product id is incremented
// rather than duplicated.
func (c *Cart) Add(ctx context.Context, p model.Product) {
	if !p.InStock() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			c.persist(ctx)
			return
		}
	}
	c.items = append(c.items, model.CartItem{Product: p, Quantity: 1})
	c.persist(ctx)
}

// Remove deletes the whole line for the product id, regardless of quantity.
func (c *Cart) Remove(ctx context.Context, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != productID {
			kept = append(kept, it)
		}
	}
	c.items = kept
	c.persist(ctx)
}

// UpdateQuantity adjusts a line's quantity by delta, clamped at 1. Driving a
// line to zero requires an explicit Remove. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			q := c.items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.items[i].Quantity = q
			c.persist(ctx)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.persist(ctx)
}

// Items returns a copy of the current lines.
func (c *Cart) Items() []model.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalItems is the sum of quantities across lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice sums effective price times quantity across lines.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, it := range c.items {
		total += it.LineTotal()
	}
	return total
}

// persist writes the lines through to the store. Save failures are logged,
// not surfaced: mutations are fire-and-forget from the caller's view.
// Callers must hold c.mu.
func (c *Cart) persist(ctx context.Context) {
	if err := c.store.SaveCart(ctx, c.items); err != nil {
		logx.Error().Err(err).Msg("failed to persist cart")
	}
}
