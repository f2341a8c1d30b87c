// Package orders holds the session order book: the static order-history
// fixtures plus any orders produced by the checkout simulation. Nothing here
// is persisted; orders exist for the life of the process.
package orders

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nstore-core/server/internal/catalog/model"
)

// DeliveryLeadDays is the simulated shipping estimate.
const DeliveryLeadDays = 3

type Book struct {
	mu     sync.Mutex
	orders []model.Order
}

// NewBook builds a Book pre-loaded with the given fixture orders.
func NewBook(fixtures []model.Order) *Book {
	b := &Book{orders: make([]model.Order, len(fixtures))}
	copy(b.orders, fixtures)
	return b
}

// List returns a copy of all orders, fixtures first.
func (b *Book) List() []model.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]model.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// ByID looks up an order.
func (b *Book) ByID(id string) (model.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.ID == id {
			return o, true
		}
	}
	return model.Order{}, false
}

// Checkout simulates placing an order from the given cart lines and total.
// The new order starts Pending with a generated id and a fixed delivery
// estimate.
func (b *Book) Checkout(items []model.CartItem, total float64, payment model.PaymentMethod, customer model.UserProfile) model.Order {
	now := time.Now()
	order := model.Order{
		ID:                "ORD-" + uuid.NewString()[:8],
		Date:              now.Format("2006-01-02"),
		EstimatedDelivery: now.AddDate(0, 0, DeliveryLeadDays).Format("2006-01-02"),
		Total:             total,
		Status:            model.OrderPending,
		Items:             items,
		PaymentMethod:     payment,
		Customer:          customer,
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = append(b.orders, order)
	return order
}
