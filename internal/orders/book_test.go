package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstore-core/server/internal/catalog/model"
)

func TestBookStartsWithFixtures(t *testing.T) {
	fixtures := []model.Order{{ID: "ORD-1", Status: model.OrderDelivered}}
	b := NewBook(fixtures)

	require.Len(t, b.List(), 1)
	got, ok := b.ByID("ORD-1")
	require.True(t, ok)
	assert.Equal(t, model.OrderDelivered, got.Status)

	_, ok = b.ByID("ORD-2")
	assert.False(t, ok)
}

func TestCheckoutAppendsPendingOrder(t *testing.T) {
	b := NewBook(nil)
	items := []model.CartItem{
		{Product: model.Product{ID: "p1", Name: "TV", Price: 10}, Quantity: 2},
	}

	order := b.Checkout(items, 20, model.PaymentKNET, model.UserProfile{FullName: "Ali"})

	assert.True(t, len(order.ID) > 4 && order.ID[:4] == "ORD-")
	assert.Equal(t, model.OrderPending, order.Status)
	assert.InDelta(t, 20.0, order.Total, 1e-9)
	assert.NotEmpty(t, order.Date)
	assert.NotEmpty(t, order.EstimatedDelivery)

	require.Len(t, b.List(), 1)
	stored, ok := b.ByID(order.ID)
	require.True(t, ok)
	assert.Equal(t, order.ID, stored.ID)
}
