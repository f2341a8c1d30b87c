package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstore-core/server/internal/catalog/model"
)

func TestMemoryLoadBeforeSaveReturnsNil(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	products, err := m.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Nil(t, products)

	apps, err := m.LoadApplications(ctx)
	require.NoError(t, err)
	assert.Nil(t, apps)

	cart, err := m.LoadCart(ctx)
	require.NoError(t, err)
	assert.Nil(t, cart)

	user, err := m.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMemorySavedEmptySliceIsNotDefault(t *testing.T) {
	// an explicitly saved empty collection must come back as stored data,
	// not as "nothing there yet"
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveCart(ctx, []model.CartItem{}))
	cart, err := m.LoadCart(ctx)
	require.NoError(t, err)
	assert.NotNil(t, cart)
	assert.Empty(t, cart)
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	in := []model.Product{{ID: "p1", Name: "TV"}}
	require.NoError(t, m.SaveProducts(ctx, in))
	out, err := m.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// the stored copy is isolated from later caller mutations
	in[0].Name = "changed"
	out2, err := m.LoadProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TV", out2[0].Name)
}

func TestMemoryUserLifecycle(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveUser(ctx, model.UserProfile{FullName: "Ali Al-Salem"}))
	user, err := m.LoadUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Ali Al-Salem", user.FullName)

	require.NoError(t, m.ClearUser(ctx))
	user, err = m.LoadUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}
