package store

import (
	"context"
	"sync"

	"github.com/nstore-core/server/internal/catalog/model"
)

// Memory is a map-backed Store. It backs tests and lets the service run
// without Redis (state then lives only as long as the process).
type Memory struct {
	mu       sync.Mutex
	products []model.Product
	apps     []model.VendorApplication
	cart     []model.CartItem
	user     *model.UserProfile

	hasProducts bool
	hasApps     bool
	hasCart     bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadProducts(ctx context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasProducts {
		return nil, nil
	}
	return cloneSlice(m.products), nil
}

func (m *Memory) SaveProducts(ctx context.Context, products []model.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = cloneSlice(products)
	m.hasProducts = true
	return nil
}

func (m *Memory) LoadApplications(ctx context.Context) ([]model.VendorApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasApps {
		return nil, nil
	}
	return cloneSlice(m.apps), nil
}

func (m *Memory) SaveApplications(ctx context.Context, apps []model.VendorApplication) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apps = cloneSlice(apps)
	m.hasApps = true
	return nil
}

func (m *Memory) LoadCart(ctx context.Context) ([]model.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasCart {
		return nil, nil
	}
	return cloneSlice(m.cart), nil
}

func (m *Memory) SaveCart(ctx context.Context, items []model.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cart = cloneSlice(items)
	m.hasCart = true
	return nil
}

func (m *Memory) LoadUser(ctx context.Context) (*model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	u := *m.user
	return &u, nil
}

func (m *Memory) SaveUser(ctx context.Context, user model.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = &user
	return nil
}

func (m *Memory) ClearUser(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.user = nil
	return nil
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

var _ Store = (*Memory)(nil)
