// Package store is the system of record for the storefront's durable
// collections: the product catalog, vendor applications, the cart, and the
// logged-in profile. Each collection lives under its own key and is written
// through on every mutation; there is no transactionality across keys.
package store

import (
	"context"

	"github.com/nstore-core/server/internal/catalog/model"
)

// Store loads and saves the durable collections. Load methods return a nil
// value (and no error) when nothing has been stored yet so the caller can
// fall back to its seed default.
type Store interface {
	LoadProducts(ctx context.Context) ([]model.Product, error)
	SaveProducts(ctx context.Context, products []model.Product) error

	LoadApplications(ctx context.Context) ([]model.VendorApplication, error)
	SaveApplications(ctx context.Context, apps []model.VendorApplication) error

	LoadCart(ctx context.Context) ([]model.CartItem, error)
	SaveCart(ctx context.Context, items []model.CartItem) error

	// LoadUser returns nil when no user is logged in.
	LoadUser(ctx context.Context) (*model.UserProfile, error)
	SaveUser(ctx context.Context, user model.UserProfile) error
	ClearUser(ctx context.Context) error
}
