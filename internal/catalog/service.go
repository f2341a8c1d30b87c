// Package catalog owns the product catalog, the vendor roster and the vendor
// application lifecycle. Products and applications are written through to the
// store on every mutation; vendors live for the process only.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nstore-core/server/internal/catalog/model"
	"github.com/nstore-core/server/internal/store"
	logx "github.com/nstore-core/server/pkg/logger"
)

type Catalog struct {
	mu           sync.Mutex
	products     []model.Product
	vendors      []model.Vendor
	applications []model.VendorApplication
	store        store.Store
}

// New builds a Catalog backed by st. Previously persisted products and
// applications are restored; an empty store gets the seed catalog.
func New(ctx context.Context, st store.Store) (*Catalog, error) {
	products, err := st.LoadProducts(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = SeedProducts()
	}
	apps, err := st.LoadApplications(ctx)
	if err != nil {
		return nil, err
	}
	return &Catalog{
		products:     products,
		vendors:      SeedVendors(),
		applications: apps,
		store:        st,
	}, nil
}

// Products returns a copy of the catalog in display order.
func (c *Catalog) Products() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID looks up a product; ok is false when the id does not resolve.
func (c *Catalog) ProductByID(id string) (model.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// Featured returns the curated products, in catalog order.
func (c *Catalog) Featured() []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.Product
	for _, p := range c.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// Vendors returns a copy of the vendor roster.
func (c *Catalog) Vendors() []model.Vendor {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Vendor, len(c.vendors))
	copy(out, c.vendors)
	return out
}

// VendorByID looks up a vendor by id.
func (c *Catalog) VendorByID(id string) (model.Vendor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.vendors {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vendor{}, false
}

// ProductsByVendor returns the products sold by the given vendor.
func (c *Catalog) ProductsByVendor(vendorID string) []model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.Product
	for _, p := range c.products {
		if p.VendorID == vendorID {
			out = append(out, p)
		}
	}
	return out
}

// Applications returns a copy of the vendor application list.
func (c *Catalog) Applications() []model.VendorApplication {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.VendorApplication, len(c.applications))
	copy(out, c.applications)
	return out
}

// AddProduct prepends a product to the catalog. The id is caller-supplied
// and assumed unique; neither it nor the SKU is validated for uniqueness.
func (c *Catalog) AddProduct(ctx context.Context, p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]model.Product{p}, c.products...)
	c.persistProducts(ctx)
}

// RemoveProduct deletes a product by id. Carts already holding the product
// keep their snapshot line; there is no cascade.
func (c *Catalog) RemoveProduct(ctx context.Context, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.products[:0]
	for _, p := range c.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.products = kept
	c.persistProducts(ctx)
}

// ApplicationInput carries the public vendor-registration form fields.
type ApplicationInput struct {
	BusinessName string `json:"businessName"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Category     string `json:"category"`
	Location     string `json:"location"`
}

// ApplyAsVendor records a new Pending application with a generated id and
// today's date, and returns it.
func (c *Catalog) ApplyAsVendor(ctx context.Context, in ApplicationInput) model.VendorApplication {
	app := model.VendorApplication{
		ID:           "APP-" + uuid.NewString()[:8],
		BusinessName: in.BusinessName,
		ContactName:  in.ContactName,
		Email:        in.Email,
		Phone:        in.Phone,
		Category:     in.Category,
		Location:     in.Location,
		AppliedAt:    today(),
		Status:       model.ApplicationPending,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applications = append([]model.VendorApplication{app}, c.applications...)
	c.persistApplications(ctx)
	return app
}

// NewVendorRating is the rating a freshly approved vendor starts with.
const NewVendorRating = 5.0

// ApproveApplication marks a Pending application Approved and synthesizes
// exactly one vendor record from its fields. Unknown ids and applications
// that are no longer Pending are no-ops; ok reports whether an approval
// happened. There is no transition back out of Approved.
func (c *Catalog) ApproveApplication(ctx context.Context, id string) (model.Vendor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.applications {
		app := &c.applications[i]
		if app.ID != id || app.Status != model.ApplicationPending {
			continue
		}
		app.Status = model.ApplicationApproved
		vendor := model.Vendor{
			ID:         "v-" + uuid.NewString()[:8],
			Name:       app.BusinessName,
			Rating:     NewVendorRating,
			Location:   app.Location,
			JoinedDate: today(),
			TotalSales: 0,
			Email:      app.Email,
			Status:     model.VendorActive,
		}
		c.vendors = append(c.vendors, vendor)
		c.persistApplications(ctx)
		return vendor, true
	}
	return model.Vendor{}, false
}

// ReviewInput carries the fields of a submitted review. Ratings outside 1..5
// are accepted as-is; validation is left to the submitting surface.
type ReviewInput struct {
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// AddReview appends a review to the product and recomputes the product's
// rating (arithmetic mean over all reviews) and review count in the same
// step, so the two derived fields never diverge. ok is false when the
// product id does not resolve.
func (c *Catalog) AddReview(ctx context.Context, productID string, in ReviewInput) (model.Review, bool) {
	review := model.Review{
		ID:       "rev-" + uuid.NewString()[:8],
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
		Date:     today(),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		p := &c.products[i]
		if p.ID != productID {
			continue
		}
		p.Reviews = append(p.Reviews, review)
		sum := 0
		for _, r := range p.Reviews {
			sum += r.Rating
		}
		p.Rating = float64(sum) / float64(len(p.Reviews))
		p.ReviewCount = len(p.Reviews)
		c.persistProducts(ctx)
		return review, true
	}
	return model.Review{}, false
}

func (c *Catalog) persistProducts(ctx context.Context) {
	if err := c.store.SaveProducts(ctx, c.products); err != nil {
		logx.Error().Err(err).Msg("failed to persist products")
	}
}

func (c *Catalog) persistApplications(ctx context.Context) {
	if err := c.store.SaveApplications(ctx, c.applications); err != nil {
		logx.Error().Err(err).Msg("failed to persist applications")
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}
