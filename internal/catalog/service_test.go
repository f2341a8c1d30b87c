package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstore-core/server/internal/catalog/model"
	"github.com/nstore-core/server/internal/store"
)

func newTestCatalog(t *testing.T) (*Catalog, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	c, err := New(context.Background(), st)
	require.NoError(t, err)
	return c, st
}

func TestNewSeedsEmptyStore(t *testing.T) {
	c, _ := newTestCatalog(t)
	assert.Len(t, c.Products(), 7)
	assert.Len(t, c.Vendors(), 4)
	assert.Empty(t, c.Applications())
}

func TestAddProductPrepends(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	c.AddProduct(ctx, model.Product{ID: "new", Name: "New Arrival", Category: model.CategoryDigital, Stock: 1})

	products := c.Products()
	require.Len(t, products, 8)
	assert.Equal(t, "new", products[0].ID)
}

func TestRemoveProduct(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	c.RemoveProduct(ctx, "p1")

	_, ok := c.ProductByID("p1")
	assert.False(t, ok)
	assert.Len(t, c.Products(), 6)

	// removing an unknown id changes nothing
	c.RemoveProduct(ctx, "p1")
	assert.Len(t, c.Products(), 6)
}

func TestAddReviewRecomputesDerivedFields(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	before, ok := c.ProductByID("p2")
	require.True(t, ok)
	require.Len(t, before.Reviews, 1) // seed carries one 5-star review

	review, ok := c.AddReview(ctx, "p2", ReviewInput{UserName: "Noura", Rating: 3, Comment: "Decent"})
	require.True(t, ok)
	assert.NotEmpty(t, review.ID)
	assert.NotEmpty(t, review.Date)

	after, ok := c.ProductByID("p2")
	require.True(t, ok)
	assert.Equal(t, before.ReviewCount+1, after.ReviewCount)
	assert.Equal(t, len(after.Reviews), after.ReviewCount)
	assert.InDelta(t, 4.0, after.Rating, 1e-9) // mean of 5 and 3
}

func TestAddReviewLeavesOtherProductsUntouched(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	_, ok := c.AddReview(ctx, "p2", ReviewInput{UserName: "Noura", Rating: 3, Comment: "Decent"})
	require.True(t, ok)

	// Existing reviews are never edited; appending to one product must not
	// bleed into the review lists the other seeded products hold.
	p1, ok := c.ProductByID("p1")
	require.True(t, ok)
	require.Len(t, p1.Reviews, 3)
	assert.Equal(t, "Muneera A.", p1.Reviews[1].UserName)

	p3, ok := c.ProductByID("p3")
	require.True(t, ok)
	require.Len(t, p3.Reviews, 1)
	assert.Equal(t, "Muneera A.", p3.Reviews[0].UserName)
}

func TestAddReviewUnknownProduct(t *testing.T) {
	c, _ := newTestCatalog(t)
	_, ok := c.AddReview(context.Background(), "nope", ReviewInput{UserName: "X", Rating: 5})
	assert.False(t, ok)
}

func TestApplyAsVendorCreatesPendingApplication(t *testing.T) {
	c, _ := newTestCatalog(t)

	app := c.ApplyAsVendor(context.Background(), ApplicationInput{
		BusinessName: "Gulf Gadgets",
		ContactName:  "Dana",
		Email:        "dana@example.com",
		Phone:        "90000000",
		Category:     string(model.CategoryElectronics),
		Location:     "Farwaniya",
	})

	assert.Equal(t, model.ApplicationPending, app.Status)
	assert.NotEmpty(t, app.ID)
	assert.NotEmpty(t, app.AppliedAt)
	require.Len(t, c.Applications(), 1)
}

func TestApproveApplicationCreatesExactlyOneVendor(t *testing.T) {
	c, _ := newTestCatalog(t)
	ctx := context.Background()

	app := c.ApplyAsVendor(ctx, ApplicationInput{
		BusinessName: "Gulf Gadgets",
		Email:        "dana@example.com",
		Location:     "Farwaniya",
	})
	vendorsBefore := len(c.Vendors())

	vendor, ok := c.ApproveApplication(ctx, app.ID)
	require.True(t, ok)
	assert.Equal(t, "Gulf Gadgets", vendor.Name)
	assert.InDelta(t, NewVendorRating, vendor.Rating, 1e-9)
	assert.Equal(t, 0, vendor.TotalSales)
	assert.Equal(t, model.VendorActive, vendor.Status)
	assert.Len(t, c.Vendors(), vendorsBefore+1)

	apps := c.Applications()
	require.Len(t, apps, 1)
	assert.Equal(t, model.ApplicationApproved, apps[0].Status)

	// approving again is a no-op: no duplicate vendor
	_, ok = c.ApproveApplication(ctx, app.ID)
	assert.False(t, ok)
	assert.Len(t, c.Vendors(), vendorsBefore+1)
}

func TestApproveUnknownApplicationIsNoOp(t *testing.T) {
	c, _ := newTestCatalog(t)
	_, ok := c.ApproveApplication(context.Background(), "APP-missing")
	assert.False(t, ok)
	assert.Len(t, c.Vendors(), 4)
}

func TestCatalogSurvivesReloadFromStore(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	c1, err := New(ctx, st)
	require.NoError(t, err)
	_, ok := c1.AddReview(ctx, "p2", ReviewInput{UserName: "Noura", Rating: 3})
	require.True(t, ok)
	c1.ApplyAsVendor(ctx, ApplicationInput{BusinessName: "Gulf Gadgets", Email: "d@example.com"})

	c2, err := New(ctx, st)
	require.NoError(t, err)
	p, ok := c2.ProductByID("p2")
	require.True(t, ok)
	assert.Equal(t, 2, p.ReviewCount)
	assert.Len(t, c2.Applications(), 1)
}

func TestProductsByVendor(t *testing.T) {
	c, _ := newTestCatalog(t)
	for _, p := range c.ProductsByVendor("v1") {
		assert.Equal(t, "v1", p.VendorID)
	}
	assert.Len(t, c.ProductsByVendor("v1"), 2)
	assert.Empty(t, c.ProductsByVendor("nope"))
}

func TestFeatured(t *testing.T) {
	c, _ := newTestCatalog(t)
	featured := c.Featured()
	require.NotEmpty(t, featured)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}
