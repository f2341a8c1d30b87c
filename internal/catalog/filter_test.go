package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstore-core/server/internal/catalog/model"
)

func filterFixture() []model.Product {
	return []model.Product{
		{ID: "a", Name: "Ultra HD TV", Description: "Cinematic experience", Category: model.CategoryElectronics, Subcategory: "TVs", VendorID: "v1", Price: 10},
		{ID: "b", Name: "Pro Laptop", Description: "High performance", Category: model.CategoryElectronics, Subcategory: "Laptops", VendorID: "v1", Price: 20, DiscountPrice: 15},
		{ID: "c", Name: "Cotton T-Shirt", Description: "Soft and breathable", Category: model.CategoryClothing, Subcategory: "Men", VendorID: "v2", Price: 8.5},
		{ID: "d", Name: "Power Drill", Description: "Heavy duty tool", Category: model.CategoryHardware, Subcategory: "Tools", VendorID: "v3", Price: 35},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterEmptyStatePassesEverything(t *testing.T) {
	products := filterFixture()
	got := Filter(products, model.FilterState{})
	assert.Equal(t, ids(products), ids(got))
}

func TestFilterByCategoryPreservesOrder(t *testing.T) {
	got := Filter(filterFixture(), model.FilterState{Category: model.CategoryElectronics})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterBySubcategorySet(t *testing.T) {
	fs := model.FilterState{
		Category:      model.CategoryElectronics,
		Subcategories: []string{"Laptops"},
	}
	got := Filter(filterFixture(), fs)
	assert.Equal(t, []string{"b"}, ids(got))

	// case-sensitive exact match
	fs.Subcategories = []string{"laptops"}
	assert.Empty(t, Filter(filterFixture(), fs))
}

func TestFilterByVendorSet(t *testing.T) {
	got := Filter(filterFixture(), model.FilterState{VendorIDs: []string{"v2", "v3"}})
	assert.Equal(t, []string{"c", "d"}, ids(got))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), model.FilterState{Search: "laptop"})
	assert.Equal(t, []string{"b"}, ids(got))

	// description is searched too
	got = Filter(filterFixture(), model.FilterState{Search: "HEAVY DUTY"})
	assert.Equal(t, []string{"d"}, ids(got))
}

func TestFilterPriceCeilingUsesBasePrice(t *testing.T) {
	// b is discounted to 15 but its base price 20 exceeds the ceiling
	got := Filter(filterFixture(), model.FilterState{MaxPrice: 12})
	assert.Equal(t, []string{"a", "c"}, ids(got))
}

func TestFilterMinPriceIsNotEnforced(t *testing.T) {
	got := Filter(filterFixture(), model.FilterState{MinPrice: 1000})
	assert.Len(t, got, 4)
}

func TestFilterIsIdempotent(t *testing.T) {
	fs := model.FilterState{Category: model.CategoryElectronics, MaxPrice: 12}
	once := Filter(filterFixture(), fs)
	twice := Filter(once, fs)
	assert.Equal(t, once, twice)
}

func TestFilterCombinesPredicatesWithAnd(t *testing.T) {
	fs := model.FilterState{
		Category:  model.CategoryElectronics,
		VendorIDs: []string{"v1"},
		Search:    "tv",
		MaxPrice:  15,
	}
	got := Filter(filterFixture(), fs)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := filterFixture()
	Filter(products, model.FilterState{Category: model.CategoryClothing})
	assert.Equal(t, ids(filterFixture()), ids(products))
}
