package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	assert.InDelta(t, 99.9, Product{Price: 120, DiscountPrice: 99.9}.EffectivePrice(), 1e-9)
	assert.InDelta(t, 120.0, Product{Price: 120}.EffectivePrice(), 1e-9)
}

func TestInStock(t *testing.T) {
	assert.False(t, Product{Stock: 0}.InStock())
	assert.True(t, Product{Stock: 1}.InStock())
}

func TestLineTotal(t *testing.T) {
	item := CartItem{Product: Product{Price: 20, DiscountPrice: 15}, Quantity: 3}
	assert.InDelta(t, 45.0, item.LineTotal(), 1e-9)
}

func TestSubcategories(t *testing.T) {
	assert.Equal(t, []string{"E-Books", "Software", "Gift Cards"}, Subcategories(CategoryDigital))
	assert.Nil(t, Subcategories(Category("Unknown")))

	assert.True(t, ValidCategory(CategoryClothing))
	assert.False(t, ValidCategory(Category("Groceries")))
	assert.Len(t, Categories(), 5)
}
