package catalog

import (
	"strings"

	"github.com/nstore-core/server/internal/catalog/model"
)

// Filter returns the products passing every active predicate in fs, in the
// input order. It is pure: the input slice is never mutated and inactive
// predicates (zero values) pass everything.
//
// MinPrice is carried by FilterState for the range control but is not
// applied; only MaxPrice acts as a ceiling on the base price.
func Filter(products []model.Product, fs model.FilterState) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, fs) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p model.Product, fs model.FilterState) bool {
	if fs.Category != "" && p.Category != fs.Category {
		return false
	}
	if len(fs.Subcategories) > 0 && !containsString(fs.Subcategories, p.Subcategory) {
		return false
	}
	if len(fs.VendorIDs) > 0 && !containsString(fs.VendorIDs, p.VendorID) {
		return false
	}
	if fs.Search != "" && !matchesQuery(p, fs.Search) {
		return false
	}
	if fs.MaxPrice > 0 && p.Price > fs.MaxPrice {
		return false
	}
	return true
}

// matchesQuery does a case-insensitive substring match against the product
// name and short description.
func matchesQuery(p model.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
