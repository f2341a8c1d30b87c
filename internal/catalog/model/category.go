package model

// Category is the closed set of top-level catalog categories.
type Category string

const (
	CategoryDigital     Category = "Digital Products"
	CategoryClothing    Category = "Clothing & Apparels"
	CategoryHardware    Category = "Hardware & Accessories"
	CategoryElectrical  Category = "Electrical & Plumbing"
	CategoryElectronics Category = "Electronics & Home Appliances"
)

// Categories lists every known category in display order.
func Categories() []Category {
	return []Category{
		CategoryDigital,
		CategoryClothing,
		CategoryHardware,
		CategoryElectrical,
		CategoryElectronics,
	}
}

var categoryHierarchy = map[Category][]string{
	CategoryDigital:     {"E-Books", "Software", "Gift Cards"},
	CategoryClothing:    {"Men", "Women", "Kids", "Accessories"},
	CategoryHardware:    {"Tools", "Safety Gear", "Fasteners"},
	CategoryElectrical:  {"Lighting", "Cables", "Pipes", "Fixtures"},
	CategoryElectronics: {"Smartphones", "Laptops", "Kitchen Appliances", "TVs"},
}

// Subcategories returns the declared subcategory list for a category, nil for
// an unknown category.
func Subcategories(c Category) []string {
	return categoryHierarchy[c]
}

// ValidCategory reports whether c belongs to the closed category set.
func ValidCategory(c Category) bool {
	_, ok := categoryHierarchy[c]
	return ok
}
