package model

// FilterState captures the product-list filter controls. Zero value means
// "no filtering". MinPrice is declared for completeness but is not applied;
// only MaxPrice acts as a price ceiling.
type FilterState struct {
	Category      Category `json:"category,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
	MinPrice      float64  `json:"minPrice,omitempty"`
	MaxPrice      float64  `json:"maxPrice,omitempty"`
	VendorIDs     []string `json:"vendorIds,omitempty"`
	Search        string   `json:"search,omitempty"`
}
