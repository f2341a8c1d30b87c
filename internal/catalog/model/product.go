package model

// Review is a single customer review. Reviews are immutable once created;
// there is no edit or delete path.
type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"` // 1..5
	Comment  string `json:"comment"`
	Date     string `json:"date"` // day granularity, YYYY-MM-DD
}

// Vendor is the canonical seller record. Products embed a snapshot copy that
// may drift from this record; that denormalisation is deliberate.
type Vendor struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Rating     float64      `json:"rating"`
	Location   string       `json:"location"`
	JoinedDate string       `json:"joinedDate"`
	TotalSales int          `json:"totalSales"`
	Email      string       `json:"email,omitempty"`
	Status     VendorStatus `json:"status"`
}

type VendorStatus string

const (
	VendorActive    VendorStatus = "Active"
	VendorPending   VendorStatus = "Pending"
	VendorSuspended VendorStatus = "Suspended"
)

// Product is a catalog entry. Rating and ReviewCount are derived from the
// Reviews list and are always recomputed together when a review is added.
type Product struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name"`
	Price               float64  `json:"price"` // KD
	DiscountPrice       float64  `json:"discountPrice,omitempty"`
	Category            Category `json:"category"`
	Subcategory         string   `json:"subcategory"`
	Description         string   `json:"description"`
	DetailedDescription string   `json:"detailedDescription"`
	Images              []string `json:"images"`
	VendorID            string   `json:"vendorId"`
	Vendor              Vendor   `json:"vendor"` // snapshot at reference time
	Rating              float64  `json:"rating"`
	ReviewCount         int      `json:"reviewCount"`
	IsFeatured          bool     `json:"isFeatured,omitempty"`
	Stock               int      `json:"stock"`
	SKU                 string   `json:"sku"`
	Reviews             []Review `json:"reviews,omitempty"`
}

// EffectivePrice is the price a buyer pays: the discount price when one is
// set, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// InStock reports whether the product can be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// VendorApplication is a pending request to become a vendor. Rejected exists
// in the status space but no operation produces it.
type VendorApplication struct {
	ID           string            `json:"id"`
	BusinessName string            `json:"businessName"`
	ContactName  string            `json:"contactName"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Category     string            `json:"category"`
	Location     string            `json:"location"`
	AppliedAt    string            `json:"appliedAt"`
	Status       ApplicationStatus `json:"status"`
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)
