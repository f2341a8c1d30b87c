package store

const (
	// Product catalog: JSON array of model.Product.
	KeyProducts = "nstore:products"

	// Vendor applications: JSON array of model.VendorApplication.
	KeyApplications = "nstore:apps"

	// Cart lines: JSON array of model.CartItem.
	KeyCart = "nstore:cart"

	// Logged-in profile: JSON model.UserProfile, absent when logged out.
	KeyUser = "nstore:user"
)
