package catalog

import (
	"slices"

	"github.com/nstore-core/server/internal/catalog/model"
)

// SeedVendors is the vendor roster loaded at startup. Vendors are seeded per
// process and not persisted; the canonical durable collections are products,
// applications and the cart.
func SeedVendors() []model.Vendor {
	return []model.Vendor{
		{ID: "v1", Name: "Al-Ghanim Tech", Rating: 4.8, Location: "Shuwaikh", JoinedDate: "2023-01-15", TotalSales: 15400, Status: model.VendorActive},
		{ID: "v2", Name: "Kuwait Fashion Hub", Rating: 4.5, Location: "Salmiya", JoinedDate: "2023-03-22", TotalSales: 8200, Status: model.VendorActive},
		{ID: "v3", Name: "Industrial Pro", Rating: 4.9, Location: "Ahmadi", JoinedDate: "2023-05-10", TotalSales: 21000, Status: model.VendorActive},
		{ID: "v4", Name: "Digital Dreams", Rating: 4.2, Location: "Hawally", JoinedDate: "2023-06-05", TotalSales: 4500, Status: model.VendorActive},
	}
}

func seedReviews() []model.Review {
	return []model.Review{
		{ID: "r1", UserName: "Faisal K.", Rating: 5, Comment: "Excellent quality and fast delivery in Kuwait!", Date: "2023-10-01"},
		{ID: "r2", UserName: "Muneera A.", Rating: 4, Comment: "Very good product, but the box was slightly damaged.", Date: "2023-10-05"},
		{ID: "r3", UserName: "Hamad S.", Rating: 5, Comment: "Best price I found for this model. Recommended!", Date: "2023-10-10"},
	}
}

// SeedProducts is the initial catalog used when the store holds nothing yet.
func SeedProducts() []model.Product {
	vendors := SeedVendors()
	// Each product gets its own copy: Reviews slices are appended to in
	// place, so sharing a backing array across products would let one
	// product's new review overwrite another's.
	reviews := seedReviews()
	return []model.Product{
		{
			ID: "p1", Name: `Ultra HD Smart TV 55"`,
			Price: 120.000, DiscountPrice: 99.900,
			Category: model.CategoryElectronics, Subcategory: "TVs",
			Description:         "Cinematic experience with 4K resolution and smart features.",
			DetailedDescription: "Experience crystal clear visuals with our 55-inch 4K Ultra HD Smart TV. Features include built-in Netflix, YouTube, 3 HDMI ports, and voice control remote.",
			Images:              []string{"https://picsum.photos/seed/tv1/800/800", "https://picsum.photos/seed/tv2/800/800", "https://picsum.photos/seed/tv3/800/800"},
			VendorID:            "v1", Vendor: vendors[0],
			Rating: 4.7, ReviewCount: 128, IsFeatured: true,
			Stock: 0, // out of stock on purpose, exercises the add-to-cart no-op
			SKU:   "ELEC-TV-55", Reviews: slices.Clone(reviews),
		},
		{
			ID: "p2", Name: "Pro Laptop 16GB RAM",
			Price:    450.000,
			Category: model.CategoryElectronics, Subcategory: "Laptops",
			Description:         "High performance laptop for professionals.",
			DetailedDescription: "Powered by the latest i7 processor, this laptop handles heavy multitasking with ease. 16GB RAM, 512GB SSD.",
			Images:              []string{"https://picsum.photos/seed/laptop1/800/800", "https://picsum.photos/seed/laptop2/800/800"},
			VendorID:            "v1", Vendor: vendors[0],
			Rating: 4.9, ReviewCount: 56, IsFeatured: true,
			Stock: 5, SKU: "ELEC-LAP-PRO", Reviews: slices.Clone(reviews[:1]),
		},
		{
			ID: "p3", Name: "Premium Cotton T-Shirt",
			Price: 8.500, DiscountPrice: 5.000,
			Category: model.CategoryClothing, Subcategory: "Men",
			Description:         "Soft, breathable cotton perfect for summer.",
			DetailedDescription: "100% Organic Cotton. Pre-shrunk fabric to ensure a perfect fit after washing.",
			Images:              []string{"https://picsum.photos/seed/shirt1/800/800", "https://picsum.photos/seed/shirt2/800/800"},
			VendorID:            "v2", Vendor: vendors[1],
			Rating: 4.3, ReviewCount: 200,
			Stock: 50, SKU: "CLOTH-TSHIRT-M", Reviews: slices.Clone(reviews[1:2]),
		},
		{
			ID: "p4", Name: "Designer Summer Dress",
			Price:    25.000,
			Category: model.CategoryClothing, Subcategory: "Women",
			Description:         "Elegant floral print dress.",
			DetailedDescription: "Lightweight chiffon material with a beautiful floral pattern.",
			Images:              []string{"https://picsum.photos/seed/dress1/800/800"},
			VendorID:            "v2", Vendor: vendors[1],
			Rating: 4.6, ReviewCount: 45, IsFeatured: true,
			Stock: 12, SKU: "CLOTH-DRESS-W", Reviews: slices.Clone(reviews[2:3]),
		},
		{
			ID: "p5", Name: "Cordless Power Drill Set",
			Price: 35.000, DiscountPrice: 28.500,
			Category: model.CategoryHardware, Subcategory: "Tools",
			Description:         "Heavy duty drill with 2 batteries included.",
			DetailedDescription: "18V Cordless Drill with 2-speed transmission. Includes carrying case.",
			Images:              []string{"https://picsum.photos/seed/drill1/800/800", "https://picsum.photos/seed/drill2/800/800"},
			VendorID:            "v3", Vendor: vendors[2],
			Rating: 4.8, ReviewCount: 89,
			Stock: 20, SKU: "HARD-DRILL-18V", Reviews: slices.Clone(reviews),
		},
		{
			ID: "p6", Name: "Smart LED Bulb (RGB)",
			Price:    4.500,
			Category: model.CategoryElectrical, Subcategory: "Lighting",
			Description:         "WiFi enabled color changing bulb.",
			DetailedDescription: "Control your lights from anywhere with the mobile app.",
			Images:              []string{"https://picsum.photos/seed/bulb1/800/800"},
			VendorID:            "v3", Vendor: vendors[2],
			Rating: 4.4, ReviewCount: 310,
			Stock: 100, SKU: "ELEC-BULB-RGB", Reviews: slices.Clone(reviews[:1]),
		},
		{
			ID: "p7", Name: "Antivirus Software License (1 Year)",
			Price: 10.000, DiscountPrice: 7.500,
			Category: model.CategoryDigital, Subcategory: "Software",
			Description:         "Total protection for your PC and Mobile.",
			DetailedDescription: "Instant delivery via email. Protects against malware and phishing.",
			Images:              []string{"https://picsum.photos/seed/soft1/800/800"},
			VendorID:            "v4", Vendor: vendors[3],
			Rating: 4.9, ReviewCount: 500,
			Stock: 999, SKU: "DIGI-AV-1Y", Reviews: slices.Clone(reviews),
		},
	}
}

// SeedUser is the canned profile toggled in and out by the mocked login flow.
func SeedUser() model.UserProfile {
	return model.UserProfile{
		FullName: "Ali Al-Salem",
		Email:    "ali@example.com",
		Phone:    "99999999",
		Address:  "Block 4",
		Area:     "Salmiya",
	}
}

// SeedOrders is the static order-history fixture shown on the profile page.
func SeedOrders() []model.Order {
	products := SeedProducts()
	return []model.Order{
		{
			ID: "ORD-9921", Date: "2023-10-25", EstimatedDelivery: "2023-10-28",
			Total: 107.500, Status: model.OrderDelivered, PaymentMethod: model.PaymentKNET,
			Customer: model.UserProfile{FullName: "Ali Al-Salem", Email: "ali@example.com", Phone: "99999999", Address: "Block 4", Area: "Salmiya"},
			Items: []model.CartItem{
				{Product: products[0], Quantity: 1},
				{Product: products[5], Quantity: 2},
			},
		},
		{
			ID: "ORD-9922", Date: "2023-10-26", EstimatedDelivery: "2023-10-29",
			Total: 28.500, Status: model.OrderProcessing, PaymentMethod: model.PaymentCash,
			Customer: model.UserProfile{FullName: "Sarah Ahmed", Email: "sarah@example.com", Phone: "98888888", Address: "Street 20", Area: "Hawally"},
			Items: []model.CartItem{
				{Product: products[4], Quantity: 1},
			},
		},
		{
			ID: "ORD-9923", Date: "2023-10-27", EstimatedDelivery: "2023-10-30",
			Total: 7.500, Status: model.OrderPending, PaymentMethod: model.PaymentKNET,
			Customer: model.UserProfile{FullName: "John Doe", Email: "john@example.com", Phone: "55555555", Address: "Tower A", Area: "Kuwait City"},
			Items: []model.CartItem{
				{Product: products[6], Quantity: 1},
			},
		},
	}
}
