package model

type PaymentMethod string

const (
	PaymentKNET PaymentMethod = "KNET"
	PaymentCash PaymentMethod = "CASH"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "Pending"
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCancelled  OrderStatus = "Cancelled"
)

// UserProfile is the checkout/contact detail set for the mocked account flow.
type UserProfile struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Area     string `json:"area"`
}

// Order is a placed (or fixture) order. Orders are session-scoped: the
// checkout simulation creates them but nothing persists them durably.
type Order struct {
	ID                string        `json:"id"`
	Date              string        `json:"date"`
	EstimatedDelivery string        `json:"estimatedDelivery,omitempty"`
	Total             float64       `json:"total"`
	Status            OrderStatus   `json:"status"`
	Items             []CartItem    `json:"items"`
	PaymentMethod     PaymentMethod `json:"paymentMethod"`
	Customer          UserProfile   `json:"customer"`
}
