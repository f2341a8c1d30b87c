package model

// CartItem is a cart line: a product snapshot plus a quantity. A cart holds
// at most one line per product id and every line's quantity is >= 1.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the effective price of the line's product times its quantity.
func (c CartItem) LineTotal() float64 {
	return c.EffectivePrice() * float64(c.Quantity)
}
