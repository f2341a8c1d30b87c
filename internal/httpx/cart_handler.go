package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nstore-core/server/internal/cart"
	"github.com/nstore-core/server/internal/catalog"
	"github.com/nstore-core/server/internal/catalog/model"
	"github.com/nstore-core/server/internal/orders"
	"github.com/nstore-core/server/internal/store"
)

type CartHandler struct {
	Cart    *cart.Cart
	Catalog *catalog.Catalog
	Orders  *orders.Book
	Store   store.Store
}

type cartView struct {
	Items      []model.CartItem `json:"items"`
	TotalItems int              `json:"totalItems"`
	TotalPrice float64          `json:"totalPrice"`
}

func (h *CartHandler) Register(r *chi.Mux) {
	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{id}", h.updateQuantity)
	r.Delete("/cart/items/{id}", h.removeItem)
	r.Delete("/cart", h.clearCart)

	r.Post("/checkout", h.checkout)
	r.Get("/orders", h.listOrders)
	r.Get("/orders/{id}", h.getOrder)
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:      h.Cart.Items(),
		TotalItems: h.Cart.TotalItems(),
		TotalPrice: h.Cart.TotalPrice(),
	}
}

func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

// addItem puts one unit of a catalog product in the cart. Adding an
// out-of-stock product is accepted and ignored, mirroring the storefront's
// silent no-op.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	p, ok := h.Catalog.ProductByID(req.ProductID)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	h.Cart.Add(r.Context(), p)
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	h.Cart.UpdateQuantity(r.Context(), chi.URLParam(r, "id"), req.Delta)
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Remove(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	h.Cart.Clear(r.Context())
	writeJSON(w, http.StatusOK, h.view())
}

// checkout simulates placing an order from the current cart: no payment is
// processed. The customer comes from the logged-in profile when one exists,
// otherwise from the request body.
func (h *CartHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PaymentMethod model.PaymentMethod `json:"paymentMethod"`
		Customer      model.UserProfile   `json:"customer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	items := h.Cart.Items()
	if len(items) == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = model.PaymentKNET
	}
	customer := req.Customer
	if user, err := h.Store.LoadUser(r.Context()); err == nil && user != nil {
		customer = *user
	}

	order := h.Orders.Checkout(items, h.Cart.TotalPrice(), req.PaymentMethod, customer)
	h.Cart.Clear(r.Context())
	writeJSON(w, http.StatusCreated, order)
}

func (h *CartHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Orders.List())
}

func (h *CartHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, ok := h.Orders.ByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}
