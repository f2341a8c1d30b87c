package httpx

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nstore-core/server/internal/catalog"
	"github.com/nstore-core/server/internal/catalog/model"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Get("/products/featured", h.featuredProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Post("/products", h.addProduct)
	r.Delete("/products/{id}", h.removeProduct)
	r.Post("/products/{id}/reviews", h.addReview)

	r.Get("/vendors", h.listVendors)
	r.Get("/vendors/{id}", h.getVendor)
	r.Get("/vendors/{id}/products", h.vendorProducts)

	r.Get("/applications", h.listApplications)
	r.Post("/applications", h.applyAsVendor)
	r.Post("/applications/{id}/approve", h.approveApplication)
}

// listProducts applies the query-string filter controls to the catalog:
// category, subcategory (repeatable), vendor (repeatable), search, max_price.
func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fs := model.FilterState{
		Category:      model.Category(q.Get("category")),
		Subcategories: q["subcategory"],
		VendorIDs:     q["vendor"],
		Search:        q.Get("search"),
	}
	if raw := q.Get("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		fs.MaxPrice = maxPrice
	}

	products := catalog.Filter(h.Catalog.Products(), fs)
	writeJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"total":    len(products),
	})
}

func (h *CatalogHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Featured())
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.ProductByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *CatalogHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if p.ID == "" || p.Name == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	h.Catalog.AddProduct(r.Context(), p)
	writeJSON(w, http.StatusCreated, p)
}

func (h *CatalogHandler) removeProduct(w http.ResponseWriter, r *http.Request) {
	h.Catalog.RemoveProduct(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) addReview(w http.ResponseWriter, r *http.Request) {
	var in catalog.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	review, ok := h.Catalog.AddReview(r.Context(), chi.URLParam(r, "id"), in)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *CatalogHandler) listVendors(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Vendors())
}

func (h *CatalogHandler) getVendor(w http.ResponseWriter, r *http.Request) {
	v, ok := h.Catalog.VendorByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "vendor not found")
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *CatalogHandler) vendorProducts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ProductsByVendor(chi.URLParam(r, "id")))
}

func (h *CatalogHandler) listApplications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Applications())
}

func (h *CatalogHandler) applyAsVendor(w http.ResponseWriter, r *http.Request) {
	var in catalog.ApplicationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if in.BusinessName == "" || in.Email == "" {
		writeError(w, http.StatusBadRequest, "missing fields")
		return
	}
	app := h.Catalog.ApplyAsVendor(r.Context(), in)
	writeJSON(w, http.StatusCreated, app)
}

func (h *CatalogHandler) approveApplication(w http.ResponseWriter, r *http.Request) {
	vendor, ok := h.Catalog.ApproveApplication(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "pending application not found")
		return
	}
	writeJSON(w, http.StatusOK, vendor)
}
