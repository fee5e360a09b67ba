package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
)

const defaultRelatedLimit = 4

// GET v1/products?category=&minPrice=&maxPrice=&rating=&sort=&inStock=&featured=&new=&bestseller= (200 OK)
// GET v1/products/{id} (200 OK, 404 Not found)
// GET v1/products/{id}/related?limit= (200 OK)
// GET v1/categories (200 OK)

type ProductsHandler struct {
	browser port.CatalogBrowser
}

func RegisterProducts(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := ProductsHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/products/{id}/related", h.GetRelated)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
}

func (h ProductsHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	minB, maxB := h.browser.PriceBounds()
	spec := ParseFilterSpec(r.URL.Query(), minB, maxB)

	ps := h.browser.Browse(spec)
	writeJSON(w, http.StatusOK, ProductList{Products: toProducts(ps), Total: len(ps)})
}

func (h ProductsHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.GetProduct"

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.browser.Product(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to read product", http.StatusInternalServerError)
		slog.Error("unexpected lookup failure", "op", op, "err", err)
		return
	}

	writeJSON(w, http.StatusOK, toProduct(p))
}

func (h ProductsHandler) GetRelated(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	limit := defaultRelatedLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}

	ps := h.browser.Related(id, limit)
	writeJSON(w, http.StatusOK, ProductList{Products: toProducts(ps), Total: len(ps)})
}

func (h ProductsHandler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	cs := h.browser.Categories()
	vs := make([]Category, len(cs))
	for i, c := range cs {
		vs[i] = Category{ID: string(c.ID), Name: c.Name}
	}
	writeJSON(w, http.StatusOK, vs)
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "err", err)
	}
}
