package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
)

// GET v1/cart (200 OK)
// POST v1/cart/items JSON {"productId" int, "quantity" int} (201 Created, 200 OK, 400, 404)
// PUT v1/cart/items/{id} JSON {"quantity" int} (200 OK, 400)
// DELETE v1/cart/items/{id} (200 OK, 400)
// DELETE v1/cart (204 No content)

type CartHandler struct {
	cart port.CartKeeper
}

func RegisterCart(mux *http.ServeMux, cart port.CartKeeper) {
	h := CartHandler{cart}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.AddItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.SetQuantity)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.RemoveItem)
	mux.HandleFunc("DELETE /v1/cart", h.Clear)
}

func (h CartHandler) GetCart(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

func (h CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.AddItem"
	log := slog.With("op", op)

	var req AddCartItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	_, created, err := h.cart.Add(r.Context(), req.ProductID, req.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to add to cart", http.StatusInternalServerError)
		log.Error("failed to add to cart", "err", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, h.view())
	log.Info("cart item accepted", "productID", req.ProductID, "created", created)
}

func (h CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.SetQuantity"
	log := slog.With("op", op)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req SetCartQuantity
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.cart.SetQuantity(r.Context(), id, req.Quantity); err != nil {
		http.Error(w, "failed to update quantity", http.StatusInternalServerError)
		log.Error("failed to update quantity", "err", err)
		return
	}
	writeJSON(w, http.StatusOK, h.view())
}

func (h CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.RemoveItem"

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.cart.Remove(r.Context(), id); err != nil {
		http.Error(w, "failed to remove from cart", http.StatusInternalServerError)
		slog.Error("failed to remove from cart", "op", op, "err", err)
		return
	}
	writeJSON(w, http.StatusOK, h.view())
}

func (h CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) view() CartView {
	return toCartView(h.cart.Lines(), h.cart.TotalItems(), h.cart.Subtotal())
}
