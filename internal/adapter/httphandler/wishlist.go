package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
)

// GET v1/wishlist (200 OK)
// POST v1/wishlist/toggle JSON {"productId" int} (200 OK, 400, 404)
// DELETE v1/wishlist/{id} (200 OK, 400)
// DELETE v1/wishlist (204 No content)

type WishlistHandler struct {
	wishlist port.WishlistKeeper
}

func RegisterWishlist(mux *http.ServeMux, wishlist port.WishlistKeeper) {
	h := WishlistHandler{wishlist}
	mux.HandleFunc("GET /v1/wishlist", h.GetWishlist)
	mux.HandleFunc("POST /v1/wishlist/toggle", h.Toggle)
	mux.HandleFunc("DELETE /v1/wishlist/{id}", h.Remove)
	mux.HandleFunc("DELETE /v1/wishlist", h.Clear)
}

func (h WishlistHandler) GetWishlist(w http.ResponseWriter, _ *http.Request) {
	ps := h.wishlist.Products()
	writeJSON(w, http.StatusOK, WishlistView{Products: toProducts(ps), Total: len(ps)})
}

func (h WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Toggle"
	log := slog.With("op", op)

	var req ToggleWishlist
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	added, err := h.wishlist.Toggle(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to toggle wishlist", http.StatusInternalServerError)
		log.Error("failed to toggle wishlist", "err", err)
		return
	}

	writeJSON(w, http.StatusOK, ToggleResult{
		Added:    added,
		Products: toProducts(h.wishlist.Products()),
	})
}

func (h WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	const op = "WishlistHandler.Remove"

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.wishlist.Remove(r.Context(), id); err != nil {
		http.Error(w, "failed to remove from wishlist", http.StatusInternalServerError)
		slog.Error("failed to remove from wishlist", "op", op, "err", err)
		return
	}

	ps := h.wishlist.Products()
	writeJSON(w, http.StatusOK, WishlistView{Products: toProducts(ps), Total: len(ps)})
}

func (h WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
