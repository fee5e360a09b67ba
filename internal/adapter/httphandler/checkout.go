package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopswift/storefront/internal/core/domain"
	"github.com/shopswift/storefront/internal/core/port"
	"github.com/shopswift/storefront/internal/core/service"
)

// GET v1/checkout/totals (200 OK)
// POST v1/checkout JSON customer details (201 Created, 400, 409, 503)

type CheckoutHandler struct {
	checkout port.OrderPlacer
}

func RegisterCheckout(mux *http.ServeMux, checkout port.OrderPlacer) {
	h := CheckoutHandler{checkout}
	mux.HandleFunc("GET /v1/checkout/totals", h.GetTotals)
	mux.HandleFunc("POST /v1/checkout", h.PlaceOrder)
}

func (h CheckoutHandler) GetTotals(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toCheckoutTotals(h.checkout.Totals()))
}

func (h CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.PlaceOrder"
	log := slog.With("op", op)

	var req PlaceOrder
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), domain.Customer{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCustomer):
			http.Error(w, "invalid customer details", http.StatusBadRequest)
		case errors.Is(err, service.ErrEmptyCart):
			http.Error(w, "cart is empty", http.StatusConflict)
		default:
			http.Error(w, "failed to submit order", http.StatusServiceUnavailable)
			log.Error("failed to submit order", "err", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, OrderPlaced{
		OrderID:  order.ID,
		Totals:   toCheckoutTotals(order.Totals),
		PlacedAt: order.PlacedAt.Format(time.RFC3339),
	})
	log.Info("order placed", "orderID", order.ID)
}
