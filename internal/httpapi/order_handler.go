package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/Usmantahir0707/Luxe-Bags/internal/backend"
	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/session"
	"github.com/go-chi/chi/v5"
)

// OrderReader is the slice of the backend order API the history views need.
type OrderReader interface {
	Order(ctx context.Context, id string) (*domain.Order, error)
	Orders(ctx context.Context) ([]domain.Order, error)
}

// OrderHandler serves the placed-order reads. Unlike cart mutation, order
// history is scoped to an account, so every route checks the gate first.
type OrderHandler struct {
	orders OrderReader
	gate   *session.Gate
}

func NewOrderHandler(orders OrderReader, gate *session.Gate) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		gate:   gate,
	}
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	if !h.gate.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "order history requires authentication")
		return
	}

	orders, err := h.orders.Orders(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	if !h.gate.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "order history requires authentication")
		return
	}

	orderID := chi.URLParam(r, "order_id")
	order, err := h.orders.Order(r.Context(), orderID)
	if errors.Is(err, backend.ErrNotFound) {
		respondError(w, http.StatusNotFound, "order_not_found", err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, order)
}
