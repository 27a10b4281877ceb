package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/service"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// ValidationErrorResponse carries the field-keyed error map that blocks
// submission.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

// Enter snapshots the cart into a fresh draft. Re-entering checkout rebuilds
// the snapshot; this is the only way a mid-checkout cart change reaches the
// draft.
func (h *CheckoutHandler) Enter(w http.ResponseWriter, r *http.Request) {
	var form domain.OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	draft := h.checkout.Enter(form)
	respondJSON(w, http.StatusOK, draft)
}

func (h *CheckoutHandler) UpdateForm(w http.ResponseWriter, r *http.Request) {
	var form domain.OrderForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if err := h.checkout.UpdateForm(form); err != nil {
		respondError(w, http.StatusConflict, "checkout_not_started", err.Error())
		return
	}

	draft, _ := h.checkout.Draft()
	respondJSON(w, http.StatusOK, draft)
}

func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	confirmation, fieldErrors, err := h.checkout.Submit(r.Context())

	switch {
	case len(fieldErrors) > 0:
		respondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fieldErrors})
	case errors.Is(err, service.ErrCheckoutNotStarted):
		respondError(w, http.StatusConflict, "checkout_not_started", err.Error())
	case errors.Is(err, service.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "unauthenticated", err.Error())
	case err != nil:
		respondError(w, http.StatusBadGateway, "order_submission_failed", err.Error())
	default:
		respondJSON(w, http.StatusCreated, confirmation)
	}
}
