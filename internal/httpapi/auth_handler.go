package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Usmantahir0707/Luxe-Bags/internal/backend"
	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/session"
)

// Authenticator is the slice of the backend auth API the facade exposes.
type Authenticator interface {
	Login(ctx context.Context, creds backend.Credentials) (string, *domain.User, error)
	CurrentUser(ctx context.Context) (*domain.User, error)
}

type AuthHandler struct {
	auth Authenticator
	gate *session.Gate
}

func NewAuthHandler(auth Authenticator, gate *session.Gate) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		gate: gate,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds backend.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if creds.Email == "" || creds.Password == "" {
		respondError(w, http.StatusBadRequest, "invalid_credentials", "email and password are required")
		return
	}

	token, user, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "login_failed", err.Error())
		return
	}

	h.gate.SetToken(token)
	respondJSON(w, http.StatusOK, user)
}

// Logout drops the token. The cart survives: it belongs to the device, not
// the account.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.gate.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	if !h.gate.IsAuthenticated() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "no active session")
		return
	}

	user, err := h.auth.CurrentUser(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "backend_unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}
