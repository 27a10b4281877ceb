package backend

import (
	"context"
	"errors"
	"net/http"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
)

// AuthClient covers the slice of the auth API the core needs: logging in to
// obtain a token and fetching the active account. Token lifecycle beyond
// that is the backend's business.
type AuthClient struct {
	client *Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{client: client}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the backend's login payload: the token plus the user
// fields flattened alongside it.
type loginResponse struct {
	Token string `json:"token"`
	domain.User
}

func (a *AuthClient) Login(ctx context.Context, creds Credentials) (string, *domain.User, error) {
	var resp loginResponse
	if err := a.client.do(ctx, http.MethodPost, "/api/auth/login", creds, &resp); err != nil {
		return "", nil, err
	}
	if resp.Token == "" {
		return "", nil, errors.New("login response missing token")
	}
	user := resp.User
	return resp.Token, &user, nil
}

func (a *AuthClient) CurrentUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := a.client.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
