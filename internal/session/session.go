// Package session tracks whether a user is authenticated. Cart contents are
// not scoped to identity: an anonymous cart persists through login and is
// attributable to whichever account is active at submission time. Only order
// submission and order history consult this gate.
package session

import "sync"

// Gate holds the auth token and answers the one question the core asks of
// identity: is a token present. Token contents are never inspected.
type Gate struct {
	mu    sync.RWMutex
	token string
}

func NewGate(initialToken string) *Gate {
	return &Gate{token: initialToken}
}

func (g *Gate) SetToken(token string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
}

// Clear drops the token on logout. It deliberately does not touch the cart.
func (g *Gate) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = ""
}

func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token
}

func (g *Gate) IsAuthenticated() bool {
	return g.Token() != ""
}
