// Package httpapi is the facade the UI layer talks to: it translates HTTP
// intents (add to cart, change quantity, remove, checkout) into service
// calls, validating request shapes at the edge.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cart *CartHandler, checkout *CheckoutHandler, auth *AuthHandler, orders *OrderHandler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	phones := PhoneHandler{}

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cart.GetCart)
			r.Delete("/", cart.ClearCart)
			r.Post("/items", cart.AddItem)
			r.Put("/items/{product_id}", cart.UpdateQuantity)
			r.Delete("/items/{product_id}", cart.RemoveItem)
		})
		r.Route("/products", func(r chi.Router) {
			r.Get("/", cart.ListProducts)
			r.Get("/{product_id}", cart.GetProduct)
		})
		r.Route("/checkout", func(r chi.Router) {
			r.Post("/", checkout.Enter)
			r.Put("/", checkout.UpdateForm)
			r.Post("/submit", checkout.Submit)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.ListOrders)
			r.Get("/{order_id}", orders.GetOrder)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
		})
		r.Route("/phone", func(r chi.Router) {
			r.Get("/countries", phones.ListCountries)
			r.Get("/number", phones.InspectNumber)
		})
	})

	return r
}
