package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/notify"
	"github.com/Usmantahir0707/Luxe-Bags/internal/order"
	"github.com/google/uuid"
)

var (
	ErrCheckoutNotStarted = errors.New("checkout has not been entered")
	ErrNotAuthenticated   = errors.New("order submission requires authentication")
)

// OrderPlacer submits an assembled draft to the backend order endpoint.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, draft domain.OrderDraft, idempotencyKey string) (*domain.OrderConfirmation, error)
}

// IdentityGate answers whether a user is authenticated. Cart mutation is
// identity-free; submission is not.
type IdentityGate interface {
	IsAuthenticated() bool
}

// CheckoutService drives the order-assembly flow. The draft's products and
// total are snapshotted once when checkout is entered and are not re-derived
// if the cart changes mid-checkout; the customer and shipping fields are
// mutated in place as the user types. The draft is rebuilt fresh on every
// Enter and never persisted.
type CheckoutService struct {
	cart     *CartService
	orders   OrderPlacer
	gate     IdentityGate
	notifier notify.Notifier

	mu             sync.Mutex
	draft          *domain.OrderDraft
	idempotencyKey string
}

func NewCheckoutService(cart *CartService, orders OrderPlacer, gate IdentityGate, notifier notify.Notifier) *CheckoutService {
	return &CheckoutService{
		cart:     cart,
		orders:   orders,
		gate:     gate,
		notifier: notifier,
	}
}

// Enter builds a fresh draft from the current cart and form. The idempotency
// key is minted here and reused across submit retries for this draft.
func (s *CheckoutService) Enter(form domain.OrderForm) domain.OrderDraft {
	draft := order.BuildDraft(s.cart.Items(), form)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &draft
	s.idempotencyKey = uuid.NewString()
	return draft
}

// UpdateForm writes the form fields onto the active draft, leaving the
// products snapshot and total untouched.
func (s *CheckoutService) UpdateForm(form domain.OrderForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return ErrCheckoutNotStarted
	}
	order.ApplyForm(s.draft, form)
	return nil
}

// Draft returns a copy of the active draft, if checkout has been entered.
func (s *CheckoutService) Draft() (domain.OrderDraft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == nil {
		return domain.OrderDraft{}, false
	}
	return *s.draft, true
}

// Submit validates the draft and hands it to the order endpoint. Field
// errors come back as a map and block submission without being an error.
// The cart is cleared only after the backend confirms; on any failure the
// cart and draft stay intact so the user can retry.
func (s *CheckoutService) Submit(ctx context.Context) (*domain.OrderConfirmation, map[string]string, error) {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return nil, nil, ErrCheckoutNotStarted
	}
	draft := *s.draft
	idempotencyKey := s.idempotencyKey
	s.mu.Unlock()

	if !s.gate.IsAuthenticated() {
		return nil, nil, ErrNotAuthenticated
	}

	if errs := order.Validate(draft); len(errs) > 0 {
		return nil, errs, nil
	}

	confirmation, err := s.orders.CreateOrder(ctx, draft, idempotencyKey)
	if err != nil {
		s.notifier.Error("Order failed", err.Error())
		return nil, nil, err
	}

	s.cart.Clear(ctx)

	s.mu.Lock()
	s.draft = nil
	s.idempotencyKey = ""
	s.mu.Unlock()

	s.notifier.Success("Order placed", "Order "+confirmation.OrderID+" confirmed")
	return confirmation, nil, nil
}
