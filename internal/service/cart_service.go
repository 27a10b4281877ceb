package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/ledger"
	"github.com/Usmantahir0707/Luxe-Bags/internal/notify"
	"github.com/Usmantahir0707/Luxe-Bags/internal/store"
)

var ErrItemNotFound = errors.New("item not found in cart")

// CartService is the single source of truth for cart contents. It owns the
// ledger, mirrors every mutation to the persistent store and emits the
// user-facing toasts. One instance is constructed at application start and
// injected into whatever surface consumes it; the mutex gives the "no
// concurrent writer" guarantee the ledger relies on.
type CartService struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	store    store.Store
	notifier notify.Notifier
}

// NewCartService rehydrates the cart from the store. A missing or malformed
// snapshot falls back to an empty ledger; rehydration must never fail or
// block startup.
func NewCartService(ctx context.Context, st store.Store, notifier notify.Notifier) *CartService {
	var l *ledger.Ledger

	items, err := st.Load(ctx)
	switch {
	case err == nil:
		l = ledger.FromItems(items)
	case errors.Is(err, store.ErrNotFound):
		l = ledger.New()
	default:
		log.Printf("cart rehydration failed, starting empty: %v", err)
		l = ledger.New()
	}

	return &CartService{
		ledger:   l,
		store:    st,
		notifier: notifier,
	}
}

// Add puts quantity units of the product into the cart, merging into an
// existing line when the permissive variant rule allows it.
func (s *CartService) Add(ctx context.Context, p domain.Product, quantity int, color, size string) {
	s.mu.Lock()
	outcome := s.ledger.Add(p, quantity, color, size)
	s.persist(ctx)
	s.mu.Unlock()

	if outcome == ledger.QuantityIncreased {
		s.notifier.Success("Added to cart", p.Name+" quantity increased")
	} else {
		s.notifier.Success("Added to cart", p.Name)
	}
}

// UpdateQuantity sets the quantity of the exact-matching line. Callers clamp
// quantity to a minimum of 1 before calling.
func (s *CartService) UpdateQuantity(ctx context.Context, productID string, quantity int, color, size string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ledger.UpdateQuantity(productID, quantity, color, size) {
		return ErrItemNotFound
	}
	s.persist(ctx)
	return nil
}

// Remove deletes the exact-matching line. No-op when no line matches.
func (s *CartService) Remove(ctx context.Context, productID, color, size string) {
	s.mu.Lock()
	removed, ok := s.ledger.Remove(productID, color, size)
	if ok {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if ok {
		s.notifier.Info("Removed from cart", removed.Name)
	}
}

// Clear empties the cart. Called only after the backend confirmed the order.
func (s *CartService) Clear(ctx context.Context) {
	s.mu.Lock()
	s.ledger.Clear()
	s.persist(ctx)
	s.mu.Unlock()

	s.notifier.Info("Cart cleared", "")
}

func (s *CartService) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Items()
}

func (s *CartService) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TotalItems()
}

func (s *CartService) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.TotalPrice()
}

// persist mirrors the ledger to the store. Best-effort: a write failure is
// logged, never surfaced, and not retried. Called with the mutex held.
func (s *CartService) persist(ctx context.Context) {
	saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := s.store.Save(saveCtx, s.ledger.Items()); err != nil {
		log.Printf("cart persist failed: %v", err)
	}
}
