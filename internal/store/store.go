// Package store mirrors the cart ledger to durable storage so a restart does
// not lose the cart. Writes are always full-snapshot overwrites; cart sizes
// are bounded by human shopping behavior.
package store

import (
	"context"
	"errors"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
)

// Store defines the interface for cart snapshot persistence.
// Consumers define this interface, not the implementations.
type Store interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}

var ErrNotFound = errors.New("cart snapshot not found")
