// Package ledger holds the in-memory cart: an ordered list of line items with
// a single owner of the merge rule that keeps identity keys unique.
package ledger

import (
	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
)

// AddOutcome tells the caller which toast to show after Add.
type AddOutcome int

const (
	ItemAdded AddOutcome = iota
	QuantityIncreased
)

// Ledger is an ordered collection of line items, insertion order preserved
// for display. It is not safe for concurrent use; the owning service
// serializes access.
type Ledger struct {
	items []domain.LineItem
}

func New() *Ledger {
	return &Ledger{}
}

// FromItems builds a ledger from a rehydrated snapshot. The snapshot is
// trusted to satisfy the identity-uniqueness invariant because this process
// wrote it.
func FromItems(items []domain.LineItem) *Ledger {
	l := &Ledger{items: make([]domain.LineItem, len(items))}
	copy(l.items, items)
	return l
}

// axisMatches is the per-axis wildcard rule used by Add: an unset side of a
// variant axis (color or size) matches anything, a set side only matches
// itself. Add is invoked from contexts that may not know a product's variant,
// so "unspecified" acts as a wildcard to avoid spurious duplicate lines.
func axisMatches(stored, requested string) bool {
	return requested == "" || stored == "" || stored == requested
}

// Add merges the request into an existing line when the permissive identity
// rule allows it, otherwise appends a new line. On merge, quantity is
// incremented and any previously-unset variant field is backfilled with the
// newly supplied value: a bag added once with no color and again with color
// "black" becomes a single black-tagged line, not two lines. First match in
// insertion order wins. Quantities below 1 are treated as 1.
func (l *Ledger) Add(p domain.Product, quantity int, color, size string) AddOutcome {
	if quantity < 1 {
		quantity = 1
	}
	color = domain.NormalizeVariant(color)
	size = domain.NormalizeVariant(size)

	for i := range l.items {
		it := &l.items[i]
		if it.ProductID != p.ID {
			continue
		}
		if !axisMatches(it.Color, color) || !axisMatches(it.Size, size) {
			continue
		}
		it.Quantity += quantity
		if it.Color == "" {
			it.Color = color
		}
		if it.Size == "" {
			it.Size = size
		}
		return QuantityIncreased
	}

	l.items = append(l.items, domain.LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Image:     p.Image,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
	})
	return ItemAdded
}

// UpdateQuantity sets the quantity of the line with the exact identity key.
// Unlike Add, matching here is exact: this operation is invoked from the cart
// UI, which always has the stored variant values in hand. Returns false when
// no line matches. Callers clamp quantity to a minimum of 1 before calling.
func (l *Ledger) UpdateQuantity(productID string, quantity int, color, size string) bool {
	key := domain.IdentityKey{
		ProductID: productID,
		Color:     domain.NormalizeVariant(color),
		Size:      domain.NormalizeVariant(size),
	}
	for i := range l.items {
		if l.items[i].Key() == key {
			l.items[i].Quantity = quantity
			return true
		}
	}
	return false
}

// Remove deletes the line with the exact identity key and returns it so the
// caller can name it in the removal toast. No-op when no line matches.
func (l *Ledger) Remove(productID, color, size string) (domain.LineItem, bool) {
	key := domain.IdentityKey{
		ProductID: productID,
		Color:     domain.NormalizeVariant(color),
		Size:      domain.NormalizeVariant(size),
	}
	for i := range l.items {
		if l.items[i].Key() == key {
			removed := l.items[i]
			l.items = append(l.items[:i], l.items[i+1:]...)
			return removed, true
		}
	}
	return domain.LineItem{}, false
}

// Clear empties the ledger. Used only after confirmed order placement.
func (l *Ledger) Clear() {
	l.items = nil
}

// Items returns a copy of the lines in insertion order.
func (l *Ledger) Items() []domain.LineItem {
	items := make([]domain.LineItem, len(l.items))
	copy(items, l.items)
	return items
}

func (l *Ledger) Len() int {
	return len(l.items)
}

// TotalItems is the sum of quantities across all lines, for badge display.
func (l *Ledger) TotalItems() int {
	total := 0
	for _, it := range l.items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of unitPrice times quantity across all lines.
func (l *Ledger) TotalPrice() float64 {
	var total float64
	for _, it := range l.items {
		total += it.Subtotal()
	}
	return total
}
