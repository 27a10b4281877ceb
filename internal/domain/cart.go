package domain

import "strings"

// LineItem is one row of the cart: a product snapshot plus the variant the
// shopper picked and how many they want. Name, price and image are copied at
// add-time and never re-fetched; a later catalog price change does not touch
// the cart.
type LineItem struct {
	ProductID string
	Name      string
	UnitPrice float64
	Image     string
	Quantity  int
	Color     string // "" means no variant selected
	Size      string // "" means no variant selected
}

// IdentityKey is the tuple that decides whether two line items are the same
// line. Items with equal keys must never coexist in a ledger.
type IdentityKey struct {
	ProductID string
	Color     string
	Size      string
}

func (li LineItem) Key() IdentityKey {
	return IdentityKey{
		ProductID: li.ProductID,
		Color:     NormalizeVariant(li.Color),
		Size:      NormalizeVariant(li.Size),
	}
}

func (li LineItem) Subtotal() float64 {
	return li.UnitPrice * float64(li.Quantity)
}

// NormalizeVariant maps every spelling of "no variant selected" (empty or
// whitespace-only string) to "".
func NormalizeVariant(v string) string {
	return strings.TrimSpace(v)
}

// Product is the catalog record a line item is seeded from. The backend uses
// Mongo-style ids, hence the _id key.
type Product struct {
	ID     string   `json:"_id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Image  string   `json:"image"`
	Colors []string `json:"colors,omitempty"`
}
