// Package order derives the submittable order payload from the cart ledger
// and the user-entered checkout form, and validates it before submission.
package order

import (
	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
)

// DefaultSize is applied to lines with no size variant at draft-build time.
// Carried over from the storefront's observed behavior; whether non-apparel
// items should receive a size default at all is a product question.
const DefaultSize = "M"

// BuildDraft assembles an order draft from a cart snapshot and the checkout
// form. Lines are reduced to {productId, quantity, color, size}; price, name
// and image are dropped because the backend re-prices from its own catalog.
// TotalPrice is computed here for display and submission; the backend does
// not trust it.
func BuildDraft(items []domain.LineItem, form domain.OrderForm) domain.OrderDraft {
	products := make([]domain.OrderProduct, len(items))
	var total float64
	for i, it := range items {
		size := it.Size
		if size == "" {
			size = DefaultSize
		}
		products[i] = domain.OrderProduct{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Color:     colorPtr(it.Color),
			Size:      size,
		}
		total += it.Subtotal()
	}

	return domain.OrderDraft{
		CustomerName:    form.CustomerName,
		CustomerEmail:   form.CustomerEmail,
		CustomerPhone:   form.CustomerPhone,
		ShippingAddress: form.Shipping,
		Products:        products,
		TotalPrice:      total,
	}
}

// ApplyForm copies the customer and shipping fields of the form onto an
// existing draft, leaving the products snapshot and total untouched.
func ApplyForm(draft *domain.OrderDraft, form domain.OrderForm) {
	draft.CustomerName = form.CustomerName
	draft.CustomerEmail = form.CustomerEmail
	draft.CustomerPhone = form.CustomerPhone
	draft.ShippingAddress = form.Shipping
}

func colorPtr(color string) *string {
	if color == "" {
		return nil
	}
	return &color
}
