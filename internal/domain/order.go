package domain

import "time"

// Address is the shipping address block of the checkout form. The backend's
// wire key for the street line is "address".
type Address struct {
	Line1      string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderForm holds the user-entered checkout fields: who is buying and where
// it ships. The cart is the other, independent input of an order draft.
type OrderForm struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone string  `json:"customerPhone"`
	Shipping      Address `json:"shippingAddress"`
}

// OrderProduct is one cart line reduced to what the backend needs. Price,
// name and image are dropped; the backend re-prices from its own catalog.
// Color is null when no variant was selected; size always carries a value
// because unset sizes are defaulted at draft-build time.
type OrderProduct struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Color     *string `json:"color"`
	Size      string  `json:"size"`
}

// OrderDraft is the assembled, not-yet-submitted order payload. Products and
// TotalPrice are captured once when checkout is entered; the customer and
// shipping fields are mutated in place as the user types.
type OrderDraft struct {
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	ShippingAddress Address        `json:"shippingAddress"`
	Products        []OrderProduct `json:"products"`
	TotalPrice      float64        `json:"totalPrice"`
}

// OrderConfirmation is the backend's response to a successful order POST.
type OrderConfirmation struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status,omitempty"`
}

// Order is a placed order as the backend reports it back: the submitted
// draft fields plus the identity and lifecycle state the backend assigned.
type Order struct {
	ID              string         `json:"_id"`
	Status          string         `json:"status"`
	CustomerName    string         `json:"customerName"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerPhone   string         `json:"customerPhone"`
	ShippingAddress Address        `json:"shippingAddress"`
	Products        []OrderProduct `json:"products"`
	TotalPrice      float64        `json:"totalPrice"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// User is the account record returned by the auth endpoints.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
