package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// OrdersClient submits order drafts to the backend. Submission is guarded by
// a circuit breaker so a struggling backend is not hammered with retries; the
// cart stays intact on every failure, so the user can retry once the breaker
// closes.
type OrdersClient struct {
	client  *Client
	breaker *gobreaker.CircuitBreaker[*domain.OrderConfirmation]
}

func NewOrdersClient(client *Client) *OrdersClient {
	settings := gobreaker.Settings{
		Name:    "orders-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
	return &OrdersClient{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[*domain.OrderConfirmation](settings),
	}
}

// CreateOrder POSTs the draft to the order endpoint. The idempotency key is
// generated once per draft and reused across retries, so a retry after a
// timeout cannot place the order twice.
func (o *OrdersClient) CreateOrder(ctx context.Context, draft domain.OrderDraft, idempotencyKey string) (*domain.OrderConfirmation, error) {
	return o.breaker.Execute(func() (*domain.OrderConfirmation, error) {
		var confirmation domain.OrderConfirmation
		err := o.client.doWithHeaders(ctx, http.MethodPost, "/api/orders", draft, &confirmation,
			map[string]string{"Idempotency-Key": idempotencyKey})
		if err != nil {
			return nil, err
		}
		return &confirmation, nil
	})
}

// Order fetches a single placed order by id. Reads skip the breaker: they
// carry no side effects and a failed read needs no cooldown.
func (o *OrdersClient) Order(ctx context.Context, id string) (*domain.Order, error) {
	var ord domain.Order
	if err := o.client.do(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(id), nil, &ord); err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return &ord, nil
}

// Orders fetches the authenticated account's order history.
func (o *OrdersClient) Orders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.client.do(ctx, http.MethodGet, "/api/orders", nil, &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}
