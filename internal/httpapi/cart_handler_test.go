package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/Usmantahir0707/Luxe-Bags/internal/backend"
	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/notify"
	"github.com/Usmantahir0707/Luxe-Bags/internal/service"
	"github.com/Usmantahir0707/Luxe-Bags/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	m     sync.Mutex
	items []domain.LineItem
}

func (s *memStore) Load(context.Context) ([]domain.LineItem, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.items == nil {
		return nil, store.ErrNotFound
	}
	return s.items, nil
}

func (s *memStore) Save(_ context.Context, items []domain.LineItem) error {
	s.m.Lock()
	defer s.m.Unlock()
	s.items = items
	return nil
}

type catalogMock struct {
	products map[string]domain.Product
	err      error
}

func (c catalogMock) Product(_ context.Context, id string) (*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, fmt.Errorf("failed to fetch product %s: %w", id, backend.ErrNotFound)
	}
	return &p, nil
}

func (c catalogMock) Products(context.Context, url.Values) ([]domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	return out, nil
}

func newCartFixture(t *testing.T) (*CartHandler, *service.CartService) {
	t.Helper()
	cart := service.NewCartService(context.Background(), &memStore{}, notify.Nop{})
	catalog := catalogMock{products: map[string]domain.Product{
		"p1": {ID: "p1", Name: "Tote Bag", Price: 100, Image: "bag.jpg"},
		"p2": {ID: "p2", Name: "Wallet", Price: 40},
	}}
	return NewCartHandler(cart, catalog), cart
}

func addItemRequest(t *testing.T, body AddItemRequestDTO) *http.Request {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader(data))
}

func TestAddItem_Success(t *testing.T) {
	handler, cart := newCartFixture(t)

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 2, Color: "black"}))

	require.Equal(t, http.StatusCreated, recorder.Code)

	var view CartViewDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&view))
	require.Len(t, view.Items, 1)
	assert.Equal(t, "p1", view.Items[0].ProductID)
	assert.Equal(t, "Tote Bag", view.Items[0].Name)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "black", view.Items[0].Color)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 200.0, view.TotalPrice)

	assert.Equal(t, 2, cart.TotalItems())
}

func TestAddItem_DefaultsQuantityToOne(t *testing.T) {
	handler, cart := newCartFixture(t)

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1"}))

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, 1, cart.TotalItems())
}

func TestAddItem_MissingProductID(t *testing.T) {
	handler, _ := newCartFixture(t)

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{Quantity: 1}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddItem_QuantityOutOfRange(t *testing.T) {
	handler, _ := newCartFixture(t)

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 100}))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAddItem_UnknownProduct(t *testing.T) {
	handler, cart := newCartFixture(t)

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "ghost", Quantity: 1}))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 0, cart.TotalItems())
}

func TestAddItem_CatalogUnreachable(t *testing.T) {
	cart := service.NewCartService(context.Background(), &memStore{}, notify.Nop{})
	handler := NewCartHandler(cart, catalogMock{err: fmt.Errorf("connection refused")})

	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 1}))

	assert.Equal(t, http.StatusBadGateway, recorder.Code)
	assert.Equal(t, 0, cart.TotalItems())
}

func TestGetProduct_UnknownProduct(t *testing.T) {
	handler, _ := newCartFixture(t)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/products/ghost", nil)
	request = withURLParam(request, "product_id", "ghost")

	recorder := httptest.NewRecorder()
	handler.GetProduct(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestAddItem_InvalidJSON(t *testing.T) {
	handler, _ := newCartFixture(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", bytes.NewReader([]byte("{not json")))
	handler.AddItem(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateQuantity_Success(t *testing.T) {
	handler, cart := newCartFixture(t)
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 2, Color: "black"}))

	data, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 5, Color: "black"})
	request := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/p1", bytes.NewReader(data))
	request = withURLParam(request, "product_id", "p1")

	recorder = httptest.NewRecorder()
	handler.UpdateQuantity(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestUpdateQuantity_VariantMustMatchExactly(t *testing.T) {
	handler, cart := newCartFixture(t)
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 2, Color: "black"}))

	// No variant in the update request: the black line must not be touched.
	data, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 5})
	request := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/p1", bytes.NewReader(data))
	request = withURLParam(request, "product_id", "p1")

	recorder = httptest.NewRecorder()
	handler.UpdateQuantity(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, 2, cart.TotalItems())
}

func TestUpdateQuantity_RejectsZero(t *testing.T) {
	handler, _ := newCartFixture(t)

	data, _ := json.Marshal(UpdateQuantityRequestDTO{Quantity: 0})
	request := httptest.NewRequest(http.MethodPut, "/api/v1/cart/items/p1", bytes.NewReader(data))
	request = withURLParam(request, "product_id", "p1")

	recorder := httptest.NewRecorder()
	handler.UpdateQuantity(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRemoveItem_TargetsExactVariant(t *testing.T) {
	handler, cart := newCartFixture(t)
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 1, Color: "black"}))
	recorder = httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 1, Color: "red"}))

	request := httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/p1?color=black", nil)
	request = withURLParam(request, "product_id", "p1")

	recorder = httptest.NewRecorder()
	handler.RemoveItem(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "red", items[0].Color)
}

func TestGetCart_EmptyCart(t *testing.T) {
	handler, _ := newCartFixture(t)

	recorder := httptest.NewRecorder()
	handler.GetCart(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var view CartViewDTO
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&view))
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
}

func TestClearCart_EmptiesCart(t *testing.T) {
	handler, cart := newCartFixture(t)
	recorder := httptest.NewRecorder()
	handler.AddItem(recorder, addItemRequest(t, AddItemRequestDTO{ProductID: "p1", Quantity: 3}))

	recorder = httptest.NewRecorder()
	handler.ClearCart(recorder, httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 0, cart.TotalItems())
}
