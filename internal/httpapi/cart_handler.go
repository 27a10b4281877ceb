package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/Usmantahir0707/Luxe-Bags/internal/backend"
	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/Usmantahir0707/Luxe-Bags/internal/service"
	"github.com/go-chi/chi/v5"
)

// maxLineQuantity bounds a single cart line; anything above it is a typo or
// abuse, not shopping.
const maxLineQuantity = 99

// ProductFinder is the slice of the catalog the cart handler needs to seed
// line items.
type ProductFinder interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
	Products(ctx context.Context, params url.Values) ([]domain.Product, error)
}

type CartHandler struct {
	cart     *service.CartService
	products ProductFinder
}

func NewCartHandler(cart *service.CartService, products ProductFinder) *CartHandler {
	return &CartHandler{
		cart:     cart,
		products: products,
	}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int    `json:"quantity"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

type CartItemDTO struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	Quantity  int     `json:"quantity"`
	Color     string  `json:"color,omitempty"`
	Size      string  `json:"size,omitempty"`
}

type CartViewDTO struct {
	Items      []CartItemDTO `json:"items"`
	TotalItems int           `json:"total_items"`
	TotalPrice float64       `json:"total_price"`
}

func (h *CartHandler) cartView() CartViewDTO {
	items := h.cart.Items()
	view := CartViewDTO{
		Items:      make([]CartItemDTO, len(items)),
		TotalItems: h.cart.TotalItems(),
		TotalPrice: h.cart.TotalPrice(),
	}
	for i, it := range items {
		view.Items[i] = CartItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.UnitPrice,
			Image:     it.Image,
			Quantity:  it.Quantity,
			Color:     it.Color,
			Size:      it.Size,
		}
	}
	return view
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 || req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	// Validate the product exists and snapshot its display fields.
	product, err := h.products.Product(r.Context(), req.ProductID)
	if errors.Is(err, backend.ErrNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "product_lookup_failed", err.Error())
		return
	}

	h.cart.Add(r.Context(), *product, req.Quantity, req.Color, req.Size)
	respondJSON(w, http.StatusCreated, h.cartView())
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 1 || req.Quantity > maxLineQuantity {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity, req.Color, req.Size); err != nil {
		respondError(w, http.StatusNotFound, "not_found", "item not found in cart")
		return
	}
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	// Removal targets the exact stored variant, passed as query params.
	h.cart.Remove(r.Context(), productID, r.URL.Query().Get("color"), r.URL.Query().Get("size"))
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cart.Clear(r.Context())
	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Products(r.Context(), r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *CartHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	product, err := h.products.Product(r.Context(), productID)
	if errors.Is(err, backend.ErrNotFound) {
		respondError(w, http.StatusNotFound, "product_not_found", err.Error())
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog_unavailable", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, product)
}
