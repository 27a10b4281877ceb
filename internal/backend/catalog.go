package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

// Catalog reads product records from the backend. Reads go through a short
// TTL cache with singleflight so a burst of add-to-cart clicks for the same
// product does not fan out into duplicate fetches.
type Catalog struct {
	client *Client
	cache  *gocache.Cache
	sfg    singleflight.Group
}

func NewCatalog(client *Client) *Catalog {
	return &Catalog{
		client: client,
		cache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Product fetches a single product by id. The cart trusts this snapshot at
// add-time and never re-validates it later.
func (c *Catalog) Product(ctx context.Context, id string) (*domain.Product, error) {
	if cached, ok := c.cache.Get(id); ok {
		return cached.(*domain.Product), nil
	}

	v, err, _ := c.sfg.Do(id, func() (interface{}, error) {
		var p domain.Product
		if err := c.client.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, &p); err != nil {
			return nil, fmt.Errorf("failed to fetch product %s: %w", id, err)
		}
		c.cache.Set(id, &p, gocache.DefaultExpiration)
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Product), nil
}

// Products fetches the product list, optionally filtered by query params.
func (c *Catalog) Products(ctx context.Context, params url.Values) ([]domain.Product, error) {
	path := "/api/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var products []domain.Product
	if err := c.client.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
