package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_FetchesAndCaches(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, "/api/products/p1", r.URL.Path)
		w.Write([]byte(`{"_id":"p1","name":"Tote Bag","price":100,"image":"bag.jpg","colors":["#000000"]}`))
	}))
	defer srv.Close()

	catalog := NewCatalog(NewClient(srv.URL, staticToken("")))
	ctx := context.Background()

	p, err := catalog.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tote Bag", p.Name)
	assert.Equal(t, 100.0, p.Price)

	// Second read is served from cache.
	_, err = catalog.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
}

func TestProduct_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Product not found"}`))
	}))
	defer srv.Close()

	catalog := NewCatalog(NewClient(srv.URL, staticToken("")))

	_, err := catalog.Product(context.Background(), "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")
}

func TestProduct_FailureNotCached(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"_id":"p1","name":"Tote Bag","price":100}`))
	}))
	defer srv.Close()

	catalog := NewCatalog(NewClient(srv.URL, staticToken("")))
	ctx := context.Background()

	_, err := catalog.Product(ctx, "p1")
	require.Error(t, err)

	p, err := catalog.Product(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Tote Bag", p.Name)
}

func TestProducts_PassesQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "bags", r.URL.Query().Get("category"))
		w.Write([]byte(`[{"_id":"p1","name":"Tote Bag","price":100}]`))
	}))
	defer srv.Close()

	catalog := NewCatalog(NewClient(srv.URL, staticToken("")))

	products, err := catalog.Products(context.Background(), map[string][]string{"category": {"bags"}})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}
