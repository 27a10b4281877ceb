package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []domain.LineItem {
	return []domain.LineItem{
		{ProductID: "p1", Name: "Tote Bag", UnitPrice: 100, Image: "bag.jpg", Quantity: 2, Color: "black"},
		{ProductID: "p2", Name: "Wallet", UnitPrice: 40, Quantity: 1},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, testItems()))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Same identity keys, quantities and order.
	assert.Equal(t, testItems(), loaded)
}

func TestFileStore_MissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := fs.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path).Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStore_NullVariantsDecodeToUnset(t *testing.T) {
	// The original storefront persisted null for "no variant selected".
	path := filepath.Join(t.TempDir(), "cart.json")
	payload := `[{"productId":"p1","name":"Tote Bag","price":100,"quantity":1,"color":null,"size":null}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	loaded, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "", loaded[0].Color)
	assert.Equal(t, "", loaded[0].Size)
}

func TestFileStore_UnsetVariantsEncodeAsNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	fs := NewFileStore(path)
	require.NoError(t, fs.Save(context.Background(), []domain.LineItem{
		{ProductID: "p1", Name: "Tote Bag", UnitPrice: 100, Quantity: 1},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"color":null`)
	assert.Contains(t, string(data), `"size":null`)
}

func TestFileStore_NonPositiveQuantitiesDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	payload := `[
		{"productId":"p1","name":"Tote Bag","price":100,"quantity":0,"color":null,"size":null},
		{"productId":"p2","name":"Wallet","price":40,"quantity":1,"color":null,"size":null}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	loaded, err := NewFileStore(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "p2", loaded[0].ProductID)
}

func TestFileStore_SaveOverwritesSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	fs := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, testItems()))
	require.NoError(t, fs.Save(ctx, nil))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
