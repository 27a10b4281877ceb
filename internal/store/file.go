package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
)

// FileStore keeps the cart snapshot in a single JSON file, the desktop analog
// of the browser's localStorage slot.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load(_ context.Context) ([]domain.LineItem, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	items, err := decodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}
	return items, nil
}

// Save writes the full snapshot via a temp file and rename so a crash
// mid-write cannot leave a truncated snapshot behind.
func (f *FileStore) Save(_ context.Context, items []domain.LineItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, "cart-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close cart file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace cart file: %w", err)
	}
	return nil
}
