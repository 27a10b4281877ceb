package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Usmantahir0707/Luxe-Bags/internal/domain"
	"github.com/redis/go-redis/v9"
)

// abandonedCartTTL matches the retention window for idle carts; every save
// refreshes it.
const abandonedCartTTL = 90 * 24 * time.Hour

// RedisStore keeps the cart snapshot in redis, keyed per owner, for kiosk or
// shared deployments where the snapshot must outlive the device.
type RedisStore struct {
	client *redis.Client
	owner  string
}

func NewRedisStore(client *redis.Client, owner string) *RedisStore {
	return &RedisStore{
		client: client,
		owner:  owner,
	}
}

func (r *RedisStore) Load(ctx context.Context) ([]domain.LineItem, error) {
	data, err := r.client.Get(ctx, cartKey(r.owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	items, err := decodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cart snapshot: %w", err)
	}
	return items, nil
}

func (r *RedisStore) Save(ctx context.Context, items []domain.LineItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(r.owner), data, abandonedCartTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cartKey(owner string) string {
	return fmt.Sprintf("cart:%s", owner)
}
