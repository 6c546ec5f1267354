package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/maryanafarm/storefront/internal/models"
	"github.com/redis/go-redis/v9"
)

// CartStore is a durable string-keyed slot holding one serialized cart per
// client. Missing or malformed content loads as absent, never as an error;
// corrupt state degrades to an empty cart on the next Initialize.
type CartStore interface {
	Load(ctx context.Context, cartID string) ([]models.CartItem, bool, error)
	Save(ctx context.Context, cartID string, items []models.CartItem) error
}

const cartKeyPrefix = "cart"

func cartKey(cartID string) string {
	return cartKeyPrefix + ":" + cartID
}

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore keeps carts in redis under "cart:<id>". A non-positive ttl
// keeps carts forever.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{client: client, ttl: ttl}
}

func (s *redisCartStore) Load(ctx context.Context, cartID string) ([]models.CartItem, bool, error) {

	data, err := s.client.Get(ctx, cartKey(cartID)).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to load cart %s from redis: %w", cartID, err)
	}

	var items []models.CartItem

	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("Discarding malformed cart state",
			slog.String("cart_id", cartID),
			slog.String("error", err.Error()),
		)

		return nil, false, nil
	}

	return items, true, nil
}

func (s *redisCartStore) Save(ctx context.Context, cartID string, items []models.CartItem) error {

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cartID, err)
	}

	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}

	if err := s.client.Set(ctx, cartKey(cartID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart %s in redis: %w", cartID, err)
	}

	return nil
}
