// Package cartstore keeps each buyer's cart in Redis between requests.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/chef-market/internal/cart"
	"github.com/SergeyBogomolovv/chef-market/internal/config"

	"github.com/redis/go-redis/v9"
)

type item struct {
	DishID    string `json:"dish_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url,omitempty"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	SellerID  string `json:"seller_id"`
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *redisStore {
	return &redisStore{client: client, ttl: ttl}
}

func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

func key(buyerID string) string {
	return "cart:" + buyerID
}

// Get returns an empty cart when the buyer has none stored.
func (s *redisStore) Get(ctx context.Context, buyerID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, key(buyerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var items []item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	restored := make([]cart.Item, 0, len(items))
	for _, it := range items {
		restored = append(restored, cart.Item(it))
	}
	c, err := cart.Restore(restored)
	if err != nil {
		return nil, fmt.Errorf("failed to restore cart: %w", err)
	}
	return c, nil
}

// Save stores the cart and refreshes its TTL. An empty cart removes the key.
func (s *redisStore) Save(ctx context.Context, buyerID string, c *cart.Cart) error {
	if c.IsEmpty() {
		return s.Delete(ctx, buyerID)
	}

	lines := c.Items()
	items := make([]item, 0, len(lines))
	for _, it := range lines {
		items = append(items, item(it))
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, key(buyerID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, buyerID string) error {
	if err := s.client.Del(ctx, key(buyerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
