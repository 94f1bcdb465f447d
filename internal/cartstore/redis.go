package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dulcet/patisserie/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists carts as JSON blobs in Redis, one key per owner.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisStore creates a cart store over an existing Redis client.
func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	if namespace == "" {
		namespace = "patisserie:cart"
	}
	return &RedisStore{client: client, namespace: namespace}
}

// NewRedisStoreFromURL creates a cart store by dialing the given Redis URL.
func NewRedisStoreFromURL(redisURL, namespace string) (*RedisStore, error) {
	if redisURL == "" {
		return nil, ErrRedisURLRequired
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	return NewRedisStore(redis.NewClient(opts), namespace), nil
}

func (s *RedisStore) key(ownerKey string) string {
	return fmt.Sprintf("%s:%s", s.namespace, storageKey(ownerKey))
}

// Load fetches and decodes the stored items for an owner.
func (s *RedisStore) Load(ctx context.Context, ownerKey string) ([]domain.LineItem, error) {
	raw, err := s.client.Get(ctx, s.key(ownerKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart from redis: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}
	return items, nil
}

// Save encodes and stores the items for an owner.
func (s *RedisStore) Save(ctx context.Context, ownerKey string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, s.key(ownerKey), raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart to redis: %w", err)
	}
	return nil
}

// Clear removes the stored record for an owner.
func (s *RedisStore) Clear(ctx context.Context, ownerKey string) error {
	if err := s.client.Del(ctx, s.key(ownerKey)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart in redis: %w", err)
	}
	return nil
}
