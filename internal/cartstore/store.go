package cartstore

import (
	"context"

	"github.com/dulcet/patisserie/internal/domain"
)

// Store defines the interface for cart persistence: a key-value store
// namespaced by owner identity. Implementations can use process memory,
// Redis, or PostgreSQL.
type Store interface {
	// Load returns the persisted line items for an owner.
	// An owner with no persisted cart loads as an empty list, not an error.
	Load(ctx context.Context, ownerKey string) ([]domain.LineItem, error)

	// Save replaces the persisted line items for an owner.
	Save(ctx context.Context, ownerKey string, items []domain.LineItem) error

	// Clear removes the persisted record for an owner.
	// Clearing an absent record is not an error (idempotent).
	Clear(ctx context.Context, ownerKey string) error
}

// anonymousKey is the storage partition for carts with no authenticated
// owner. The empty owner key maps here so every backend shares the same
// anonymous scope.
const anonymousKey = "anonymous"

// storageKey maps an owner key to its storage partition.
func storageKey(ownerKey string) string {
	if ownerKey == "" {
		return anonymousKey
	}
	return ownerKey
}

// Config selects and configures a Store backend.
type Config struct {
	Provider       string // "memory", "redis" or "postgres"
	RedisURL       string
	RedisNamespace string
	DatabaseUrl    string
}

// NewStore creates a Store implementation based on configuration.
func NewStore(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryStore(), nil
	case "redis":
		return NewRedisStoreFromURL(cfg.RedisURL, cfg.RedisNamespace)
	case "postgres":
		return NewPostgresStoreFromURL(ctx, cfg.DatabaseUrl)
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
