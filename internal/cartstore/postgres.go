package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dulcet/patisserie/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists carts in PostgreSQL, one row per owner with the
// line items as JSONB. The carts table is created by the embedded goose
// migrations.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a cart store over an existing connection pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// NewPostgresStoreFromURL creates a cart store by connecting to the given
// database URL.
func NewPostgresStoreFromURL(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return NewPostgresStore(pool), nil
}

// Load fetches and decodes the stored items for an owner.
func (s *PostgresStore) Load(ctx context.Context, ownerKey string) ([]domain.LineItem, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT items FROM carts WHERE owner_key = $1`,
		storageKey(ownerKey),
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to decode stored cart: %w", err)
	}
	return items, nil
}

// Save upserts the items for an owner.
func (s *PostgresStore) Save(ctx context.Context, ownerKey string, items []domain.LineItem) error {
	if items == nil {
		items = []domain.LineItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO carts (owner_key, items, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (owner_key)
		 DO UPDATE SET items = EXCLUDED.items, updated_at = now()`,
		storageKey(ownerKey), raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Clear removes the stored record for an owner.
func (s *PostgresStore) Clear(ctx context.Context, ownerKey string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM carts WHERE owner_key = $1`,
		storageKey(ownerKey),
	)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
