package cartstore

import (
	"context"

	"github.com/dulcet/patisserie/internal/domain"
)

// MockStore is a test implementation of Store.
type MockStore struct {
	LoadFunc  func(ctx context.Context, ownerKey string) ([]domain.LineItem, error)
	SaveFunc  func(ctx context.Context, ownerKey string, items []domain.LineItem) error
	ClearFunc func(ctx context.Context, ownerKey string) error
}

// Load delegates to the configured function or returns an empty cart.
func (m *MockStore) Load(ctx context.Context, ownerKey string) ([]domain.LineItem, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, ownerKey)
	}
	return nil, nil
}

// Save delegates to the configured function or succeeds.
func (m *MockStore) Save(ctx context.Context, ownerKey string, items []domain.LineItem) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ownerKey, items)
	}
	return nil
}

// Clear delegates to the configured function or succeeds.
func (m *MockStore) Clear(ctx context.Context, ownerKey string) error {
	if m.ClearFunc != nil {
		return m.ClearFunc(ctx, ownerKey)
	}
	return nil
}
