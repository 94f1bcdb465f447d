package cartstore

import (
	"context"
	"slices"
	"sync"

	"github.com/dulcet/patisserie/internal/domain"
)

// MemoryStore keeps carts in process memory. Used for development and
// tests; contents are lost on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.LineItem
}

// NewMemoryStore creates an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]domain.LineItem),
	}
}

// Load returns a copy of the stored items for an owner.
func (s *MemoryStore) Load(ctx context.Context, ownerKey string) ([]domain.LineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.carts[storageKey(ownerKey)]
	if !ok {
		return nil, nil
	}
	return slices.Clone(items), nil
}

// Save replaces the stored items for an owner.
func (s *MemoryStore) Save(ctx context.Context, ownerKey string, items []domain.LineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[storageKey(ownerKey)] = slices.Clone(items)
	return nil
}

// Clear removes the stored record for an owner.
func (s *MemoryStore) Clear(ctx context.Context, ownerKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, storageKey(ownerKey))
	return nil
}
