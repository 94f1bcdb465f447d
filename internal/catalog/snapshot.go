package catalog

import (
	"context"
	"sync"
	"time"
)

// SnapshotSource wraps another Source with a TTL cache so the cart engines
// work from the most recently fetched snapshot rather than a live per-call
// read. A refresh failure keeps serving the stale entry; a product that was
// never fetched successfully reads as not found, which the cart engine
// treats as out of stock (fail safe).
type SnapshotSource struct {
	upstream Source
	ttl      time.Duration
	now      func() time.Time

	mu      sync.RWMutex
	entries map[string]snapshotEntry
}

type snapshotEntry struct {
	fact      StockFact
	fetchedAt time.Time
}

// NewSnapshotSource creates a caching wrapper around upstream.
// A zero ttl defaults to 30 seconds.
func NewSnapshotSource(upstream Source, ttl time.Duration) *SnapshotSource {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SnapshotSource{
		upstream: upstream,
		ttl:      ttl,
		now:      time.Now,
		entries:  make(map[string]snapshotEntry),
	}
}

// Lookup returns the cached fact when fresh, refreshing from upstream when
// the entry is missing or expired.
func (s *SnapshotSource) Lookup(ctx context.Context, productCode string) (*StockFact, error) {
	s.mu.RLock()
	entry, ok := s.entries[productCode]
	s.mu.RUnlock()

	if ok && s.now().Sub(entry.fetchedAt) < s.ttl {
		fact := entry.fact
		return &fact, nil
	}

	fact, err := s.upstream.Lookup(ctx, productCode)
	if err != nil {
		// Serve the stale entry if we ever had one.
		if ok {
			stale := entry.fact
			return &stale, nil
		}
		return nil, err
	}

	s.mu.Lock()
	s.entries[productCode] = snapshotEntry{fact: *fact, fetchedAt: s.now()}
	s.mu.Unlock()

	return fact, nil
}

// Invalidate drops the cached entry for a product code.
func (s *SnapshotSource) Invalidate(productCode string) {
	s.mu.Lock()
	delete(s.entries, productCode)
	s.mu.Unlock()
}
