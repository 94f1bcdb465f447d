package catalog

import (
	"context"
)

// StaticSource serves stock facts from a fixed in-memory catalog.
// Used for development and tests when the real catalog backend is not needed.
type StaticSource struct {
	facts map[string]StockFact
}

// NewStaticSource creates a static stock source from a list of facts.
func NewStaticSource(facts []StockFact) *StaticSource {
	m := make(map[string]StockFact, len(facts))
	for _, f := range facts {
		m[f.ProductCode] = f
	}
	return &StaticSource{facts: m}
}

// Lookup returns the configured fact for a product code.
func (s *StaticSource) Lookup(ctx context.Context, productCode string) (*StockFact, error) {
	f, ok := s.facts[productCode]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &f, nil
}
