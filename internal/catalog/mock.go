package catalog

import (
	"context"
)

// MockSource is a test implementation of Source.
type MockSource struct {
	LookupFunc func(ctx context.Context, productCode string) (*StockFact, error)
}

// Lookup delegates to the configured function or reports not found.
func (m *MockSource) Lookup(ctx context.Context, productCode string) (*StockFact, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, productCode)
	}
	return nil, ErrProductNotFound
}
