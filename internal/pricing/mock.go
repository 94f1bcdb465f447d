package pricing

import (
	"context"
)

// MockCalculator is a test implementation of Calculator.
type MockCalculator struct {
	ComputeFunc func(ctx context.Context, params Params) (*Result, error)
}

// Compute delegates to the configured function or returns a zero discount.
func (m *MockCalculator) Compute(ctx context.Context, params Params) (*Result, error) {
	if m.ComputeFunc != nil {
		return m.ComputeFunc(ctx, params)
	}
	return &Result{PayableCents: params.SubtotalCents}, nil
}
