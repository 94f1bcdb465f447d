package profile

import (
	"context"
)

// MockSource is a test implementation of Source.
type MockSource struct {
	CurrentFunc func(ctx context.Context, ownerKey string) (*DiscountProfile, error)
}

// Current delegates to the configured function or reports no profile.
func (m *MockSource) Current(ctx context.Context, ownerKey string) (*DiscountProfile, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx, ownerKey)
	}
	return nil, nil
}
