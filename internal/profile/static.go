package profile

import (
	"context"
)

// StaticSource serves profiles from a fixed in-memory map keyed by owner.
// Used for development and tests.
type StaticSource struct {
	profiles map[string]DiscountProfile
}

// NewStaticSource creates a static profile source.
func NewStaticSource(profiles map[string]DiscountProfile) *StaticSource {
	if profiles == nil {
		profiles = make(map[string]DiscountProfile)
	}
	return &StaticSource{profiles: profiles}
}

// Current returns the configured profile for an owner, nil for the
// anonymous scope or unknown owners.
func (s *StaticSource) Current(ctx context.Context, ownerKey string) (*DiscountProfile, error) {
	if ownerKey == "" {
		return nil, nil
	}
	p, ok := s.profiles[ownerKey]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
