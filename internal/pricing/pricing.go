package pricing

import (
	"context"
	"time"

	"github.com/dulcet/patisserie/internal/domain"
	"github.com/dulcet/patisserie/internal/profile"
)

// Calculator defines the interface for discount calculation.
// Implementations: RuleCalculator, MockCalculator.
type Calculator interface {
	// Compute evaluates every discount rule against the profile and line
	// items and returns the combined result. It is a pure function of its
	// inputs (including Today) and never fails on a missing or malformed
	// profile: those degrade to "rule does not apply".
	Compute(ctx context.Context, params Params) (*Result, error)
}

// Params contains all information needed for discount calculation.
type Params struct {
	// Profile is the discount-eligibility profile; nil when no user is
	// authenticated.
	Profile *profile.DiscountProfile

	Items         []domain.LineItem
	SubtotalCents int64

	// Today anchors the age and birthday rules. A zero value means the
	// current date.
	Today time.Time
}

// Result contains the combined discount amount and breakdown.
type Result struct {
	// DiscountCents is the sum of all applied rules, reported unclamped:
	// stacked rules may exceed the subtotal. Only PayableCents is floored
	// at zero.
	DiscountCents int64

	PayableCents int64

	// Descriptions lists the applied rules in fixed rule order, not by
	// discount magnitude.
	Descriptions []string
}
