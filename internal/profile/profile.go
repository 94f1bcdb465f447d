package profile

import (
	"context"
	"time"
)

// Source defines the interface for discount-eligibility profile lookups.
// Implementations: StaticSource, RESTSource, MockSource.
type Source interface {
	// Current returns the discount profile for an owner key.
	// The anonymous scope (empty owner key) yields (nil, nil): no profile,
	// no error.
	Current(ctx context.Context, ownerKey string) (*DiscountProfile, error)
}

// DiscountProfile is the subset of a user's attributes relevant to
// discount eligibility. Absent entirely when no user is authenticated.
type DiscountProfile struct {
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	EmailDomain string     `json:"email_domain"`
	PromoCode   string     `json:"promo_code,omitempty"`
}

// AgeAt computes whole years elapsed from the birth date to the given day:
// calendar-year subtraction, decremented by one when the month/day has not
// been reached yet. Returns 0 when no birth date is set.
func (p *DiscountProfile) AgeAt(today time.Time) int {
	if p == nil || p.BirthDate == nil {
		return 0
	}

	birth := *p.BirthDate
	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// BirthdayIs reports whether the given day matches the profile's birth
// month and day.
func (p *DiscountProfile) BirthdayIs(today time.Time) bool {
	if p == nil || p.BirthDate == nil {
		return false
	}
	return p.BirthDate.Month() == today.Month() && p.BirthDate.Day() == today.Day()
}
