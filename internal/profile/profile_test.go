package profile_test

import (
	"testing"
	"time"

	"github.com/dulcet/patisserie/internal/profile"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_DiscountProfile_AgeAt(t *testing.T) {
	tests := []struct {
		name     string
		birth    time.Time
		today    time.Time
		expected int
		reason   string
	}{
		{
			name:     "exact 50th anniversary",
			birth:    date(1975, time.June, 15),
			today:    date(2025, time.June, 15),
			expected: 50,
			reason:   "turning the threshold age today counts",
		},
		{
			name:     "one day before 50th anniversary",
			birth:    date(1975, time.June, 15),
			today:    date(2025, time.June, 14),
			expected: 49,
			reason:   "whole years elapsed, not calendar-year subtraction",
		},
		{
			name:     "birthday month not reached yet",
			birth:    date(1990, time.December, 1),
			today:    date(2025, time.March, 10),
			expected: 34,
			reason:   "December birthday has not happened in March",
		},
		{
			name:     "birthday earlier in the year",
			birth:    date(1990, time.January, 2),
			today:    date(2025, time.March, 10),
			expected: 35,
			reason:   "January birthday already passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &profile.DiscountProfile{BirthDate: &tt.birth}
			assert.Equal(t, tt.expected, p.AgeAt(tt.today), tt.reason)
		})
	}
}

func Test_DiscountProfile_AgeAt_NoBirthDate(t *testing.T) {
	p := &profile.DiscountProfile{}
	assert.Equal(t, 0, p.AgeAt(date(2025, time.June, 15)))

	var nilProfile *profile.DiscountProfile
	assert.Equal(t, 0, nilProfile.AgeAt(date(2025, time.June, 15)))
}

func Test_DiscountProfile_BirthdayIs(t *testing.T) {
	birth := date(1980, time.February, 29)
	p := &profile.DiscountProfile{BirthDate: &birth}

	assert.True(t, p.BirthdayIs(date(2024, time.February, 29)))
	assert.False(t, p.BirthdayIs(date(2025, time.March, 1)))
	assert.False(t, (&profile.DiscountProfile{}).BirthdayIs(date(2025, time.March, 1)))
}
