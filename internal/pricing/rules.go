package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Rules configures the discount rule set.
type Rules struct {
	// SeniorAge is the whole-years age threshold for the senior discount.
	SeniorAge int

	// SeniorRate is the senior discount applied to the subtotal, e.g. 0.50.
	SeniorRate float64

	// PromoCodes are the recognized promo codes (matched case-insensitively).
	PromoCodes []string

	// PromoRate is the promo discount applied to the subtotal, e.g. 0.10.
	PromoRate float64

	// CakePrefixes are the product code prefixes that count as cakes for
	// the birthday rule (matched case-insensitively).
	CakePrefixes []string

	// InstitutionalDomains are the email domains eligible for the birthday
	// rule (matched case-insensitively).
	InstitutionalDomains []string
}

// DefaultRules returns the standard pastry-shop rule set.
func DefaultRules() Rules {
	return Rules{
		SeniorAge:            50,
		SeniorRate:           0.50,
		PromoCodes:           []string{"GATEAU10"},
		PromoRate:            0.10,
		CakePrefixes:         []string{"CAKE", "GTO"},
		InstitutionalDomains: []string{"student.edu", "faculty.edu"},
	}
}

// RuleCalculator evaluates the configured rule set.
type RuleCalculator struct {
	rules Rules
}

// Compile-time check that RuleCalculator implements Calculator.
var _ Calculator = (*RuleCalculator)(nil)

// NewRuleCalculator creates a calculator for the given rule set.
func NewRuleCalculator(rules Rules) *RuleCalculator {
	return &RuleCalculator{rules: rules}
}

// Compute evaluates the rules in fixed order: senior age, promo code,
// birthday cake. Applicable discounts are summed; they do not cap each
// other. The reported discount stays unclamped, only the payable total is
// floored at zero.
func (c *RuleCalculator) Compute(ctx context.Context, params Params) (*Result, error) {
	today := params.Today
	if today.IsZero() {
		today = time.Now()
	}

	result := &Result{PayableCents: params.SubtotalCents}

	if params.Profile == nil {
		return result, nil
	}

	if amount, ok := c.seniorDiscount(params, today); ok {
		result.DiscountCents += amount
		result.Descriptions = append(result.Descriptions,
			fmt.Sprintf("Senior discount (%d%% off)", int(c.rules.SeniorRate*100)))
	}

	if amount, code, ok := c.promoDiscount(params); ok {
		result.DiscountCents += amount
		result.Descriptions = append(result.Descriptions,
			fmt.Sprintf("Promo code %s (%d%% off)", code, int(c.rules.PromoRate*100)))
	}

	if amount, ok := c.birthdayCakeDiscount(params, today); ok {
		result.DiscountCents += amount
		result.Descriptions = append(result.Descriptions, "Birthday treat: cakes on the house")
	}

	result.PayableCents = params.SubtotalCents - result.DiscountCents
	if result.PayableCents < 0 {
		result.PayableCents = 0
	}

	return result, nil
}

// seniorDiscount applies when the profile's whole-years age reaches the
// configured threshold as of today.
func (c *RuleCalculator) seniorDiscount(params Params, today time.Time) (int64, bool) {
	if c.rules.SeniorAge <= 0 || params.Profile.BirthDate == nil {
		return 0, false
	}
	if params.Profile.AgeAt(today) < c.rules.SeniorAge {
		return 0, false
	}
	return percentageOf(params.SubtotalCents, c.rules.SeniorRate), true
}

// promoDiscount applies when the profile carries a recognized promo code.
// Returns the canonical (configured) spelling of the matched code.
func (c *RuleCalculator) promoDiscount(params Params) (int64, string, bool) {
	code := strings.TrimSpace(params.Profile.PromoCode)
	if code == "" {
		return 0, "", false
	}

	for _, known := range c.rules.PromoCodes {
		if strings.EqualFold(code, known) {
			return percentageOf(params.SubtotalCents, c.rules.PromoRate), known, true
		}
	}
	return 0, "", false
}

// birthdayCakeDiscount makes all cake line items free when today is the
// profile's birthday and the email domain is in the institutional set.
func (c *RuleCalculator) birthdayCakeDiscount(params Params, today time.Time) (int64, bool) {
	if !params.Profile.BirthdayIs(today) {
		return 0, false
	}
	if !c.institutionalDomain(params.Profile.EmailDomain) {
		return 0, false
	}

	var cakeCents int64
	for _, item := range params.Items {
		if c.isCake(item.ProductCode) {
			cakeCents += item.LineSubtotalCents()
		}
	}
	if cakeCents == 0 {
		return 0, false
	}
	return cakeCents, true
}

func (c *RuleCalculator) institutionalDomain(emailDomain string) bool {
	for _, known := range c.rules.InstitutionalDomains {
		if strings.EqualFold(emailDomain, known) {
			return true
		}
	}
	return false
}

func (c *RuleCalculator) isCake(productCode string) bool {
	upper := strings.ToUpper(productCode)
	for _, prefix := range c.rules.CakePrefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return true
		}
	}
	return false
}

// percentageOf computes rate*amount in cents, rounded half away from zero.
func percentageOf(amountCents int64, rate float64) int64 {
	return decimal.NewFromInt(amountCents).
		Mul(decimal.NewFromFloat(rate)).
		Round(0).
		IntPart()
}
