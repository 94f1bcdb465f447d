package domain

import "testing"

func TestNormalizeMessage(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{name: "empty", in: "", expected: ""},
		{name: "whitespace only", in: "   \t", expected: ""},
		{name: "trims and folds case", in: "  Happy Birthday!  ", expected: "happy birthday!"},
		{name: "already normalized", in: "congrats", expected: "congrats"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMessage(tt.in); got != tt.expected {
				t.Errorf("NormalizeMessage(%q) = %q, want %q", tt.in, got, tt.expected)
			}
		})
	}
}

func TestVariantKey_Equivalence(t *testing.T) {
	a := LineItem{ProductCode: "GTO-CHOC", Message: "Happy Birthday"}
	b := LineItem{ProductCode: "GTO-CHOC", Message: "  happy birthday "}
	c := LineItem{ProductCode: "GTO-CHOC", Message: ""}
	d := LineItem{ProductCode: "GTO-VANILLA", Message: "Happy Birthday"}

	if a.VariantKey() != b.VariantKey() {
		t.Error("same product with case/whitespace message variants should share a key")
	}
	if a.VariantKey() == c.VariantKey() {
		t.Error("empty message is its own equivalence class")
	}
	if a.VariantKey() == d.VariantKey() {
		t.Error("different product codes must not share a key")
	}
}

func TestLineItem_LineSubtotalCents(t *testing.T) {
	li := LineItem{UnitPriceCents: 450, Quantity: 3}
	if got := li.LineSubtotalCents(); got != 1350 {
		t.Errorf("LineSubtotalCents() = %d, want 1350", got)
	}
}
