package domain

import (
	"context"
	"strings"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
)

// CartService provides business logic for shopping cart operations.
// Every operation is scoped to an owner key; the empty string denotes the
// anonymous visitor scope. Carts belonging to different owners are never
// merged.
type CartService interface {
	// Summary retrieves the current line items and computed totals.
	Summary(ctx context.Context, ownerKey string) (*CartSummary, error)

	// AddItem adds a candidate line item, merging it into an existing item
	// with the same variant key and clamping quantity against available stock.
	AddItem(ctx context.Context, ownerKey string, candidate LineItem) (*CartSummary, error)

	// UpdateQuantity sets the quantity of the line item matching the given
	// product code and message. The quantity is normalized: floored at 1 and
	// clamped to the stock left over by other message variants.
	UpdateQuantity(ctx context.Context, ownerKey string, productCode, message string, quantity int) (*CartSummary, error)

	// RemoveItem removes the line item matching the given product code and
	// message. Removing an absent item is not an error.
	RemoveItem(ctx context.Context, ownerKey string, productCode, message string) (*CartSummary, error)

	// Clear empties the cart and deletes its persisted record.
	Clear(ctx context.Context, ownerKey string) error
}

// LineItem represents one row in a cart: a product variant identified by
// product code plus optional customization message.
type LineItem struct {
	ProductCode    string `json:"product_code"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	ImageURL       string `json:"image_url,omitempty"`
	Quantity       int    `json:"quantity"`

	// Message is free-text customization ("Happy Birthday Nora!"). Stored
	// with original casing for display; equality uses NormalizeMessage.
	Message string `json:"message,omitempty"`

	// RemoteID is set when the cart is backed by a remote persisted cart
	// (authenticated session); empty for local-only carts.
	RemoteID string `json:"remote_id,omitempty"`
}

// LineSubtotalCents returns unit price times quantity for this item.
func (li LineItem) LineSubtotalCents() int64 {
	return li.UnitPriceCents * int64(li.Quantity)
}

// VariantKey returns the identity of this line item within a cart.
func (li LineItem) VariantKey() VariantKey {
	return VariantKey{ProductCode: li.ProductCode, Message: NormalizeMessage(li.Message)}
}

// VariantKey identifies a line item: two items are the same cart entry iff
// product code and normalized message both match. An empty message is its
// own equivalence class.
type VariantKey struct {
	ProductCode string
	Message     string
}

// NormalizeMessage canonicalizes a customization message for equality
// checks: whitespace trimmed, case folded. All call sites that compare
// messages must go through this function.
func NormalizeMessage(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MakeVariantKey builds a VariantKey from raw caller input.
func MakeVariantKey(productCode, message string) VariantKey {
	return VariantKey{ProductCode: productCode, Message: NormalizeMessage(message)}
}

// CartSummary aggregates the cart's line items with computed totals.
type CartSummary struct {
	OwnerKey string     `json:"owner_key,omitempty"`
	Items    []LineItem `json:"items"`
	Totals   Totals     `json:"totals"`
}

// Totals is the derived view of a cart: never persisted, always recomputed
// from the current line items and discount profile.
type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	TotalQuantity int   `json:"total_quantity"`

	// DiscountCents is the sum of all applied discounts. It is reported
	// unclamped: stacked discounts may exceed the subtotal even though
	// PayableCents never goes below zero.
	DiscountCents        int64    `json:"discount_cents"`
	DiscountDescriptions []string `json:"discount_descriptions,omitempty"`
	PayableCents         int64    `json:"payable_cents"`
}
