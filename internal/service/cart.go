package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/dulcet/patisserie/internal/cartstore"
	"github.com/dulcet/patisserie/internal/catalog"
	"github.com/dulcet/patisserie/internal/domain"
	"github.com/dulcet/patisserie/internal/pricing"
	"github.com/dulcet/patisserie/internal/profile"
	"github.com/dulcet/patisserie/internal/telemetry"
	"github.com/google/uuid"
)

// cartService implements domain.CartService: it reconciles cart mutations
// against available stock, merges message variants, and keeps the persisted
// representation consistent with in-memory state after every mutation.
//
// Stock problems are not errors here. An add against an inactive or
// exhausted product is a silent no-op and an oversized quantity is clamped:
// stock races are common, low-severity, and self-correct on the next stock
// snapshot refresh. Persistence failures DO propagate; the in-memory cart
// stays valid for the session either way.
type cartService struct {
	store    cartstore.Store
	stock    catalog.Source
	profiles profile.Source
	pricer   pricing.Calculator
	metrics  *telemetry.BusinessMetrics

	mu sync.Mutex
	// carts is the per-owner in-memory working copy, loaded lazily from the
	// store. Owner scopes never merge; switching identity simply addresses
	// a different key.
	carts map[string][]domain.LineItem

	now func() time.Time
}

// Compile-time check that cartService implements domain.CartService.
var _ domain.CartService = (*cartService)(nil)

// NewCartService creates a new cart service. The metrics argument may be
// nil to disable business metrics.
func NewCartService(store cartstore.Store, stock catalog.Source, profiles profile.Source, pricer pricing.Calculator, metrics *telemetry.BusinessMetrics) (domain.CartService, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if stock == nil {
		return nil, ErrStockSourceRequired
	}
	if pricer == nil {
		return nil, ErrCalculatorRequired
	}

	return &cartService{
		store:    store,
		stock:    stock,
		profiles: profiles,
		pricer:   pricer,
		metrics:  metrics,
		carts:    make(map[string][]domain.LineItem),
		now:      time.Now,
	}, nil
}

// Summary retrieves the current line items and computed totals.
func (s *cartService) Summary(ctx context.Context, ownerKey string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, ownerKey, items)
}

// AddItem adds a candidate line item, merging it into an existing variant
// and clamping quantity against available stock.
func (s *cartService) AddItem(ctx context.Context, ownerKey string, candidate domain.LineItem) (*domain.CartSummary, error) {
	if candidate.ProductCode == "" {
		return nil, domain.Invalid("cart.add_item", "product code is required")
	}
	if candidate.Quantity < 1 {
		candidate.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	sellable := s.sellableStock(ctx, candidate.ProductCode)
	if sellable == 0 {
		// Inactive, exhausted, unknown, or unreachable product: drop the add.
		if s.metrics != nil {
			s.metrics.CartAddsDropped.WithLabelValues(candidate.ProductCode).Inc()
		}
		return s.summarize(ctx, ownerKey, items)
	}

	committed := 0
	for _, item := range items {
		if item.ProductCode == candidate.ProductCode {
			committed += item.Quantity
		}
	}

	allowed := sellable - committed
	if allowed <= 0 {
		if s.metrics != nil {
			s.metrics.CartAddsDropped.WithLabelValues(candidate.ProductCode).Inc()
		}
		return s.summarize(ctx, ownerKey, items)
	}

	quantity := candidate.Quantity
	if quantity > allowed {
		quantity = allowed
		if s.metrics != nil {
			s.metrics.CartAddsClamped.WithLabelValues(candidate.ProductCode).Inc()
		}
	}

	key := candidate.VariantKey()
	merged := false
	for i := range items {
		if items[i].VariantKey() == key {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		candidate.Quantity = quantity
		if ownerKey != "" && candidate.RemoteID == "" {
			candidate.RemoteID = uuid.New().String()
		}
		items = append(items, candidate)
	}

	if err := s.persist(ctx, ownerKey, items); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CartItemsAdded.WithLabelValues(candidate.ProductCode).Add(float64(quantity))
	}

	return s.summarize(ctx, ownerKey, items)
}

// UpdateQuantity sets the quantity of the matching line item. The new
// quantity is floored at 1 and clamped to the stock left over by other
// message variants of the same product; non-matching items are untouched.
func (s *cartService) UpdateQuantity(ctx context.Context, ownerKey string, productCode, message string, quantity int) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	key := domain.MakeVariantKey(productCode, message)
	index := slices.IndexFunc(items, func(li domain.LineItem) bool {
		return li.VariantKey() == key
	})
	if index < 0 {
		return s.summarize(ctx, ownerKey, items)
	}

	sellable := s.sellableStock(ctx, productCode)
	if sellable == 0 {
		return s.summarize(ctx, ownerKey, items)
	}

	reservedByOthers := 0
	for i, item := range items {
		if i != index && item.ProductCode == productCode {
			reservedByOthers += item.Quantity
		}
	}

	ceiling := sellable - reservedByOthers
	if ceiling <= 0 {
		// Other variants already hold all available stock; leave the item as is.
		return s.summarize(ctx, ownerKey, items)
	}

	if quantity < 1 {
		quantity = 1
	}
	if quantity > ceiling {
		quantity = ceiling
	}
	items[index].Quantity = quantity

	if err := s.persist(ctx, ownerKey, items); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.CartUpdates.WithLabelValues(productCode).Inc()
	}

	return s.summarize(ctx, ownerKey, items)
}

// RemoveItem removes the matching line item. Removing an absent item is
// not an error.
func (s *cartService) RemoveItem(ctx context.Context, ownerKey string, productCode, message string) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load(ctx, ownerKey)
	if err != nil {
		return nil, err
	}

	key := domain.MakeVariantKey(productCode, message)
	filtered := slices.DeleteFunc(slices.Clone(items), func(li domain.LineItem) bool {
		return li.VariantKey() == key
	})

	if err := s.persist(ctx, ownerKey, filtered); err != nil {
		return nil, err
	}

	if s.metrics != nil && len(filtered) < len(items) {
		s.metrics.CartRemovals.WithLabelValues(productCode).Inc()
	}

	return s.summarize(ctx, ownerKey, filtered)
}

// Clear empties the cart and deletes its persisted record.
func (s *cartService) Clear(ctx context.Context, ownerKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Clear(ctx, ownerKey); err != nil {
		if s.metrics != nil {
			s.metrics.CartPersistFailed.Inc()
		}
		return domain.Internal(err, "cart.clear", "failed to clear persisted cart")
	}

	s.carts[ownerKey] = nil
	if s.metrics != nil {
		s.metrics.CartCleared.Inc()
	}
	return nil
}

// load returns the working copy for an owner, reading through to the store
// on first access. Callers must hold s.mu.
func (s *cartService) load(ctx context.Context, ownerKey string) ([]domain.LineItem, error) {
	if items, ok := s.carts[ownerKey]; ok {
		return items, nil
	}

	items, err := s.store.Load(ctx, ownerKey)
	if err != nil {
		return nil, domain.Internal(err, "cart.load", "failed to load persisted cart")
	}

	s.carts[ownerKey] = items
	return items, nil
}

// persist writes the full item list for an owner and updates the working
// copy. On a write failure the in-memory state is still updated: the cart
// stays valid for the session and the error propagates to the caller.
// Callers must hold s.mu.
func (s *cartService) persist(ctx context.Context, ownerKey string, items []domain.LineItem) error {
	s.carts[ownerKey] = items

	if err := s.store.Save(ctx, ownerKey, items); err != nil {
		if s.metrics != nil {
			s.metrics.CartPersistFailed.Inc()
		}
		return domain.Internal(err, "cart.save", "failed to persist cart")
	}
	return nil
}

// sellableStock resolves the sellable stock for a product from the current
// snapshot. Unknown products and source failures read as zero stock: a
// failed fetch must never permit unbounded adds.
func (s *cartService) sellableStock(ctx context.Context, productCode string) int {
	fact, err := s.stock.Lookup(ctx, productCode)
	if err != nil {
		return 0
	}
	return fact.SellableStock()
}

// summarize builds the totals view for the given items. Callers must hold
// s.mu.
func (s *cartService) summarize(ctx context.Context, ownerKey string, items []domain.LineItem) (*domain.CartSummary, error) {
	var subtotal int64
	totalQuantity := 0
	for _, item := range items {
		subtotal += item.LineSubtotalCents()
		totalQuantity += item.Quantity
	}

	// A profile fetch failure degrades to "no discounts apply"; totals are
	// still served.
	var prof *profile.DiscountProfile
	if s.profiles != nil {
		if p, err := s.profiles.Current(ctx, ownerKey); err == nil {
			prof = p
		}
	}

	result, err := s.pricer.Compute(ctx, pricing.Params{
		Profile:       prof,
		Items:         items,
		SubtotalCents: subtotal,
		Today:         s.now(),
	})
	if err != nil {
		return nil, domain.Internal(err, "cart.totals", "failed to compute discounts")
	}

	if s.metrics != nil {
		s.metrics.CartValue.Observe(float64(subtotal))
		if result.DiscountCents > 0 {
			s.metrics.DiscountCents.Add(float64(result.DiscountCents))
			for _, desc := range result.Descriptions {
				s.metrics.DiscountsApplied.WithLabelValues(desc).Inc()
			}
		}
	}

	return &domain.CartSummary{
		OwnerKey: ownerKey,
		Items:    slices.Clone(items),
		Totals: domain.Totals{
			SubtotalCents:        subtotal,
			TotalQuantity:        totalQuantity,
			DiscountCents:        result.DiscountCents,
			DiscountDescriptions: result.Descriptions,
			PayableCents:         result.PayableCents,
		},
	}, nil
}
