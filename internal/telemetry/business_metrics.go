package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability
// of the cart and discount engines.
type BusinessMetrics struct {
	// Cart mutations
	CartItemsAdded    *prometheus.CounterVec
	CartAddsDropped   *prometheus.CounterVec
	CartAddsClamped   *prometheus.CounterVec
	CartUpdates       *prometheus.CounterVec
	CartRemovals      *prometheus.CounterVec
	CartCleared       prometheus.Counter
	CartValue         prometheus.Histogram
	CartPersistFailed prometheus.Counter

	// Discounts
	DiscountsApplied *prometheus.CounterVec
	DiscountCents    prometheus.Counter
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "patisserie"
	}

	subsystem := "business"

	return &BusinessMetrics{
		CartItemsAdded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_items_added_total",
				Help:      "Total quantity of items added to carts",
			},
			[]string{"product_code"},
		),
		CartAddsDropped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_adds_dropped_total",
				Help:      "Add operations dropped because the product was inactive or out of stock",
			},
			[]string{"product_code"},
		),
		CartAddsClamped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_adds_clamped_total",
				Help:      "Add operations whose quantity was clamped to remaining stock",
			},
			[]string{"product_code"},
		),
		CartUpdates: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_updates_total",
				Help:      "Quantity update operations applied to cart items",
			},
			[]string{"product_code"},
		),
		CartRemovals: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_removals_total",
				Help:      "Line items removed from carts",
			},
			[]string{"product_code"},
		),
		CartCleared: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_cleared_total",
				Help:      "Carts emptied via clear",
			},
		),
		CartValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_value_cents",
				Help:      "Cart subtotal in cents after each mutation",
				Buckets:   []float64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
			},
		),
		CartPersistFailed: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "cart_persist_failed_total",
				Help:      "Cart persistence writes that failed",
			},
		),
		DiscountsApplied: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "discounts_applied_total",
				Help:      "Discount rules applied during totals computation",
			},
			[]string{"rule"},
		),
		DiscountCents: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "discount_cents_total",
				Help:      "Total discount cents granted across all computations",
			},
		),
	}
}
