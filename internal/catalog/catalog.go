package catalog

import (
	"context"
)

// Source defines the interface for product stock lookups.
// Implementations: StaticSource, RESTSource, SnapshotSource, MockSource.
type Source interface {
	// Lookup returns the stock fact for a product code.
	// Returns ErrProductNotFound if the code is unknown to the catalog.
	Lookup(ctx context.Context, productCode string) (*StockFact, error)
}

// StockFact is the authoritative (possibly cached) stock state for one
// product. An inactive product sells as if it had zero stock regardless of
// its numeric stock value.
type StockFact struct {
	ProductCode    string `json:"product_code"`
	AvailableStock int    `json:"available_stock"`
	IsActive       bool   `json:"is_active"`
}

// SellableStock returns the stock actually available for sale.
func (f *StockFact) SellableStock() int {
	if f == nil || !f.IsActive || f.AvailableStock < 0 {
		return 0
	}
	return f.AvailableStock
}
