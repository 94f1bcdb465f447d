package routes

import (
	"github.com/dulcet/patisserie/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Cart (view, add, update, remove, clear)
	CartHandler *storefront.CartHandler
}
