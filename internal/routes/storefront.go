package routes

import (
	"github.com/dulcet/patisserie/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing storefront routes.
// The cart API is JSON over HTTP; the caller's identity travels in the
// X-Owner-Key header rather than a session cookie.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/items", deps.CartHandler.Add)
	r.Patch("/cart/items", deps.CartHandler.Update)
	r.Delete("/cart/items", deps.CartHandler.Remove)
	r.Delete("/cart", deps.CartHandler.Clear)
}
