package storefront

import (
	"encoding/json"
	"net/http"

	"github.com/dulcet/patisserie/internal/domain"
	"github.com/dulcet/patisserie/internal/handler"
	"github.com/go-playground/validator/v10"
)

// OwnerKeyHeader carries the storefront's owner identity. An absent or
// empty header addresses the shared anonymous cart.
const OwnerKeyHeader = "X-Owner-Key"

// CartHandler handles all cart-related storefront routes
type CartHandler struct {
	cartService domain.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService domain.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

type addItemRequest struct {
	ProductCode    string `json:"product_code" validate:"required"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents" validate:"gte=0"`
	ImageURL       string `json:"image_url"`
	Quantity       int    `json:"quantity"`
	Message        string `json:"message"`
}

// updateItemRequest carries no quantity validation beyond decoding: zero
// and negative values go to the engine, which floors them to 1.
type updateItemRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	Message     string `json:"message"`
	Quantity    int    `json:"quantity"`
}

type removeItemRequest struct {
	ProductCode string `json:"product_code" validate:"required"`
	Message     string `json:"message"`
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cartService.Summary(r.Context(), ownerKey(r))
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSONResponse(w, http.StatusOK, summary)
}

// Add handles POST /cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.BadRequestResponse(w, r, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		handler.BadRequestResponse(w, r, "product_code is required")
		return
	}

	summary, err := h.cartService.AddItem(r.Context(), ownerKey(r), domain.LineItem{
		ProductCode:    req.ProductCode,
		Name:           req.Name,
		UnitPriceCents: req.UnitPriceCents,
		ImageURL:       req.ImageURL,
		Quantity:       req.Quantity,
		Message:        req.Message,
	})
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSONResponse(w, http.StatusOK, summary)
}

// Update handles PATCH /cart/items
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.BadRequestResponse(w, r, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		handler.BadRequestResponse(w, r, "product_code is required")
		return
	}

	summary, err := h.cartService.UpdateQuantity(r.Context(), ownerKey(r), req.ProductCode, req.Message, req.Quantity)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSONResponse(w, http.StatusOK, summary)
}

// Remove handles DELETE /cart/items
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	var req removeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handler.BadRequestResponse(w, r, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		handler.BadRequestResponse(w, r, "product_code is required")
		return
	}

	summary, err := h.cartService.RemoveItem(r.Context(), ownerKey(r), req.ProductCode, req.Message)
	if err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	handler.JSONResponse(w, http.StatusOK, summary)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartService.Clear(r.Context(), ownerKey(r)); err != nil {
		handler.ErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func ownerKey(r *http.Request) string {
	return r.Header.Get(OwnerKeyHeader)
}
