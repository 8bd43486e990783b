package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/service"
)

// CartHandler handles cart mutation requests
type CartHandler struct {
	cartService service.CartService
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// AddToCart handles POST /api/cart/addToCart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.cartService.AddToCart, "Failed to add item to cart")
}

// RemoveFromCart handles POST /api/cart/removeFromCart
func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.modify(w, r, h.cartService.RemoveFromCart, "Failed to remove item from cart")
}

func (h *CartHandler) modify(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, service.CartModification) (*domain.Cart, error),
	failureMessage string,
) {
	var req ModifyCartRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		respondDecodeError(w, r, err)
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		HandleValidationError(w, r, err)
		return
	}
	logActingUser(r, req.Username)

	cart, err := apply(r.Context(), service.CartModification{
		Username: req.Username,
		ItemID:   req.ItemID,
		Quantity: req.Quantity,
	})
	if err != nil {
		HandleAPIError(w, r, err, failureMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cartToResponse(cart))
}
