package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body of a successful login. The token itself is
// returned in the Authorization response header.
type LoginResponse struct {
	Username string `json:"username"`
}

// CreateUserRequest defines the payload for the registration endpoint.
// Password rules are applied by the domain, so they report specific errors.
type CreateUserRequest struct {
	Username        string `json:"username"        validate:"required,max=255"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// ModifyCartRequest defines the payload for adding items to or removing
// items from a cart.
type ModifyCartRequest struct {
	Username string    `json:"username" validate:"required"`
	ItemID   uuid.UUID `json:"itemId"   validate:"required"`
	Quantity int       `json:"quantity" validate:"required,gte=1"`
}

// ItemResponse represents a catalog item.
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UserResponse represents a user. The password hash is never included.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	CartID    uuid.UUID `json:"cart_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CartResponse represents a cart and its computed total.
type CartResponse struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"user_id"`
	Items  []ItemResponse  `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// OrderResponse represents a submitted order.
type OrderResponse struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Items     []ItemResponse  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

func itemToResponse(item domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
	}
}

func itemsToResponse(items []domain.Item) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, itemToResponse(item))
	}
	return resp
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		CartID:    user.CartID,
		CreatedAt: user.CreatedAt,
	}
}

func cartToResponse(cart *domain.Cart) CartResponse {
	return CartResponse{
		ID:     cart.ID,
		UserID: cart.UserID,
		Items:  itemsToResponse(cart.Items),
		Total:  cart.Total,
	}
}

func orderToResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     itemsToResponse(order.Items),
		Total:     order.Total,
		CreatedAt: order.CreatedAt,
	}
}
