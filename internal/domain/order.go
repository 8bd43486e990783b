package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order validation errors.
var (
	ErrEmptyOrderID     = fmt.Errorf("%w: order ID cannot be empty", ErrValidation)
	ErrEmptyOrderUserID = fmt.Errorf("%w: order user ID cannot be empty", ErrValidation)
)

// Order is an immutable snapshot of a cart at submission time. Its items and
// total do not follow later changes to the cart or the catalog.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewOrderFromCart creates an order from the cart's current items and total.
// The item slice is copied, so the cart can keep changing afterwards; the
// cart itself is not modified.
func NewOrderFromCart(cart *Cart) *Order {
	items := make([]Item, len(cart.Items))
	copy(items, cart.Items)

	return &Order{
		ID:        uuid.New(),
		UserID:    cart.UserID,
		Items:     items,
		Total:     cart.Total,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks if the Order has valid data.
func (o *Order) Validate() error {
	if o.ID == uuid.Nil {
		return ErrEmptyOrderID
	}
	if o.UserID == uuid.Nil {
		return ErrEmptyOrderUserID
	}
	return nil
}
