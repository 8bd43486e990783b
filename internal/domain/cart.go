package domain

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxCartItems caps how many items, counting duplicates, a cart may hold.
const MaxCartItems = 10000

// Cart validation errors.
var (
	ErrEmptyCartID     = fmt.Errorf("%w: cart ID cannot be empty", ErrValidation)
	ErrEmptyCartUserID = fmt.Errorf("%w: cart user ID cannot be empty", ErrValidation)

	// ErrQuantityTooLarge and ErrCartFull wrap ErrInvalidQuantity.
	ErrQuantityTooLarge = NewValidationError("quantity",
		fmt.Sprintf("must be at most %d", MaxCartItems), ErrInvalidQuantity)
	ErrCartFull = NewValidationError("cart",
		fmt.Sprintf("cannot hold more than %d items", MaxCartItems), ErrInvalidQuantity)
)

// Cart is a user's mutable list of items pending purchase. Items is an
// ordered sequence; an item appearing n times has quantity n.
//
// Total always equals the sum of the current item prices. Mutate the cart
// through AddItem and RemoveItem so the total stays in step.
type Cart struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"user_id"`
	Items  []Item          `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// NewCart creates an empty cart owned by userID.
func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		ID:     uuid.New(),
		UserID: userID,
		Items:  []Item{},
		Total:  decimal.Zero,
	}
}

// Validate checks if the Cart has valid data.
func (c *Cart) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCartID
	}
	if c.UserID == uuid.Nil {
		return ErrEmptyCartUserID
	}
	return nil
}

// AddItem appends quantity copies of item to the cart.
// Returns ErrInvalidQuantity if quantity < 1, ErrQuantityTooLarge if it
// exceeds MaxCartItems, and ErrCartFull if the cart would grow past
// MaxCartItems. The cart is unchanged on error.
func (c *Cart) AddItem(item Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > MaxCartItems {
		return ErrQuantityTooLarge
	}
	if quantity > MaxCartItems-len(c.Items) {
		return ErrCartFull
	}
	c.Items = slices.Grow(c.Items, quantity)
	for i := 0; i < quantity; i++ {
		c.Items = append(c.Items, item)
	}
	c.Recalculate()
	return nil
}

// RemoveItem removes up to quantity occurrences of item, matched by ID,
// starting with the earliest. Removing more than are present leaves none;
// it is not an error.
// Returns ErrInvalidQuantity, leaving the cart unchanged, if quantity < 1.
func (c *Cart) RemoveItem(item Item, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	kept := make([]Item, 0, len(c.Items))
	removed := 0
	for _, it := range c.Items {
		if removed < quantity && it.ID == item.ID {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	c.Recalculate()
	return nil
}

// Quantity returns how many times the item with itemID is in the cart.
func (c *Cart) Quantity(itemID uuid.UUID) int {
	n := 0
	for _, it := range c.Items {
		if it.ID == itemID {
			n++
		}
	}
	return n
}

// Recalculate sets Total to the sum of the current item prices.
func (c *Cart) Recalculate() {
	c.Total = sumPrices(c.Items)
}
