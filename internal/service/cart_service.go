package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// CartModification names a user's cart, an item and how many of it to add
// or remove.
type CartModification struct {
	Username string
	ItemID   uuid.UUID
	Quantity int
}

// CartService mutates shopping carts
type CartService interface {
	// AddToCart appends Quantity copies of the item to the user's cart
	AddToCart(ctx context.Context, mod CartModification) (*domain.Cart, error)

	// RemoveFromCart removes up to Quantity copies of the item from the
	// user's cart. Removing more than the cart holds leaves none.
	RemoveFromCart(ctx context.Context, mod CartModification) (*domain.Cart, error)
}

// CartServiceImpl implements the CartService interface
type CartServiceImpl struct {
	userStore  store.UserStore
	itemStore  store.ItemStore
	cartStore  store.CartStore
	transactor store.Transactor
	logger     *slog.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	userStore store.UserStore,
	itemStore store.ItemStore,
	cartStore store.CartStore,
	transactor store.Transactor,
	logger *slog.Logger,
) CartService {
	return &CartServiceImpl{
		userStore:  userStore,
		itemStore:  itemStore,
		cartStore:  cartStore,
		transactor: transactor,
		logger:     logger.With("component", "cart_service"),
	}
}

// AddToCart appends Quantity copies of the item to the user's cart
func (s *CartServiceImpl) AddToCart(ctx context.Context, mod CartModification) (*domain.Cart, error) {
	if mod.Quantity > domain.MaxCartItems {
		return nil, fmt.Errorf("failed to add_to_cart: %w", domain.ErrQuantityTooLarge)
	}
	return s.modify(ctx, "add_to_cart", mod, (*domain.Cart).AddItem)
}

// RemoveFromCart removes up to Quantity copies of the item from the user's cart
func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, mod CartModification) (*domain.Cart, error) {
	return s.modify(ctx, "remove_from_cart", mod, (*domain.Cart).RemoveItem)
}

// modify resolves the user, item and locked cart, applies mutate and stores
// the new item sequence, all in one transaction. Any failure leaves the
// stored cart unchanged.
func (s *CartServiceImpl) modify(
	ctx context.Context,
	op string,
	mod CartModification,
	mutate func(*domain.Cart, domain.Item, int) error,
) (*domain.Cart, error) {
	if mod.Quantity < 1 {
		return nil, fmt.Errorf("failed to %s: %w", op, domain.ErrInvalidQuantity)
	}

	var cart *domain.Cart
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		user, err := s.userStore.WithTx(tx).GetByUsername(ctx, mod.Username)
		if err != nil {
			return fmt.Errorf("failed to retrieve user: %w", err)
		}

		item, err := s.itemStore.WithTx(tx).GetByID(ctx, mod.ItemID)
		if err != nil {
			return fmt.Errorf("failed to retrieve item: %w", err)
		}

		txCarts := s.cartStore.WithTx(tx)
		cart, err = txCarts.GetByUserID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve cart: %w", err)
		}

		if err := mutate(cart, *item, mod.Quantity); err != nil {
			return err
		}

		if err := txCarts.ReplaceItems(ctx, cart); err != nil {
			return fmt.Errorf("failed to save cart: %w", err)
		}
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) || errors.Is(err, domain.ErrValidation) {
			s.logger.Debug("cart modification rejected",
				"operation", op,
				"error", err,
				"username", mod.Username,
				"item_id", mod.ItemID)
			return nil, fmt.Errorf("failed to %s: %w", op, err)
		}
		s.logger.Error("cart modification failed",
			"operation", op,
			"error", err,
			"username", mod.Username,
			"item_id", mod.ItemID)
		return nil, NewServiceError("cart", op, err)
	}

	s.logger.Info("cart updated",
		"operation", op,
		"username", mod.Username,
		"item_id", mod.ItemID,
		"quantity", mod.Quantity,
		"items", len(cart.Items),
		"total", cart.Total.String())

	return cart, nil
}
