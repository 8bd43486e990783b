package service

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// OrderService submits orders and reads order history
type OrderService interface {
	// Submit snapshots the user's cart into a new order. The cart is not cleared.
	Submit(ctx context.Context, username string) (*domain.Order, error)

	// History returns the user's orders in the order they were submitted
	History(ctx context.Context, username string) ([]domain.Order, error)
}

// OrderServiceImpl implements the OrderService interface
type OrderServiceImpl struct {
	userStore  store.UserStore
	cartStore  store.CartStore
	orderStore store.OrderStore
	transactor store.Transactor
	logger     *slog.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	userStore store.UserStore,
	cartStore store.CartStore,
	orderStore store.OrderStore,
	transactor store.Transactor,
	logger *slog.Logger,
) OrderService {
	return &OrderServiceImpl{
		userStore:  userStore,
		cartStore:  cartStore,
		orderStore: orderStore,
		transactor: transactor,
		logger:     logger.With("component", "order_service"),
	}
}

// Submit snapshots the user's cart into a new order
func (s *OrderServiceImpl) Submit(ctx context.Context, username string) (*domain.Order, error) {
	var order *domain.Order
	err := s.transactor.RunInTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		user, err := s.userStore.WithTx(tx).GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("failed to retrieve user: %w", err)
		}

		cart, err := s.cartStore.WithTx(tx).GetByUserID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve cart: %w", err)
		}

		order = domain.NewOrderFromCart(cart)
		if err := s.orderStore.WithTx(tx).Create(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		return nil
	})
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logger.Debug("order submission for unknown user",
				"username", username)
			return nil, fmt.Errorf("failed to submit order: %w", err)
		}
		s.logger.Error("failed to submit order",
			"error", err,
			"username", username)
		return nil, NewServiceError("order", "submit", err)
	}

	s.logger.Info("order submitted",
		"order_id", order.ID,
		"username", username,
		"items", len(order.Items),
		"total", order.Total.String())

	return order, nil
}

// History returns the user's orders in the order they were submitted
func (s *OrderServiceImpl) History(ctx context.Context, username string) ([]domain.Order, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve user for order history",
				"error", err,
				"username", username)
		}
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	orders, err := s.orderStore.ListByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to list orders",
			"error", err,
			"user_id", user.ID)
		return nil, NewServiceError("order", "history", err)
	}

	return orders, nil
}
