package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// MockOrderStore implements store.OrderStore for testing
type MockOrderStore struct {
	CreateFn       func(ctx context.Context, order *domain.Order) error
	ListByUserIDFn func(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)

	// Orders in creation order
	Orders []domain.Order

	mu sync.Mutex
}

// NewMockOrderStore creates a new mock store with initialized defaults
func NewMockOrderStore() *MockOrderStore {
	return &MockOrderStore{Orders: []domain.Order{}}
}

// Create implements the OrderStore interface
func (m *MockOrderStore) Create(ctx context.Context, order *domain.Order) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, order)
	}
	if err := order.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *order
	cp.Items = make([]domain.Item, len(order.Items))
	copy(cp.Items, order.Items)
	m.Orders = append(m.Orders, cp)
	return nil
}

// ListByUserID implements the OrderStore interface
func (m *MockOrderStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []domain.Order{}
	for _, order := range m.Orders {
		if order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// WithTx implements the OrderStore interface for transaction support
func (m *MockOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return m
}
