package mocks

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// MockCartStore implements store.CartStore for testing. It stores copies,
// so a cart mutated by a caller only changes once ReplaceItems is called.
type MockCartStore struct {
	CreateFn       func(ctx context.Context, cart *domain.Cart) error
	GetByUserIDFn  func(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)
	ReplaceItemsFn func(ctx context.Context, cart *domain.Cart) error

	// Carts keyed by owning user ID
	Carts             map[uuid.UUID]*domain.Cart
	ReplaceItemsCalls int

	mu sync.Mutex
}

// NewMockCartStore creates a new mock store with initialized defaults
func NewMockCartStore() *MockCartStore {
	return &MockCartStore{Carts: make(map[uuid.UUID]*domain.Cart)}
}

func copyCart(c *domain.Cart) *domain.Cart {
	cp := *c
	cp.Items = make([]domain.Item, len(c.Items))
	copy(cp.Items, c.Items)
	return &cp
}

// Create implements the CartStore interface
func (m *MockCartStore) Create(ctx context.Context, cart *domain.Cart) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, cart)
	}
	if err := cart.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.Carts[cart.UserID]; exists {
		return store.ErrDuplicate
	}
	m.Carts[cart.UserID] = copyCart(cart)
	return nil
}

// GetByUserID implements the CartStore interface
func (m *MockCartStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	cart, ok := m.Carts[userID]
	if !ok {
		return nil, store.ErrCartNotFound
	}
	cp := copyCart(cart)
	cp.Recalculate()
	return cp, nil
}

// ReplaceItems implements the CartStore interface
func (m *MockCartStore) ReplaceItems(ctx context.Context, cart *domain.Cart) error {
	m.mu.Lock()
	m.ReplaceItemsCalls++
	m.mu.Unlock()

	if m.ReplaceItemsFn != nil {
		return m.ReplaceItemsFn(ctx, cart)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.Carts[cart.UserID]
	if !ok || existing.ID != cart.ID {
		return store.ErrCartNotFound
	}
	m.Carts[cart.UserID] = copyCart(cart)
	return nil
}

// WithTx implements the CartStore interface for transaction support
func (m *MockCartStore) WithTx(tx *sql.Tx) store.CartStore {
	return m
}
