package mocks

import (
	"context"
	"database/sql"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// MockItemStore implements store.ItemStore for testing
type MockItemStore struct {
	ListFn       func(ctx context.Context) ([]domain.Item, error)
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.Item, error)
	FindByNameFn func(ctx context.Context, name string) ([]domain.Item, error)

	// Items is the catalog used by the default implementation
	Items map[uuid.UUID]domain.Item

	mu sync.Mutex
}

// NewMockItemStore creates a mock catalog holding items.
func NewMockItemStore(items ...domain.Item) *MockItemStore {
	m := &MockItemStore{Items: make(map[uuid.UUID]domain.Item)}
	for _, item := range items {
		m.Items[item.ID] = item
	}
	return m
}

// List implements the ItemStore interface
func (m *MockItemStore) List(ctx context.Context) ([]domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]domain.Item, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// GetByID implements the ItemStore interface
func (m *MockItemStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.Items[id]
	if !ok {
		return nil, store.ErrItemNotFound
	}
	return &item, nil
}

// FindByName implements the ItemStore interface
func (m *MockItemStore) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	if m.FindByNameFn != nil {
		return m.FindByNameFn(ctx, name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	items := []domain.Item{}
	for _, item := range m.Items {
		if item.Name == name {
			items = append(items, item)
		}
	}
	return items, nil
}

// WithTx implements the ItemStore interface for transaction support
func (m *MockItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return m
}
