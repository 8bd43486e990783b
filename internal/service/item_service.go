package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/store"
)

// ItemService provides read access to the catalog
type ItemService interface {
	// ListItems returns every item in the catalog
	ListItems(ctx context.Context) ([]domain.Item, error)

	// GetItem retrieves an item by its ID
	GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error)

	// FindItemsByName returns the items named exactly name.
	// Returns store.ErrItemNotFound when there are none.
	FindItemsByName(ctx context.Context, name string) ([]domain.Item, error)
}

// ItemServiceImpl implements the ItemService interface
type ItemServiceImpl struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemService creates a new ItemService
func NewItemService(itemStore store.ItemStore, logger *slog.Logger) ItemService {
	return &ItemServiceImpl{
		itemStore: itemStore,
		logger:    logger.With("component", "item_service"),
	}
}

// ListItems returns every item in the catalog
func (s *ItemServiceImpl) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.itemStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list items", "error", err)
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// GetItem retrieves an item by its ID
func (s *ItemServiceImpl) GetItem(ctx context.Context, itemID uuid.UUID) (*domain.Item, error) {
	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, store.ErrItemNotFound) {
			s.logger.Error("failed to retrieve item",
				"error", err,
				"item_id", itemID)
		}
		return nil, fmt.Errorf("failed to retrieve item: %w", err)
	}
	return item, nil
}

// FindItemsByName returns the items named exactly name
func (s *ItemServiceImpl) FindItemsByName(ctx context.Context, name string) ([]domain.Item, error) {
	items, err := s.itemStore.FindByName(ctx, name)
	if err != nil {
		s.logger.Error("failed to find items by name",
			"error", err,
			"name", name)
		return nil, fmt.Errorf("failed to find items by name: %w", err)
	}
	if len(items) == 0 {
		s.logger.Debug("no items found by name", "name", name)
		return nil, fmt.Errorf("no items named %q: %w", name, store.ErrItemNotFound)
	}
	return items, nil
}
