package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
)

// ItemStore defines read access to the item catalog.
type ItemStore interface {
	// List returns every item ordered by name.
	List(ctx context.Context) ([]domain.Item, error)

	// GetByID retrieves an item by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// FindByName returns all items whose name equals name exactly.
	// An empty slice, not an error, is returned when nothing matches.
	FindByName(ctx context.Context, name string) ([]domain.Item, error)

	// WithTx returns an ItemStore that runs its queries in tx.
	WithTx(tx *sql.Tx) ItemStore
}
