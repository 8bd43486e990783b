package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
)

// OrderStore defines the interface for order persistence. Orders are
// append-only: there is no update or delete.
type OrderStore interface {
	// Create saves an order together with a snapshot of its items.
	Create(ctx context.Context, order *domain.Order) error

	// ListByUserID returns all orders placed by userID in the order they
	// were created. Returns an empty slice when the user has none.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)

	// WithTx returns an OrderStore that runs its queries in tx.
	WithTx(tx *sql.Tx) OrderStore
}
