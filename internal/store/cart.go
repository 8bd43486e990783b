package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
)

// CartStore defines the interface for cart persistence. A cart's items are
// stored as an ordered sequence of item references.
type CartStore interface {
	// Create saves a new cart and its items.
	Create(ctx context.Context, cart *domain.Cart) error

	// GetByUserID loads the cart owned by userID, with its items joined from
	// the catalog in sequence order and the total computed from them.
	// Inside a transaction the cart row is locked until commit.
	// Returns ErrCartNotFound if the user has no cart.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error)

	// ReplaceItems overwrites the stored item sequence of cart with cart.Items.
	// Returns ErrCartNotFound if the cart does not exist.
	ReplaceItems(ctx context.Context, cart *domain.Cart) error

	// WithTx returns a CartStore that runs its queries in tx.
	WithTx(tx *sql.Tx) CartStore
}
