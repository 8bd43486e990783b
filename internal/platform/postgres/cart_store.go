package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
)

// PostgresCartStore implements the store.CartStore interface
// using a PostgreSQL database as the storage backend.
//
// A cart's items are rows in cart_items keyed by (cart_id, position); the
// position column preserves insertion order and duplicates encode quantity.
type PostgresCartStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCartStore creates a new PostgreSQL implementation of the CartStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCartStore(db store.DBTX, logger *slog.Logger) *PostgresCartStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCartStore{
		db:     db,
		logger: logger.With(slog.String("component", "cart_store")),
	}
}

var _ store.CartStore = (*PostgresCartStore)(nil)

// WithTx implements store.CartStore.WithTx
func (s *PostgresCartStore) WithTx(tx *sql.Tx) store.CartStore {
	return &PostgresCartStore{db: tx, logger: s.logger}
}

// Create implements store.CartStore.Create
func (s *PostgresCartStore) Create(ctx context.Context, cart *domain.Cart) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := cart.Validate(); err != nil {
		log.Warn("cart validation failed during create",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return err
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO carts (id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`, cart.ID, cart.UserID, now, now)
	if err != nil {
		log.Error("failed to create cart",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()),
			slog.String("user_id", cart.UserID.String()))
		return MapError(err)
	}

	if err := s.insertItems(ctx, cart.ID, cart.Items); err != nil {
		log.Error("failed to insert cart items",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return err
	}

	log.Debug("cart created",
		slog.String("cart_id", cart.ID.String()),
		slog.String("user_id", cart.UserID.String()))
	return nil
}

// GetByUserID implements store.CartStore.GetByUserID
// Returns store.ErrCartNotFound if the user has no cart.
func (s *PostgresCartStore) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Cart, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	cart := &domain.Cart{Items: []domain.Item{}}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id
		FROM carts
		WHERE user_id = $1
		FOR UPDATE
	`, userID).Scan(&cart.ID, &cart.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("cart not found", slog.String("user_id", userID.String()))
			return nil, store.ErrCartNotFound
		}
		log.Error("failed to get cart",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, i.description, i.price
		FROM cart_items ci
		JOIN items i ON i.id = ci.item_id
		WHERE ci.cart_id = $1
		ORDER BY ci.position
	`, cart.ID)
	if err != nil {
		log.Error("failed to load cart items",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items, err := scanItems(rows)
	if err != nil {
		log.Error("failed to scan cart items",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return nil, err
	}

	cart.Items = items
	cart.Recalculate()
	return cart, nil
}

// ReplaceItems implements store.CartStore.ReplaceItems
// Returns store.ErrCartNotFound if the cart does not exist.
func (s *PostgresCartStore) ReplaceItems(ctx context.Context, cart *domain.Cart) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `
		UPDATE carts SET updated_at = $2 WHERE id = $1
	`, cart.ID, time.Now().UTC())
	if err != nil {
		log.Error("failed to touch cart",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return MapError(err)
	}
	if err := CheckRowsAffected(result, store.ErrCartNotFound); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		log.Error("failed to clear cart items",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return MapError(err)
	}

	if err := s.insertItems(ctx, cart.ID, cart.Items); err != nil {
		log.Error("failed to insert cart items",
			slog.String("error", err.Error()),
			slog.String("cart_id", cart.ID.String()))
		return err
	}

	log.Debug("cart items replaced",
		slog.String("cart_id", cart.ID.String()),
		slog.Int("item_count", len(cart.Items)))
	return nil
}

// insertItems writes items as positions 0..n-1 of cartID.
func (s *PostgresCartStore) insertItems(ctx context.Context, cartID uuid.UUID, items []domain.Item) error {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = []any{cartID, i, item.ID}
	}
	return insertRows(ctx, s.db, "INSERT INTO cart_items (cart_id, position, item_id) VALUES ", rows)
}
