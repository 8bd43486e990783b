package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/shopspring/decimal"
)

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
//
// Order lines copy the item name, description and price so an order reads
// back exactly as it was submitted.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the OrderStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

var _ store.OrderStore = (*PostgresOrderStore)(nil)

// WithTx implements store.OrderStore.WithTx
func (s *PostgresOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return &PostgresOrderStore{db: tx, logger: s.logger}
}

// Create implements store.OrderStore.Create
// Returns store.ErrInvalidEntity if the user does not exist.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during create",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, total, created_at)
		VALUES ($1, $2, $3, $4)
	`, order.ID, order.UserID, order.Total, order.CreatedAt)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during order creation",
				slog.String("order_id", order.ID.String()),
				slog.String("user_id", order.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found", store.ErrInvalidEntity, order.UserID)
		}
		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return MapError(err)
	}

	rows := make([][]any, len(order.Items))
	for i, item := range order.Items {
		rows[i] = []any{order.ID, i, item.ID, item.Name, item.Description, item.Price}
	}
	if err := insertRows(ctx, s.db,
		"INSERT INTO order_items (order_id, position, item_id, name, description, price) VALUES ", rows); err != nil {
		log.Error("failed to insert order items",
			slog.String("error", err.Error()),
			slog.String("order_id", order.ID.String()))
		return err
	}

	log.Info("order created",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()),
		slog.Int("item_count", len(order.Items)),
		slog.String("total", order.Total.StringFixed(2)))
	return nil
}

// ListByUserID implements store.OrderStore.ListByUserID
func (s *PostgresOrderStore) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `
		SELECT o.id, o.user_id, o.total, o.created_at,
		       oi.item_id, oi.name, oi.description, oi.price
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.user_id = $1
		ORDER BY o.seq, oi.position
	`, userID)
	if err != nil {
		log.Error("failed to list orders",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			order       domain.Order
			itemID      uuid.NullUUID
			name        sql.NullString
			description sql.NullString
			price       decimal.NullDecimal
		)
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.Total, &order.CreatedAt,
			&itemID, &name, &description, &price,
		); err != nil {
			log.Error("failed to scan order row", slog.String("error", err.Error()))
			return nil, err
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != order.ID {
			order.Items = []domain.Item{}
			orders = append(orders, order)
		}
		if itemID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, domain.Item{
				ID:          itemID.UUID,
				Name:        name.String,
				Description: description.String,
				Price:       price.Decimal,
			})
		}
	}
	if err := rows.Err(); err != nil {
		log.Error("failed iterating order rows", slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("orders listed",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(orders)))
	return orders, nil
}
