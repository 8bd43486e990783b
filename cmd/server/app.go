package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/platform/postgres"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/service/auth"
	"github.com/phrazzld/storefront-api/internal/store"
)

// appStores groups the persistence dependencies the services are built on.
type appStores struct {
	users      store.UserStore
	items      store.ItemStore
	carts      store.CartStore
	orders     store.OrderStore
	transactor store.Transactor
}

// passwordHashing hashes passwords at registration and checks them at login.
type passwordHashing interface {
	auth.PasswordHasher
	auth.PasswordVerifier
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	stores appStores

	jwtService auth.JWTService
	passwords  passwordHashing

	itemService  service.ItemService
	userService  service.UserService
	cartService  service.CartService
	orderService service.OrderService
	bootstrapper *service.Bootstrapper
}

// newApplication builds the PostgreSQL stores over db and wires the services
// on top of them.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	stores := appStores{
		users:      postgres.NewPostgresUserStore(db, logger),
		items:      postgres.NewPostgresItemStore(db, logger),
		carts:      postgres.NewPostgresCartStore(db, logger),
		orders:     postgres.NewPostgresOrderStore(db, logger),
		transactor: store.NewSQLTransactor(db),
	}

	app, err := assembleApplication(cfg, logger, stores, auth.NewBcryptHasher(cfg.Auth.BCryptCost))
	if err != nil {
		return nil, err
	}
	app.db = db

	logger.Info("Application initialized successfully")
	return app, nil
}

// assembleApplication wires services and auth around the given stores.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	stores appStores,
	passwords passwordHashing,
) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app := &application{
		config:     cfg,
		logger:     logger,
		stores:     stores,
		jwtService: jwtService,
		passwords:  passwords,
	}

	app.itemService = service.NewItemService(stores.items, logger)
	app.userService = service.NewUserService(stores.users, stores.carts, passwords, stores.transactor, logger)
	app.cartService = service.NewCartService(stores.users, stores.items, stores.carts, stores.transactor, logger)
	app.orderService = service.NewOrderService(stores.users, stores.carts, stores.orders, stores.transactor, logger)
	app.bootstrapper = service.NewBootstrapper(app.userService, logger)

	return app, nil
}

// Run serves the API until ctx is canceled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
	}

	app.logger.Info("Application shutdown completed")
}
