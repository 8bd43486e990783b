// Package main is the entry point for the storefront API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/phrazzld/storefront-api/internal/config"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/platform/postgres"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/shopspring/decimal"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run a database migration command and exit: "+strings.Join(postgres.MigrationCommands, ", "),
	)
	flag.Parse()

	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	if err := run(*migrateCmd); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration and either executes a single migration command or
// serves the API until SIGINT or SIGTERM.
func run(migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	appLogger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := setupAppDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, appLogger)
		return handleMigrations(ctx, db, migrateCmd, appLogger)
	}

	if err := handleMigrations(ctx, db, "up", appLogger); err != nil {
		closeDB(db, appLogger)
		return err
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		closeDB(db, appLogger)
		return err
	}

	if cfg.Bootstrap.Enabled {
		if err := bootstrapAdmin(ctx, app.bootstrapper, cfg.Bootstrap); err != nil {
			app.cleanup()
			return err
		}
	}

	return app.Run(ctx)
}

func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	return cfg, nil
}

func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	return l, nil
}

// bootstrapAdmin makes sure the configured admin account exists.
func bootstrapAdmin(ctx context.Context, b *service.Bootstrapper, cfg config.BootstrapConfig) error {
	if _, err := b.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		return fmt.Errorf("failed to bootstrap admin user: %w", err)
	}
	return nil
}
