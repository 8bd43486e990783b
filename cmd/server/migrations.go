package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/storefront-api/internal/platform/postgres"
)

// slogGooseLogger adapts the goose logger interface to use slog
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements the goose.Logger Printf method by forwarding messages to Info
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding error messages to Error.
// It does not exit; the failure is returned to main, which owns process exit.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// handleMigrations runs one goose command against db with the embedded
// migrations, logging through logger.
func handleMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	migrationLogger := logger.With("component", "migrations", "command", command)
	migrationLogger.Info("Executing migrations")

	if err := postgres.RunMigrations(ctx, db, command, &slogGooseLogger{logger: migrationLogger}); err != nil {
		migrationLogger.Error("Migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	migrationLogger.Info("Migrations completed")
	return nil
}
