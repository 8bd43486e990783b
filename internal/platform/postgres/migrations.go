package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table goose records applied versions in.
const MigrationTableName = "schema_migrations"

// Seeded catalog item IDs from 00002_seed_items.sql.
const (
	RoundWidgetID  = "7a1c4f2e-5b0d-4c7e-9a1f-3d2e8b6c0001"
	SquareWidgetID = "7a1c4f2e-5b0d-4c7e-9a1f-3d2e8b6c0002"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationCommands lists the commands RunMigrations accepts.
var MigrationCommands = []string{"up", "down", "reset", "status", "version"}

// RunMigrations applies a goose command against db using the SQL migrations
// embedded in this package. Output goes to log, which may be nil to keep
// goose's default logger.
func RunMigrations(ctx context.Context, db *sql.DB, command string, log goose.Logger) error {
	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(MigrationTableName)
	if log != nil {
		goose.SetLogger(log)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	var err error
	switch command {
	case "up":
		err = goose.UpContext(ctx, db, migrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, migrationsDir)
	case "reset":
		err = goose.ResetContext(ctx, db, migrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, migrationsDir)
	case "version":
		err = goose.VersionContext(ctx, db, migrationsDir)
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, or version)",
			command,
		)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
