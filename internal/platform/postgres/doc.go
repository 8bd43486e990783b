// Package postgres provides PostgreSQL implementations of the store
// interfaces over database/sql and the pgx driver. The schema lives in
// embedded goose migrations; RunMigrations applies them.
//
// Every store takes a store.DBTX, so the same code runs against a *sql.DB or,
// via WithTx, inside a caller's transaction.
package postgres
