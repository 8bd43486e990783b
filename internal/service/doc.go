// Package service contains the storefront's use cases: registration and user
// lookups, catalog lookups, cart mutation, order submission and history, and
// startup seeding of the admin account.
//
// Services depend on the interfaces in internal/store and never on a specific
// database. Operations that write run inside a single transaction obtained
// from a store.Transactor; each store is bound to it with WithTx.
//
// Expected failures are returned as the sentinel errors of internal/domain
// (validation) and internal/store (not found, duplicate), wrapped with %w.
// The API layer maps them to HTTP status codes.
package service
