// Package store defines the persistence interfaces for items, users, carts
// and orders, the sentinel errors implementations return, and transaction
// helpers. Implementations live under internal/platform.
package store
