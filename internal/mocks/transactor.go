package mocks

import (
	"context"

	"github.com/phrazzld/storefront-api/internal/store"
)

// MockTransactor implements store.Transactor without a database. The
// function runs with a nil *sql.Tx, which the mock stores' WithTx ignore.
type MockTransactor struct {
	// RunInTransactionFn replaces the default behavior when set
	RunInTransactionFn func(ctx context.Context, fn store.TxFn) error

	// Calls counts RunInTransaction invocations
	Calls int
}

var _ store.Transactor = (*MockTransactor)(nil)

// RunInTransaction implements store.Transactor
func (m *MockTransactor) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	m.Calls++
	if m.RunInTransactionFn != nil {
		return m.RunInTransactionFn(ctx, fn)
	}
	return fn(ctx, nil)
}
