// Package mocks provides centralized mock implementations for testing.
//
// Each mock has function fields for per-test overrides and a map- or
// slice-backed default implementation, so most tests need no setup beyond
// the constructor:
//
//	users := mocks.NewMockUserStore()
//	users.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
//	    return nil, errors.New("database down")
//	}
//
// Store mocks return themselves from WithTx, and MockTransactor runs the
// transaction function directly, so services can be tested without a database.
package mocks
