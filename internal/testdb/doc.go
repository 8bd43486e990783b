//go:build integration

// Package testdb provides utilities for PostgreSQL integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can share one database without cleanup:
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        users := postgres.NewPostgresUserStore(tx, nil)
//	        // ...
//	    })
//	}
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string used by integration tests
//   - STOREFRONT_TEST_DB_URL: fallback when DATABASE_URL is unset
//
// Tests are skipped when neither is set. Run them with:
//
//	go test -tags=integration ./...
package testdb
