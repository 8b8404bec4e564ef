// Package testdb provides database helpers for integration tests against the
// postgres clue mirror.
package testdb

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/phrazzld/trivia-board/internal/ciutil"
	"github.com/phrazzld/trivia-board/internal/platform/postgres"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection checks made by the helpers.
const TestTimeout = 10 * time.Second

// goose keeps its base filesystem and dialect in package state.
var migrateMu sync.Mutex

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return ciutil.GetTestDatabaseURL(nil) == ""
}

// GetTestDBWithT opens the configured test database, applies the embedded
// migrations and registers cleanup. The test is skipped when no database
// URL is set, except in CI where a missing database fails the test.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := ciutil.GetTestDatabaseURL(nil)
	if dbURL == "" {
		if ciutil.IsCI() {
			t.Fatalf("%s must be set in CI", ciutil.EnvDatabaseURL)
		}
		t.Skip("DATABASE_URL not set - skipping integration test")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "Database ping failed for %s",
		ciutil.MaskSensitiveValue(dbURL))

	require.NoError(t, ApplyMigrations(db), "Failed to apply migrations")
	return db
}

// ApplyMigrations runs every embedded migration that has not been applied yet.
func ApplyMigrations(db *sql.DB) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(postgres.Migrations)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, postgres.MigrationsDir)
}

// WithTx runs fn inside a transaction that is always rolled back, so tests
// can write freely without leaving rows behind.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			t.Logf("rollback failed: %v", err)
		}
	}()

	fn(t, tx)
}
