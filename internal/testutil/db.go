package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/clik/internal/store"
	"github.com/footprint-tools/clik/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", store.MemoryPath)
	require.NoError(t, err, "failed to open in-memory database")
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(context.Background(), db), "failed to run migrations")

	return db
}

// NewTestStore returns a Store over NewTestDB.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t))
}

// SeedEntries puts every key/value pair into s.
func SeedEntries(t *testing.T, s *store.Store, entries map[string]string) {
	t.Helper()

	for key, value := range entries {
		require.NoError(t, s.Put(key, value), "failed to seed entry %q", key)
	}
}
