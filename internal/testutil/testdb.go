package testutil

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/cadence/internal/db"
)

// NewTestDB opens a migrated in-memory store that is closed with the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// WriteBlob stores a raw value under key, bypassing encoding. Used to seed
// malformed or legacy data.
func WriteBlob(t *testing.T, conn db.DBTX, key, value string) {
	t.Helper()
	_, err := conn.ExecContext(context.Background(),
		`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, '2024-01-01T00:00:00Z')
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		t.Fatalf("writing blob %s: %v", key, err)
	}
}

// ReadBlob returns the raw value stored under key and whether it exists.
func ReadBlob(t *testing.T, conn db.DBTX, key string) (string, bool) {
	t.Helper()
	var value string
	err := conn.QueryRowContext(context.Background(), `SELECT value FROM blobs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		t.Fatalf("reading blob %s: %v", key, err)
	}
	return value, true
}
