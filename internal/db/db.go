package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory store.
const MemoryPath = ":memory:"

// busyTimeoutMS is how long a statement waits for another cadence process,
// such as an open calendar view, to release the write lock.
const busyTimeoutMS = 5000

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMS),
	"PRAGMA synchronous = NORMAL",
}

// OpenDB opens the store at path, creating its directory, and applies
// pending migrations.
//
// The pool is limited to one connection: pragmas are per connection, and
// an in-memory database is private to the connection that created it.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	conn.SetMaxOpenConns(1)

	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	if err := Migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return conn, nil
}
