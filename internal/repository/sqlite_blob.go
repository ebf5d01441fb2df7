package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/db"
)

// SQLiteBlobRepo implements BlobRepo using a SQLite database.
type SQLiteBlobRepo struct {
	db db.DBTX
}

// NewSQLiteBlobRepo creates a new SQLiteBlobRepo.
func NewSQLiteBlobRepo(conn db.DBTX) *SQLiteBlobRepo {
	return &SQLiteBlobRepo{db: conn}
}

func (r *SQLiteBlobRepo) Get(ctx context.Context, key string) (*Blob, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM blobs WHERE key = ?`, key)

	var (
		b         Blob
		value     string
		updatedAt string
	)
	if err := row.Scan(&b.Key, &value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blob %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning blob %q: %w", key, err)
	}
	b.Value = []byte(value)
	b.UpdatedAt = parseTime(updatedAt)
	return &b, nil
}

func (r *SQLiteBlobRepo) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, key, string(value), nowUTC()); err != nil {
		return fmt.Errorf("writing blob %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteBlobRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting blob %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteBlobRepo) List(ctx context.Context) ([]Blob, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value, updated_at FROM blobs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing blobs: %w", err)
	}
	defer rows.Close()

	var blobs []Blob
	for rows.Next() {
		var (
			b                Blob
			value, updatedAt string
		)
		if err := rows.Scan(&b.Key, &value, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning blob row: %w", err)
		}
		b.Value = []byte(value)
		b.UpdatedAt = parseTime(updatedAt)
		blobs = append(blobs, b)
	}
	return blobs, rows.Err()
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
