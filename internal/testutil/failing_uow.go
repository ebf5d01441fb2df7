package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/cadence/internal/db"
)

// FailOnKeyUoW runs real transactions against DB but fails the first write
// whose arguments include Key, after any earlier writes in the same
// transaction have gone through. Use it to check that a multi-key save
// leaves nothing behind.
type FailOnKeyUoW struct {
	DB  *sql.DB
	Key string
	Err error

	// Writes counts write statements that reached the database.
	Writes int
}

func (u *FailOnKeyUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(ctx, &failOnKey{DBTX: tx, uow: u}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failOnKey struct {
	db.DBTX
	uow *FailOnKeyUoW
}

func (f *failOnKey) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	for _, a := range args {
		if s, ok := a.(string); ok && s == f.uow.Key {
			return nil, f.uow.Err
		}
	}
	f.uow.Writes++
	return f.DBTX.ExecContext(ctx, query, args...)
}
