package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// withTx runs fn inside one transaction and commits only if fn returns nil.
// The deferred rollback is a no-op once the commit has gone through.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin slot transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			slog.Error("slot transaction rollback failed", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit slot transaction: %w", err)
	}

	return nil
}

// closeOnError releases a SQLite handle that never finished opening
func closeOnError(db *sql.DB) {
	if closeErr := db.Close(); closeErr != nil {
		slog.Error("closing half-open sqlite store", "error", closeErr)
	}
}
