package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaVersion is bumped whenever the kv schema changes
const schemaVersion = 1

// runMigrations creates the key-value schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	return withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS kv (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create kv table: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create schema_version table: %w", err)
		}

		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
			return err
		}
		if count == 0 {
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
				return err
			}
		}

		return nil
	})
}
