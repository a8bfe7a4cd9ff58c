package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/thenoetrevino/todo/internal/config"
)

// PostgresBackend stores each key as a row of a single kv table
type PostgresBackend struct {
	pool  *pgxpool.Pool
	table string // Sanitized identifier
}

// OpenPostgres connects to postgres and creates the kv table if needed
func OpenPostgres(ctx context.Context, cfg config.PostgresConfig) (*PostgresBackend, error) {
	if cfg.DSN == "" {
		return nil, errors.New("postgres dsn is not set")
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect failed: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	p := &PostgresBackend{
		pool:  pool,
		table: pgx.Identifier{cfg.Table}.Sanitize(),
	}

	_, err = pool.Exec(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, p.table))
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create %s: %w", p.table, err)
	}

	return p, nil
}

func (p *PostgresBackend) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx,
		fmt.Sprintf("SELECT value FROM %s WHERE key = $1", p.table), key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresBackend) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`, p.table),
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE key = $1", p.table), key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) Close() error {
	p.pool.Close()
	return nil
}
