package database

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/todo/internal/config"
)

// Open creates the backend selected by cfg.Backend
func Open(ctx context.Context, cfg config.Storage) (Backend, error) {
	var (
		backend Backend
		err     error
	)

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryBackend(), nil
	case config.BackendSQLite, "":
		var b *SQLiteBackend
		b, err = OpenSQLite(ctx, cfg.SQLitePath)
		backend = b
	case config.BackendRedis:
		var b *RedisBackend
		b, err = OpenRedis(ctx, cfg.Redis)
		backend = b
	case config.BackendMongo:
		var b *MongoBackend
		b, err = OpenMongo(ctx, cfg.Mongo)
		backend = b
	case config.BackendPostgres:
		var b *PostgresBackend
		b, err = OpenPostgres(ctx, cfg.Postgres)
		backend = b
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open %s backend: %w", cfg.Backend, err)
	}
	return backend, nil
}
