package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strconv"
	"testing"

	"github.com/thenoetrevino/todo/internal/config"
)

func TestMemoryBackend(t *testing.T) {
	t.Parallel()
	testBackend(t, NewMemoryBackend())
}

func TestMemoryBackend_Closed(t *testing.T) {
	t.Parallel()
	b := NewMemoryBackend()
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	ctx := context.Background()
	if _, _, err := b.Get(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after close = %v, want ErrClosed", err)
	}
	if err := b.Set(ctx, "k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after close = %v, want ErrClosed", err)
	}
	if err := b.Delete(ctx, "k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Delete after close = %v, want ErrClosed", err)
	}
}

func TestSQLiteBackend(t *testing.T) {
	t.Parallel()
	testBackend(t, NewSQLiteBackend(setupTestDB(t)))
}

func TestRunMigrationsIdempotent(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()

	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version").Scan(&count); err != nil {
		t.Fatalf("Failed to read schema_version: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected one schema_version row, got %d", count)
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	t.Parallel()
	db := setupTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO kv (key, value) VALUES ('todo_tasks', '[]')"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("withTx = %v, want the callback error", err)
	}

	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM kv").Scan(&count); err != nil {
		t.Fatalf("Failed to count kv rows: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected rolled back insert, got %d rows", count)
	}

	err = withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "INSERT INTO kv (key, value) VALUES ('todo_tags', '[]')")
		return err
	})
	if err != nil {
		t.Fatalf("withTx failed: %v", err)
	}
	if _, found, _ := NewSQLiteBackend(db).Get(ctx, "todo_tags"); !found {
		t.Error("Expected committed row to be readable")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), config.Storage{Backend: "etcd"})
	if err == nil {
		t.Fatal("Expected error for unknown backend")
	}
}

func TestOpen_Memory(t *testing.T) {
	t.Parallel()
	b, err := Open(context.Background(), config.Storage{Backend: config.BackendMemory})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := b.(*MemoryBackend); !ok {
		t.Errorf("Expected *MemoryBackend, got %T", b)
	}
}

func TestOpen_PostgresRequiresDSN(t *testing.T) {
	t.Parallel()
	_, err := Open(context.Background(), config.Storage{Backend: config.BackendPostgres})
	if err == nil {
		t.Fatal("Expected error when DSN is empty")
	}
}

// Integration-style tests: run only if the matching env var is set.

func TestRedisBackendIntegration(t *testing.T) {
	addr := os.Getenv("TODO_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TODO_TEST_REDIS_ADDR not set; skipping integration test")
	}
	db := 0
	if v := os.Getenv("TODO_TEST_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			db = n
		}
	}

	b, err := OpenRedis(context.Background(), config.RedisConfig{
		Addr:   addr,
		DB:     db,
		Prefix: "todo-test:" + t.Name() + ":",
	})
	if err != nil {
		t.Fatalf("OpenRedis failed: %v", err)
	}
	defer b.Close()

	testBackend(t, b)
}

func TestMongoBackendIntegration(t *testing.T) {
	uri := os.Getenv("TODO_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TODO_TEST_MONGO_URI not set; skipping integration test")
	}

	b, err := OpenMongo(context.Background(), config.MongoConfig{
		URI:        uri,
		Database:   "todo_test",
		Collection: "kv_" + strconv.Itoa(os.Getpid()),
	})
	if err != nil {
		t.Fatalf("OpenMongo failed: %v", err)
	}
	defer func() {
		_ = b.collection.Drop(context.Background())
		_ = b.Close()
	}()

	testBackend(t, b)
}

func TestPostgresBackendIntegration(t *testing.T) {
	dsn := os.Getenv("TODO_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TODO_TEST_POSTGRES_DSN not set; skipping integration test")
	}

	table := "todo_kv_test_" + strconv.Itoa(os.Getpid())
	b, err := OpenPostgres(context.Background(), config.PostgresConfig{DSN: dsn, Table: table})
	if err != nil {
		t.Fatalf("OpenPostgres failed: %v", err)
	}
	defer func() {
		_, _ = b.pool.Exec(context.Background(), "DROP TABLE IF EXISTS "+b.table)
		_ = b.Close()
	}()

	testBackend(t, b)
}
