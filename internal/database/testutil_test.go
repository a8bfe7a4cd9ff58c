package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile returns a path for a file-based database that can be
// reopened to test persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todo-test.db")
}

// testBackend runs the behaviour every Backend must share
func testBackend(t *testing.T, b Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing key is not found", func(t *testing.T) {
		v, found, err := b.Get(ctx, "todo_missing")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if found || v != "" {
			t.Errorf("Expected missing key, got found=%v value=%q", found, v)
		}
	})

	t.Run("set then get", func(t *testing.T) {
		if err := b.Set(ctx, "todo_tasks", `[{"id":"1"}]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		v, found, err := b.Get(ctx, "todo_tasks")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !found || v != `[{"id":"1"}]` {
			t.Errorf("Get = (%q, %v), want stored value", v, found)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		if err := b.Set(ctx, "todo_tags", "[]"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := b.Set(ctx, "todo_tags", `[{"id":"9"}]`); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		v, _, err := b.Get(ctx, "todo_tags")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if v != `[{"id":"9"}]` {
			t.Errorf("Expected overwritten value, got %q", v)
		}
	})

	t.Run("delete removes key", func(t *testing.T) {
		if err := b.Set(ctx, "todo_lists", "[]"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := b.Delete(ctx, "todo_lists"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, found, _ := b.Get(ctx, "todo_lists"); found {
			t.Error("Expected key to be deleted")
		}
		if err := b.Delete(ctx, "todo_lists"); err != nil {
			t.Errorf("Deleting a missing key should not fail: %v", err)
		}
	})
}
