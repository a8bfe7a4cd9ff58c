package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	"github.com/thenoetrevino/todo/internal/store"
)

// Now is the instant every frozen test clock reports
var Now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

// FixedClock returns a clock frozen at t
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// SetupTestBackend creates an in-memory backend closed when the test ends
func SetupTestBackend(t *testing.T) *database.MemoryBackend {
	t.Helper()
	backend := database.NewMemoryBackend()
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

// SetupTestSQLite creates a migrated in-memory SQLite backend
func SetupTestSQLite(t *testing.T) *database.SQLiteBackend {
	t.Helper()
	backend, err := database.OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

// SetupTestStore creates a store over an in-memory backend with the clock
// frozen at Now in UTC. Default lists and tags are seeded on first read;
// sample tasks are not.
func SetupTestStore(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	base := []store.Option{
		store.WithClock(FixedClock(Now)),
		store.WithLocation(time.UTC),
		store.WithSampleTasks([]models.Task{}),
	}
	return store.New(SetupTestBackend(t), append(base, opts...)...)
}

// CreateTestTask creates an incomplete task and returns its ID
func CreateTestTask(t *testing.T, s *store.Store, listID, title string) string {
	t.Helper()
	task, err := s.CreateTask(context.Background(), models.NewTask{Title: title, ListID: listID})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task.ID
}

// CreateTestList creates a list and returns its ID
func CreateTestList(t *testing.T, s *store.Store, name, color string) string {
	t.Helper()
	list, err := s.CreateList(context.Background(), name, color)
	if err != nil {
		t.Fatalf("Failed to create test list: %v", err)
	}
	return list.ID
}

// CreateTestTag creates a tag and returns its ID
func CreateTestTag(t *testing.T, s *store.Store, name, color string) string {
	t.Helper()
	tag, err := s.CreateTag(context.Background(), name, color)
	if err != nil {
		t.Fatalf("Failed to create test tag: %v", err)
	}
	return tag.ID
}
