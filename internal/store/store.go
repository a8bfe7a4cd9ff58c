// Package store implements the task store: CRUD over tasks, lists and tags
// persisted as whole JSON collections in a key-value backend, plus derived
// views computed on read.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
)

// Store owns the task, list and tag collections.
// Every call re-reads its collection from the backend; nothing is cached.
// The mutex serializes read-modify-write cycles within one process only.
type Store struct {
	mu sync.Mutex

	backend   database.Backend
	now       func() time.Time
	location  *time.Location
	ids       IDGenerator
	samples   func(now time.Time) []models.Task
	checkRefs bool
	logger    *slog.Logger
}

// Option is a functional option for configuring a Store
type Option func(*Store)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLocation sets the timezone that defines "today" (default time.Local)
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		s.location = loc
	}
}

// WithIDGenerator replaces the default timestamp generator
func WithIDGenerator(ids IDGenerator) Option {
	return func(s *Store) {
		s.ids = ids
	}
}

// WithSampleTasks replaces the demo tasks seeded into an empty task
// collection. An empty slice disables task seeding.
func WithSampleTasks(tasks []models.Task) Option {
	return func(s *Store) {
		s.samples = func(time.Time) []models.Task { return tasks }
	}
}

// WithReferentialChecks makes task writes fail with ErrUnknownList or
// ErrUnknownTag when they reference lists or tags that do not exist
func WithReferentialChecks(enabled bool) Option {
	return func(s *Store) {
		s.checkRefs = enabled
	}
}

// WithLogger sets the logger (default slog.Default())
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// New creates a Store over backend. A nil backend yields a Store whose
// operations all fail with ErrStorageUnavailable.
func New(backend database.Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		now:      time.Now,
		location: time.Local,
		samples:  SampleTasks,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewTimestampIDs(s.now)
	}
	return s
}

// Available reports whether the store has a backend
func (s *Store) Available() bool {
	return s.backend != nil
}

// Reset removes all three collections. The next read reseeds defaults.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		return ErrStorageUnavailable
	}
	for _, key := range []string{KeyTasks, KeyLists, KeyTags} {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	s.logger.Info("store reset")
	return nil
}

// Now returns the store clock's current instant in the store's location.
// Its calendar date is what the today view matches against.
func (s *Store) Now() time.Time {
	return s.now().In(s.location)
}

// timestamp returns the current instant in the form it has after a trip
// through storage: UTC and without a monotonic reading
func (s *Store) timestamp() time.Time {
	return s.now().UTC().Round(0)
}

// canonicalDue rewrites the due date to what decoding its JSON form yields,
// so a returned task equals the one read back later
func canonicalDue(t *models.Task) {
	if t.DueDate == nil {
		return
	}
	due := t.DueDate.Round(0)
	if data, err := due.MarshalJSON(); err == nil {
		var decoded time.Time
		if err := decoded.UnmarshalJSON(data); err == nil {
			due = decoded
		}
	}
	t.DueDate = &due
}

// newID returns an identifier not present in taken
func (s *Store) newID(taken func(id string) bool) string {
	for {
		id := s.ids.NewID()
		if !taken(id) {
			return id
		}
	}
}

// readCollection loads and decodes one storage slot. A missing or empty
// slot decodes to a nil slice.
func readCollection[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	if s.backend == nil {
		return nil, ErrStorageUnavailable
	}

	raw, found, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("corrupt collection in storage", "key", key, "error", err)
		return nil, &CorruptDataError{Key: key, Err: err}
	}
	return items, nil
}

// writeCollection encodes items and overwrites the storage slot
func writeCollection[T any](ctx context.Context, s *Store, key string, items []T) error {
	if s.backend == nil {
		return ErrStorageUnavailable
	}

	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
