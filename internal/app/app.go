package app

import (
	"fmt"

	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
	"github.com/thenoetrevino/todo/internal/models"
	listservice "github.com/thenoetrevino/todo/internal/services/list"
	tagservice "github.com/thenoetrevino/todo/internal/services/tag"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
	"github.com/thenoetrevino/todo/internal/store"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	backend database.Backend
	store   *store.Store

	// Service layer (business logic)
	TaskService taskservice.Service
	ListService listservice.Service
	TagService  tagservice.Service
}

// New creates a new App over backend with all services initialized.
// A nil backend is allowed: every operation then fails with
// store.ErrStorageUnavailable.
func New(backend database.Backend, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	storeOpts := []store.Option{store.WithReferentialChecks(cfg.checkRefs)}
	if cfg.logger != nil {
		storeOpts = append(storeOpts, store.WithLogger(cfg.logger))
	}
	if cfg.clock != nil {
		storeOpts = append(storeOpts, store.WithClock(cfg.clock))
	}
	if cfg.location != nil {
		storeOpts = append(storeOpts, store.WithLocation(cfg.location))
	}
	if cfg.noSampleData {
		storeOpts = append(storeOpts, store.WithSampleTasks([]models.Task{}))
	}

	switch cfg.idScheme {
	case "", config.IDSchemeTimestamp:
		// store default
	case config.IDSchemeUUID:
		storeOpts = append(storeOpts, store.WithIDGenerator(store.UUIDs{}))
	default:
		return nil, fmt.Errorf("unknown id scheme %q", cfg.idScheme)
	}

	s := store.New(backend, storeOpts...)

	return &App{
		backend:     backend,
		store:       s,
		TaskService: taskservice.NewService(s),
		ListService: listservice.NewService(s),
		TagService:  tagservice.NewService(s),
	}, nil
}

// Store returns the underlying task store for direct access.
// Used by the reset command and by tests.
func (a *App) Store() *store.Store {
	return a.store
}

// Close releases the storage backend
func (a *App) Close() error {
	if a.backend == nil {
		return nil
	}
	return a.backend.Close()
}
