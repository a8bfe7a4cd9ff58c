package app

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger       *slog.Logger
	clock        func() time.Time
	location     *time.Location
	idScheme     string
	checkRefs    bool
	noSampleData bool
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithClock replaces time.Now for timestamps, IDs and date views
func WithClock(clock func() time.Time) Option {
	return func(cfg *appConfig) {
		cfg.clock = clock
	}
}

// WithLocation sets the timezone that defines "today"
func WithLocation(loc *time.Location) Option {
	return func(cfg *appConfig) {
		cfg.location = loc
	}
}

// WithIDScheme selects the identifier generator ("timestamp" or "uuid")
func WithIDScheme(scheme string) Option {
	return func(cfg *appConfig) {
		cfg.idScheme = scheme
	}
}

// WithReferentialChecks rejects tasks that name unknown lists or tags
func WithReferentialChecks(enabled bool) Option {
	return func(cfg *appConfig) {
		cfg.checkRefs = enabled
	}
}

// WithoutSampleTasks stops an empty store from being seeded with demo tasks.
// Default lists and tags are still seeded.
func WithoutSampleTasks() Option {
	return func(cfg *appConfig) {
		cfg.noSampleData = true
	}
}
