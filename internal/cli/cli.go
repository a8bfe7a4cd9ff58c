package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/todo/internal/app"
	"github.com/thenoetrevino/todo/internal/cli/styles"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/database"
)

type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config

	// borrowed is set when App came from the context; Close leaves it open
	borrowed bool
}

// NewCLI opens the configured storage backend and builds the app
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	backend, err := database.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}

	application, err := app.New(backend,
		app.WithLogger(slog.Default()),
		app.WithIDScheme(cfg.IDScheme),
		app.WithReferentialChecks(!cfg.LooseReferences),
	)
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	return &CLI{App: application, Config: cfg}, nil
}

// ContextWithApp makes commands run against application instead of opening
// storage themselves
func ContextWithApp(ctx context.Context, application *app.App) context.Context {
	return context.WithValue(ctx, appKey, application)
}

// ContextWithConfig hands an already loaded config to commands
func ContextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the config stored by ContextWithConfig, or
// loads it from disk
func ConfigFromContext(ctx context.Context) (*config.Config, error) {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok && cfg != nil {
		return cfg, nil
	}
	return config.Load()
}

// GetCLIFromContext returns a CLI around the app stored in ctx, or builds a
// new one from config
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	cfg, err := ConfigFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if application, ok := ctx.Value(appKey).(*app.App); ok && application != nil {
		return &CLI{App: application, Config: cfg, borrowed: true}, nil
	}
	return NewCLI(ctx, cfg)
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.borrowed {
		return nil
	}
	return c.App.Close()
}

// Lookup loads lists and tags for rendering task chips
func (c *CLI) Lookup(ctx context.Context) (styles.Lookup, error) {
	lists, err := c.App.ListService.GetLists(ctx)
	if err != nil {
		return styles.Lookup{}, err
	}
	tags, err := c.App.TagService.GetTags(ctx)
	if err != nil {
		return styles.Lookup{}, err
	}
	return styles.NewLookup(lists, tags), nil
}

// Now returns the current time as the store sees it
func (c *CLI) Now() time.Time {
	return c.App.Store().Now()
}
