// Package app provides the application context and dependency management
// for the modelatlas CLI. It follows idiomatic Go patterns for CLI
// applications by centralizing configuration, dependency injection, and
// lifecycle management.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/modelatlas/modelatlas"
	"github.com/modelatlas/modelatlas/pkg/errors"
)

// App represents the modelatlas application with all its dependencies.
// It provides a centralized place for configuration, logging, and the
// atlas instance, following the dependency injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Atlas instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	atlas *modelatlas.Atlas
}

// New creates a new App instance with the given version information.
// The app is initialized with default configuration that can be
// customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Atlas returns the atlas instance, creating it lazily if needed.
// This is thread-safe and ensures only one instance is created.
func (a *App) Atlas() (*modelatlas.Atlas, error) {
	a.mu.RLock()
	if a.atlas != nil {
		atlas := a.atlas
		a.mu.RUnlock()
		return atlas, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.atlas != nil {
		return a.atlas, nil
	}

	opts := a.buildAtlasOptions()
	atlas, err := modelatlas.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "atlas", "", err)
	}

	a.atlas = atlas
	return atlas, nil
}

// AtlasWithOptions returns a new atlas instance with custom options.
// This is useful for commands that need specific configurations different
// from the default app instance (e.g., validate with a custom path).
func (a *App) AtlasWithOptions(opts ...modelatlas.Option) (*modelatlas.Atlas, error) {
	atlas, err := modelatlas.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "atlas", "with custom options", err)
	}
	return atlas, nil
}

// buildAtlasOptions constructs atlas options from the app configuration.
func (a *App) buildAtlasOptions() []modelatlas.Option {
	var opts []modelatlas.Option

	// A configured local catalog path overrides the embedded catalog.
	if a.config.CatalogPath != "" {
		opts = append(opts, modelatlas.WithPath(a.config.CatalogPath))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithAtlas sets a custom atlas instance (useful for testing).
func WithAtlas(atlas *modelatlas.Atlas) Option {
	return func(a *App) error {
		a.atlas = atlas
		return nil
	}
}
