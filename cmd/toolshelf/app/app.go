// Package app provides the application context and dependency management
// for the toolshelf CLI. Configuration, logging and the Toolshelf instance
// are created here and handed to commands through the context.Context
// interface.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/toolshelf"
	appcontext "github.com/agentstation/toolshelf/cmd/toolshelf/context"
	"github.com/agentstation/toolshelf/pkg/errors"
	"github.com/agentstation/toolshelf/pkg/logging"
)

// App represents the toolshelf application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Toolshelf instance (lazy-initialized, singleton)
	mu    sync.RWMutex
	shelf toolshelf.Toolshelf
}

// Ensure App implements the command context at compile time.
var _ appcontext.Context = (*App)(nil)

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config files and can
// be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig()
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
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

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Toolshelf returns the toolshelf instance. Without options the cached
// instance is returned, creating it lazily; with options a new instance
// is built from the configuration plus the overrides.
func (a *App) Toolshelf(opts ...toolshelf.Option) (toolshelf.Toolshelf, error) {
	if len(opts) > 0 {
		shelf, err := toolshelf.New(append(a.toolshelfOptions(), opts...)...)
		if err != nil {
			return nil, errors.WrapResource("create", "toolshelf", "with custom options", err)
		}
		return shelf, nil
	}

	a.mu.RLock()
	if a.shelf != nil {
		shelf := a.shelf
		a.mu.RUnlock()
		return shelf, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.shelf != nil {
		return a.shelf, nil
	}

	shelf, err := toolshelf.New(a.toolshelfOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "toolshelf", "", err)
	}
	a.shelf = shelf
	return shelf, nil
}

// toolshelfOptions constructs toolshelf options from the app configuration.
func (a *App) toolshelfOptions() []toolshelf.Option {
	opts := []toolshelf.Option{
		toolshelf.WithCatalogPath(a.config.CatalogPath),
		toolshelf.WithDocumentPath(a.config.DocumentPath),
		toolshelf.WithRenderTags(a.config.RenderTags),
		toolshelf.WithRenderNotes(a.config.RenderNotes),
		toolshelf.WithLogger(a.logger),
	}
	if a.config.StartMarker != "" || a.config.EndMarker != "" {
		opts = append(opts, toolshelf.WithMarkers(a.config.StartMarker, a.config.EndMarker))
	}
	if a.config.RenderMode != "" {
		opts = append(opts, toolshelf.WithRenderMode(a.config.RenderMode))
	}
	if a.config.SortOrder != "" {
		opts = append(opts, toolshelf.WithSortOrder(a.config.SortOrder))
	}
	return opts
}

// reset drops the cached toolshelf and rebuilds the logger after flags
// have been parsed.
func (a *App) reset() {
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	a.mu.Lock()
	a.shelf = nil
	a.mu.Unlock()
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
