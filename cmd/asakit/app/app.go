// Package app provides the application context and dependency management
// for the asakit CLI. It centralizes configuration, logging and the lazily
// created API clients the commands share.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/internal/diandian"
	"github.com/asakit/asakit/internal/llm"
	"github.com/asakit/asakit/internal/searchads"
	"github.com/asakit/asakit/pkg/errors"
)

// App represents the asakit application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Clients (lazy-initialized, singletons)
	mu        sync.Mutex
	llm       *llm.Client
	campaigns application.Campaigns
	pages     diandian.PageSource
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the default locations unless WithConfig
// replaces it.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
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

// OutputFormat returns the output format selected by --format or config.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Defaults returns the import defaults from the configuration.
func (a *App) Defaults() application.Defaults {
	return application.Defaults{
		CampaignID: a.config.CampaignID,
		AdGroupID:  a.config.AdGroupID,
		InputDir:   a.config.InputDir,
		OutputDir:  a.config.OutputDir,
	}
}

// LLM returns the language model client, creating it on first use.
// Missing API keys surface here, not at start-up.
func (a *App) LLM(ctx context.Context) (*llm.Client, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.llm != nil {
		return a.llm, nil
	}

	client, err := llm.NewFromConfig(ctx, a.config.LLM, llm.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.llm = client
	return client, nil
}

// Campaigns returns the Apple Search Ads client, creating it on first use.
func (a *App) Campaigns() (application.Campaigns, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.campaigns != nil {
		return a.campaigns, nil
	}

	client, err := searchads.New(a.config.AppleAds, searchads.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.campaigns = client
	return client, nil
}

// PageSource returns the headless browser used to load diandian pages.
func (a *App) PageSource() diandian.PageSource {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pages == nil {
		a.pages = diandian.NewFetcher(a.logger)
	}
	return a.pages
}

// Shutdown releases the clients. Browsers are started per fetch and are
// already gone by the time a command returns.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.llm = nil
	a.campaigns = nil
	a.pages = nil
	return nil
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

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
