package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/menulint/internal/config"
	"github.com/vk/menulint/internal/ctxlog"
	"github.com/vk/menulint/internal/fetch"
	"github.com/vk/menulint/internal/menu"
)

// Fetcher acquires the flat node list for a run. The core is agnostic to
// how the collection is obtained; tests substitute their own implementation
// or point the default one at an httptest server.
type Fetcher interface {
	FetchAll(ctx context.Context, url string) ([]menu.Node, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	cfg     *Config
	model   *config.Model
	fetcher Fetcher
}

// NewApp is the constructor for the main application. It builds an isolated
// logger, loads the optional config file through the given loader, overlays
// flag values on top of it, and wires the default fetch client unless one
// is injected.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, fetchers ...Fetcher) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if cfg.ConfigPath != "" {
		loaded, err := loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model = loaded
		logger.Debug("Configuration file merged into model.", "path", cfg.ConfigPath)
	}

	// Flags win over file values; defaults fill in the rest.
	if cfg.SourceURL != "" {
		model.SourceURL = cfg.SourceURL
	}
	if cfg.ChallengeID != 0 {
		model.ChallengeID = cfg.ChallengeID
	}
	if cfg.MaxDepth != 0 {
		model.MaxDepth = cfg.MaxDepth
	}
	if cfg.Orphans != "" {
		model.Orphans = config.OrphanPolicy(cfg.Orphans)
	}
	if cfg.Timeout != 0 {
		model.Timeout = cfg.Timeout
	}
	model.ApplyDefaults()
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("Configuration model resolved.",
		"url", model.ResolveURL(), "max_depth", model.MaxDepth, "orphans", string(model.Orphans))

	var fetcher Fetcher = fetch.New(model.Timeout)
	if len(fetchers) > 0 && fetchers[0] != nil {
		fetcher = fetchers[0]
	}

	return &App{
		outW:    outW,
		logger:  logger,
		cfg:     cfg,
		model:   model,
		fetcher: fetcher,
	}, nil
}

// Model returns the resolved configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
