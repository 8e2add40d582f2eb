package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/vmunix/couchtv/internal/config"
	"github.com/vmunix/couchtv/internal/metadata"
	"github.com/vmunix/couchtv/internal/migrations"
	"github.com/vmunix/couchtv/internal/providers/tmdb"
	"github.com/vmunix/couchtv/internal/providers/tvdb"
	"github.com/vmunix/couchtv/internal/source"
	"github.com/vmunix/couchtv/internal/watchlist"
	"github.com/vmunix/couchtv/pkg/provider"
)

// app holds everything a command needs, built from the loaded config.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	db        *sql.DB
	registry  *source.Registry
	selection *source.Selection
	metadata  *metadata.Service
	watchlist *watchlist.Store

	closers []io.Closer
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.Discover()
	if err != nil {
		return "", fmt.Errorf("%w; run 'couchtv config init'", err)
	}
	return path, nil
}

func newApp(ctx context.Context) (*app, error) {
	path, err := resolveConfigPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}
	var logCloser io.Closer
	a.log, logCloser = newLogger(cfg.Log, logLevel, os.Stderr)
	a.closers = append(a.closers, logCloser)

	if err := a.openDB(ctx); err != nil {
		a.Close()
		return nil, err
	}

	providers, err := buildProviders(cfg, a.log)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.registry, err = source.NewRegistry(providers...)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.selection = source.NewSelection(a.registry, a.log.With("component", "selection"),
		source.WithAttempts(uint(cfg.Selection.Attempts)),
		source.WithDelay(cfg.Selection.Delay),
	)
	if cfg.Selection.Provider != "" {
		a.selection.Select(cfg.Selection.Provider)
	}

	a.metadata = metadata.NewService(metadata.NewCache(a.db), cfg.Cache.DetailsTTL, a.log.With("component", "metadata"))
	a.watchlist = watchlist.NewStore(a.db)
	return a, nil
}

func (a *app) openDB(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(a.cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", a.cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	a.closers = append(a.closers, db)
	a.db = db
	return migrations.Apply(ctx, db)
}

// buildProviders constructs every enabled content provider in
// registration order.
func buildProviders(cfg *config.Config, log *slog.Logger) ([]provider.Provider, error) {
	var providers []provider.Provider
	for _, name := range cfg.EnabledProviders() {
		switch name {
		case tmdb.Name:
			t := cfg.Providers.TMDB
			client := tmdb.NewClient(t.APIKey,
				tmdb.WithBaseURL(t.BaseURL),
				tmdb.WithCacheTTL(cfg.Cache.ClientTTL),
				tmdb.WithLogger(log.With("component", "tmdb")),
			)
			providers = append(providers, tmdb.NewProvider(client, log.With("component", "tmdb"),
				tmdb.WithSeasonConcurrency(t.SeasonConcurrency)))
		case tvdb.Name:
			t := cfg.Providers.TVDB
			client := tvdb.NewClient(t.APIKey,
				tvdb.WithBaseURL(t.BaseURL),
				tvdb.WithLogger(log.With("component", "tvdb")),
			)
			providers = append(providers, tvdb.NewProvider(client, log.With("component", "tvdb")))
		default:
			return nil, fmt.Errorf("unknown provider %q", name)
		}
	}
	return providers, nil
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.log != nil {
			a.log.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}

// currentProvider resolves the provider a command runs against: the one
// named by flag, or the selection's current provider once available.
func (a *app) currentProvider(ctx context.Context, name string) (provider.Provider, error) {
	if name != "" {
		return a.registry.Get(name)
	}
	p, err := a.selection.Await(ctx)
	if errors.Is(err, source.ErrNoneAvailable) {
		return nil, fmt.Errorf("no content provider available: %w", err)
	}
	return p, err
}
