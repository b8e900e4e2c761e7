package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/garuka-satharasinghe/StreamBox/internal/auth"
	"github.com/garuka-satharasinghe/StreamBox/internal/config"
	"github.com/garuka-satharasinghe/StreamBox/internal/persist"
	"github.com/garuka-satharasinghe/StreamBox/internal/state"
	"github.com/garuka-satharasinghe/StreamBox/internal/tmdb"
	"github.com/garuka-satharasinghe/StreamBox/internal/ui"
)

// Options configure the StreamBox application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/streambox/config.toml
}

// Run boots the StreamBox TUI until the context is cancelled or the user
// quits. The persisted snapshot is hydrated before the UI is constructed,
// so the first frame already reflects the stored session, favorites, and
// theme.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg.LogPath)
	defer func() { _ = logger.Sync() }()

	catalog, err := tmdb.NewClient(cfg.CatalogURL, cfg.ImageURL, cfg.APIKey, logger)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}
	authClient, err := auth.NewClient(cfg.AuthURL, logger)
	if err != nil {
		return fmt.Errorf("init auth client: %w", err)
	}

	store := state.NewStore()

	// Persistence gate: the UI does not exist until this resolves or the
	// ceiling expires.
	hydrate(store, cfg.StatePath, hydrateTimeout, logger)

	writer := persist.NewWriter(cfg.StatePath, 0, logger)
	store.OnChange(writer.Enqueue)
	defer writer.Flush()

	uiOpts := ui.Options{
		Context: ctx,
		Catalog: catalog,
		Auth:    authClient,
		Store:   store,
		Logger:  logger,
	}
	return ui.Run(uiOpts)
}

// newLogger builds the file-backed logger. The TUI owns the terminal, so
// nothing may write to stdout or stderr; when the log file cannot be set up
// the logger degrades to a no-op rather than corrupting the screen.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
