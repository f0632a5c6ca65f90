package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/etapa/internal/services/card"
)

// App holds the application services shared by the board and the CLI.
type App struct {
	// Cards is the pipeline card store
	Cards card.Service

	// Stats counts what happened on the board during this session
	Stats *Stats

	Logger *slog.Logger
}

// New creates the application container, loading cards from source.
func New(ctx context.Context, source card.Source, opts ...Option) (*App, error) {
	cfg := &appConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	if cfg.stats == nil {
		cfg.stats = NewStats()
	}

	svc, err := card.NewService(ctx, source, cfg.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cards: %w", err)
	}

	return &App{
		Cards:  svc,
		Stats:  cfg.stats,
		Logger: cfg.logger,
	}, nil
}

// Close records the session summary.
func (a *App) Close() error {
	a.Logger.Info("board session finished", "stats", a.Stats.Snapshot())
	return nil
}
