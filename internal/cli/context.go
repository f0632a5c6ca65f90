package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/services/card"
)

// CLI represents the CLI application context
type CLI struct {
	*app.App
	Config *config.Config
}

// NewCLI builds the card service from the board settings
func NewCLI(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*CLI, error) {
	if logger == nil {
		logger = slog.Default()
	}

	a, err := app.New(ctx, card.NewSource(cfg.Board.CardsFile), app.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &CLI{App: a, Config: cfg}, nil
}

type cliContextKey struct{}

// ErrNoCLI is returned when a command runs without an initialized CLI
var ErrNoCLI = errors.New("cli not initialized")

// WithCLI stores the CLI in ctx for subcommands
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliContextKey{}, c)
}

// GetCLIFromContext retrieves the CLI stored by WithCLI
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	c, ok := ctx.Value(cliContextKey{}).(*CLI)
	if !ok || c == nil {
		return nil, ErrNoCLI
	}
	return c, nil
}
