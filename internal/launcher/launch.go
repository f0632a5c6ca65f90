// Package launcher runs the interactive pipeline board
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/etapa/internal/cli"
	"github.com/thenoetrevino/etapa/internal/tui"
	"github.com/thenoetrevino/etapa/internal/watcher"
	"golang.org/x/sync/errgroup"
)

// Sender delivers messages into a running program
type Sender interface {
	Send(msg tea.Msg)
}

// Launch starts the board and, when configured, the cards file watcher.
// Both stop when the board exits or the process is interrupted.
func Launch(ctx context.Context, c *cli.CLI) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	defer func() {
		if err := c.Close(); err != nil {
			c.Logger.Error("error closing app", "error", err)
		}
	}()

	model := tui.New(ctx, c.App, c.Config)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	})

	if c.Config.Board.Watch() {
		g.Go(func() error {
			return WatchCards(gctx, c.Config.Board.CardsFile, p, c.Logger)
		})
	}

	return g.Wait()
}

// WatchCards forwards cards file changes and watch errors to the board until
// ctx is done. A watcher that cannot be created or started is logged and the
// board keeps running without live reloads.
func WatchCards(ctx context.Context, path string, board Sender, logger *slog.Logger, opts ...watcher.WatcherOption) error {
	opts = append([]watcher.WatcherOption{
		watcher.WithLogger(logger),
		watcher.WithOnError(func(err error) {
			board.Send(tui.CardsFileErrorMsg{Err: err})
		}),
	}, opts...)

	w, err := watcher.NewWatcher(path, opts...)
	if err != nil {
		logger.Warn("cards file watcher unavailable", "path", path, "error", err)
		return nil
	}

	err = w.Run(ctx, func() {
		board.Send(tui.CardsFileChangedMsg{})
	})
	if err != nil {
		logger.Warn("cards file watcher unavailable", "path", w.Path(), "error", err)
	}
	return nil
}
