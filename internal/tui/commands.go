package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/card"
)

// loadCards fetches the card set from the service
func loadCards(ctx context.Context, svc card.Service) tea.Cmd {
	return func() tea.Msg {
		cards, err := svc.List(ctx)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

// reloadCards re-reads the seed source, then fetches the card set
func reloadCards(ctx context.Context, svc card.Service) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Reload(ctx); err != nil {
			return cardsLoadedMsg{err: err}
		}
		cards, err := svc.List(ctx)
		return cardsLoadedMsg{cards: cards, err: err}
	}
}

// moveCard persists a committed stage change
func moveCard(ctx context.Context, svc card.Service, cardID string, stage models.Stage) tea.Cmd {
	return func() tea.Msg {
		err := svc.MoveToStage(ctx, cardID, stage)
		return cardMovedMsg{cardID: cardID, stage: stage, err: err}
	}
}

// scheduleRefresh flushes a debounced geometry refresh after delay
func scheduleRefresh(token dragdrop.RefreshToken, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return refreshMsg{token: token}
	})
}

// scheduleFrame requests the next autoscroll frame
func scheduleFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
