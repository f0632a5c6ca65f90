// Package tui hosts the pipeline board: it lays out stage columns in the
// terminal, feeds mouse input to the drag engine and renders its state.
package tui

import (
	"context"
	"log/slog"
	"slices"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/etapa/internal/app"
	"github.com/thenoetrevino/etapa/internal/config"
	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/services/card"
	"github.com/thenoetrevino/etapa/internal/tui/components"
	"github.com/thenoetrevino/etapa/internal/tui/notifications"
	"github.com/thenoetrevino/etapa/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	service card.Service
	stats   *app.Stats
	logger  *slog.Logger
	keys    keyMap

	UiState       *state.UIState
	Notifications *state.NotificationState

	board  *board
	engine *dragdrop.Engine

	cards   []models.Card
	byStage map[models.Stage][]models.Card

	// pointer is the last mouse cell seen during a drag
	pointer dragdrop.Point

	// pending collects commands produced by engine callbacks during one Update
	pending []tea.Cmd

	frameScheduled bool
}

// New creates the board model. The card set is loaded by Init.
func New(ctx context.Context, a *app.App, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := a.Logger
	if logger == nil {
		logger = slog.Default()
	}
	stats := a.Stats
	if stats == nil {
		stats = app.NewStats()
	}
	components.InitStyles(cfg.ColorScheme)

	m := &Model{
		ctx:           ctx,
		cfg:           cfg,
		service:       a.Cards,
		stats:         stats,
		logger:        logger,
		keys:          newKeyMap(cfg.KeyMappings),
		UiState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		byStage:       map[models.Stage][]models.Card{},
	}

	m.board = &board{ui: m.UiState}
	m.engine = dragdrop.New(m.board,
		dragdrop.WithLogger(logger),
		dragdrop.WithAutoscroll(dragdrop.AutoscrollConfig{
			EdgeRatio: cfg.Board.Autoscroll.EdgeRatio,
			MinSpeed:  cfg.Board.Autoscroll.MinSpeed,
			MaxSpeed:  cfg.Board.Autoscroll.MaxSpeed,
		}),
		dragdrop.WithDragThreshold(cfg.Board.DragThreshold),
		dragdrop.WithRefreshDelay(cfg.Board.RefreshDebounce),
		dragdrop.WithStageChangeHandler(m.handleStageChange),
		dragdrop.WithCardActivatedHandler(m.handleCardActivated),
	)
	m.board.engine = m.engine

	return m
}

// Init loads the card set
func (m *Model) Init() tea.Cmd {
	return loadCards(m.ctx, m.service)
}

// reload re-reads the card set from the store
func (m *Model) reload() tea.Cmd {
	m.stats.IncReloads()
	return reloadCards(m.ctx, m.service)
}

// Engine exposes the drag engine
func (m *Model) Engine() *dragdrop.Engine {
	return m.engine
}

// Cards returns the cards as currently shown
func (m *Model) Cards() []models.Card {
	return slices.Clone(m.cards)
}

// CardsIn returns the cards shown in a stage column, top to bottom
func (m *Model) CardsIn(stage models.Stage) []models.Card {
	return slices.Clone(m.byStage[stage])
}

// findCard looks a card up by id in the shown card set
func (m *Model) findCard(cardID string) (models.Card, bool) {
	idx := slices.IndexFunc(m.cards, func(c models.Card) bool { return c.ID == cardID })
	if idx < 0 {
		return models.Card{}, false
	}
	return m.cards[idx], true
}

// setCards replaces the shown card set and schedules a geometry refresh
func (m *Model) setCards(cards []models.Card) tea.Cmd {
	m.cards = cards
	m.byStage = models.CardsByStage(cards)

	if id := m.UiState.DetailCardID(); id != "" {
		if _, ok := m.findCard(id); !ok {
			m.UiState.SetMode(state.BoardMode)
		}
	}

	token := m.engine.OnCardSetChanged(cards)
	return scheduleRefresh(token, m.engine.RefreshDelay())
}

// handleStageChange is the engine's stage change collaborator. The card moves
// locally right away; a failed save reloads the card set, which puts it back.
func (m *Model) handleStageChange(cardID string, stage models.Stage) {
	idx := slices.IndexFunc(m.cards, func(c models.Card) bool { return c.ID == cardID })
	if idx >= 0 {
		moved := m.cards[idx]
		moved.Stage = stage
		cards := append(slices.Delete(slices.Clone(m.cards), idx, idx+1), moved)
		m.pending = append(m.pending, m.setCards(cards))
	}
	m.stats.IncStageChanges()
	m.pending = append(m.pending, moveCard(m.ctx, m.service, cardID, stage))
}

// handleCardActivated opens the detail overlay for a clicked card
func (m *Model) handleCardActivated(cardID string) {
	m.stats.IncActivations()
	m.UiState.OpenDetail(cardID)
}

// flushPending drains commands queued by engine callbacks
func (m *Model) flushPending(cmds ...tea.Cmd) tea.Cmd {
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) notify(severity notifications.Severity, message string) {
	m.Notifications.Add(severity, message)
}
