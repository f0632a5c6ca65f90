package tui

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/tui/notifications"
	"github.com/thenoetrevino/etapa/internal/tui/state"
	"github.com/thenoetrevino/etapa/internal/watcher"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.handleResize(msg)

	case refreshMsg:
		m.engine.FlushRefresh(msg.token)
		return m, nil

	case cardsLoadedMsg:
		if msg.err != nil {
			m.logger.Error("failed to load cards", "error", msg.err)
			m.notify(notifications.Error, fmt.Sprintf("Failed to load cards: %v", msg.err))
			return m, nil
		}
		return m, m.setCards(msg.cards)

	case cardMovedMsg:
		return m, m.handleCardMoved(msg)

	case CardsFileChangedMsg:
		m.logger.Info("cards file changed, reloading")
		return m, m.reload()

	case CardsFileErrorMsg:
		m.logger.Warn("cards file watch error", "error", msg.Err)
		if errors.Is(msg.Err, watcher.ErrFileRemoved) {
			m.notify(notifications.Error, "Cards file was removed, keeping current cards")
		} else {
			m.notify(notifications.Error, fmt.Sprintf("Cards file watch error: %v", msg.Err))
		}
		return m, nil

	case frameMsg:
		m.frameScheduled = false
		m.engine.Tick()
		return m, m.maybeScheduleFrame()

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg.Mouse())

	case tea.MouseMotionMsg:
		return m, m.handleMouseMotion(msg.Mouse())

	case tea.MouseReleaseMsg:
		return m, m.handleMouseRelease(msg.Mouse())

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

// ============================================================================
// Layout events
// ============================================================================

func (m *Model) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	firstLayout := !m.UiState.Ready()
	m.UiState.SetSize(msg.Width, msg.Height)

	token := m.engine.OnViewportResize()
	if firstLayout {
		// Nothing can be dragged before the first layout, so measure now
		m.engine.FlushRefresh(token)
		return nil
	}
	return scheduleRefresh(token, m.engine.RefreshDelay())
}

func (m *Model) handleCardMoved(msg cardMovedMsg) tea.Cmd {
	if msg.err == nil {
		return nil
	}

	m.stats.IncMoveFailures()
	m.logger.Error("failed to move card", "card_id", msg.cardID, "stage", msg.stage, "error", msg.err)
	switch {
	case errors.Is(msg.err, models.ErrCardNotFound):
		m.notify(notifications.Error, "Card no longer exists")
	default:
		m.notify(notifications.Error, fmt.Sprintf("Failed to move card to %s", msg.stage.DisplayName()))
	}
	// Re-list the store so only the rejected card snaps back
	return loadCards(m.ctx, m.service)
}

// ============================================================================
// Mouse events
// ============================================================================

func toPoint(mouse tea.Mouse) dragdrop.Point {
	return dragdrop.Point{X: float64(mouse.X), Y: float64(mouse.Y)}
}

func (m *Model) handleMouseClick(mouse tea.Mouse) tea.Cmd {
	switch m.UiState.Mode() {
	case state.DetailMode, state.HelpMode:
		m.UiState.SetMode(state.BoardMode)
		return nil
	}
	if mouse.Button != tea.MouseLeft {
		return nil
	}

	c, ok := m.board.cardAt(mouse.X, mouse.Y, m.byStage)
	if !ok {
		return nil
	}

	m.pointer = toPoint(mouse)
	if err := m.engine.OnPointerDown(c.ID, c.Stage, m.pointer); err != nil {
		m.logger.Error("failed to start drag", "card_id", c.ID, "error", err)
		return nil
	}
	m.stats.IncDragsStarted()
	return nil
}

func (m *Model) handleMouseMotion(mouse tea.Mouse) tea.Cmd {
	if !m.engine.Dragging() {
		return nil
	}
	m.pointer = toPoint(mouse)
	m.engine.OnPointerMove(m.pointer)
	return m.maybeScheduleFrame()
}

func (m *Model) handleMouseRelease(mouse tea.Mouse) tea.Cmd {
	if !m.engine.Dragging() {
		return nil
	}
	m.pointer = toPoint(mouse)
	m.engine.OnPointerMove(m.pointer)

	outcome := m.engine.OnPointerUp()
	if outcome == dragdrop.OutcomeCancelled {
		m.stats.IncCancelled()
	}
	m.logger.Debug("drag finished", "outcome", outcome)
	return m.flushPending()
}

// maybeScheduleFrame keeps autoscroll frames coming while the engine has
// a non-zero velocity. At most one frame is in flight.
func (m *Model) maybeScheduleFrame() tea.Cmd {
	if m.frameScheduled || !m.engine.Dragging() || !m.engine.Autoscrolling() {
		return nil
	}
	m.frameScheduled = true
	return scheduleFrame(m.cfg.Board.FrameInterval)
}

// ============================================================================
// Keyboard events
// ============================================================================

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch m.UiState.Mode() {
	case state.DetailMode:
		if key.Matches(msg, m.keys.CloseDetail) {
			m.UiState.SetMode(state.BoardMode)
		}
		return nil
	case state.HelpMode:
		if key.Matches(msg, m.keys.Help, m.keys.CloseDetail, m.keys.CancelDrag) {
			m.UiState.SetMode(state.BoardMode)
		}
		return nil
	}

	if m.engine.Dragging() {
		if key.Matches(msg, m.keys.CancelDrag) {
			if m.engine.Cancel() == dragdrop.OutcomeCancelled {
				m.stats.IncCancelled()
			}
			m.logger.Debug("drag cancelled")
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.ScrollLeft):
		m.engine.SetScrollOffset(m.engine.ScrollOffset() - columnStride)
	case key.Matches(msg, m.keys.ScrollRight):
		m.engine.SetScrollOffset(m.engine.ScrollOffset() + columnStride)
	case key.Matches(msg, m.keys.Reload):
		m.notify(notifications.Info, "Reloading cards")
		return m.reload()
	case key.Matches(msg, m.keys.Help):
		m.UiState.SetMode(state.HelpMode)
	}
	return nil
}
