package tui

import (
	"fmt"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/tui/components"
	"github.com/thenoetrevino/etapa/internal/tui/layers"
	"github.com/thenoetrevino/etapa/internal/tui/notifications"
	"github.com/thenoetrevino/etapa/internal/tui/state"
)

// View renders the board with its overlays.
// This implements the "View" part of the Model-View-Update pattern.
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if !m.UiState.Ready() {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{lipgloss.NewLayer(m.renderBase())}
	if ghost := m.renderGhostLayer(); ghost != nil {
		stack = append(stack, ghost)
	}

	var modal *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.DetailMode:
		if c, ok := m.findCard(m.UiState.DetailCardID()); ok {
			modal = layers.CreateCenteredLayer(components.RenderDetail(c, m.UiState.Width()), m.UiState.Width(), m.UiState.Height())
		}
	case state.HelpMode:
		modal = layers.CreateCenteredLayer(components.RenderHelp(m.keys.bindings()), m.UiState.Width(), m.UiState.Height())
	}
	if modal != nil {
		stack = append(stack, modal)
	}

	if n := m.Notifications.Latest(); n != nil && n.Severity == notifications.Error {
		banner := notifications.Render(*n)
		x, y := layers.TopRightPosition(banner, m.UiState.Width())
		stack = append(stack, lipgloss.NewLayer(banner).X(x).Y(y+state.HeaderHeight))
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

// renderBase renders header, columns and status bar
func (m *Model) renderBase() string {
	width := m.UiState.Width()

	header := components.TitleStyle.Render(" etapa ") +
		components.SubtleStyle.Render(fmt.Sprintf("· %d candidates", len(m.cards)))

	statusBar := components.RenderStatusBar(components.StatusBarProps{
		Width:        width,
		Indicator:    m.engine.MoveIndicator(),
		Notification: m.Notifications.Latest(),
		Dragging:     m.dragMoved(),
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		ansi.Truncate(header, width, ""),
		m.renderColumns(),
		ansi.Truncate(statusBar, width, ""),
	)
}

// renderColumns renders every stage column side by side and cuts out the
// visible window at the current scroll offset
func (m *Model) renderColumns() string {
	height := m.UiState.BoardHeight()
	if height == 0 {
		return ""
	}

	var draggedID string
	dropTarget := models.StageNone
	if snap, ok := m.engine.Session(); ok && snap.Moved {
		draggedID = snap.CardID
		if snap.HasHover() && snap.Hovered != snap.Origin {
			dropTarget = snap.Hovered
		}
	}

	gap := strings.TrimSuffix(strings.Repeat(" \n", height), "\n")
	parts := make([]string, 0, 2*len(models.Stages()))
	for i, info := range models.StageInfos() {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, components.RenderColumn(components.ColumnProps{
			Stage:      info,
			Cards:      m.byStage[info.Stage],
			Height:     height,
			DropTarget: info.Stage == dropTarget,
			DraggedID:  draggedID,
		}))
	}
	full := lipgloss.JoinHorizontal(lipgloss.Top, parts...)

	left := m.board.offset()
	right := left + m.UiState.Width()
	lines := strings.Split(full, "\n")
	for i, line := range lines {
		lines[i] = ansi.Cut(line, left, right)
	}
	return strings.Join(lines, "\n")
}

// renderGhostLayer renders the dragged card next to the pointer
func (m *Model) renderGhostLayer() *lipgloss.Layer {
	snap, ok := m.engine.Session()
	if !ok || !snap.Moved {
		return nil
	}
	c, ok := m.findCard(snap.CardID)
	if !ok {
		return nil
	}
	return layers.CreateFloatingLayer(components.RenderGhost(c),
		int(math.Round(m.pointer.X)), int(math.Round(m.pointer.Y)),
		m.UiState.Width(), m.UiState.Height())
}

// dragMoved reports whether a drag has left its dead zone
func (m *Model) dragMoved() bool {
	snap, ok := m.engine.Session()
	return ok && snap.Moved
}
