package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/tui/notifications"
)

type StatusBarProps struct {
	Width        int
	Indicator    *dragdrop.MoveIndicator
	Notification *notifications.Notification
	Dragging     bool
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: move indicator while dragging, otherwise the app title
// Right side: latest notification, or "press ? for help"
func RenderStatusBar(props StatusBarProps) string {
	var left string
	switch {
	case props.Indicator != nil:
		left = IndicatorStyle.Render(props.Indicator.Direction.Glyph() + " " + props.Indicator.String())
	case props.Dragging:
		left = SubtleStyle.Render("drop on another stage to move · esc to cancel")
	default:
		left = SubtleStyle.Render("etapa · recruitment pipeline")
	}

	right := SubtleStyle.Render("press ? for help")
	if props.Notification != nil {
		right = notifications.RenderInline(*props.Notification)
	}

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
