package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// fit truncates s to width cells with an ellipsis and pads it with spaces
// to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) > width {
		s = ansi.Truncate(s, width, "…")
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// center pads s on both sides to width cells
func center(s string, width int) string {
	s = fit(s, width)
	trimmed := strings.TrimRight(s, " ")
	left := (width - lipgloss.Width(trimmed)) / 2
	return fit(strings.Repeat(" ", left)+trimmed, width)
}
