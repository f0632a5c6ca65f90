package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/tui/theme"
)

// RenderCard renders a single candidate as a card
//
//	╭──────────────────────────╮
//	│ {Name}                   │
//	│ {Role} · {Company}       │
//	╰──────────────────────────╯
//
// Always CardWidth x CardHeight cells. A dragged card stays in its origin
// column, dimmed, until the stage change lands.
func RenderCard(card models.Card, dragged bool) string {
	bg := theme.CardBg
	if dragged {
		bg = theme.DraggedBg
	}
	inner := CardWidth - 2

	name := lipgloss.NewStyle().
		Bold(!dragged).
		Background(lipgloss.Color(bg)).
		Render(fit(" "+card.Name, inner))

	meta := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(fit(" "+cardSubtitle(card), inner))

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if dragged {
		style = style.BorderForeground(lipgloss.Color(theme.Subtle))
	}

	return style.Render(name + "\n" + meta)
}

// RenderGhost renders the floating copy of a card that follows the pointer
func RenderGhost(card models.Card) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.DropBorder)).
		Foreground(lipgloss.Color(theme.Normal)).
		Bold(true).
		Render(fit(" "+card.Name+" ", min(lipgloss.Width(card.Name)+2, CardWidth-2)))
}

func cardSubtitle(card models.Card) string {
	parts := make([]string, 0, 2)
	if card.Role != "" {
		parts = append(parts, card.Role)
	}
	if card.Company != "" {
		parts = append(parts, card.Company)
	}
	if len(parts) == 0 {
		return "no role"
	}
	return strings.Join(parts, " · ")
}
