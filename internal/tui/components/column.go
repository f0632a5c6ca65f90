package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/tui/theme"
)

// ColumnProps describes one stage column
type ColumnProps struct {
	Stage      models.StageInfo
	Cards      []models.Card
	Height     int    // outer height including borders
	DropTarget bool   // hovered by an active drag over another stage
	DraggedID  string // card being dragged, rendered dimmed
}

// RenderColumn renders a complete stage column with its title and cards
//
// Layout:
//
//	● {Stage Name} ({count})
//
//	{Card 1}
//	{Card 2}
//	...
//	+N more
//
// The result is always ColumnWidth x Height cells.
func RenderColumn(props ColumnProps) string {
	inner := columnInnerWidth
	contentLines := max(props.Height-2, 0)
	lines := make([]string, 0, contentLines)

	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(props.Stage.Color)).Render("●")
	header := fmt.Sprintf(" %s %s (%d)", swatch, props.Stage.Name, len(props.Cards))
	lines = append(lines, TitleStyle.Render(fit(header, inner)))

	if props.DropTarget {
		drop := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.DropBorder)).Italic(true)
		lines = append(lines, drop.Render(center("drop to move here", inner)))
	} else {
		lines = append(lines, strings.Repeat(" ", inner))
	}

	visible := VisibleCards(props.Height)
	if len(props.Cards) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Italic(true)
		lines = append(lines, empty.Render(center("No candidates", inner)))
	}
	for i, card := range props.Cards {
		if i >= visible {
			break
		}
		rendered := RenderCard(card, card.ID == props.DraggedID)
		for _, line := range strings.Split(rendered, "\n") {
			lines = append(lines, " "+line+" ")
		}
	}

	for len(lines) < contentLines-moreIndicatorLine {
		lines = append(lines, strings.Repeat(" ", inner))
	}
	if hidden := len(props.Cards) - visible; hidden > 0 && visible > 0 {
		lines = append(lines, SubtleStyle.Render(center(fmt.Sprintf("+%d more", hidden), inner)))
	}
	for len(lines) < contentLines {
		lines = append(lines, strings.Repeat(" ", inner))
	}
	lines = lines[:contentLines]

	style := ColumnStyle
	if props.DropTarget {
		style = style.BorderForeground(lipgloss.Color(theme.DropBorder))
	}
	return style.Render(strings.Join(lines, "\n"))
}
