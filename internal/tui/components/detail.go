package components

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/etapa/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders candidate notes as markdown, falling back to plain text
func RenderNotes(notes string, width int) string {
	if notes == "" {
		return SubtleStyle.Italic(true).Render("No notes")
	}

	renderer, err := getRenderer(width)
	if err != nil {
		return notes
	}
	rendered, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.Trim(rendered, "\n")
}

// RenderDetail renders the candidate detail overlay
func RenderDetail(card models.Card, screenWidth int) string {
	width := min(max(screenWidth*2/3, 30), 80)

	stage := card.Stage.DisplayName()
	header := TitleStyle.Render(card.Name)
	meta := SubtleStyle.Render(fmt.Sprintf("%s · %s · %s", orDash(card.Role), orDash(card.Company), stage))
	notes := RenderNotes(card.Notes, width-6)
	footer := SubtleStyle.Render("enter/esc: close")

	content := lipgloss.JoinVertical(lipgloss.Left, header, meta, "", notes, "", footer)
	return DetailBoxStyle.Render(content)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
