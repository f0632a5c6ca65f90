package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
)

// RenderHelp renders the help overlay from the active key bindings
func RenderHelp(bindings []key.Binding) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Keys"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Bold(true).Width(8)
	for _, binding := range bindings {
		h := binding.Help()
		if h.Key == "" {
			continue
		}
		b.WriteString(keyStyle.Render(h.Key) + " " + h.Desc + "\n")
	}

	b.WriteString("\n" + TitleStyle.Render("Mouse") + "\n\n")
	b.WriteString("drag a card onto another stage to move it\n")
	b.WriteString("click a card to open its details\n")
	b.WriteString("hold a card near the edge to scroll the board")

	return HelpBoxStyle.Render(b.String())
}
