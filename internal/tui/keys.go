package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/etapa/internal/config"
)

// keyMap holds the key bindings built from the user's key mappings
type keyMap struct {
	CancelDrag  key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	CloseDetail key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		CancelDrag: key.NewBinding(
			key.WithKeys(km.CancelDrag),
			key.WithHelp(km.CancelDrag, "cancel drag"),
		),
		ScrollLeft: key.NewBinding(
			key.WithKeys(km.ScrollLeft, "left"),
			key.WithHelp(km.ScrollLeft+"/←", "scroll left"),
		),
		ScrollRight: key.NewBinding(
			key.WithKeys(km.ScrollRight, "right"),
			key.WithHelp(km.ScrollRight+"/→", "scroll right"),
		),
		CloseDetail: key.NewBinding(
			key.WithKeys(km.CloseDetail, "esc"),
			key.WithHelp(km.CloseDetail, "close details"),
		),
		Reload: key.NewBinding(
			key.WithKeys(km.Reload),
			key.WithHelp(km.Reload, "reload cards"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// bindings lists the bindings shown in the help overlay
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.ScrollLeft, k.ScrollRight, k.CancelDrag, k.CloseDetail, k.Reload, k.Help, k.Quit}
}
