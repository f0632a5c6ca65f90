package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Drag
	CancelDrag string `yaml:"cancel_drag"`

	// Navigation
	ScrollLeft  string `yaml:"scroll_left"`
	ScrollRight string `yaml:"scroll_right"`

	// Detail view
	CloseDetail string `yaml:"close_detail"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		CancelDrag:  "esc",
		ScrollLeft:  "h",
		ScrollRight: "l",
		CloseDetail: "enter",
		Reload:      "r",
		ShowHelp:    "?",
		Quit:        "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.CancelDrag == "" {
		k.CancelDrag = defaults.CancelDrag
	}
	if k.ScrollLeft == "" {
		k.ScrollLeft = defaults.ScrollLeft
	}
	if k.ScrollRight == "" {
		k.ScrollRight = defaults.ScrollRight
	}
	if k.CloseDetail == "" {
		k.CloseDetail = defaults.CloseDetail
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
