package colors

// ColorScheme defines the board's color values
type ColorScheme struct {
	// Primary accent color (used for drop highlights and the status bar)
	Accent string `yaml:"accent"`

	// UI element colors
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	DropBorder     string `yaml:"drop_border"`
	DraggedBg      string `yaml:"dragged_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// ApplyDefaults fills in missing color values from the default scheme
func (c *ColorScheme) ApplyDefaults() {
	d := Default()

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}

	fill(&c.Accent, d.Accent)
	fill(&c.ColumnBorder, d.ColumnBorder)
	fill(&c.CardBorder, d.CardBorder)
	fill(&c.CardBackground, d.CardBackground)
	fill(&c.DropBorder, d.DropBorder)
	fill(&c.DraggedBg, d.DraggedBg)
	fill(&c.Title, d.Title)
	fill(&c.Subtle, d.Subtle)
	fill(&c.Normal, d.Normal)
	fill(&c.InfoFg, d.InfoFg)
	fill(&c.InfoBg, d.InfoBg)
	fill(&c.ErrorFg, d.ErrorFg)
	fill(&c.ErrorBg, d.ErrorBg)
}
