package colors

// Default returns the default color scheme
func Default() *ColorScheme {
	return &ColorScheme{
		// Primary
		Accent: "#874BFD",

		// UI elements
		ColumnBorder:   "#585858",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		DropBorder:     "#D75FD7",
		DraggedBg:      "#3A3A3A",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Notifications
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
