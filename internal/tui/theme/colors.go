package theme

import "github.com/thenoetrevino/etapa/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Accent       string
	ColumnBorder string
	CardBorder   string
	CardBg       string
	DropBorder   string
	DraggedBg    string
	Title        string
	Subtle       string
	Normal       string
	InfoFg       string
	InfoBg       string
	ErrorFg      string
	ErrorBg      string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	scheme.ApplyDefaults()

	Accent = scheme.Accent
	ColumnBorder = scheme.ColumnBorder
	CardBorder = scheme.CardBorder
	CardBg = scheme.CardBackground
	DropBorder = scheme.DropBorder
	DraggedBg = scheme.DraggedBg
	Title = scheme.Title
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	InfoFg = scheme.InfoFg
	InfoBg = scheme.InfoBg
	ErrorFg = scheme.ErrorFg
	ErrorBg = scheme.ErrorBg
}
