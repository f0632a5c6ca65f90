package config

import "github.com/thenoetrevino/etapa/internal/config/colors"

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}
