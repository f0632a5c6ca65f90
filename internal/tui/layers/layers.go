// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CenteredPosition returns the top-left cell that centers content on screen
func CenteredPosition(content string, screenWidth, screenHeight int) (int, int) {
	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2
	return max(x, 0), max(y, 0)
}

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x, y := CenteredPosition(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// FloatingPosition places content just right of the anchor cell, flipping to
// the left of it and clamping so the content stays on screen.
func FloatingPosition(content string, anchorX, anchorY, screenWidth, screenHeight int) (int, int) {
	w := lipgloss.Width(content)
	h := lipgloss.Height(content)

	x := anchorX + 1
	if x+w > screenWidth {
		x = anchorX - w - 1
	}
	y := min(anchorY, screenHeight-h)

	return max(x, 0), max(y, 0)
}

// CreateFloatingLayer creates a layer that follows the pointer, such as the
// ghost of a dragged card. Returns nil if content is empty.
func CreateFloatingLayer(content string, anchorX, anchorY, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}
	x, y := FloatingPosition(content, anchorX, anchorY, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// TopRightPosition places content in the top-right corner with a one-cell margin
func TopRightPosition(content string, screenWidth int) (int, int) {
	return max(screenWidth-lipgloss.Width(content)-1, 0), 0
}
