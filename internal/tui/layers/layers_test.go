package layers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCenteredPosition(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		screenWidth  int
		screenHeight int
		wantX, wantY int
	}{
		{name: "normal screen", content: "Center", screenWidth: 100, screenHeight: 50, wantX: 47, wantY: 24},
		{name: "multi line", content: "ab\ncd\nef", screenWidth: 10, screenHeight: 9, wantX: 4, wantY: 3},
		{name: "content wider than screen", content: "0123456789", screenWidth: 4, screenHeight: 1, wantX: 0, wantY: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := CenteredPosition(tt.content, tt.screenWidth, tt.screenHeight)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestCreateCenteredLayer(t *testing.T) {
	assert.NotNil(t, CreateCenteredLayer("Test Content", 120, 40))
	assert.Nil(t, CreateCenteredLayer("", 120, 40))
}

func TestFloatingPosition(t *testing.T) {
	tests := []struct {
		name         string
		anchorX      int
		anchorY      int
		wantX, wantY int
	}{
		{name: "right of pointer", anchorX: 10, anchorY: 5, wantX: 11, wantY: 5},
		{name: "flips left at right edge", anchorX: 38, anchorY: 5, wantX: 31, wantY: 5},
		{name: "clamped to bottom", anchorX: 10, anchorY: 19, wantX: 11, wantY: 18},
		{name: "clamped to left", anchorX: 0, anchorY: 0, wantX: 1, wantY: 0},
	}

	content := "ghost!\n------"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := FloatingPosition(content, tt.anchorX, tt.anchorY, 40, 20)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestCreateFloatingLayer_Empty(t *testing.T) {
	assert.Nil(t, CreateFloatingLayer("", 1, 1, 10, 10))
	assert.NotNil(t, CreateFloatingLayer("x", 1, 1, 10, 10))
}

func TestTopRightPosition(t *testing.T) {
	x, y := TopRightPosition("abcd", 20)
	assert.Equal(t, 15, x)
	assert.Equal(t, 0, y)
}
