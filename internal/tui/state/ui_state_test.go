package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/etapa/internal/tui/notifications"
)

// ============================================================================
// UIState Tests
// ============================================================================

func TestUIState_Ready(t *testing.T) {
	s := NewUIState()
	assert.False(t, s.Ready(), "terminal size not received yet")

	s.SetSize(120, 40)
	assert.True(t, s.Ready())
	assert.Equal(t, 120, s.Width())
	assert.Equal(t, 40, s.Height())
}

func TestUIState_SetSizeClampsNegative(t *testing.T) {
	s := NewUIState()
	s.SetSize(-5, -1)
	assert.Equal(t, 0, s.Width())
	assert.Equal(t, 0, s.Height())
	assert.Equal(t, 0, s.BoardHeight())
}

func TestUIState_BoardArea(t *testing.T) {
	s := NewUIState()
	s.SetSize(100, 30)

	assert.Equal(t, HeaderHeight, s.BoardTop())
	assert.Equal(t, 30-HeaderHeight-StatusBarHeight, s.BoardHeight())
}

func TestUIState_Detail(t *testing.T) {
	s := NewUIState()
	assert.Equal(t, BoardMode, s.Mode())

	s.OpenDetail("c-1")
	assert.Equal(t, DetailMode, s.Mode())
	assert.Equal(t, "c-1", s.DetailCardID())

	s.SetMode(BoardMode)
	assert.Empty(t, s.DetailCardID())
}

// ============================================================================
// NotificationState Tests
// ============================================================================

func TestNotificationState(t *testing.T) {
	s := NewNotificationState()
	assert.False(t, s.HasAny())
	assert.Nil(t, s.Latest())

	s.Add(notifications.Info, "reloaded")
	s.Add(notifications.Error, "move failed")

	assert.True(t, s.HasAny())
	latest := s.Latest()
	if assert.NotNil(t, latest) {
		assert.Equal(t, notifications.Error, latest.Severity)
		assert.Equal(t, "move failed", latest.Message)
	}

	s.Clear()
	assert.False(t, s.HasAny())
}

func TestNotificationState_Bounded(t *testing.T) {
	s := NewNotificationState()
	for i := 0; i < maxNotifications+3; i++ {
		s.Add(notifications.Info, string(rune('a'+i)))
	}

	all := s.All()
	assert.Len(t, all, maxNotifications)
	assert.Equal(t, "d", all[0].Message, "oldest entries dropped first")
}
