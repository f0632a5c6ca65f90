package state

import "github.com/thenoetrevino/etapa/internal/tui/notifications"

// maxNotifications bounds the backlog; older entries are dropped first
const maxNotifications = 5

// NotificationState manages notification display state.
type NotificationState struct {
	notifications []notifications.Notification
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add adds a new notification with the specified severity and message.
func (s *NotificationState) Add(severity notifications.Severity, message string) {
	s.notifications = append(s.notifications, notifications.Notification{
		Severity: severity,
		Message:  message,
	})
	if over := len(s.notifications) - maxNotifications; over > 0 {
		s.notifications = s.notifications[over:]
	}
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns all current notifications, oldest first.
func (s *NotificationState) All() []notifications.Notification {
	return s.notifications
}

// Latest returns the most recent notification, or nil.
func (s *NotificationState) Latest() *notifications.Notification {
	if len(s.notifications) == 0 {
		return nil
	}
	n := s.notifications[len(s.notifications)-1]
	return &n
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
