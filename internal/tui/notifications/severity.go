package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

// Notification is a single user-facing message
type Notification struct {
	Severity Severity
	Message  string
}
