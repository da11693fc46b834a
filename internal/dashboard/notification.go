// Package dashboard holds the list and create controllers behind the
// comment dashboard: item/query/loading state, filtering, confirmed
// deletes and validated submission.
package dashboard

// Level classifies a notification.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notification is a transient, user-visible message emitted by a
// controller. Network failures surface here and nowhere else.
type Notification struct {
	Level   Level
	Message string
}

// NotifyFunc receives controller notifications. A nil sink drops them.
type NotifyFunc func(Notification)
