package notification

import "time"

// Type classifies a notification.
type Type string

const (
	TypeAnnouncement Type = "announcement"
	TypeTimetable    Type = "timetable"
)

// Notification is a message delivered to a single recipient. It is
// immutable once persisted.
type Notification struct {
	ID          string
	RecipientID string
	Message     string
	Type        Type
	CreatedAt   time.Time
}
