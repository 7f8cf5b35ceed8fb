package attendance

import "time"

// Event is an append-only attendance log entry. Events are never mutated
// after creation; the monthly calendar is derived from them on every read.
type Event struct {
	ID         string
	EmployeeID string
	Type       EventType
	Timestamp  time.Time
	CreatedAt  time.Time
}

type EventType string

const (
	// EventCheckIn is the only event type the calendar consumes. Other
	// values may be stored but are ignored by the monthly view.
	EventCheckIn EventType = "check-in"
)
