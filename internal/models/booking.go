package models

import "time"

const (
	EventTypeWedding   = "wedding"
	EventTypeParty     = "party"
	EventTypeCorporate = "corporate"
	EventTypeOther     = "other"
)

func IsValidEventType(eventType string) bool {
	switch eventType {
	case EventTypeWedding, EventTypeParty, EventTypeCorporate, EventTypeOther:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID        string
	UserID    string
	EventType string
	// EventDate is a calendar date; only year, month and day are meaningful.
	EventDate        time.Time
	Venue            string
	Notes            string
	CompletedTaskIDs []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
