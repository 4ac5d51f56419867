package planner

import (
	"fmt"
	"time"
)

const EventDateLayout = time.DateOnly

// ParseEventDate parses a YYYY-MM-DD date as midnight in loc.
func ParseEventDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(EventDateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("event date must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// EventDateIn re-anchors a stored date at midnight in loc. Postgres DATE
// columns come back as UTC midnight.
func EventDateIn(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
