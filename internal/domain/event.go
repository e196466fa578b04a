package domain

import "time"

// Event is a calendar entry. Times are absolute instants; display
// timezone handling belongs to the clients.
type Event struct {
	ID             string
	Title          string
	Description    string
	Location       string
	StartsAt       time.Time
	EndsAt         time.Time
	RecurrenceRule string
	CreatedBy      string
	CreatedAt      time.Time
}

const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
	MaxLocationLen    = 100
)

// Overlaps reports whether the event intersects the inclusive window
// [start, end]. Events that merely straddle a boundary count.
func (e Event) Overlaps(start, end time.Time) bool {
	return !e.StartsAt.After(end) && !e.EndsAt.Before(start)
}
