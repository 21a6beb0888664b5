// Package models defines the domain types exchanged with the life
// planning API: events, the user profile, and auth form payloads.
package models

import (
	"strings"
	"time"
)

// Priority classifies how important an event is.
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Ordinal maps a priority to its sort rank. Unknown or empty values
// rank with LOW, matching how the listing treats malformed data.
func (p Priority) Ordinal() int {
	switch Priority(strings.ToUpper(string(p))) {
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 0
	}
}

// EventTimeLayout is the wire format of an event timestamp.
const EventTimeLayout = "2006-01-02 15:04:05.000"

// MaxTextLen caps event title and description lengths.
const MaxTextLen = 255

// Event is the server-owned record the client lists and edits.
// ID 0 means the event has not been created yet; the field is omitted
// from the create payload so the server assigns it.
type Event struct {
	ID          int64    `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        *string  `json:"date"`
	Priority    Priority `json:"priority"`
	HasPassed   bool     `json:"hasPassed"`
}

// When parses the stored timestamp in local time. The second return
// value is false when the date is absent or malformed.
func (e Event) When() (time.Time, bool) {
	if e.Date == nil {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(EventTimeLayout, *e.Date, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
