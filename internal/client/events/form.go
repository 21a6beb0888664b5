package events

import (
	"errors"
	"fmt"
	"time"

	"github.com/lifeplan/lifeplan-cli/internal/client/models"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTextTooLong   = errors.New("text exceeds 255 characters")
	ErrBadDate       = errors.New("date must be YYYY-MM-DD")
	ErrBadTime       = errors.New("time must be HH:MM")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Form is the create/edit model for a single event. It keeps the
// hasPassed flag consistent with the entered date and time: while the
// combined moment lies in the future the flag is pinned to false and
// not user-editable. The rule re-runs on every date or time change and
// once more when the payload is built, so the value sent to the server
// is authoritative even if the user toggled the flag earlier.
type Form struct {
	ID          int64
	Title       string
	Description string
	Priority    models.Priority

	date      string // YYYY-MM-DD, empty when unset
	timeOfDay string // HH:MM
	hasPassed bool

	// Now is a clock seam for tests; defaults to time.Now.
	Now func() time.Time
}

// NewForm returns a form with the creation-screen defaults:
// time 00:00 and MEDIUM priority.
func NewForm() *Form {
	return &Form{
		Priority:  models.PriorityMedium,
		timeOfDay: "00:00",
		Now:       time.Now,
	}
}

// SeedFrom loads an existing event into the form for editing. The
// stored timestamp is split into local date and time components, and
// the hasPassed rule runs immediately so a future event never starts
// out marked as passed.
func (f *Form) SeedFrom(e models.Event) {
	f.ID = e.ID
	f.Title = e.Title
	f.Description = e.Description
	f.Priority = e.Priority
	if f.Priority == "" {
		f.Priority = models.PriorityMedium
	}

	if ts, ok := e.When(); ok {
		f.date = ts.Format(dateLayout)
		f.timeOfDay = ts.Format(timeLayout)
	} else {
		f.date = ""
		f.timeOfDay = "00:00"
	}

	f.hasPassed = e.HasPassed
	f.reconcile()
}

// SetDate updates the date field (YYYY-MM-DD) and re-runs the
// hasPassed rule.
func (f *Form) SetDate(d string) {
	f.date = d
	f.reconcile()
}

// SetTime updates the time field (HH:MM) and re-runs the hasPassed rule.
func (f *Form) SetTime(t string) {
	f.timeOfDay = t
	f.reconcile()
}

func (f *Form) Date() string { return f.date }
func (f *Form) Time() string { return f.timeOfDay }

// SetHasPassed records the user's toggle. It is ignored while the
// event lies in the future, mirroring the disabled checkbox.
func (f *Form) SetHasPassed(v bool) {
	if f.IsFuture() {
		f.hasPassed = false
		return
	}
	f.hasPassed = v
}

func (f *Form) HasPassed() bool { return f.hasPassed }

// HasPassedEditable reports whether the user may currently toggle the
// flag.
func (f *Form) HasPassedEditable() bool { return !f.IsFuture() }

// IsFuture reports whether the combined date and time lie strictly
// after the current clock. An unset or malformed date counts as not
// future.
func (f *Form) IsFuture() bool {
	ts, ok := f.when()
	return ok && ts.After(f.now())
}

func (f *Form) when() (time.Time, bool) {
	if f.date == "" || f.timeOfDay == "" {
		return time.Time{}, false
	}
	ts, err := time.ParseInLocation(dateLayout+" "+timeLayout, f.date+" "+f.timeOfDay, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func (f *Form) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Form) reconcile() {
	if f.IsFuture() {
		f.hasPassed = false
	}
}

// Validate checks field constraints before a submit.
func (f *Form) Validate() error {
	if f.Title == "" {
		return ErrTitleRequired
	}
	if len(f.Title) > models.MaxTextLen || len(f.Description) > models.MaxTextLen {
		return ErrTextTooLong
	}
	if f.date != "" {
		if _, err := time.Parse(dateLayout, f.date); err != nil {
			return ErrBadDate
		}
	}
	if f.timeOfDay != "" {
		if _, err := time.Parse(timeLayout, f.timeOfDay); err != nil {
			return ErrBadTime
		}
	}
	return nil
}

// Event builds the submission payload. The future check runs one final
// time here and force-clears hasPassed when the moment is still ahead,
// overriding any stale toggle.
func (f *Form) Event() models.Event {
	e := models.Event{
		ID:          f.ID,
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		HasPassed:   f.hasPassed,
	}
	if f.date != "" && f.timeOfDay != "" {
		formatted := fmt.Sprintf("%s %s:00.000", f.date, f.timeOfDay)
		e.Date = &formatted
	}
	if f.IsFuture() {
		e.HasPassed = false
	}
	return e
}
