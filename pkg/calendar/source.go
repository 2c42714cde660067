package calendar

import (
	"context"
	"time"
)

// EventDraft carries the validated fields for a new event. Start and End are
// full timestamps on Date's day; they are ignored when AllDay is set.
type EventDraft struct {
	Title      string
	Date       time.Time
	Start      time.Time
	End        time.Time
	AllDay     bool
	CalendarID string
}

// Source is the calendar data collaborator. Implementations must present a
// synchronous, blocking interface: every call completes or fails before
// returning, and query results come back pre-sorted by start time ascending.
// Query failures are represented as empty results, not errors; only access
// checks and mutations report errors.
type Source interface {
	// RequestAccess performs the one-time authorization check. A false
	// result means data views must be disabled for the session.
	RequestAccess(ctx context.Context) (bool, error)

	Calendars(ctx context.Context) []Info

	// EventsForDate returns events intersecting the given day.
	EventsForDate(ctx context.Context, date time.Time) []Event
	// EventsForWeek returns events in the Sunday-to-Saturday window
	// containing date.
	EventsForWeek(ctx context.Context, date time.Time) []Event
	// EventsForMonth returns events whose start falls in the given month.
	EventsForMonth(ctx context.Context, year int, month time.Month) []Event

	CreateEvent(ctx context.Context, draft EventDraft) error
	DeleteEvent(ctx context.Context, id string) error

	// IncompleteReminders returns all reminders not yet completed.
	IncompleteReminders(ctx context.Context) []Reminder
	// ToggleReminder flips completion and returns the new state.
	ToggleReminder(ctx context.Context, id string) (bool, error)
}
