package calendar

import (
	"fmt"
	"sort"
	"time"
)

// Event is a single occurrence on a calendar. Events are created by a Source
// and held read-only by consumers; mutations go through the Source followed
// by a refetch. Start is never after End. All-day events are normalized by
// the Source to span midnight to the following midnight.
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	AllDay        bool      `json:"allDay,omitempty"`
	CalendarName  string    `json:"calendarName,omitempty"`
	CalendarColor string    `json:"calendarColor,omitempty"`
	Location      string    `json:"location,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// DurationDisplay renders the event's time span for list rows.
func (e Event) DurationDisplay() string {
	if e.AllDay {
		return "All day"
	}
	return fmt.Sprintf("%s - %s", e.Start.Format("15:04"), e.End.Format("15:04"))
}

// SortEventsByStart orders events by start time ascending, the order every
// Source query is required to return.
func SortEventsByStart(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}
