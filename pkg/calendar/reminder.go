package calendar

import (
	"sort"
	"time"
)

// Reminder is a to-do item with an optional due date. Priority is ordinal:
// zero means none, lower positive values mean higher priority.
type Reminder struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Completed     bool       `json:"completed,omitempty"`
	DueDate       *time.Time `json:"dueDate,omitempty"`
	CalendarName  string     `json:"calendarName,omitempty"`
	CalendarColor string     `json:"calendarColor,omitempty"`
	Priority      int        `json:"priority,omitempty"`
}

// SortReminders orders reminders by calendar name, then due date, with
// undated reminders after dated ones. Applied exactly once after each fetch;
// day views filter the already-sorted slice.
func SortReminders(reminders []Reminder) {
	sort.SliceStable(reminders, func(i, j int) bool {
		a, b := reminders[i], reminders[j]
		if a.CalendarName != b.CalendarName {
			return a.CalendarName < b.CalendarName
		}
		switch {
		case a.DueDate == nil && b.DueDate == nil:
			return false
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
}
