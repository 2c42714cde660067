// Package calendar defines the data model shared by the UI, the CLI, and the
// backing stores: calendars, events, reminders, and the Source contract a
// store must satisfy.
package calendar

// Info is an immutable snapshot of one calendar's identity and display
// metadata, fetched once per session refresh.
type Info struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Color  string `json:"color,omitempty"` // hex, e.g. "#1e90ff"
	Source string `json:"source,omitempty"`
}
