// Package daylist flattens a day's events and reminders into a single
// addressable row sequence. Rows are either section headers, spacers, or
// actionable items; cursor movement skips anything non-actionable so up/down
// feels continuous across the mixed sections.
package daylist

import "tableflip.dev/agenda/pkg/calendar"

// ActionKind discriminates what a row represents.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionEvent
	ActionReminder
)

// Action identifies the semantic item at a row. Index points into the
// day-scoped event or reminder slice the List was built from, not any larger
// catalog. Kind is ActionNone for headers, spacers, and out-of-range rows.
type Action struct {
	Kind  ActionKind
	Index int
}

// RowKind discriminates rendered row types.
type RowKind int

const (
	RowHeader RowKind = iota
	RowSpacer
	RowItem
)

// Row is one renderable line of the flattened day list.
type Row struct {
	Kind   RowKind
	Label  string // header text, empty otherwise
	Action Action // ActionNone unless Kind == RowItem
}

// Section headers, fixed order: all-day events, reminders, timed events.
const (
	allDayHeader   = "All Day"
	reminderHeader = "Reminders"
)

// List is a pure derived view over a day's items. It holds index slices into
// the event list it was built from, never copies of the items, so it must be
// rebuilt whenever the underlying day data changes.
type List struct {
	events    []calendar.Event
	reminders []calendar.Reminder
	allDay    []int // indices into events
	timed     []int // indices into events
}

// New partitions events into all-day and timed sections, preserving the
// input order within each. Events are expected pre-sorted by start time.
func New(events []calendar.Event, reminders []calendar.Reminder) List {
	l := List{events: events, reminders: reminders}
	for i, e := range events {
		if e.AllDay {
			l.allDay = append(l.allDay, i)
		} else {
			l.timed = append(l.timed, i)
		}
	}
	return l
}

// Len returns the total row count (headers + items + spacers) without
// materializing rows. Must agree with Rows for every input; change both
// together when touching section layout.
func (l List) Len() int {
	n := 0
	if len(l.allDay) > 0 {
		n += 1 + len(l.allDay)
		if len(l.reminders) > 0 || len(l.timed) > 0 {
			n++ // spacer
		}
	}
	if len(l.reminders) > 0 {
		n += 1 + len(l.reminders)
		if len(l.timed) > 0 {
			n++ // spacer
		}
	}
	return n + len(l.timed)
}

// Empty reports whether the day has no events and no reminders. Callers
// render an explicit "nothing scheduled" state instead of an empty list.
func (l List) Empty() bool {
	return len(l.events) == 0 && len(l.reminders) == 0
}

// Rows materializes the flattened row sequence in fixed section order:
// all-day events, reminders, timed events, with a header per non-empty
// section and a spacer between sections.
func (l List) Rows() []Row {
	rows := make([]Row, 0, l.Len())

	if len(l.allDay) > 0 {
		rows = append(rows, Row{Kind: RowHeader, Label: allDayHeader})
		for _, idx := range l.allDay {
			rows = append(rows, Row{Kind: RowItem, Action: Action{Kind: ActionEvent, Index: idx}})
		}
		if len(l.reminders) > 0 || len(l.timed) > 0 {
			rows = append(rows, Row{Kind: RowSpacer})
		}
	}

	if len(l.reminders) > 0 {
		rows = append(rows, Row{Kind: RowHeader, Label: reminderHeader})
		for i := range l.reminders {
			rows = append(rows, Row{Kind: RowItem, Action: Action{Kind: ActionReminder, Index: i}})
		}
		if len(l.timed) > 0 {
			rows = append(rows, Row{Kind: RowSpacer})
		}
	}

	for _, idx := range l.timed {
		rows = append(rows, Row{Kind: RowItem, Action: Action{Kind: ActionEvent, Index: idx}})
	}

	return rows
}

// ActionAt returns the semantic item at the given row, or an ActionNone for
// headers, spacers, and positions past the end.
func (l List) ActionAt(scroll int) Action {
	if scroll < 0 {
		return Action{Kind: ActionNone}
	}
	pos := 0

	if len(l.allDay) > 0 {
		if scroll == pos {
			return Action{Kind: ActionNone} // header
		}
		pos++
		for _, idx := range l.allDay {
			if scroll == pos {
				return Action{Kind: ActionEvent, Index: idx}
			}
			pos++
		}
		if len(l.reminders) > 0 || len(l.timed) > 0 {
			if scroll == pos {
				return Action{Kind: ActionNone} // spacer
			}
			pos++
		}
	}

	if len(l.reminders) > 0 {
		if scroll == pos {
			return Action{Kind: ActionNone}
		}
		pos++
		for i := range l.reminders {
			if scroll == pos {
				return Action{Kind: ActionReminder, Index: i}
			}
			pos++
		}
		if len(l.timed) > 0 {
			if scroll == pos {
				return Action{Kind: ActionNone}
			}
			pos++
		}
	}

	for _, idx := range l.timed {
		if scroll == pos {
			return Action{Kind: ActionEvent, Index: idx}
		}
		pos++
	}

	return Action{Kind: ActionNone}
}

// FirstActionable returns the index of the first item row, or 0 when the
// list has none. This is the position the cursor resets to after a refresh.
func (l List) FirstActionable() int {
	for i, n := 0, l.Len(); i < n; i++ {
		if l.ActionAt(i).Kind != ActionNone {
			return i
		}
	}
	return 0
}

// ScrollDown advances cur past headers and spacers to the next actionable
// row, or returns cur unchanged when none exists below.
func (l List) ScrollDown(cur int) int {
	n := l.Len()
	if n == 0 {
		return cur
	}
	next := cur + 1
	for next < n && l.ActionAt(next).Kind == ActionNone {
		next++
	}
	if next < n {
		return next
	}
	return cur
}

// ScrollUp is the symmetric move: it skips backward over non-actionable rows
// and stays put when no actionable row exists above. It never wraps.
func (l List) ScrollUp(cur int) int {
	if cur == 0 {
		return cur
	}
	prev := cur - 1
	for l.ActionAt(prev).Kind == ActionNone {
		if prev == 0 {
			return cur
		}
		prev--
	}
	return prev
}
