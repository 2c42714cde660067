package daylist

import (
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
)

func makeEvents(allDay, timed int) []calendar.Event {
	var events []calendar.Event
	base := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	for i := 0; i < allDay; i++ {
		events = append(events, calendar.Event{
			ID:     "allday",
			Start:  base,
			End:    base.AddDate(0, 0, 1),
			AllDay: true,
		})
	}
	for i := 0; i < timed; i++ {
		start := base.Add(time.Duration(9+i) * time.Hour)
		events = append(events, calendar.Event{
			ID:    "timed",
			Start: start,
			End:   start.Add(time.Hour),
		})
	}
	return events
}

func makeReminders(n int) []calendar.Reminder {
	var reminders []calendar.Reminder
	for i := 0; i < n; i++ {
		reminders = append(reminders, calendar.Reminder{ID: "rem"})
	}
	return reminders
}

func TestLenMatchesRows(t *testing.T) {
	counts := []int{0, 1, 3}
	for _, allDay := range counts {
		for _, rems := range counts {
			for _, timed := range counts {
				l := New(makeEvents(allDay, timed), makeReminders(rems))
				if got, want := l.Len(), len(l.Rows()); got != want {
					t.Errorf("allDay=%d rems=%d timed=%d: Len()=%d, len(Rows())=%d",
						allDay, rems, timed, got, want)
				}
			}
		}
	}
}

func TestActionAtRecoversEveryItemExactlyOnce(t *testing.T) {
	l := New(makeEvents(2, 3), makeReminders(2))

	rows := l.Rows()
	eventSeen := map[int]int{}
	reminderSeen := map[int]int{}

	for i := 0; i < l.Len(); i++ {
		a := l.ActionAt(i)
		switch rows[i].Kind {
		case RowHeader, RowSpacer:
			if a.Kind != ActionNone {
				t.Errorf("row %d is not actionable but ActionAt returned %v", i, a)
			}
		case RowItem:
			switch a.Kind {
			case ActionEvent:
				eventSeen[a.Index]++
			case ActionReminder:
				reminderSeen[a.Index]++
			default:
				t.Errorf("item row %d returned ActionNone", i)
			}
		}
	}

	if len(eventSeen) != 5 {
		t.Fatalf("expected 5 distinct event indices, got %d", len(eventSeen))
	}
	for idx, n := range eventSeen {
		if n != 1 {
			t.Errorf("event index %d recovered %d times", idx, n)
		}
	}
	if len(reminderSeen) != 2 {
		t.Fatalf("expected 2 distinct reminder indices, got %d", len(reminderSeen))
	}
	for idx, n := range reminderSeen {
		if n != 1 {
			t.Errorf("reminder index %d recovered %d times", idx, n)
		}
	}

	if a := l.ActionAt(l.Len()); a.Kind != ActionNone {
		t.Errorf("past-the-end ActionAt = %v, want none", a)
	}
	if a := l.ActionAt(-1); a.Kind != ActionNone {
		t.Errorf("negative ActionAt = %v, want none", a)
	}
}

// Day with 2 all-day events, 1 reminder, 3 timed events:
// (header + 2 + spacer) + (header + 1 + spacer) + 3 = 10 rows, and the first
// actionable row is 1 since row 0 is the all-day header.
func TestFullDayScenario(t *testing.T) {
	l := New(makeEvents(2, 3), makeReminders(1))
	if got := l.Len(); got != 10 {
		t.Fatalf("Len = %d, want 10", got)
	}
	if got := l.FirstActionable(); got != 1 {
		t.Errorf("FirstActionable = %d, want 1", got)
	}
	if a := l.ActionAt(1); a.Kind != ActionEvent {
		t.Errorf("ActionAt(1) = %v, want event", a)
	}
}

// Day with no events and one reminder: header + item.
func TestReminderOnlyScenario(t *testing.T) {
	l := New(nil, makeReminders(1))
	if got := l.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
	if a := l.ActionAt(0); a.Kind != ActionNone {
		t.Errorf("ActionAt(0) = %v, want none", a)
	}
	if a := l.ActionAt(1); a.Kind != ActionReminder || a.Index != 0 {
		t.Errorf("ActionAt(1) = %v, want reminder 0", a)
	}
}

func TestScrollSkipsNonActionableRows(t *testing.T) {
	l := New(makeEvents(1, 2), makeReminders(1))
	// rows: 0 header, 1 all-day, 2 spacer, 3 header, 4 reminder, 5 spacer, 6 timed, 7 timed

	cur := l.FirstActionable()
	if cur != 1 {
		t.Fatalf("FirstActionable = %d, want 1", cur)
	}

	wantDown := []int{4, 6, 7, 7} // final step is a no-op at the last row
	for _, want := range wantDown {
		cur = l.ScrollDown(cur)
		if cur != want {
			t.Fatalf("ScrollDown: got %d, want %d", cur, want)
		}
		if l.ActionAt(cur).Kind == ActionNone {
			t.Fatalf("cursor landed on non-actionable row %d", cur)
		}
	}

	wantUp := []int{6, 4, 1, 1} // stays at first actionable, no wrap
	for _, want := range wantUp {
		cur = l.ScrollUp(cur)
		if cur != want {
			t.Fatalf("ScrollUp: got %d, want %d", cur, want)
		}
		if l.ActionAt(cur).Kind == ActionNone {
			t.Fatalf("cursor landed on non-actionable row %d", cur)
		}
	}
}

func TestScrollOnEmptyList(t *testing.T) {
	l := New(nil, nil)
	if !l.Empty() {
		t.Fatal("expected empty list")
	}
	if got := l.Len(); got != 0 {
		t.Fatalf("Len = %d, want 0", got)
	}
	if got := l.FirstActionable(); got != 0 {
		t.Errorf("FirstActionable on empty = %d, want 0", got)
	}
	if got := l.ScrollDown(0); got != 0 {
		t.Errorf("ScrollDown on empty = %d, want 0", got)
	}
	if got := l.ScrollUp(0); got != 0 {
		t.Errorf("ScrollUp on empty = %d, want 0", got)
	}
}

func TestTimedOnlyHasNoChrome(t *testing.T) {
	l := New(makeEvents(0, 3), nil)
	if got := l.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	for i := 0; i < 3; i++ {
		if a := l.ActionAt(i); a.Kind != ActionEvent {
			t.Errorf("ActionAt(%d) = %v, want event", i, a)
		}
	}
	if got := l.FirstActionable(); got != 0 {
		t.Errorf("FirstActionable = %d, want 0", got)
	}
}
