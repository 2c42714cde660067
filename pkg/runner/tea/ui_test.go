package teaui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/agenda/pkg/calendar"
)

// fakeSource serves a fixed catalog and counts query calls so tests can
// assert which refresh path ran.
type fakeSource struct {
	granted   bool
	calendars []calendar.Info
	events    []calendar.Event
	reminders []calendar.Reminder

	toggleErr error
	createErr error
	deleteErr error

	monthCalls    int
	dayCalls      int
	weekCalls     int
	reminderCalls int

	created []calendar.EventDraft
	deleted []string
}

func (f *fakeSource) RequestAccess(context.Context) (bool, error) { return f.granted, nil }

func (f *fakeSource) Calendars(context.Context) []calendar.Info { return f.calendars }

func (f *fakeSource) EventsForDate(_ context.Context, date time.Time) []calendar.Event {
	f.dayCalls++
	var out []calendar.Event
	for _, ev := range f.events {
		if ev.Start.Year() == date.Year() && ev.Start.YearDay() == date.YearDay() {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeSource) EventsForWeek(_ context.Context, date time.Time) []calendar.Event {
	f.weekCalls++
	return f.EventsForMonth(nil, date.Year(), date.Month())
}

func (f *fakeSource) EventsForMonth(_ context.Context, year int, month time.Month) []calendar.Event {
	f.monthCalls++
	var out []calendar.Event
	for _, ev := range f.events {
		if ev.Start.Year() == year && ev.Start.Month() == month {
			out = append(out, ev)
		}
	}
	return out
}

func (f *fakeSource) CreateEvent(_ context.Context, draft calendar.EventDraft) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, draft)
	return nil
}

func (f *fakeSource) DeleteEvent(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	for i, ev := range f.events {
		if ev.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeSource) IncompleteReminders(context.Context) []calendar.Reminder {
	f.reminderCalls++
	var out []calendar.Reminder
	for _, rem := range f.reminders {
		if !rem.Completed {
			out = append(out, rem)
		}
	}
	return out
}

func (f *fakeSource) ToggleReminder(_ context.Context, id string) (bool, error) {
	if f.toggleErr != nil {
		return false, f.toggleErr
	}
	for i := range f.reminders {
		if f.reminders[i].ID == id {
			f.reminders[i].Completed = !f.reminders[i].Completed
			return f.reminders[i].Completed, nil
		}
	}
	return false, errors.New("unknown reminder")
}

var _ calendar.Source = (*fakeSource)(nil)

// typeText feeds characters into the model's open form one key at a time.
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func date(day, hour int) time.Time {
	return time.Date(2025, time.June, day, hour, 0, 0, 0, time.Local)
}

func newFake() *fakeSource {
	due := date(10, 0)
	return &fakeSource{
		granted:   true,
		calendars: []calendar.Info{{ID: "c1", Title: "Personal", Color: "#2e8b57"}},
		events: []calendar.Event{
			{ID: "e1", Title: "Standup", Start: date(10, 9), End: date(10, 10)},
			{ID: "e2", Title: "Lunch", Start: date(10, 12), End: date(10, 13)},
			{ID: "e3", Title: "Review", Start: date(11, 15), End: date(11, 16)},
		},
		reminders: []calendar.Reminder{
			{ID: "r1", Title: "Buy milk", CalendarName: "Personal", DueDate: &due},
			{ID: "r2", Title: "File taxes", CalendarName: "Personal"},
		},
	}
}

// testModel builds a model pinned to June 10, 2025 regardless of the real
// clock so refresh behavior is deterministic.
func testModel(t *testing.T, src *fakeSource) *Model {
	t.Helper()
	m, err := New(src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.selected = date(10, 0)
	m.today = date(10, 0)
	m.refreshEvents()
	return m
}

func TestRefreshPopulatesCatalog(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	if len(m.monthEvents) != 3 {
		t.Errorf("monthEvents = %d, want 3", len(m.monthEvents))
	}
	if len(m.dayEvents) != 2 {
		t.Errorf("dayEvents = %d, want 2", len(m.dayEvents))
	}
	if !m.daysWithEvents[10] || !m.daysWithEvents[11] {
		t.Errorf("daysWithEvents = %v, want markers on 10 and 11", m.daysWithEvents)
	}
	if !m.daysWithReminders[10] {
		t.Errorf("daysWithReminders = %v, want marker on 10", m.daysWithReminders)
	}
	if len(m.dayReminders) != 1 || m.dayReminders[0].ID != "r1" {
		t.Errorf("dayReminders = %v, want just r1", m.dayReminders)
	}
	// Undated reminders stay in the session set but never in a day view.
	if len(m.reminders) != 2 {
		t.Errorf("reminders = %d, want 2", len(m.reminders))
	}
	// Cursor lands on the first item row, past the Reminders header.
	if got := m.dayScroll; got != 1 {
		t.Errorf("dayScroll = %d, want 1", got)
	}
}

func TestSameMonthDayChangeSkipsMonthRefetch(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	monthBefore := src.monthCalls
	m.nextDay()

	if src.monthCalls != monthBefore {
		t.Errorf("month refetched on same-month move: %d calls", src.monthCalls-monthBefore)
	}
	if len(m.dayEvents) != 1 || m.dayEvents[0].ID != "e3" {
		t.Errorf("dayEvents after move = %v, want just e3", m.dayEvents)
	}
}

func TestMonthChangeTriggersFullRefresh(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	monthBefore := src.monthCalls
	m.nextMonth()

	if src.monthCalls != monthBefore+1 {
		t.Errorf("monthCalls = %d, want %d", src.monthCalls, monthBefore+1)
	}
	if m.selected.Month() != time.July {
		t.Errorf("selected month = %v, want July", m.selected.Month())
	}
}

func TestEmptyMonthCacheForcesRefresh(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	// An empty month cache cannot prove the month is unchanged.
	m.monthEvents = nil
	monthBefore := src.monthCalls
	m.nextDay()
	if src.monthCalls != monthBefore+1 {
		t.Errorf("monthCalls = %d, want full refresh", src.monthCalls)
	}
}

func TestToggleReminderFailureLeavesCachesUntouched(t *testing.T) {
	src := newFake()
	m := testModel(t, src)
	src.toggleErr = errors.New("store offline")

	remindersBefore := src.reminderCalls
	m.toggleDayReminder()

	if !strings.Contains(m.status, "store offline") {
		t.Errorf("status = %q, want toggle error surfaced", m.status)
	}
	if src.reminderCalls != remindersBefore {
		t.Error("reminders refetched after failed toggle")
	}
	if len(m.dayReminders) != 1 {
		t.Errorf("dayReminders = %d, want unchanged", len(m.dayReminders))
	}
}

func TestToggleReminderSuccessRefilters(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	m.toggleDayReminder()

	if m.status != "Reminder completed" {
		t.Errorf("status = %q", m.status)
	}
	if len(m.dayReminders) != 0 {
		t.Errorf("dayReminders = %v, want empty after completion", m.dayReminders)
	}
	if len(m.reminders) != 1 || m.reminders[0].ID != "r2" {
		t.Errorf("reminders = %v, want just r2", m.reminders)
	}
}

func TestToggleIgnoresEventRow(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	// Move the cursor onto the first timed event.
	m.scrollDayDown()
	togglesBefore := src.reminderCalls
	m.toggleDayReminder()
	if src.reminderCalls != togglesBefore {
		t.Error("toggle on an event row touched the reminder set")
	}
}

func TestDeleteSelectedEvent(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	// Rows: Reminders header, r1, spacer, e1, e2. Cursor starts on r1.
	m.scrollDayDown()
	m.deleteSelectedEvent()

	if len(src.deleted) != 1 || src.deleted[0] != "e1" {
		t.Errorf("deleted = %v, want [e1]", src.deleted)
	}
	if !strings.Contains(m.status, "Standup") {
		t.Errorf("status = %q", m.status)
	}
	if len(m.dayEvents) != 1 {
		t.Errorf("dayEvents = %d, want 1 after delete and refresh", len(m.dayEvents))
	}
}

func TestDeleteIgnoresReminderRow(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	m.deleteSelectedEvent()
	if len(src.deleted) != 0 {
		t.Errorf("deleted = %v, want none", src.deleted)
	}
}

func TestSubmitInvalidFormStaysOpen(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	m.openEventForm()
	m.submitEventForm()

	if m.mode != modeForm {
		t.Error("form closed on invalid submit")
	}
	if len(src.created) != 0 {
		t.Errorf("created = %v, source must not see invalid drafts", src.created)
	}
	if !strings.Contains(m.status, "Invalid form") {
		t.Errorf("status = %q", m.status)
	}
}

func TestSubmitValidFormCreatesAndCloses(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	m.openEventForm()
	typeText(m, "Dentist")
	m.submitEventForm()

	if m.mode != modeNormal || m.form != nil {
		t.Error("form should close on success")
	}
	if len(src.created) != 1 || src.created[0].Title != "Dentist" {
		t.Errorf("created = %v", src.created)
	}
}

func TestCreateFailureKeepsFormOpen(t *testing.T) {
	src := newFake()
	src.createErr = errors.New("disk full")
	m := testModel(t, src)

	m.openEventForm()
	typeText(m, "Dentist")
	m.submitEventForm()

	if m.mode != modeForm {
		t.Error("form closed despite create failure")
	}
	if !strings.Contains(m.status, "disk full") {
		t.Errorf("status = %q", m.status)
	}
}

func TestDetailNeedsActionableRow(t *testing.T) {
	src := newFake()
	src.events = nil
	src.reminders = nil
	m := testModel(t, src)

	m.showDetail()
	if m.mode != modeNormal {
		t.Error("detail opened with nothing under the cursor")
	}

	src2 := newFake()
	m2 := testModel(t, src2)
	m2.showDetail()
	if m2.mode != modeDetail {
		t.Error("detail should open on an item row")
	}
	m2.closeDetail()
	if m2.mode != modeNormal {
		t.Error("detail should close")
	}
}

func TestAccessDeniedIsInert(t *testing.T) {
	src := newFake()
	src.granted = false
	m, err := New(src)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	selectedBefore := m.selected
	m.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if !m.selected.Equal(selectedBefore) {
		t.Error("navigation worked despite denied access")
	}
	if src.monthCalls != 0 {
		t.Errorf("monthCalls = %d, want no queries", src.monthCalls)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	if cmd == nil {
		t.Error("q should still quit")
	}
	if !strings.Contains(m.View(), "denied") {
		t.Errorf("view should explain denied access:\n%s", m.View())
	}
}

func TestKeyPressClearsStatus(t *testing.T) {
	src := newFake()
	m := testModel(t, src)
	m.status = "Reminder completed"

	m.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if m.status != "" {
		t.Errorf("status = %q, want cleared", m.status)
	}
	if m.view != viewWeek {
		t.Errorf("view = %v, want week", m.view)
	}
}

func TestWeekViewVerticalKeysStepWeeks(t *testing.T) {
	src := newFake()
	m := testModel(t, src)
	m.view = viewWeek

	m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if m.selected.Day() != 17 {
		t.Errorf("selected = %v, want June 17", m.selected)
	}
	m.Update(tea.KeyPressMsg{Code: 'k', Text: "k"})
	if m.selected.Day() != 10 {
		t.Errorf("selected = %v, want back to June 10", m.selected)
	}
}

func TestGoToTodayReevaluates(t *testing.T) {
	src := newFake()
	m := testModel(t, src)

	m.nextMonth()
	m.goToToday()

	now := time.Now()
	if m.today.Year() != now.Year() || m.today.YearDay() != now.YearDay() {
		t.Errorf("today = %v, want the real current date", m.today)
	}
	if !m.selected.Equal(m.today) {
		t.Errorf("selected = %v, want today", m.selected)
	}
}
