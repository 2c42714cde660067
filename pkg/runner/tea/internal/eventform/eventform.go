// Package eventform holds the state and rendering for the new-event form.
package eventform

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/runner/tea/internal/theme"
)

// Field identifies the focused form field.
type Field int

const (
	FieldTitle Field = iota
	FieldDate
	FieldStart
	FieldEnd
	FieldAllDay
	FieldCalendar
	fieldCount
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// Model is the form state for creating an event.
type Model struct {
	inputs        [4]textinput.Model // title, date, start, end
	active        Field
	allDay        bool
	calendarIndex int
	calendars     []calendar.Info
}

// New builds a form pre-filled for the given date with default times.
func New(date time.Time, calendars []calendar.Info) *Model {
	m := &Model{calendars: calendars}
	placeholders := [4]string{"Event title", dateLayout, timeLayout, timeLayout}
	values := [4]string{"", date.Format(dateLayout), "09:00", "10:00"}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 128
		ti.Prompt = ""
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.focusActive()
	return m
}

// ActiveField returns the focused field.
func (m *Model) ActiveField() Field { return m.active }

// AllDay reports the all-day toggle.
func (m *Model) AllDay() bool { return m.allDay }

// NextField advances focus, wrapping around.
func (m *Model) NextField() {
	m.active = (m.active + 1) % fieldCount
	m.skipTimesWhenAllDay(1)
	m.focusActive()
}

// PrevField moves focus backwards, wrapping around.
func (m *Model) PrevField() {
	m.active = (m.active + fieldCount - 1) % fieldCount
	m.skipTimesWhenAllDay(-1)
	m.focusActive()
}

// All-day events have no time fields to edit.
func (m *Model) skipTimesWhenAllDay(dir Field) {
	for m.allDay && (m.active == FieldStart || m.active == FieldEnd) {
		m.active = (m.active + dir + fieldCount) % fieldCount
	}
}

// ToggleAllDay flips the all-day checkbox.
func (m *Model) ToggleAllDay() { m.allDay = !m.allDay }

// CycleCalendar advances the calendar selection.
func (m *Model) CycleCalendar() {
	if len(m.calendars) > 0 {
		m.calendarIndex = (m.calendarIndex + 1) % len(m.calendars)
	}
}

// Update routes a key press to the focused field. Toggle fields react to
// space; text fields pass input through to their textinput.
func (m *Model) Update(msg tea.KeyPressMsg) tea.Cmd {
	switch m.active {
	case FieldAllDay:
		if msg.String() == "space" || msg.String() == "enter" {
			m.ToggleAllDay()
		}
		return nil
	case FieldCalendar:
		if msg.String() == "space" || msg.String() == "enter" {
			m.CycleCalendar()
		}
		return nil
	}

	idx := int(m.active)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return cmd
}

func (m *Model) focusActive() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if int(m.active) < len(m.inputs) {
		m.inputs[m.active].Focus()
	}
}

// Validate checks the form and returns the draft to hand to the data source.
// All validation happens locally; the source is never called with bad input.
func (m *Model) Validate() (calendar.EventDraft, error) {
	var draft calendar.EventDraft

	title := strings.TrimSpace(m.inputs[FieldTitle].Value())
	if title == "" {
		return draft, errors.New("title is required")
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(m.inputs[FieldDate].Value()), time.Local)
	if err != nil {
		return draft, errors.New("date must be YYYY-MM-DD")
	}

	draft.Title = title
	draft.Date = date
	draft.AllDay = m.allDay
	if len(m.calendars) > 0 {
		draft.CalendarID = m.calendars[m.calendarIndex].ID
	}

	if m.allDay {
		return draft, nil
	}

	start, err := time.Parse(timeLayout, strings.TrimSpace(m.inputs[FieldStart].Value()))
	if err != nil {
		return draft, errors.New("start time must be HH:MM")
	}
	end, err := time.Parse(timeLayout, strings.TrimSpace(m.inputs[FieldEnd].Value()))
	if err != nil {
		return draft, errors.New("end time must be HH:MM")
	}

	draft.Start = date.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
	draft.End = date.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)
	if draft.End.Before(draft.Start) {
		return draft, errors.New("event ends before it starts")
	}
	return draft, nil
}

// View renders the form popup.
func (m *Model) View(th theme.Theme) string {
	label := func(f Field, name, value string) string {
		line := th.Dim.Render(name) + value
		if m.active == f {
			return th.Selected.Render("▸") + " " + line
		}
		return "  " + line
	}

	start, end := m.inputs[FieldStart].View(), m.inputs[FieldEnd].View()
	if m.allDay {
		start, end = th.Dim.Render("--:--"), th.Dim.Render("--:--")
	}

	allDayBox := "[ ] All day"
	if m.allDay {
		allDayBox = "[x] All day"
	}

	calName := "Default"
	if len(m.calendars) > 0 {
		calName = m.calendars[m.calendarIndex].Title
	}

	lines := []string{
		th.Header.Render("New Event"),
		"",
		label(FieldTitle, "Title: ", m.inputs[FieldTitle].View()),
		label(FieldDate, "Date:  ", m.inputs[FieldDate].View()),
		label(FieldStart, "Start: ", start),
		label(FieldEnd, "End:   ", end),
		label(FieldAllDay, "", allDayBox),
		label(FieldCalendar, "Cal:   ", calName),
		"",
		th.Dim.Render("tab next · space toggle · enter save · esc cancel"),
	}

	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 2)
	return box.Render(strings.Join(lines, "\n"))
}
