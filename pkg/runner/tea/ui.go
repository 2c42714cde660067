// Package teaui implements the interactive calendar browser: a Bubble Tea
// model that owns the selected date, the active view, the cached event and
// reminder catalogs, and the day-list cursor.
package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/dates"
	"tableflip.dev/agenda/pkg/daylist"
	"tableflip.dev/agenda/pkg/runner/tea/internal/dayview"
	"tableflip.dev/agenda/pkg/runner/tea/internal/eventform"
	"tableflip.dev/agenda/pkg/runner/tea/internal/monthview"
	"tableflip.dev/agenda/pkg/runner/tea/internal/theme"
	"tableflip.dev/agenda/pkg/runner/tea/internal/weekview"
)

// viewMode selects which main view renders. Transitions are free; no guards.
type viewMode int

const (
	viewMonth viewMode = iota
	viewWeek
	viewDay
)

// mode gates which key commands are legal. While a form or popup is open,
// navigation and scrolling are suppressed.
type mode int

const (
	modeNormal mode = iota
	modeForm
	modeDetail
	modeHelp
)

// Model contains the view state and per-session item catalog.
type Model struct {
	source calendar.Source
	ctx    context.Context
	th     theme.Theme

	mode mode
	view viewMode

	accessGranted bool

	selected time.Time
	today    time.Time

	calendars         []calendar.Info
	monthEvents       []calendar.Event
	weekEvents        []calendar.Event
	dayEvents         []calendar.Event
	reminders         []calendar.Reminder
	dayReminders      []calendar.Reminder
	daysWithEvents    map[int]bool
	daysWithReminders map[int]bool

	dayScroll int
	detail    daylist.Action
	form      *eventform.Model

	status string

	termWidth  int
	termHeight int
}

// New builds the model and performs the one-time access check. Only an access
// failure propagates; everything after degrades to status messages.
func New(src calendar.Source) (*Model, error) {
	today := dates.Midnight(time.Now())
	m := &Model{
		source:            src,
		ctx:               context.Background(),
		th:                theme.Default(),
		view:              viewMonth,
		selected:          today,
		today:             today,
		daysWithEvents:    map[int]bool{},
		daysWithReminders: map[int]bool{},
	}

	granted, err := src.RequestAccess(m.ctx)
	if err != nil {
		return nil, fmt.Errorf("calendar access check: %w", err)
	}
	m.accessGranted = granted
	if granted {
		m.calendars = src.Calendars(m.ctx)
		m.refreshEvents()
	}
	return m, nil
}

// Init satisfies tea.Model; all initial data is loaded in New.
func (m *Model) Init() tea.Cmd {
	return nil
}

// ── Catalog refresh ──

// refreshEvents re-fetches month, week, and day events plus reminders for
// the selected date, rebuilds the marker sets, and resets the cursor to the
// first actionable row.
func (m *Model) refreshEvents() {
	year, month := m.selected.Year(), m.selected.Month()

	m.monthEvents = m.source.EventsForMonth(m.ctx, year, month)
	m.dayEvents = m.source.EventsForDate(m.ctx, m.selected)
	m.weekEvents = m.source.EventsForWeek(m.ctx, m.selected)

	m.daysWithEvents = map[int]bool{}
	for _, ev := range m.monthEvents {
		if ev.Start.Year() == year && ev.Start.Month() == month {
			m.daysWithEvents[ev.Start.Day()] = true
		}
	}

	m.refreshReminders()
	m.dayReminders = m.filterDayReminders()

	m.daysWithReminders = map[int]bool{}
	for _, rem := range m.reminders {
		if rem.DueDate != nil && rem.DueDate.Year() == year && rem.DueDate.Month() == month {
			m.daysWithReminders[rem.DueDate.Day()] = true
		}
	}

	m.dayScroll = m.dayList().FirstActionable()
}

// refreshReminders re-fetches the session-wide incomplete reminder set and
// applies the canonical ordering exactly once.
func (m *Model) refreshReminders() {
	m.reminders = m.source.IncompleteReminders(m.ctx)
	calendar.SortReminders(m.reminders)
}

// filterDayReminders narrows the sorted session set to reminders due on the
// selected date. Undated reminders never appear in a day view.
func (m *Model) filterDayReminders() []calendar.Reminder {
	var out []calendar.Reminder
	for _, rem := range m.reminders {
		if rem.DueDate != nil && dates.SameDay(*rem.DueDate, m.selected) {
			out = append(out, rem)
		}
	}
	return out
}

// onDateChanged refetches day and week data only when the month is unchanged
// and already loaded; crossing a month boundary (or starting cold) pays for
// the full refresh.
func (m *Model) onDateChanged() {
	sameMonth := len(m.monthEvents) > 0 &&
		m.monthEvents[0].Start.Month() == m.selected.Month() &&
		m.monthEvents[0].Start.Year() == m.selected.Year()

	if !sameMonth {
		m.refreshEvents()
		return
	}
	m.dayEvents = m.source.EventsForDate(m.ctx, m.selected)
	m.weekEvents = m.source.EventsForWeek(m.ctx, m.selected)
	m.dayReminders = m.filterDayReminders()
	m.dayScroll = m.dayList().FirstActionable()
}

// dayList builds the derived row layout for the selected day. It is never
// cached; the compositor output is recomputed from the catalog on demand.
func (m *Model) dayList() daylist.List {
	return daylist.New(m.dayEvents, m.dayReminders)
}

// ── Navigation ──

func (m *Model) nextDay()  { m.selected = dates.NextDay(m.selected); m.onDateChanged() }
func (m *Model) prevDay()  { m.selected = dates.PrevDay(m.selected); m.onDateChanged() }
func (m *Model) nextWeek() { m.selected = dates.NextWeek(m.selected); m.onDateChanged() }
func (m *Model) prevWeek() { m.selected = dates.PrevWeek(m.selected); m.onDateChanged() }

func (m *Model) nextMonth() { m.selected = dates.NextMonth(m.selected); m.onDateChanged() }
func (m *Model) prevMonth() { m.selected = dates.PrevMonth(m.selected); m.onDateChanged() }

// goToToday re-evaluates the real current date; this is the only place today
// moves during a session.
func (m *Model) goToToday() {
	m.today = dates.Midnight(time.Now())
	m.selected = m.today
	m.onDateChanged()
}

func (m *Model) scrollDayDown() { m.dayScroll = m.dayList().ScrollDown(m.dayScroll) }
func (m *Model) scrollDayUp()   { m.dayScroll = m.dayList().ScrollUp(m.dayScroll) }

// ── Actions ──

// toggleDayReminder flips the reminder under the cursor. On success the
// session reminder set is refetched and the day view refiltered; on failure
// the caches stay untouched and the error lands in the status line.
func (m *Model) toggleDayReminder() {
	action := m.dayList().ActionAt(m.dayScroll)
	if action.Kind != daylist.ActionReminder || action.Index >= len(m.dayReminders) {
		return
	}
	id := m.dayReminders[action.Index].ID
	newState, err := m.source.ToggleReminder(m.ctx, id)
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	if newState {
		m.status = "Reminder completed"
	} else {
		m.status = "Reminder uncompleted"
	}
	m.refreshReminders()
	m.dayReminders = m.filterDayReminders()
	m.dayScroll = m.dayList().FirstActionable()
}

// deleteSelectedEvent removes the event under the cursor. Reminders and
// non-actionable rows are ignored.
func (m *Model) deleteSelectedEvent() {
	action := m.dayList().ActionAt(m.dayScroll)
	if action.Kind != daylist.ActionEvent || action.Index >= len(m.dayEvents) {
		return
	}
	ev := m.dayEvents[action.Index]
	if err := m.source.DeleteEvent(m.ctx, ev.ID); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = "Deleted: " + ev.Title
	m.refreshEvents()
}

func (m *Model) showDetail() {
	action := m.dayList().ActionAt(m.dayScroll)
	if action.Kind == daylist.ActionNone {
		return
	}
	m.detail = action
	m.mode = modeDetail
}

func (m *Model) closeDetail() {
	m.detail = daylist.Action{}
	m.mode = modeNormal
}

// ── Event form ──

func (m *Model) openEventForm() {
	m.form = eventform.New(m.selected, m.calendars)
	m.mode = modeForm
}

func (m *Model) closeEventForm() {
	m.form = nil
	m.mode = modeNormal
}

// submitEventForm validates locally, then calls the data source. Validation
// or creation failures leave the form open with a status message; success
// closes the form and refreshes the full catalog.
func (m *Model) submitEventForm() {
	if m.form == nil {
		return
	}
	draft, err := m.form.Validate()
	if err != nil {
		m.status = "Invalid form: " + err.Error()
		return
	}
	if err := m.source.CreateEvent(m.ctx, draft); err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.status = "Created: " + draft.Title
	m.closeEventForm()
	m.refreshEvents()
}

// ── Update ──

// Update processes one input event to completion; every data-source call in
// here blocks until it succeeds or fails.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case tea.KeyPressMsg:
		// Any key clears the previous status message.
		m.status = ""

		if !m.accessGranted {
			if key := msg.String(); key == "q" || key == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "esc" || key == "?" || key == "q" {
				m.mode = modeNormal
			}
		case modeDetail:
			if key := msg.String(); key == "esc" || key == "enter" || key == "q" {
				m.closeDetail()
			}
		case modeForm:
			switch msg.String() {
			case "esc":
				m.closeEventForm()
			case "enter":
				if m.form != nil && (m.form.ActiveField() == eventform.FieldAllDay || m.form.ActiveField() == eventform.FieldCalendar) {
					return m, m.form.Update(msg)
				}
				m.submitEventForm()
			case "tab":
				m.form.NextField()
			case "shift+tab":
				m.form.PrevField()
			default:
				return m, m.form.Update(msg)
			}
		case modeNormal:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m *Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "1":
		m.view = viewMonth
	case "2":
		m.view = viewWeek
	case "3":
		m.view = viewDay

	case "t":
		m.goToToday()
	case "r":
		m.refreshReminders()
		m.dayReminders = m.filterDayReminders()
		m.status = "Reminders refreshed"

	case "n":
		m.openEventForm()
	case "d":
		m.deleteSelectedEvent()
	case "space":
		m.toggleDayReminder()
	case "enter":
		m.showDetail()

	case "h", "left":
		m.prevDay()
	case "l", "right":
		m.nextDay()
	case "k", "up":
		if m.view == viewWeek {
			m.prevWeek()
		} else {
			m.scrollDayUp()
		}
	case "j", "down":
		if m.view == viewWeek {
			m.nextWeek()
		} else {
			m.scrollDayDown()
		}

	case "[":
		m.prevMonth()
	case "]":
		m.nextMonth()

	case "?":
		m.mode = modeHelp
	}
	return m, nil
}

// ── View ──

func (m *Model) View() string {
	if !m.accessGranted {
		return m.th.Error.Render("Calendar access denied.") + "\n\n" +
			"The configured store is not accessible.\n\n" +
			m.th.Dim.Render("Press q to quit.")
	}

	width := m.termWidth
	if width == 0 {
		width = 80
	}
	contentHeight := m.termHeight - 3
	if contentHeight < 5 {
		contentHeight = 20
	}

	var body string
	switch m.view {
	case viewMonth:
		body = m.monthLayout(width, contentHeight)
	case viewWeek:
		body = weekview.Render(dates.WeekStart(m.selected), m.selected, m.today, m.weekEvents, width, m.th)
	case viewDay:
		body = dayview.Render(m.selected, m.dayList(), m.dayEvents, m.dayReminders, m.dayScroll, width, contentHeight, m.th)
	}

	switch m.mode {
	case modeForm:
		if m.form != nil {
			body += "\n\n" + m.form.View(m.th)
		}
	case modeDetail:
		body += "\n\n" + dayview.RenderDetail(m.detail, m.dayEvents, m.dayReminders, m.th)
	case modeHelp:
		body += "\n\n" + m.helpView()
	}

	return body + "\n\n" + m.statusBar(width)
}

// monthLayout puts the grid alone on narrow terminals and pairs it with the
// day list when there is room.
func (m *Model) monthLayout(width, height int) string {
	grid := monthview.Render(m.selected, m.today, m.daysWithEvents, m.daysWithReminders, m.th)
	if width < 60 {
		return grid
	}
	day := dayview.Render(m.selected, m.dayList(), m.dayEvents, m.dayReminders, m.dayScroll, width-26, height, m.th)
	gap := lipgloss.NewStyle().Padding(0, 2).Render(" ")
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, gap, day)
}

func (m *Model) statusBar(width int) string {
	modeStr := map[viewMode]string{viewMonth: "[1]Month", viewWeek: "[2]Week", viewDay: "[3]Day"}[m.view]
	left := " " + modeStr
	if m.mode == modeForm {
		left += " [New Event]"
	}
	left += " "

	right := " " + m.status + " "
	if m.status == "" {
		right = m.hints(width)
	}

	pad := width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 0 {
		pad = 0
	}
	return m.th.Status.Render(left + strings.Repeat(" ", pad) + right)
}

func (m *Model) hints(width int) string {
	switch {
	case m.view == viewWeek && width >= 70:
		return " hl:Day [/]:Mon t:Today n:New ?:Help q:Quit "
	case m.view == viewWeek:
		return " arrows:Nav n:New q:Quit "
	case width >= 80:
		return " hjkl:Nav [/]:Mon t:Today Enter:Detail Sp:Toggle n:New d:Del ?:Help q:Quit "
	case width >= 50:
		return " jk:Scroll Enter:Detail Sp:Toggle n:New q:Quit "
	default:
		return " ?:Help q:Quit "
	}
}

func (m *Model) helpView() string {
	rows := []string{
		m.th.Header.Render("Keybindings"),
		"",
		"  h/l  ←/→   previous/next day",
		"  j/k  ↓/↑   scroll day list (week step in week view)",
		"  [/]        previous/next month",
		"  t          jump to today",
		"  1/2/3      month / week / day view",
		"",
		"  enter      item details",
		"  space      toggle reminder",
		"  n          new event",
		"  d          delete selected event",
		"  r          refresh reminders",
		"",
		"  q / esc    quit / close popup",
	}
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("10")).Padding(0, 2)
	return box.Render(strings.Join(rows, "\n"))
}

// Run starts the interactive calendar UI.
func Run(src calendar.Source) error {
	m, err := New(src)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
