// Package dayview renders the flattened day list and the item detail popup.
package dayview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/daylist"
	"tableflip.dev/agenda/pkg/runner/tea/internal/theme"
)

// Render draws the day's row list with the cursor row highlighted. The row
// sequence comes straight from the compositor; only presentation happens
// here. A day with no items renders an explicit empty state.
func Render(date time.Time, l daylist.List, events []calendar.Event, reminders []calendar.Reminder, scroll, width, height int, th theme.Theme) string {
	title := th.Header.Render(date.Format("Monday, January 2, 2006"))

	if l.Empty() {
		return title + "\n\n" + th.Dim.Render("Nothing scheduled")
	}

	rows := l.Rows()
	lines := make([]string, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, renderRow(row, i == scroll, events, reminders, width, th))
	}

	// Keep the cursor row inside the viewport.
	if height > 0 && len(lines) > height {
		top := 0
		if scroll >= height {
			top = scroll - height + 1
		}
		if top+height > len(lines) {
			top = len(lines) - height
		}
		lines = lines[top : top+height]
	}

	return title + "\n" + strings.Join(lines, "\n")
}

func renderRow(row daylist.Row, active bool, events []calendar.Event, reminders []calendar.Reminder, width int, th theme.Theme) string {
	switch row.Kind {
	case daylist.RowHeader:
		return th.Header.Render(row.Label)
	case daylist.RowSpacer:
		return ""
	}

	var line string
	var colorHex string
	switch row.Action.Kind {
	case daylist.ActionEvent:
		ev := events[row.Action.Index]
		line = fmt.Sprintf("%-13s %s", ev.DurationDisplay(), ev.Title)
		colorHex = ev.CalendarColor
	case daylist.ActionReminder:
		rem := reminders[row.Action.Index]
		box := "[ ]"
		if rem.Completed {
			box = "[x]"
		}
		line = fmt.Sprintf("%s %s", box, rem.Title)
		if rem.Priority > 0 {
			line += " " + th.Dim.Render("!")
		}
		colorHex = rem.CalendarColor
	}

	if width > 2 {
		line = truncate.StringWithTail(line, uint(width-2), "…")
	}
	if active {
		return th.Selected.Render("▸ " + line)
	}
	return "  " + th.ForCalendar(colorHex).Render(line)
}

// RenderDetail draws the popup for the item under the cursor.
func RenderDetail(action daylist.Action, events []calendar.Event, reminders []calendar.Reminder, th theme.Theme) string {
	var lines []string
	switch action.Kind {
	case daylist.ActionEvent:
		if action.Index >= len(events) {
			return ""
		}
		ev := events[action.Index]
		lines = append(lines, th.Header.Render(ev.Title))
		lines = append(lines, ev.Start.Format("Monday, January 2, 2006"))
		lines = append(lines, ev.DurationDisplay())
		if ev.CalendarName != "" {
			lines = append(lines, th.Dim.Render("Calendar: ")+ev.CalendarName)
		}
		if ev.Location != "" {
			lines = append(lines, th.Dim.Render("Location: ")+ev.Location)
		}
		if ev.Notes != "" {
			lines = append(lines, "", ev.Notes)
		}
	case daylist.ActionReminder:
		if action.Index >= len(reminders) {
			return ""
		}
		rem := reminders[action.Index]
		state := "open"
		if rem.Completed {
			state = "completed"
		}
		lines = append(lines, th.Header.Render(rem.Title))
		lines = append(lines, th.Dim.Render("Status: ")+state)
		if rem.DueDate != nil {
			lines = append(lines, th.Dim.Render("Due: ")+rem.DueDate.Format("Monday, January 2, 2006"))
		}
		if rem.CalendarName != "" {
			lines = append(lines, th.Dim.Render("Calendar: ")+rem.CalendarName)
		}
		if rem.Priority > 0 {
			lines = append(lines, th.Dim.Render(fmt.Sprintf("Priority: %d", rem.Priority)))
		}
	default:
		return ""
	}

	lines = append(lines, "", th.Dim.Render("esc to close"))
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245")).Padding(0, 2)
	return box.Render(strings.Join(lines, "\n"))
}
