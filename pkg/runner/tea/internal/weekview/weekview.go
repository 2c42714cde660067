// Package weekview renders a Sunday-to-Saturday column layout of events.
package weekview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/dates"
	"tableflip.dev/agenda/pkg/runner/tea/internal/theme"
)

const minColWidth = 10

// Render lays the week's events out in seven day columns. Events appear in
// the column of their start day, all-day events first.
func Render(weekStart, selected, today time.Time, events []calendar.Event, width int, th theme.Theme) string {
	colWidth := width / 7
	if colWidth < minColWidth {
		colWidth = minColWidth
	}

	cols := make([]string, 7)
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		cols[i] = renderDayColumn(day, selected, today, dayEvents(events, day), colWidth, th)
	}

	title := th.Header.Render(fmt.Sprintf("Week of %s", weekStart.Format("January 2, 2006")))
	return title + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

func dayEvents(events []calendar.Event, day time.Time) []calendar.Event {
	var out []calendar.Event
	for _, ev := range events {
		if dates.SameDay(ev.Start, day) || (ev.AllDay && ev.Start.Before(day) && ev.End.After(day)) {
			out = append(out, ev)
		}
	}
	return out
}

func renderDayColumn(day, selected, today time.Time, events []calendar.Event, width int, th theme.Theme) string {
	header := day.Format("Mon 2")
	switch {
	case dates.SameDay(day, today):
		header = th.Today.Render(header)
	case dates.SameDay(day, selected):
		header = th.Selected.Render(header)
	default:
		header = th.Header.Render(header)
	}

	lines := []string{header}
	for _, ev := range events {
		label := ev.Title
		if !ev.AllDay {
			label = ev.Start.Format("15:04") + " " + label
		}
		label = truncate.StringWithTail(label, uint(width-1), "…")
		lines = append(lines, th.ForCalendar(ev.CalendarColor).Render(label))
	}
	if len(events) == 0 {
		lines = append(lines, th.Dim.Render("-"))
	}

	col := strings.Join(lines, "\n")
	return lipgloss.NewStyle().Width(width).Render(col)
}
