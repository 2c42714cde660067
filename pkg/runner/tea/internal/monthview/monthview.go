// Package monthview renders the month grid with event and reminder markers.
package monthview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/agenda/pkg/dates"
	"tableflip.dev/agenda/pkg/runner/tea/internal/theme"
)

// Render produces the Sunday-first calendar grid for the month containing
// selected. Days present in hasEvents get a trailing dot, days in
// hasReminders are underlined; today and the selected day get their theme
// styles.
func Render(selected, today time.Time, hasEvents, hasReminders map[int]bool, th theme.Theme) string {
	first := time.Date(selected.Year(), selected.Month(), 1, 0, 0, 0, 0, selected.Location())
	daysInMonth := dates.DaysInMonth(selected.Year(), selected.Month())

	var lines []string
	lines = append(lines, th.Header.Render(first.Format("January 2006")))
	lines = append(lines, th.Dim.Render("Su Mo Tu We Th Fr Sa"))

	startOffset := int(first.Weekday())
	totalCells := startOffset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, "   ")
				continue
			}
			cells = append(cells, renderDay(day, selected, today, hasEvents, hasReminders, th))
		}
		lines = append(lines, strings.Join(cells, ""))
	}

	return strings.Join(lines, "\n")
}

func renderDay(day int, selected, today time.Time, hasEvents, hasReminders map[int]bool, th theme.Theme) string {
	text := fmt.Sprintf("%2d", day)

	style := lipgloss.NewStyle()
	if hasReminders[day] {
		style = style.Underline(true)
	}
	switch {
	case day == today.Day() && selected.Month() == today.Month() && selected.Year() == today.Year():
		style = style.Inherit(th.Today)
	case day == selected.Day():
		style = style.Inherit(th.Selected)
	}

	marker := " "
	if hasEvents[day] {
		marker = th.EventDot.Render("•")
	}
	return style.Render(text) + marker
}
