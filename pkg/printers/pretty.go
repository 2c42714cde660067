// Package printers renders events, reminders, and calendars for the
// non-interactive CLI commands.
package printers

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/agenda/pkg/calendar"
)

type PrettyPrint struct {
	ShowID bool
}

// New returns a printer with color disabled when stdout is not a terminal.
func New() *PrettyPrint {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	return &PrettyPrint{}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// Events prints a table of events, one row per event. An empty slice prints
// an explicit none marker so scripted output stays predictable.
func (pp *PrettyPrint) Events(events ...calendar.Event) {
	if len(events) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	if pp.ShowID {
		table.AddRow("ID", "DATE", "TIME", "TITLE", "CALENDAR")
	} else {
		table.AddRow("DATE", "TIME", "TITLE", "CALENDAR")
	}
	for _, ev := range events {
		cells := []interface{}{
			ev.Start.Format("Mon Jan 2"),
			ev.DurationDisplay(),
			ev.Title,
			ev.CalendarName,
		}
		if pp.ShowID {
			cells = append([]interface{}{ev.ID}, cells...)
		}
		table.AddRow(cells...)
	}
	fmt.Println(table)
	fmt.Println("")
}

// Reminders prints reminders as a checklist in the order given.
func (pp *PrettyPrint) Reminders(reminders ...calendar.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, rem := range reminders {
		if pp.ShowID {
			_, _ = y.Printf("%s  ", rem.ID)
		}
		box := "[ ]"
		if rem.Completed {
			box = "[x]"
		}
		_, _ = t.Printf("%s %s", box, rem.Title)
		if rem.DueDate != nil {
			_, _ = d.Printf("  due %s", rem.DueDate.Format("Jan 2"))
		}
		if rem.Priority > 0 {
			_, _ = d.Printf("  !%d", rem.Priority)
		}
		_, _ = t.Println("")
	}
	fmt.Println("")
}

// Calendars prints known calendars with their colors and sources.
func (pp *PrettyPrint) Calendars(infos ...calendar.Info) {
	if len(infos) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	if pp.ShowID {
		table.AddRow("ID", "TITLE", "COLOR", "SOURCE")
	} else {
		table.AddRow("TITLE", "COLOR", "SOURCE")
	}
	for _, info := range infos {
		cells := []interface{}{info.Title, info.Color, info.Source}
		if pp.ShowID {
			cells = append([]interface{}{info.ID}, cells...)
		}
		table.AddRow(cells...)
	}
	fmt.Println(table)
	fmt.Println("")
}

const monthWidth = len("11 12 13 14 15 16 17") // an example week

// MonthOverview prints a compact month grid; days with at least one event
// render bold, the rest faint.
func (pp *PrettyPrint) MonthOverview(then time.Time, events []calendar.Event) {
	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (monthWidth - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", monthWidth-mid-len(m)))

	busy := map[int]bool{}
	for _, ev := range events {
		if ev.Start.Year() == then.Year() && ev.Start.Month() == then.Month() {
			busy[ev.Start.Day()] = true
		}
	}

	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)
	days := first.AddDate(0, 1, 0).AddDate(0, 0, -1).Day()
	d := first.Weekday()

	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	quiet := color.New(color.Faint, color.FgWhite)
	loud := color.New(color.Bold, color.FgHiWhite)

	for day := 1; day <= days; day++ {
		if busy[day] {
			_, _ = loud.Printf("%2d ", day)
		} else {
			_, _ = quiet.Printf("%2d ", day)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}
