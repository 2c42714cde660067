// Package reminders lists and toggles reminders on the command line.
package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/dates"
	"tableflip.dev/agenda/pkg/printers"
)

type Reminders struct {
	ShowID bool
	On     *time.Time // nil lists the whole incomplete set
	Source calendar.Source
}

func (n *Reminders) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list reminders, no source")
	}

	pp := printers.New()
	pp.ShowID = n.ShowID
	fmt.Println("")

	rems := n.Source.IncompleteReminders(ctx)
	calendar.SortReminders(rems)

	if n.On != nil {
		var due []calendar.Reminder
		for _, rem := range rems {
			if rem.DueDate != nil && dates.SameDay(*rem.DueDate, *n.On) {
				due = append(due, rem)
			}
		}
		pp.Title("Reminders due " + n.On.Format("Monday, January 2, 2006"))
		pp.Reminders(due...)
		return nil
	}

	pp.TitleWithCount("Reminders", len(rems))
	pp.Reminders(rems...)
	return nil
}

// Toggle flips one reminder's completion state by ID.
type Toggle struct {
	ID     string
	Source calendar.Source
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not toggle, no source")
	}
	completed, err := n.Source.ToggleReminder(ctx, n.ID)
	if err != nil {
		return err
	}
	if completed {
		fmt.Println("completed")
	} else {
		fmt.Println("uncompleted")
	}
	return nil
}
