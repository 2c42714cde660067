// Package events lists stored events on the command line.
package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/printers"
)

// Scope selects how much of the calendar around On is listed.
type Scope string

const (
	ScopeDay   Scope = "day"
	ScopeWeek  Scope = "week"
	ScopeMonth Scope = "month"
)

type Events struct {
	ShowID bool
	Scope  Scope
	On     time.Time
	Source calendar.Source
}

func (n *Events) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not list events, no source")
	}

	pp := printers.New()
	pp.ShowID = n.ShowID
	fmt.Println("")

	var evs []calendar.Event
	switch n.Scope {
	case ScopeWeek:
		evs = n.Source.EventsForWeek(ctx, n.On)
		pp.Title("Week of " + n.On.Format("January 2, 2006"))
	case ScopeMonth:
		evs = n.Source.EventsForMonth(ctx, n.On.Year(), n.On.Month())
		pp.MonthOverview(n.On, evs)
		pp.Title(n.On.Format("January 2006"))
	default:
		evs = n.Source.EventsForDate(ctx, n.On)
		pp.Title(n.On.Format("Monday, January 2, 2006"))
	}

	pp.Events(evs...)
	return nil
}
