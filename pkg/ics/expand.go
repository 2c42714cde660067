package ics

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"tableflip.dev/agenda/pkg/calendar"
)

const defaultMaxInstances = 1000

// ExpandConfig bounds recurrence expansion.
type ExpandConfig struct {
	// RangeStart / RangeEnd define the inclusive window for instances.
	RangeStart time.Time
	RangeEnd   time.Time
	// MaxInstancesPerEvent caps runaway rules. Zero means the default cap.
	MaxInstancesPerEvent int
	// Calendar attributes every produced event to a calendar.
	Calendar calendar.Info
}

// Expand materializes parsed events into concrete calendar events within the
// window: non-recurring events pass through when they intersect the range,
// RRULE events are expanded with EXDATEs removed. Unparseable rules are
// skipped. Event IDs are deterministic per UID and instance start so
// re-importing the same file overwrites rather than duplicates.
func Expand(events []ParsedEvent, cfg ExpandConfig) ([]calendar.Event, error) {
	if cfg.RangeEnd.Before(cfg.RangeStart) {
		return nil, errors.New("ics: expansion range end before start")
	}
	if cfg.MaxInstancesPerEvent <= 0 {
		cfg.MaxInstancesPerEvent = defaultMaxInstances
	}

	var out []calendar.Event
	for _, ev := range events {
		if ev.RawRRule == "" {
			if ev.End.Before(cfg.RangeStart) || ev.Start.After(cfg.RangeEnd) {
				continue
			}
			out = append(out, makeEvent(ev, ev.Start, ev.End, cfg.Calendar))
			continue
		}
		out = append(out, expandRecurring(ev, cfg)...)
	}
	return out, nil
}

func expandRecurring(ev ParsedEvent, cfg ExpandConfig) []calendar.Event {
	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	rangeStart := cfg.RangeStart.In(ev.Start.Location())
	rangeEnd := cfg.RangeEnd.In(ev.Start.Location())
	starts := set.Between(rangeStart, rangeEnd, true)
	if len(starts) > cfg.MaxInstancesPerEvent {
		starts = starts[:cfg.MaxInstancesPerEvent]
	}

	duration := ev.End.Sub(ev.Start)
	out := make([]calendar.Event, 0, len(starts))
	for _, start := range starts {
		var end time.Time
		if ev.AllDay {
			start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
			end = start.AddDate(0, 0, 1)
		} else {
			end = start.Add(duration)
		}
		out = append(out, makeEvent(ev, start, end, cfg.Calendar))
	}
	return out
}

func makeEvent(ev ParsedEvent, start, end time.Time, cal calendar.Info) calendar.Event {
	start = start.In(time.Local)
	end = end.In(time.Local)
	if ev.AllDay {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
		end = start.AddDate(0, 0, 1)
	}
	return calendar.Event{
		ID:            fmt.Sprintf("%s@%s", ev.UID, start.Format(time.RFC3339)),
		Title:         ev.Summary,
		Start:         start,
		End:           end,
		AllDay:        ev.AllDay,
		CalendarName:  cal.Title,
		CalendarColor: cal.Color,
		Location:      ev.Location,
		Notes:         ev.Description,
	}
}
