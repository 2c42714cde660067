// Package importer loads ICS files into the store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/ics"
	"tableflip.dev/agenda/pkg/store"
)

type Importer struct {
	Path string
	// CalendarTitle overrides the calendar the events land in. Empty falls
	// back to the file's X-WR-CALNAME, then the file name.
	CalendarTitle string
	Color         string
	// WindowDays bounds recurrence expansion around today, in both
	// directions. Zero means one year.
	WindowDays int

	Persistence *store.Store
}

func (n *Importer) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	body, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}

	file, err := ics.Parse(body)
	if err != nil {
		return fmt.Errorf("parse %s: %w", n.Path, err)
	}

	info, err := n.targetCalendar(ctx, file)
	if err != nil {
		return err
	}

	window := n.WindowDays
	if window <= 0 {
		window = 365
	}
	now := time.Now()
	events, err := ics.Expand(file.Events, ics.ExpandConfig{
		RangeStart: now.AddDate(0, 0, -window),
		RangeEnd:   now.AddDate(0, 0, window),
		Calendar:   info,
	})
	if err != nil {
		return err
	}

	for _, ev := range events {
		if err := n.Persistence.PutEvent(ev); err != nil {
			return fmt.Errorf("store %s: %w", ev.Title, err)
		}
	}

	fmt.Printf("imported %d events into %q from %d entries\n", len(events), info.Title, len(file.Events))
	return nil
}

// targetCalendar finds or creates the calendar the import writes into.
func (n *Importer) targetCalendar(ctx context.Context, file ics.File) (calendar.Info, error) {
	title := n.CalendarTitle
	if title == "" {
		title = file.Name
	}
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(n.Path), filepath.Ext(n.Path))
	}

	if info, ok := n.Persistence.CalendarByTitle(ctx, title); ok {
		return info, nil
	}

	color := n.Color
	if color == "" {
		color = "#4682b4"
	}
	info := calendar.Info{
		ID:     uuid.NewString(),
		Title:  title,
		Color:  color,
		Source: "ics",
	}
	if err := n.Persistence.PutCalendar(info); err != nil {
		return calendar.Info{}, err
	}
	return info, nil
}
