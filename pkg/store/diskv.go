// Package store implements the calendar.Source contract on top of a diskv
// key/value database. Events, reminders, and calendar metadata live as JSON
// blobs under kind-prefixed keys.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/dates"
)

const (
	kindEvents    = "events"
	kindReminders = "reminders"
	kindCalendars = "calendars"
)

// DefaultCalendarTitle names the calendar seeded on first access.
const DefaultCalendarTitle = "Personal"

// Store is a file-backed calendar source.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

var _ calendar.Source = (*Store)(nil)

// Load creates a Store rooted at the configured base path.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// RequestAccess verifies the base path is usable, seeding a default calendar
// on first run. A permission failure reports denied access rather than an
// error so the UI can degrade to its denied state.
func (s *Store) RequestAccess(ctx context.Context) (bool, error) {
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		if os.IsPermission(err) {
			return false, nil
		}
		return false, fmt.Errorf("store: open base path: %w", err)
	}
	if len(s.Calendars(ctx)) == 0 {
		if err := s.PutCalendar(calendar.Info{
			ID:     uuid.NewString(),
			Title:  DefaultCalendarTitle,
			Color:  "#2e8b57",
			Source: "local",
		}); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Calendars returns all known calendars sorted by title.
func (s *Store) Calendars(ctx context.Context) []calendar.Info {
	var infos []calendar.Info
	for key := range s.d.KeysPrefix(kindCalendars+"/", ctx.Done()) {
		var info calendar.Info
		if err := s.read(key, &info); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Title < infos[j].Title })
	return infos
}

// PutCalendar stores calendar metadata, minting an ID when absent.
func (s *Store) PutCalendar(info calendar.Info) error {
	if info.Title == "" {
		return errors.New("store: calendar title required")
	}
	if info.ID == "" {
		info.ID = uuid.NewString()
	}
	return s.write(kindCalendars+"/"+info.ID, info)
}

// CalendarByTitle finds a calendar by its display title.
func (s *Store) CalendarByTitle(ctx context.Context, title string) (calendar.Info, bool) {
	for _, info := range s.Calendars(ctx) {
		if info.Title == title {
			return info, true
		}
	}
	return calendar.Info{}, false
}

func (s *Store) EventsForDate(ctx context.Context, date time.Time) []calendar.Event {
	start := dates.Midnight(date)
	return s.eventsInRange(ctx, start, start.AddDate(0, 0, 1))
}

func (s *Store) EventsForWeek(ctx context.Context, date time.Time) []calendar.Event {
	start := dates.WeekStart(date)
	return s.eventsInRange(ctx, start, start.AddDate(0, 0, 7))
}

func (s *Store) EventsForMonth(ctx context.Context, year int, month time.Month) []calendar.Event {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return s.eventsInRange(ctx, start, start.AddDate(0, 1, 0))
}

// eventsInRange returns events intersecting [start, end), sorted by start
// time ascending. Read failures degrade to missing items, never errors.
func (s *Store) eventsInRange(ctx context.Context, start, end time.Time) []calendar.Event {
	var events []calendar.Event
	for key := range s.d.KeysPrefix(kindEvents+"/", ctx.Done()) {
		var ev calendar.Event
		if err := s.read(key, &ev); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if ev.Start.Before(end) && ev.End.After(start) {
			events = append(events, ev)
		}
	}
	calendar.SortEventsByStart(events)
	return events
}

// CreateEvent validates and stores a new event. All-day drafts are
// normalized to span midnight to the following midnight.
func (s *Store) CreateEvent(ctx context.Context, draft calendar.EventDraft) error {
	if strings.TrimSpace(draft.Title) == "" {
		return errors.New("store: event title required")
	}

	start, end := draft.Start, draft.End
	if draft.AllDay {
		start = dates.Midnight(draft.Date)
		end = start.AddDate(0, 0, 1)
	}
	if end.Before(start) {
		return errors.New("store: event ends before it starts")
	}

	info, ok := s.calendarByID(ctx, draft.CalendarID)
	if !ok {
		if cals := s.Calendars(ctx); len(cals) > 0 {
			info = cals[0]
		}
	}

	ev := calendar.Event{
		ID:            uuid.NewString(),
		Title:         draft.Title,
		Start:         start,
		End:           end,
		AllDay:        draft.AllDay,
		CalendarName:  info.Title,
		CalendarColor: info.Color,
	}
	return s.PutEvent(ev)
}

// PutEvent stores an event as-is; used by CreateEvent and the ICS importer.
func (s *Store) PutEvent(ev calendar.Event) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	return s.write(kindEvents+"/"+ev.ID, ev)
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	key := kindEvents + "/" + id
	if !s.d.Has(key) {
		return fmt.Errorf("store: no event with id %s", id)
	}
	return s.d.Erase(key)
}

// IncompleteReminders returns all reminders not yet completed, in storage
// order; callers apply their own ordering.
func (s *Store) IncompleteReminders(ctx context.Context) []calendar.Reminder {
	var reminders []calendar.Reminder
	for key := range s.d.KeysPrefix(kindReminders+"/", ctx.Done()) {
		var rem calendar.Reminder
		if err := s.read(key, &rem); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if !rem.Completed {
			reminders = append(reminders, rem)
		}
	}
	return reminders
}

// PutReminder stores a reminder, minting an ID when absent.
func (s *Store) PutReminder(rem calendar.Reminder) error {
	if strings.TrimSpace(rem.Title) == "" {
		return errors.New("store: reminder title required")
	}
	if rem.ID == "" {
		rem.ID = uuid.NewString()
	}
	return s.write(kindReminders+"/"+rem.ID, rem)
}

// ToggleReminder flips completion state and returns the new state.
func (s *Store) ToggleReminder(ctx context.Context, id string) (bool, error) {
	key := kindReminders + "/" + id
	var rem calendar.Reminder
	if err := s.read(key, &rem); err != nil {
		return false, fmt.Errorf("store: no reminder with id %s", id)
	}
	rem.Completed = !rem.Completed
	if err := s.write(key, rem); err != nil {
		return false, err
	}
	return rem.Completed, nil
}

func (s *Store) calendarByID(ctx context.Context, id string) (calendar.Info, bool) {
	if id == "" {
		return calendar.Info{}, false
	}
	var info calendar.Info
	if err := s.read(kindCalendars+"/"+id, &info); err != nil {
		return calendar.Info{}, false
	}
	return info, true
}

func (s *Store) read(key string, v any) error {
	val, err := s.d.Read(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(val, v)
}

func (s *Store) write(key string, v any) error {
	val, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.d.Write(key, val)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}
