// Package dates provides the day/week/month stepping used by calendar
// navigation. All functions are pure and operate on dates normalized to
// midnight in the input's location.
package dates

import "time"

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextDay returns the day after d.
func NextDay(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, 1)
}

// PrevDay returns the day before d.
func PrevDay(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, -1)
}

// NextWeek returns d plus seven days.
func NextWeek(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, 7)
}

// PrevWeek returns d minus seven days.
func PrevWeek(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, -7)
}

// NextMonth advances the month component, wrapping the year at December and
// clamping the day-of-month so Jan 31 lands on Feb 28 (or 29), not Mar 3.
func NextMonth(d time.Time) time.Time {
	year, month := d.Year(), d.Month()
	if month == time.December {
		year, month = year+1, time.January
	} else {
		month++
	}
	day := min(d.Day(), DaysInMonth(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// PrevMonth steps the month component backwards, wrapping the year at January
// and clamping the day-of-month.
func PrevMonth(d time.Time) time.Time {
	year, month := d.Year(), d.Month()
	if month == time.January {
		year, month = year-1, time.December
	} else {
		month--
	}
	day := min(d.Day(), DaysInMonth(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, d.Location())
}

// WeekStart returns the Sunday on or before d. Weeks are Sunday-first,
// independent of locale.
func WeekStart(d time.Time) time.Time {
	return Midnight(d).AddDate(0, 0, -int(d.Weekday()))
}

// DaysInMonth returns the number of days in the given month, derived from the
// first day of the following month minus one day so leap years fall out of
// the calendar math instead of a table.
func DaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, 0).AddDate(0, 0, -1).Day()
}
