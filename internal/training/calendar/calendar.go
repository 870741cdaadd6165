package calendar

import (
	"fmt"
	"math"
	"time"
)

// DayKeyLayout is the canonical calendar day key format.
const DayKeyLayout = "2006-01-02"

// DayKey returns the canonical "YYYY-MM-DD" key for the given instant,
// using the wall clock of the instant's own location. Two representations
// of the same local day always produce the same key, regardless of the
// time-of-day or the UTC offset.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// ParseDayKey canonicalizes a stored date string into a day key.
// Accepts either a bare day key ("2006-01-02") or an RFC3339 instant;
// instants are moved into loc before keying, so that a timestamp stored
// as UTC does not shift the calendar day for the caller.
func ParseDayKey(s string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}

	if t, err := time.ParseInLocation(DayKeyLayout, s, loc); err == nil {
		return DayKey(t), nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return "", fmt.Errorf("parse day key %q: %w", s, err)
	}
	return DayKey(t.In(loc)), nil
}

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts whole calendar days from a to b, ignoring
// time-of-day. Negative when b is before a. Rounding absorbs the
// one-hour drift of DST transitions.
func DaysBetween(a, b time.Time) int {
	diff := StartOfDay(b).Sub(StartOfDay(a))
	return int(math.Round(diff.Hours() / 24))
}

// SameDay reports whether a and b fall on the same calendar day,
// each in its own location.
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// Week is a local calendar week: Monday 00:00:00 up to (excluding)
// the next Monday 00:00:00.
type Week struct {
	Start time.Time
}

// WeekOf returns the week containing t.
func WeekOf(t time.Time) Week {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return Week{Start: StartOfDay(t).AddDate(0, 0, -daysSinceMonday)}
}

// End returns the exclusive end of the week (next Monday midnight).
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, 7)
}

// Contains reports whether t's calendar day falls inside the week.
func (w Week) Contains(t time.Time) bool {
	d := DaysBetween(w.Start, t)
	return d >= 0 && d < 7
}

// DayAt returns the concrete date of the given weekday within the week.
func (w Week) DayAt(weekday time.Weekday) time.Time {
	return w.Start.AddDate(0, 0, (int(weekday)+6)%7)
}
