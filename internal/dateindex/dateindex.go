// Package dateindex maps calendar dates onto zero-based puzzle day indices.
//
// All arithmetic uses local calendar components (year, month, day), never
// UTC instants, so two times on the same local day always index the same
// puzzle regardless of time-of-day, timezone offset or DST transitions.
package dateindex

import (
	"fmt"
	"time"
)

// localMidnight pins a time to midnight of its own local calendar day.
// The result is rebuilt in UTC so every day is exactly 24 hours long and
// DST transitions cannot skew the subtraction.
func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of local calendar days from b to a.
// Negative when a precedes b.
func DaysBetween(a, b time.Time) int {
	return int(localMidnight(a).Sub(localMidnight(b)).Hours() / 24)
}

// DayIndex returns the zero-based day index of date relative to epoch.
// The epoch itself is day 0; dates before the epoch yield negative indices.
func DayIndex(date, epoch time.Time) int {
	return DaysBetween(date, epoch)
}

// ToISODate formats the local calendar day of t as "YYYY-MM-DD".
func ToISODate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseISODate parses a "YYYY-MM-DD" string into a local-midnight time.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO date %q: %w", s, err)
	}
	return t, nil
}
