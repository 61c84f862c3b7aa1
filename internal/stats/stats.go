// Package stats maintains per-device play counts and the consecutive-day
// streak.
package stats

import "github.com/Brandypants/faroese-false-friends/internal/dateindex"

// Stats is the persisted statistics record for one device and puzzle kind.
// It only changes through Apply / ApplyOnce.
type Stats struct {
	Played     int    `json:"played"`
	Wins       int    `json:"wins"`
	Streak     int    `json:"streak"`
	MaxStreak  int    `json:"maxStreak"`
	LastPlayed string `json:"lastPlayed,omitempty"`
	// LastKey is the day key of the most recent application, kept so a
	// re-entrant completion cannot double-count.
	LastKey string `json:"lastKey,omitempty"`
}

// Result is the outcome of one completed day.
type Result struct {
	Date    string `json:"date"`
	Correct bool   `json:"correct"`
}

// Apply folds one day's result into the record and returns the updated
// record. Callers must invoke it at most once per completed day; Apply
// itself does not deduplicate (use ApplyOnce for that).
//
// The streak counts consecutive local calendar days with a correct result:
// a correct result exactly one day after LastPlayed extends it, any other
// gap restarts it at 1, and an incorrect result clears it to 0.
func Apply(s Stats, r Result) Stats {
	s.Played++
	if r.Correct {
		s.Wins++
		if d, ok := dayGap(r.Date, s.LastPlayed); ok && d == 1 {
			s.Streak++
		} else {
			s.Streak = 1
		}
	} else {
		s.Streak = 0
	}
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}
	s.LastPlayed = r.Date
	return s
}

// ApplyOnce applies a result under a day key, refusing a second application
// for the same key. The second return reports whether the result was
// actually folded in.
func ApplyOnce(s Stats, dayKey string, r Result) (Stats, bool) {
	if dayKey != "" && s.LastKey == dayKey {
		return s, false
	}
	s = Apply(s, r)
	s.LastKey = dayKey
	return s, true
}

// dayGap returns the local calendar-day difference from prev to date.
// ok is false when either date is missing or malformed.
func dayGap(date, prev string) (int, bool) {
	if date == "" || prev == "" {
		return 0, false
	}
	a, err := dateindex.ParseISODate(date)
	if err != nil {
		return 0, false
	}
	b, err := dateindex.ParseISODate(prev)
	if err != nil {
		return 0, false
	}
	return dateindex.DaysBetween(a, b), true
}
