package stats

import (
	"reflect"
	"testing"
)

// TestApplyConsecutiveWins checks three correct days in a row build a
// streak of three.
func TestApplyConsecutiveWins(t *testing.T) {
	s := Stats{}
	for _, date := range []string{"2026-08-01", "2026-08-02", "2026-08-03"} {
		s = Apply(s, Result{Date: date, Correct: true})
	}
	want := Stats{Played: 3, Wins: 3, Streak: 3, MaxStreak: 3, LastPlayed: "2026-08-03"}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

// TestApplyMissBreaksStreak checks a single incorrect day clears the
// streak but keeps the peak.
func TestApplyMissBreaksStreak(t *testing.T) {
	s := Apply(Stats{}, Result{Date: "2026-08-01", Correct: true})
	s = Apply(s, Result{Date: "2026-08-02", Correct: false})
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0", s.Streak)
	}
	if s.MaxStreak != 1 {
		t.Errorf("maxStreak = %d, want 1", s.MaxStreak)
	}
	if s.Played != 2 || s.Wins != 1 {
		t.Errorf("played/wins = %d/%d, want 2/1", s.Played, s.Wins)
	}
	if s.LastPlayed != "2026-08-02" {
		t.Errorf("lastPlayed = %q, want 2026-08-02", s.LastPlayed)
	}
}

// TestApplySkippedDayRestartsStreak checks a gap of more than one day
// restarts the streak at 1 instead of extending it.
func TestApplySkippedDayRestartsStreak(t *testing.T) {
	s := Apply(Stats{}, Result{Date: "2026-08-01", Correct: true})
	s = Apply(s, Result{Date: "2026-08-03", Correct: true})
	if s.Streak != 1 {
		t.Errorf("streak after skipped day = %d, want 1", s.Streak)
	}
}

// TestApplyNonPositiveGapRestartsStreak checks same-day and backwards
// results restart rather than extend.
func TestApplyNonPositiveGapRestartsStreak(t *testing.T) {
	for _, date := range []string{"2026-08-05", "2026-08-01"} {
		s := Apply(Stats{}, Result{Date: "2026-08-05", Correct: true})
		s = Apply(s, Result{Date: date, Correct: true})
		if s.Streak != 1 {
			t.Errorf("streak after gap to %s = %d, want 1", date, s.Streak)
		}
	}
}

// TestApplyFirstEverWin checks an unset lastPlayed starts the streak at 1.
func TestApplyFirstEverWin(t *testing.T) {
	s := Apply(Stats{}, Result{Date: "2026-08-01", Correct: true})
	want := Stats{Played: 1, Wins: 1, Streak: 1, MaxStreak: 1, LastPlayed: "2026-08-01"}
	if !reflect.DeepEqual(s, want) {
		t.Errorf("got %+v, want %+v", s, want)
	}
}

// TestApplyMaxStreakNeverShrinks checks the peak survives later resets.
func TestApplyMaxStreakNeverShrinks(t *testing.T) {
	s := Stats{}
	for _, date := range []string{"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04"} {
		s = Apply(s, Result{Date: date, Correct: true})
	}
	s = Apply(s, Result{Date: "2026-08-05", Correct: false})
	s = Apply(s, Result{Date: "2026-08-06", Correct: true})
	if s.MaxStreak != 4 {
		t.Errorf("maxStreak = %d, want 4", s.MaxStreak)
	}
	if s.Streak != 1 {
		t.Errorf("streak = %d, want 1", s.Streak)
	}
}

// TestApplyIsNotIdempotent documents that the bare transition
// double-counts on repeat; deduplication is ApplyOnce's job.
func TestApplyIsNotIdempotent(t *testing.T) {
	r := Result{Date: "2026-08-01", Correct: true}
	s := Apply(Apply(Stats{}, r), r)
	if s.Played != 2 {
		t.Errorf("played = %d, want 2 (bare Apply must not deduplicate)", s.Played)
	}
}

// TestApplyOnce checks the day-key guard refuses a repeat application.
func TestApplyOnce(t *testing.T) {
	key := "2026-08-01:123:q001"
	r := Result{Date: "2026-08-01", Correct: true}

	s, applied := ApplyOnce(Stats{}, key, r)
	if !applied {
		t.Fatal("first application refused")
	}
	if s.Played != 1 || s.LastKey != key {
		t.Errorf("got %+v after first application", s)
	}

	again, applied := ApplyOnce(s, key, r)
	if applied {
		t.Error("second application for the same day key accepted")
	}
	if !reflect.DeepEqual(again, s) {
		t.Errorf("refused application still changed the record: %+v -> %+v", s, again)
	}

	next, applied := ApplyOnce(s, "2026-08-02:124:q002", Result{Date: "2026-08-02", Correct: true})
	if !applied {
		t.Error("application for a new day key refused")
	}
	if next.Played != 2 || next.Streak != 2 {
		t.Errorf("got %+v after second day", next)
	}
}
