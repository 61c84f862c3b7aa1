package share

import (
	"strings"
	"testing"
	"time"
)

// TestQuizTextNeverLeaksAnswer checks the quiz share text contains only
// outcome, streak and countdown.
func TestQuizTextNeverLeaksAnswer(t *testing.T) {
	text := Quiz("2026-08-31", true, 4, 90*time.Minute)
	if !strings.Contains(text, "2026-08-31") {
		t.Errorf("missing date: %q", text)
	}
	if !strings.Contains(text, "Streak: 4") {
		t.Errorf("missing streak: %q", text)
	}
	if !strings.Contains(text, "✓") {
		t.Errorf("missing outcome mark: %q", text)
	}
	lost := Quiz("2026-08-31", false, 0, time.Hour)
	if !strings.Contains(lost, "✗") {
		t.Errorf("missing miss mark: %q", lost)
	}
}

// TestHangmanTextExcludesSolution checks the hangman share text never
// contains the phrase or any masked form of it.
func TestHangmanTextExcludesSolution(t *testing.T) {
	solution := "Fagurt er á fjøllum"
	text := Hangman("2026-08-31", true, 2, 6, 3, 2*time.Hour)
	if strings.Contains(text, solution) {
		t.Errorf("share text contains the solution: %q", text)
	}
	if strings.Contains(text, "•") {
		t.Errorf("share text contains a mask: %q", text)
	}
	if !strings.Contains(text, "✗✗○○○○") {
		t.Errorf("missing wrong-guess tally: %q", text)
	}
}

// TestWrongTally checks the tally clamps at the allowance.
func TestWrongTally(t *testing.T) {
	tests := []struct {
		wrong int
		want  string
	}{
		{0, "○○○○○○"},
		{3, "✗✗✗○○○"},
		{6, "✗✗✗✗✗✗"},
		{9, "✗✗✗✗✗✗"},
	}
	for _, tt := range tests {
		if got := wrongTally(tt.wrong, 6); got != tt.want {
			t.Errorf("wrongTally(%d) = %q, want %q", tt.wrong, got, tt.want)
		}
	}
}

// TestFormatCountdown checks unit selection and pluralisation.
func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{3*time.Hour + 12*time.Minute, "3 hours, 12 minutes"},
		{time.Hour + time.Minute, "1 hour, 1 minute"},
		{5*time.Minute + 30*time.Second, "5 minutes, 30 seconds"},
		{time.Second, "1 second"},
		{0, "0 seconds"},
		{-time.Minute, "0 seconds"},
	}
	for _, tt := range tests {
		if got := FormatCountdown(tt.d); got != tt.want {
			t.Errorf("FormatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

// TestUntilNextPuzzle checks the countdown targets the next local midnight.
func TestUntilNextPuzzle(t *testing.T) {
	now := time.Date(2026, time.August, 31, 22, 0, 0, 0, time.Local)
	if got := UntilNextPuzzle(now); got != 2*time.Hour {
		t.Errorf("UntilNextPuzzle at 22:00 = %v, want 2h", got)
	}
	midnight := time.Date(2026, time.August, 31, 0, 0, 0, 0, time.Local)
	if got := UntilNextPuzzle(midnight); got != 24*time.Hour {
		t.Errorf("UntilNextPuzzle at midnight = %v, want 24h", got)
	}
}
