// Package share assembles the plain-text result summary a player can paste
// elsewhere. The text never contains the solution, the word or any masked
// form of it — only the outcome, the streak and the countdown.
package share

import (
	"fmt"
	"strings"
	"time"
)

const title = "Falskir vinir"

// UntilNextPuzzle returns the time remaining until the next local calendar
// day begins.
func UntilNextPuzzle(now time.Time) time.Duration {
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	return next.Sub(now)
}

// Quiz builds the share text for a finished quiz day.
func Quiz(date string, correct bool, streak int, untilNext time.Duration) string {
	mark := "✓"
	if !correct {
		mark = "✗"
	}
	return fmt.Sprintf("%s %s %s\nStreak: %d\nNext puzzle in %s",
		title, date, mark, streak, FormatCountdown(untilNext))
}

// Hangman builds the share text for a finished hangman day. The wrong-guess
// tally stands in for the drawing; the phrase itself stays out.
func Hangman(date string, won bool, wrong, maxWrong, streak int, untilNext time.Duration) string {
	mark := "✓"
	if !won {
		mark = "✗"
	}
	return fmt.Sprintf("%s %s %s %s\nStreak: %d\nNext puzzle in %s",
		title, date, mark, wrongTally(wrong, maxWrong), streak, FormatCountdown(untilNext))
}

// wrongTally renders wrong guesses as filled marks against the allowance,
// e.g. "✗✗○○○○" for 2 of 6.
func wrongTally(wrong, maxWrong int) string {
	if wrong > maxWrong {
		wrong = maxWrong
	}
	return strings.Repeat("✗", wrong) + strings.Repeat("○", maxWrong-wrong)
}

// FormatCountdown returns a human-readable duration, most significant
// units first.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	seconds := int(d.Seconds()) % 60
	minutes := int(d.Minutes()) % 60
	hours := int(d.Hours())
	switch {
	case hours > 0:
		return fmt.Sprintf("%d hour%s, %d minute%s", hours, plural(hours), minutes, plural(minutes))
	case minutes > 0:
		return fmt.Sprintf("%d minute%s, %d second%s", minutes, plural(minutes), seconds, plural(seconds))
	default:
		return fmt.Sprintf("%d second%s", seconds, plural(seconds))
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
