// Package hangman implements the phrase-guessing state machine.
//
// All letter comparison happens on a normalized form: locale-aware Faroese
// lowercasing of a single letter. Diacritics are significant — á, í, ó, ú,
// ý, ð, æ and ø are distinct letters, never folded to a base letter.
package hangman

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxWrong is the number of wrong guesses that loses the game.
const MaxWrong = 6

// Placeholder is the glyph shown for a letter that has not been guessed.
const Placeholder = "•"

// guessable is every letter a player can guess: the Faroese alphabet plus
// the plain Latin letters that appear in loanwords.
const guessable = "abcdefghijklmnopqrstuvwxyzáðíóúýæø"

var faroese = language.MustParse("fo")

// Status is the lifecycle of one hangman game.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// State is a player's progress on one puzzle. Guesses keeps insertion
// order for display; Wrong always equals the count of guessed letters
// absent from the solution, and Status is derived from the other fields.
type State struct {
	Guesses []string `json:"guesses"`
	Wrong   int      `json:"wrong"`
	Status  Status   `json:"status"`
}

// NewState returns a fresh game.
func NewState() State {
	return State{Guesses: []string{}, Wrong: 0, Status: StatusPlaying}
}

// Normalize lowercases raw with Faroese rules and reports whether the
// result is a single guessable letter.
func Normalize(raw string) (string, bool) {
	lowered := cases.Lower(faroese).String(strings.TrimSpace(raw))
	runes := []rune(lowered)
	if len(runes) != 1 {
		return "", false
	}
	if !strings.ContainsRune(guessable, runes[0]) {
		return "", false
	}
	return string(runes[0]), true
}

// RequiredLetters returns the set of distinct normalized letters that must
// all be guessed to win. Spaces, punctuation and digits never appear in it.
func RequiredLetters(solution string) map[string]struct{} {
	required := make(map[string]struct{})
	for _, r := range solution {
		if letter, ok := Normalize(string(r)); ok {
			required[letter] = struct{}{}
		}
	}
	return required
}

// GuessedSet converts a state's guess sequence into a lookup set.
func GuessedSet(st State) map[string]struct{} {
	guessed := make(map[string]struct{}, len(st.Guesses))
	for _, g := range st.Guesses {
		guessed[g] = struct{}{}
	}
	return guessed
}

// Mask renders the solution with unguessed letters hidden. Non-letters pass
// through unchanged; guessed letters keep their original casing and
// diacritic form from the solution.
func Mask(solution string, guessed map[string]struct{}) string {
	var b strings.Builder
	for _, r := range solution {
		letter, ok := Normalize(string(r))
		if !ok {
			b.WriteRune(r)
			continue
		}
		if _, hit := guessed[letter]; hit {
			b.WriteRune(r)
		} else {
			b.WriteString(Placeholder)
		}
	}
	return b.String()
}

// Guess applies one raw guess to a state and returns the next state.
// It is a no-op when the game is already over, when the input is not a
// guessable letter, or when the letter was guessed before. Won and lost
// are terminal.
func Guess(solution string, st State, raw string) State {
	if st.Status != StatusPlaying {
		return st
	}
	letter, ok := Normalize(raw)
	if !ok {
		return st
	}
	guessed := GuessedSet(st)
	if _, seen := guessed[letter]; seen {
		return st
	}

	next := State{
		Guesses: append(append([]string{}, st.Guesses...), letter),
		Wrong:   st.Wrong,
	}
	guessed[letter] = struct{}{}

	required := RequiredLetters(solution)
	if _, hit := required[letter]; !hit {
		next.Wrong++
	}
	next.Status = statusOf(required, guessed, next.Wrong)
	return next
}

// statusOf derives the game status from the required set, the guessed set
// and the wrong-guess count. A solution with no guessable letters is an
// authoring error and is never won.
func statusOf(required, guessed map[string]struct{}, wrong int) Status {
	if len(required) > 0 && allGuessed(required, guessed) {
		return StatusWon
	}
	if wrong >= MaxWrong {
		return StatusLost
	}
	return StatusPlaying
}

func allGuessed(required, guessed map[string]struct{}) bool {
	for letter := range required {
		if _, ok := guessed[letter]; !ok {
			return false
		}
	}
	return true
}
