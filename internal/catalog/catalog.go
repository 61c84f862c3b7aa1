// Package catalog loads and validates the puzzle catalogs and maps day
// indices onto catalog entries.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Brandypants/faroese-false-friends/internal/hangman"
)

// ChoiceCount is the fixed number of answer choices per quiz puzzle.
const ChoiceCount = 4

// QuizPuzzle is one multiple-choice false-friend question.
type QuizPuzzle struct {
	ID          string   `json:"id"`
	Word        string   `json:"word"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	AnswerIndex int      `json:"answerIndex"`
	Explain     string   `json:"explain,omitempty"`
}

// HangmanPuzzle is one phrase-guessing puzzle.
type HangmanPuzzle struct {
	ID       string `json:"id"`
	Solution string `json:"solution"`
	Hint     string `json:"hint,omitempty"`
}

var errEmptyCatalog = errors.New("catalog is empty")

// readSource reads a catalog from a filesystem path or, when src starts
// with http:// or https://, from a one-shot GET of that URL.
func readSource(ctx context.Context, src string) ([]byte, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, err
		}
		client := &http.Client{Timeout: 15 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog %s: %w", src, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", src, resp.StatusCode)
		}
		return io.ReadAll(resp.Body)
	}
	return os.ReadFile(src)
}

// LoadQuiz reads, parses and validates a quiz catalog. Any invalid entry
// aborts the load; a partial catalog is never returned.
func LoadQuiz(ctx context.Context, src string) ([]QuizPuzzle, error) {
	data, err := readSource(ctx, src)
	if err != nil {
		return nil, err
	}
	var puzzles []QuizPuzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, fmt.Errorf("parse quiz catalog: %w", err)
	}
	if err := ValidateQuiz(puzzles); err != nil {
		return nil, err
	}
	return puzzles, nil
}

// LoadHangman reads, parses and validates a hangman catalog.
func LoadHangman(ctx context.Context, src string) ([]HangmanPuzzle, error) {
	data, err := readSource(ctx, src)
	if err != nil {
		return nil, err
	}
	var puzzles []HangmanPuzzle
	if err := json.Unmarshal(data, &puzzles); err != nil {
		return nil, fmt.Errorf("parse hangman catalog: %w", err)
	}
	if err := ValidateHangman(puzzles); err != nil {
		return nil, err
	}
	return puzzles, nil
}

// ValidateQuiz checks a quiz catalog for shape violations.
func ValidateQuiz(puzzles []QuizPuzzle) error {
	if len(puzzles) == 0 {
		return errEmptyCatalog
	}
	for i, p := range puzzles {
		if p.ID == "" {
			return fmt.Errorf("quiz entry %d: missing id", i)
		}
		if p.Word == "" || p.Prompt == "" {
			return fmt.Errorf("quiz entry %d (%s): missing word or prompt", i, p.ID)
		}
		if len(p.Choices) != ChoiceCount {
			return fmt.Errorf("quiz entry %d (%s): got %d choices, want %d", i, p.ID, len(p.Choices), ChoiceCount)
		}
		if p.AnswerIndex < 0 || p.AnswerIndex >= ChoiceCount {
			return fmt.Errorf("quiz entry %d (%s): answer index %d out of range", i, p.ID, p.AnswerIndex)
		}
	}
	if dup := firstDuplicateID(lo.Map(puzzles, func(p QuizPuzzle, _ int) string { return p.ID })); dup != "" {
		return fmt.Errorf("quiz catalog: duplicate id %q", dup)
	}
	return nil
}

// ValidateHangman checks a hangman catalog for shape violations.
func ValidateHangman(puzzles []HangmanPuzzle) error {
	if len(puzzles) == 0 {
		return errEmptyCatalog
	}
	for i, p := range puzzles {
		if p.ID == "" {
			return fmt.Errorf("hangman entry %d: missing id", i)
		}
		if p.Solution == "" {
			return fmt.Errorf("hangman entry %d (%s): missing solution", i, p.ID)
		}
		if len(hangman.RequiredLetters(p.Solution)) == 0 {
			return fmt.Errorf("hangman entry %d (%s): solution has no guessable letters", i, p.ID)
		}
	}
	if dup := firstDuplicateID(lo.Map(puzzles, func(p HangmanPuzzle, _ int) string { return p.ID })); dup != "" {
		return fmt.Errorf("hangman catalog: duplicate id %q", dup)
	}
	return nil
}

func firstDuplicateID(ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id
		}
		seen[id] = struct{}{}
	}
	return ""
}

// Pick maps a day index onto a catalog entry. The catalog is cyclic: out of
// range indices, including negative ones for days before the epoch, wrap
// around rather than fail. Pure, so past days can be re-derived at will.
func Pick[T any](puzzles []T, dayIndex int) T {
	n := len(puzzles)
	return puzzles[((dayIndex%n)+n)%n]
}
