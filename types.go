package main

import (
	"github.com/Brandypants/faroese-false-friends/internal/hangman"
	"github.com/Brandypants/faroese-false-friends/internal/stats"
)

// QuizResult is the persisted outcome of one quiz day. It is written at
// most once per day key and kept forever as history.
type QuizResult struct {
	Date        string `json:"date"`
	ChoiceIndex int    `json:"choiceIndex"`
	Correct     bool   `json:"correct"`
}

// QuizView is the JSON payload for a quiz day. AnswerIndex and Explain are
// withheld until the day is answered.
type QuizView struct {
	Date        string   `json:"date"`
	DayIndex    int      `json:"dayIndex"`
	PuzzleID    string   `json:"puzzleId"`
	Word        string   `json:"word"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answered    bool     `json:"answered"`
	ChoiceIndex *int     `json:"choiceIndex,omitempty"`
	Correct     *bool    `json:"correct,omitempty"`
	AnswerIndex *int     `json:"answerIndex,omitempty"`
	Explain     string   `json:"explain,omitempty"`
}

// HangmanView is the JSON payload for a hangman day. Solution is revealed
// only once the game is over.
type HangmanView struct {
	Date     string         `json:"date"`
	DayIndex int            `json:"dayIndex"`
	PuzzleID string         `json:"puzzleId"`
	Hint     string         `json:"hint,omitempty"`
	Mask     string         `json:"mask"`
	Guesses  []string       `json:"guesses"`
	Wrong    int            `json:"wrong"`
	MaxWrong int            `json:"maxWrong"`
	Status   hangman.Status `json:"status"`
	Solution string         `json:"solution,omitempty"`
}

// StatsView is the JSON payload for a stats request.
type StatsView struct {
	Stats            stats.Stats `json:"stats"`
	NextPuzzleIn     string      `json:"nextPuzzleIn"`
	NextPuzzleInSecs int         `json:"nextPuzzleInSecs"`
}
