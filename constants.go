package main

import "time"

// contextKey is the type for context values set by middleware.
type contextKey string

// The epoch is the fixed reference date for day indexing (Faroese flag
// day, 2024). A compile-time constant on purpose: deriving it from the
// clock at startup would make historical day indices unstable across
// deploys.
const (
	EpochYear  = 2024
	EpochMonth = time.April
	EpochDay   = 25
)

// Puzzle kind constants
const (
	KindQuiz    = "quiz"
	KindHangman = "hangman"
)

// Device cookie constants
const (
	DeviceCookieName = "device_id"
)

// Route constants
const (
	RouteQuizToday    = "/api/quiz/today"
	RouteQuizAnswer   = "/api/quiz/answer"
	RouteQuizStats    = "/api/quiz/stats"
	RouteQuizShare    = "/api/quiz/share"
	RouteHangmanToday = "/api/hangman/today"
	RouteHangmanGuess = "/api/hangman/guess"
	RouteHangmanStats = "/api/hangman/stats"
	RouteHangmanShare = "/api/hangman/share"
	RouteHealthz      = "/healthz"
)

// Error message constants
const (
	ErrorInvalidDate    = "Invalid date. Use YYYY-MM-DD."
	ErrorInvalidChoice  = "Choice must be a number from 0 to 3."
	ErrorFutureDate     = "That day's puzzle is not out yet."
	ErrorNothingToShare = "Nothing to share yet. Finish the puzzle first."
)

// Context key constants
const (
	requestIDKey contextKey = "request_id"
)
