package main

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/Brandypants/faroese-false-friends/internal/catalog"
	"github.com/Brandypants/faroese-false-friends/internal/dateindex"
	"github.com/Brandypants/faroese-false-friends/internal/hangman"
	"github.com/Brandypants/faroese-false-friends/internal/stats"
	"github.com/Brandypants/faroese-false-friends/internal/store"
)

// App owns everything a request handler needs: the loaded catalogs, the
// persistence store, the epoch and the runtime config. It replaces any
// ambient global state; components receive it explicitly.
type App struct {
	QuizCatalog    []catalog.QuizPuzzle
	HangmanCatalog []catalog.HangmanPuzzle
	Store          *store.Store
	Epoch          time.Time
	Now            func() time.Time

	IsProduction   bool
	CookieMaxAge   time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	StartTime      time.Time

	LimiterMap   map[string]*rate.Limiter
	LimiterMutex sync.Mutex
}

// NewApp wires an App around loaded catalogs and a store directory.
func NewApp(quiz []catalog.QuizPuzzle, hm []catalog.HangmanPuzzle, dataDir string) *App {
	return &App{
		QuizCatalog:    quiz,
		HangmanCatalog: hm,
		Store:          store.New(dataDir),
		Epoch:          time.Date(EpochYear, EpochMonth, EpochDay, 0, 0, 0, 0, time.Local),
		Now:            time.Now,
		StartTime:      time.Now(),
		LimiterMap:     make(map[string]*rate.Limiter),
	}
}

// quizForDay deterministically picks the quiz puzzle for a date.
func (app *App) quizForDay(day time.Time) (catalog.QuizPuzzle, int) {
	idx := dateindex.DayIndex(day, app.Epoch)
	return catalog.Pick(app.QuizCatalog, idx), idx
}

// hangmanForDay deterministically picks the hangman puzzle for a date.
func (app *App) hangmanForDay(day time.Time) (catalog.HangmanPuzzle, int) {
	idx := dateindex.DayIndex(day, app.Epoch)
	return catalog.Pick(app.HangmanCatalog, idx), idx
}

// hangmanState loads a device's saved hangman state for a day key,
// falling back to a fresh game when the save is absent or unusable.
func (app *App) hangmanState(deviceID, dayKey string) hangman.State {
	var st hangman.State
	if !app.Store.Get(store.ProgressKey(KindHangman, deviceID, dayKey), &st) {
		return hangman.NewState()
	}
	if st.Status == "" || st.Guesses == nil {
		logWarn("Saved hangman state for %s has invalid structure, starting fresh", dayKey)
		return hangman.NewState()
	}
	return st
}

// quizResult loads a device's recorded result for a quiz day key.
func (app *App) quizResult(deviceID, dayKey string) (QuizResult, bool) {
	var res QuizResult
	ok := app.Store.Get(store.ProgressKey(KindQuiz, deviceID, dayKey), &res)
	return res, ok
}

// deviceStats loads a device's stats record for a puzzle kind, defaulting
// to zeros.
func (app *App) deviceStats(kind, deviceID string) stats.Stats {
	var s stats.Stats
	app.Store.Get(store.StatsKey(kind, deviceID), &s)
	return s
}

// recordCompletion folds a finished day into the device's stats record,
// exactly once per day key, and persists the updated record.
func (app *App) recordCompletion(kind, deviceID, dayKey string, res stats.Result) {
	current := app.deviceStats(kind, deviceID)
	updated, applied := stats.ApplyOnce(current, dayKey, res)
	if !applied {
		logWarn("Stats for %s already applied for day key %s, ignoring repeat", kind, dayKey)
		return
	}
	if err := app.Store.Set(store.StatsKey(kind, deviceID), updated); err != nil {
		logWarn("Failed to persist %s stats for device %s: %v", kind, deviceID, err)
	}
}
