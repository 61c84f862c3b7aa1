package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Brandypants/faroese-false-friends/internal/catalog"
	"github.com/Brandypants/faroese-false-friends/internal/dateindex"
	"github.com/Brandypants/faroese-false-friends/internal/hangman"
	"github.com/Brandypants/faroese-false-friends/internal/share"
	"github.com/Brandypants/faroese-false-friends/internal/stats"
	"github.com/Brandypants/faroese-false-friends/internal/store"
)

// resolveDay returns the local calendar day a request targets: the "date"
// query or form value when present (past-day browsing), otherwise today.
// The second return is false when the parameter is malformed.
func (app *App) resolveDay(c *gin.Context) (time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		raw = c.PostForm("date")
	}
	if raw == "" {
		return app.Now(), true
	}
	day, err := dateindex.ParseISODate(raw)
	if err != nil {
		logWarn("Rejected malformed date parameter: %q", raw)
		return time.Time{}, false
	}
	return day, true
}

// rejectFutureDay guards the mutating routes: playing a day that has not
// arrived yet would let a device bank results ahead of time and skew the
// streak once the real day lands. Reports true after writing the response.
func (app *App) rejectFutureDay(c *gin.Context, day time.Time) bool {
	if dateindex.DaysBetween(day, app.Now()) > 0 {
		logWarn("Rejected play for future day %s", dateindex.ToISODate(day))
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorFutureDate})
		return true
	}
	return false
}

// quizTodayHandler returns the quiz puzzle for the requested day along
// with any recorded result for this device.
func (app *App) quizTodayHandler(c *gin.Context) {
	day, ok := app.resolveDay(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	deviceID := app.getOrCreateDevice(c)
	puzzle, idx := app.quizForDay(day)
	iso := dateindex.ToISODate(day)
	dayKey := store.DayKey(iso, idx, puzzle.ID)

	res, answered := app.quizResult(deviceID, dayKey)
	c.JSON(http.StatusOK, app.quizView(puzzle, idx, iso, res, answered))
}

// quizAnswerHandler records a choice for the requested day. The result is
// written at most once per day key: a second answer returns the original
// outcome unchanged.
func (app *App) quizAnswerHandler(c *gin.Context) {
	day, ok := app.resolveDay(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	if app.rejectFutureDay(c, day) {
		return
	}
	deviceID := app.getOrCreateDevice(c)
	puzzle, idx := app.quizForDay(day)
	iso := dateindex.ToISODate(day)
	dayKey := store.DayKey(iso, idx, puzzle.ID)

	if res, answered := app.quizResult(deviceID, dayKey); answered {
		logInfo("Device %s re-answered %s, keeping original result", deviceID, dayKey)
		c.JSON(http.StatusOK, app.quizView(puzzle, idx, iso, res, true))
		return
	}

	choice, err := strconv.Atoi(c.PostForm("choice"))
	if err != nil || choice < 0 || choice >= catalog.ChoiceCount {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidChoice})
		return
	}

	res := QuizResult{Date: iso, ChoiceIndex: choice, Correct: choice == puzzle.AnswerIndex}
	if err := app.Store.Set(store.ProgressKey(KindQuiz, deviceID, dayKey), res); err != nil {
		logWarn("Failed to persist quiz result for device %s: %v", deviceID, err)
	}
	app.recordCompletion(KindQuiz, deviceID, dayKey, stats.Result{Date: iso, Correct: res.Correct})
	logInfo("Device %s answered %s: choice %d, correct=%v", deviceID, dayKey, choice, res.Correct)

	c.JSON(http.StatusOK, app.quizView(puzzle, idx, iso, res, true))
}

// hangmanTodayHandler returns the hangman puzzle for the requested day and
// this device's progress on it.
func (app *App) hangmanTodayHandler(c *gin.Context) {
	day, ok := app.resolveDay(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	deviceID := app.getOrCreateDevice(c)
	puzzle, idx := app.hangmanForDay(day)
	iso := dateindex.ToISODate(day)
	dayKey := store.DayKey(iso, idx, puzzle.ID)

	st := app.hangmanState(deviceID, dayKey)
	c.JSON(http.StatusOK, hangmanView(puzzle, idx, iso, st))
}

// hangmanGuessHandler applies one letter guess. A repeated, non-letter or
// post-game guess is a silent no-op: the current state comes back
// unchanged.
func (app *App) hangmanGuessHandler(c *gin.Context) {
	day, ok := app.resolveDay(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	if app.rejectFutureDay(c, day) {
		return
	}
	deviceID := app.getOrCreateDevice(c)
	puzzle, idx := app.hangmanForDay(day)
	iso := dateindex.ToISODate(day)
	dayKey := store.DayKey(iso, idx, puzzle.ID)

	st := app.hangmanState(deviceID, dayKey)
	wasPlaying := st.Status == hangman.StatusPlaying

	next := hangman.Guess(puzzle.Solution, st, c.PostForm("letter"))
	if err := app.Store.Set(store.ProgressKey(KindHangman, deviceID, dayKey), next); err != nil {
		logWarn("Failed to persist hangman state for device %s: %v", deviceID, err)
	}

	if wasPlaying && next.Status != hangman.StatusPlaying {
		logInfo("Device %s finished hangman %s: %s with %d wrong", deviceID, dayKey, next.Status, next.Wrong)
		app.recordCompletion(KindHangman, deviceID, dayKey, stats.Result{
			Date:    iso,
			Correct: next.Status == hangman.StatusWon,
		})
	}

	c.JSON(http.StatusOK, hangmanView(puzzle, idx, iso, next))
}

// quizStatsHandler returns the device's quiz stats and the countdown to
// the next puzzle.
func (app *App) quizStatsHandler(c *gin.Context) {
	deviceID := app.getOrCreateDevice(c)
	c.JSON(http.StatusOK, app.statsView(KindQuiz, deviceID))
}

// hangmanStatsHandler returns the device's hangman stats and the countdown
// to the next puzzle.
func (app *App) hangmanStatsHandler(c *gin.Context) {
	deviceID := app.getOrCreateDevice(c)
	c.JSON(http.StatusOK, app.statsView(KindHangman, deviceID))
}

// quizShareHandler returns the spoiler-free share text for a finished quiz
// day. The text never includes the word or the answer.
func (app *App) quizShareHandler(c *gin.Context) {
	day, ok := app.resolveDay(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	deviceID := app.getOrCreateDevice(c)
	puzzle, idx := app.quizForDay(day)
	iso := dateindex.ToISODate(day)
	dayKey := store.DayKey(iso, idx, puzzle.ID)

	res, answered := app.quizResult(deviceID, dayKey)
	if !answered {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorNothingToShare})
		return
	}
	record := app.deviceStats(KindQuiz, deviceID)
	text := share.Quiz(iso, res.Correct, record.Streak, share.UntilNextPuzzle(app.Now()))
	c.String(http.StatusOK, text)
}

// hangmanShareHandler returns the spoiler-free share text for a finished
// hangman day. The text never includes the phrase or its mask.
func (app *App) hangmanShareHandler(c *gin.Context) {
	day, ok := app.resolveDay(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrorInvalidDate})
		return
	}
	deviceID := app.getOrCreateDevice(c)
	puzzle, idx := app.hangmanForDay(day)
	iso := dateindex.ToISODate(day)
	dayKey := store.DayKey(iso, idx, puzzle.ID)

	st := app.hangmanState(deviceID, dayKey)
	if st.Status == hangman.StatusPlaying {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrorNothingToShare})
		return
	}
	record := app.deviceStats(KindHangman, deviceID)
	text := share.Hangman(iso, st.Status == hangman.StatusWon, st.Wrong, hangman.MaxWrong,
		record.Streak, share.UntilNextPuzzle(app.Now()))
	c.String(http.StatusOK, text)
}

// healthzHandler returns a JSON health check with server stats.
func (app *App) healthzHandler(c *gin.Context) {
	uptime := time.Since(app.StartTime)
	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"env":             map[bool]string{true: "production", false: "development"}[app.IsProduction],
		"quiz_puzzles":    len(app.QuizCatalog),
		"hangman_puzzles": len(app.HangmanCatalog),
		"uptime":          formatUptime(uptime),
		"timestamp":       time.Now().UTC().Format(time.RFC3339),
	})
}

// quizView assembles the quiz payload, withholding answer and explanation
// until the day is answered.
func (app *App) quizView(puzzle catalog.QuizPuzzle, idx int, iso string, res QuizResult, answered bool) QuizView {
	view := QuizView{
		Date:     iso,
		DayIndex: idx,
		PuzzleID: puzzle.ID,
		Word:     puzzle.Word,
		Prompt:   puzzle.Prompt,
		Choices:  puzzle.Choices,
		Answered: answered,
	}
	if answered {
		choice := res.ChoiceIndex
		correct := res.Correct
		answer := puzzle.AnswerIndex
		view.ChoiceIndex = &choice
		view.Correct = &correct
		view.AnswerIndex = &answer
		view.Explain = puzzle.Explain
	}
	return view
}

// hangmanView assembles the hangman payload, revealing the solution only
// once the game is over.
func hangmanView(puzzle catalog.HangmanPuzzle, idx int, iso string, st hangman.State) HangmanView {
	view := HangmanView{
		Date:     iso,
		DayIndex: idx,
		PuzzleID: puzzle.ID,
		Hint:     puzzle.Hint,
		Mask:     hangman.Mask(puzzle.Solution, hangman.GuessedSet(st)),
		Guesses:  st.Guesses,
		Wrong:    st.Wrong,
		MaxWrong: hangman.MaxWrong,
		Status:   st.Status,
	}
	if st.Status != hangman.StatusPlaying {
		view.Solution = puzzle.Solution
	}
	return view
}

// statsView assembles the stats payload for one device and puzzle kind.
func (app *App) statsView(kind, deviceID string) StatsView {
	untilNext := share.UntilNextPuzzle(app.Now())
	return StatsView{
		Stats:            app.deviceStats(kind, deviceID),
		NextPuzzleIn:     share.FormatCountdown(untilNext),
		NextPuzzleInSecs: int(untilNext.Seconds()),
	}
}
