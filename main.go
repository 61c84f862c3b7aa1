package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"

	"github.com/Brandypants/faroese-false-friends/internal/catalog"
)

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	logInfo("Starting Falskir Vinir in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	quizSrc := getEnv("QUIZ_CATALOG", "data/quiz.json")
	hangmanSrc := getEnv("HANGMAN_CATALOG", "data/hangman.json")

	// One-shot catalog load; a failed or invalid catalog is terminal.
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	quizCatalog, err := catalog.LoadQuiz(loadCtx, quizSrc)
	if err != nil {
		logFatal("Failed to load quiz catalog from %s: %v", quizSrc, err)
	}
	logInfo("Loaded %d quiz puzzles from %s", len(quizCatalog), quizSrc)

	hangmanCatalog, err := catalog.LoadHangman(loadCtx, hangmanSrc)
	if err != nil {
		logFatal("Failed to load hangman catalog from %s: %v", hangmanSrc, err)
	}
	logInfo("Loaded %d hangman puzzles from %s", len(hangmanCatalog), hangmanSrc)

	app := NewApp(quizCatalog, hangmanCatalog, getEnv("DATA_DIR", "data/saves"))
	app.IsProduction = isProduction
	app.CookieMaxAge = getEnvDuration("COOKIE_MAX_AGE", 365*24*time.Hour)
	app.RateLimitRPS = getEnvInt("RATE_LIMIT_RPS", 5)
	app.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", 10)

	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	// Game state is per device and changes on every action, so nothing the
	// API serves is cacheable.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))
	router.Use(requestIDMiddleware())

	registerRoutes(router, app)

	startServer(router)
}

// registerRoutes attaches all game routes to the router.
func registerRoutes(router *gin.Engine, app *App) {
	router.GET(RouteQuizToday, app.quizTodayHandler)
	router.POST(RouteQuizAnswer, app.rateLimitMiddleware(), app.quizAnswerHandler)
	router.GET(RouteQuizStats, app.quizStatsHandler)
	router.GET(RouteQuizShare, app.quizShareHandler)
	router.GET(RouteHangmanToday, app.hangmanTodayHandler)
	router.POST(RouteHangmanGuess, app.rateLimitMiddleware(), app.hangmanGuessHandler)
	router.GET(RouteHangmanStats, app.hangmanStatsHandler)
	router.GET(RouteHangmanShare, app.hangmanShareHandler)
	router.GET(RouteHealthz, app.healthzHandler)
}

func startServer(router *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
