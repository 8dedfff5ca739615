// cmd/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/handlers"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/srs"
	"go_4_vocab_srs/internal/webutil"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	configDir := flag.String("config", "configs", "directory containing config.yaml")
	flag.Parse()

	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig(*configDir); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(config.Cfg.Log)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 1. DB接続とマイグレーション
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()
	if err := repository.Migrate(db); err != nil {
		slog.Error("Error migrating database", slog.Any("error", err))
		os.Exit(1)
	}

	// 2. Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	progressRepo := repository.NewGormProgressRepository()
	reviewRepo := repository.NewGormReviewRepository()
	starRepo := repository.NewGormStarredWordRepository()

	cfg := &config.Cfg
	wordService := service.NewWordService(db, wordRepo, progressRepo, starRepo)
	reviewService := service.NewReviewService(db, wordRepo, progressRepo, reviewRepo, cfg)
	studyService := service.NewStudyService(db, wordRepo, progressRepo, starRepo, cfg, srs.NewComposer(nil))
	statsService := service.NewStatsService(db, progressRepo, reviewRepo, cfg)

	api := &handlers.Handlers{
		Word:   handlers.NewWordHandler(wordService),
		Review: handlers.NewReviewHandler(reviewService),
		Study:  handlers.NewStudyHandler(studyService),
		Stats:  handlers.NewStatsHandler(statsService),
	}

	// 3. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	api.Mount(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		reqLogger := middleware.GetLogger(r.Context())
		if err := sqlDB.PingContext(r.Context()); err != nil {
			reqLogger.Error("Health check failed: could not ping DB", slog.Any("error", err))
			webutil.RespondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"}, reqLogger)
			return
		}
		webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"}, reqLogger)
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger は APP_ENV=dev または format=text なら tint、それ以外は JSON のロガーを作る
func newLogger(cfg config.LogConfig) *slog.Logger {
	level := new(slog.LevelVar)
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}

	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" || strings.ToLower(cfg.Format) == "text" {
		return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC3339,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
}
