package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"watermark-tg-bot/internal/config"
	"watermark-tg-bot/internal/limiter"
	"watermark-tg-bot/internal/settings"
	"watermark-tg-bot/internal/storage"
	"watermark-tg-bot/internal/telegram"
	"watermark-tg-bot/internal/users"
	"watermark-tg-bot/internal/watermark"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	var logLevel slog.Level
	switch cfg.Logging.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.Logging.JSONFormat {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Create root context with cancellation
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// WaitGroup for tracking active goroutines
	var wg sync.WaitGroup

	// Initialize persistence; both stores share one handle so writes
	// stay serialized on the single connection.
	db, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	settingsStore, err := settings.NewSQLiteStore(db)
	if err != nil {
		logger.Error("failed to create settings store", "error", err)
		os.Exit(1)
	}

	userRegistry, err := users.NewSQLiteStore(db)
	if err != nil {
		logger.Error("failed to create user registry", "error", err)
		os.Exit(1)
	}

	// Initialize composition engine and concurrency gate
	engine := watermark.NewEngine(cfg.Watermark.JPEGQuality)
	gate := limiter.NewGate(cfg.Watermark.MaxConcurrent)

	// Initialize Telegram bot
	bot, err := telegram.NewBot(cfg, settingsStore, userRegistry, gate, engine, logger)
	if err != nil {
		logger.Error("failed to create telegram bot", "error", err)
		os.Exit(1)
	}

	// Start bot in goroutine
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := bot.Run(rootCtx); err != nil && err != context.Canceled {
			logger.Error("bot error", "error", err)
		}
	}()

	logger.Info("bot started",
		"default_text", cfg.Watermark.DefaultText,
		"timeout", cfg.Watermark.Timeout,
		"db_path", cfg.Storage.DBPath,
	)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutdown signal received", "signal", sig)

	// Cancel root context to signal all goroutines
	rootCancel()

	// Wait for graceful shutdown with timeout
	shutdownTimeout := 30 * time.Second
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.Info("graceful shutdown complete")
	case <-time.After(shutdownTimeout):
		logger.Warn("shutdown timeout exceeded, forcing exit")
	}
}
