package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dummygen/dummygen-go/internal/config"
	"github.com/dummygen/dummygen-go/internal/handler"
	"github.com/dummygen/dummygen-go/internal/middleware"
	"github.com/dummygen/dummygen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(cfg))

	genService := service.NewGeneratorService(cfg.Limits)
	genHandler := handler.NewGeneratorHandler(genService, cfg.MaxBodyBytes)

	var generateMiddleware []func(http.Handler) http.Handler
	if cfg.RateLimit.RPS > 0 {
		generateMiddleware = append(generateMiddleware, middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		slog.Info("rate limiting enabled", "rps", cfg.RateLimit.RPS, "burst", cfg.RateLimit.Burst)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(genHandler, handler.NewPageHandler(), generateMiddleware...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env,
			"max_fields", cfg.Limits.MaxFields, "max_sub_modules", cfg.Limits.MaxSubModules, "max_array_size", cfg.Limits.MaxArraySize)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// newLogger logs JSON in production and text elsewhere.
func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
