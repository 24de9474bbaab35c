package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "polls-api/docs"
	"polls-api/internal/config"
	"polls-api/internal/domain/poll"
	api "polls-api/internal/http"
	"polls-api/internal/metrics"
	"polls-api/internal/repository/memory"
	"polls-api/internal/worker"
)

// @title           Polls API
// @version         1.0
// @description     In-memory polls: create, vote once per voter, read tallies
// @BasePath        /
func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	api.SetLogger(logger)

	metrics.Register()

	pollRepo := memory.NewPollRepo()
	metrics.RegisterPollsGauge(pollRepo.Count)
	pollSvc := poll.NewService(pollRepo)

	voteCh := make(chan worker.VoteEvent, cfg.VoteEventBuffer)
	statsWorker := worker.NewStatsWorker(voteCh, logger, cfg.StatsLogInterval)

	router := api.NewRouter(pollSvc, voteCh, api.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go statsWorker.Run(ctx)

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	logger.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}
	cancel()

	logger.Info("server stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
