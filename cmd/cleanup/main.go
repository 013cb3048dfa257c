// Command cleanup removes recent searches older than the retention
// window. The server runs the same sweep in-process; this command exists
// for deployments that prefer an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/wordlens/wordlens-backend/internal/adapter/postgres"
	"github.com/wordlens/wordlens-backend/internal/adapter/postgres/recent"
	"github.com/wordlens/wordlens-backend/internal/app"
	"github.com/wordlens/wordlens-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	recentRepo := recent.New(pool)

	removed, err := recentRepo.Prune(ctx, time.Now())
	if err != nil {
		logger.Error("prune recent searches", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup complete", slog.Int64("removed", removed))
}
