package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()
	logger := slog.Default()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	drv, pool, err := repository.Open(ctx, repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer repository.Close(drv, pool, logger)

	if err := repository.HealthCheck(ctx, drv, 1*time.Second, logger); err != nil {
		log.Fatalf("DB health: FAIL (%v)", err)
	}
	log.Println("DB health: OK")

	if err := repository.Migrate(ctx, drv, logger); err != nil {
		log.Fatalf("preparing projects table: %v", err)
	}

	stats, err := repository.NewProjectRepository(drv, logger).Stats(ctx)
	if err != nil {
		log.Fatalf("counting projects: %v", err)
	}
	log.Printf("projects count: %d (total %.2f CY)", stats.Count, stats.TotalCY)
}
