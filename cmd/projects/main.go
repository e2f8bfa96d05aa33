package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/projects"
	"github.com/plotplan/takeoff-tracker/internal/repository"
)

func main() {
	stats := flag.Bool("stats", false, "print aggregate statistics instead of the project list")
	flag.Parse()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

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
		fmt.Fprintf(os.Stderr, "opening store: %v\n", err)
		os.Exit(1)
	}
	defer repository.Close(drv, pool, logger)

	if err := repository.Migrate(ctx, drv, logger); err != nil {
		fmt.Fprintf(os.Stderr, "preparing store: %v\n", err)
		os.Exit(1)
	}

	svc := projects.NewService(repository.NewProjectRepository(drv, logger), logger)

	if *stats {
		st, err := svc.Stats(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "aggregating projects: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Projects:       %d\n", st.Count)
		fmt.Printf("Total concrete: %.2f CY\n", st.TotalCY)
		fmt.Printf("Avg per job:    %.2f CY / %.2f SF\n", st.AvgCY, st.AvgSF)
		return
	}

	list, err := svc.ListProjects(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing projects: %v\n", err)
		os.Exit(1)
	}
	if len(list) == 0 {
		fmt.Println("no projects saved yet")
		return
	}

	for _, p := range list {
		fmt.Printf("%s  %-28s  block %-8s lot %-8s  %8.2f SF  %6.2f CY\n",
			p.CreatedAt.Format("2006-01-02"), p.Address, p.Block, p.Lot, p.TotalSF, p.TotalCY)
	}
}
