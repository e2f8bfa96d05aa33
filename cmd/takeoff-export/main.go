package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/plotplan/takeoff-tracker/constants"
	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/export"
	"github.com/plotplan/takeoff-tracker/internal/repository"
)

func main() {
	var (
		format = flag.String("format", "csv", "export format: csv or xlsx")
		out    = flag.String("out", "", "output file (default projects_<date>.<ext> in EXPORT_OUTPUT_DIR)")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	f, ok := constants.ParseExportFormat(*format)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown format %q (want csv or xlsx)\n", *format)
		os.Exit(2)
	}

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

	svc := export.NewService(repository.NewProjectRepository(drv, logger), logger)

	var data []byte
	switch f {
	case constants.ExportCSV:
		data, err = svc.ExportProjectsCSV(ctx)
	case constants.ExportXLSX:
		data, err = svc.ExportProjectsXLSX(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}

	path := *out
	if path == "" {
		name := fmt.Sprintf("projects_%s.%s", time.Now().Format("20060102"), strings.ToLower(string(f)))
		path = filepath.Join(cfg.Export.OutputDir, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d bytes)\n", path, len(data))
}
