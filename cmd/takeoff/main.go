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
	"github.com/plotplan/takeoff-tracker/internal/pdftext"
	"github.com/plotplan/takeoff-tracker/internal/projects"
	"github.com/plotplan/takeoff-tracker/internal/repository"
	"github.com/plotplan/takeoff-tracker/internal/takeoff"
)

func main() {
	var (
		pdfPath  = flag.String("pdf", "", "path to a plot-plan PDF")
		textPath = flag.String("text", "", "path to already-decoded plot-plan text")
		jsonPath = flag.String("json", "", "path to a manual-entry JSON record")
		address  = flag.String("address", "", "override the extracted address")
		block    = flag.String("block", "", "override the extracted block")
		lot      = flag.String("lot", "", "override the extracted lot")
		save     = flag.Bool("save", false, "save the takeoff to the project store")
		notes    = flag.String("notes", "", "free-text notes stored with -save")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	inputs := 0
	for _, p := range []string{*pdfPath, *textPath, *jsonPath} {
		if p != "" {
			inputs++
		}
	}
	if inputs != 1 {
		fmt.Fprintln(os.Stderr, "exactly one of -pdf, -text or -json is required")
		flag.Usage()
		os.Exit(2)
	}

	var m takeoff.Measurement
	var fileNotes string
	switch {
	case *pdfPath != "":
		res, err := pdftext.NewExtractor(logger).ExtractFile(*pdfPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading document: %v\n", err)
			os.Exit(1)
		}
		m = takeoff.Extract(res.Text)
	case *textPath != "":
		b, err := os.ReadFile(*textPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading text file: %v\n", err)
			os.Exit(1)
		}
		m = takeoff.Extract(string(b))
	default:
		b, err := os.ReadFile(*jsonPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading json file: %v\n", err)
			os.Exit(1)
		}
		in, err := projects.ParseManualInput(b)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid manual input: %v\n", err)
			os.Exit(1)
		}
		m = takeoff.Measurement{
			Address:    in.Address,
			Block:      in.Block,
			Lot:        in.Lot,
			SidewalkSF: in.SidewalkSF,
			ApronSF:    in.ApronSF,
			CurbLF:     in.CurbLF,
			DrivewaySF: in.DrivewaySF,
		}
		fileNotes = in.Notes
	}

	if *address != "" {
		m.Address = *address
	}
	if *block != "" {
		m.Block = *block
	}
	if *lot != "" {
		m.Lot = *lot
	}
	if *notes == "" {
		*notes = fileNotes
	}

	v := takeoff.Calculate(m.SidewalkSF, m.ApronSF, m.CurbLF, m.DrivewaySF)

	fmt.Printf("Address:   %s\n", m.Address)
	fmt.Printf("Block/Lot: %s / %s\n", m.Block, m.Lot)
	fmt.Println()
	fmt.Printf("Sidewalk:  %8.2f SF  ->  %6.2f CY\n", m.SidewalkSF, v.SidewalkCY)
	fmt.Printf("Apron:     %8.2f SF  ->  %6.2f CY\n", m.ApronSF, v.ApronCY)
	fmt.Printf("Curb:      %8.2f LF  ->  %6.2f CY\n", m.CurbLF, v.CurbCY)
	fmt.Printf("Driveway:  %8.2f SF  ->  %6.2f CY\n", m.DrivewaySF, v.DrivewayCY)
	fmt.Println()
	fmt.Printf("Total:     %8.2f SF      %6.2f CY\n", v.TotalSF, v.TotalCY)

	if !*save {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	drv, pool, err := repository.Open(ctx, repoConfig(cfg), logger)
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
	p, err := svc.CreateProject(ctx, projects.CreateProjectRequest{
		Address:    m.Address,
		Block:      m.Block,
		Lot:        m.Lot,
		SidewalkSF: m.SidewalkSF,
		ApronSF:    m.ApronSF,
		CurbLF:     m.CurbLF,
		DrivewaySF: m.DrivewaySF,
		Notes:      *notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "saving project: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nsaved project %s\n", p.ID)
}

func repoConfig(cfg *common.Config) repository.Config {
	return repository.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
}
