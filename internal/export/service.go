// Package export produces tabular exports (CSV, XLSX) of saved projects.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"github.com/plotplan/takeoff-tracker/internal/entity"
	"github.com/plotplan/takeoff-tracker/internal/repository"
)

// Service is a tiny façade over the project repository that renders exports.
type Service struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

func NewService(projectRepo repository.ProjectRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{projectRepo: projectRepo, logger: logger}
}

// projectRow is the flat export shape; the csv tags double as the canonical
// column headers for both formats.
type projectRow struct {
	ID         string  `csv:"ID"`
	Address    string  `csv:"Address"`
	Block      string  `csv:"Block"`
	Lot        string  `csv:"Lot"`
	SidewalkSF float64 `csv:"Sidewalk SF"`
	ApronSF    float64 `csv:"Apron SF"`
	CurbLF     float64 `csv:"Curb LF"`
	DrivewaySF float64 `csv:"Driveway SF"`
	SidewalkCY float64 `csv:"Sidewalk CY"`
	ApronCY    float64 `csv:"Apron CY"`
	CurbCY     float64 `csv:"Curb CY"`
	DrivewayCY float64 `csv:"Driveway CY"`
	TotalSF    float64 `csv:"Total SF"`
	TotalCY    float64 `csv:"Total CY"`
	Date       string  `csv:"Date"`
	Notes      string  `csv:"Notes"`
}

func toRow(p *entity.Project) projectRow {
	return projectRow{
		ID:         p.ID.String(),
		Address:    p.Address,
		Block:      p.Block,
		Lot:        p.Lot,
		SidewalkSF: p.SidewalkSF,
		ApronSF:    p.ApronSF,
		CurbLF:     p.CurbLF,
		DrivewaySF: p.DrivewaySF,
		SidewalkCY: p.SidewalkCY,
		ApronCY:    p.ApronCY,
		CurbCY:     p.CurbCY,
		DrivewayCY: p.DrivewayCY,
		TotalSF:    p.TotalSF,
		TotalCY:    p.TotalCY,
		Date:       p.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		Notes:      p.Notes,
	}
}

// ExportProjectsCSV returns all saved projects as CSV bytes, newest first.
func (s *Service) ExportProjectsCSV(ctx context.Context) ([]byte, error) {
	start := time.Now()

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	rows := make([]projectRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, toRow(p))
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("csv write: %w", err)
	}

	s.logger.Info("export.csv.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// ExportProjectsXLSX returns an XLSX workbook (as bytes) of all saved
// projects, newest first.
func (s *Service) ExportProjectsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Projects"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"ID", "Address", "Block", "Lot",
		"Sidewalk SF", "Apron SF", "Curb LF", "Driveway SF",
		"Sidewalk CY", "Apron CY", "Curb CY", "Driveway CY",
		"Total SF", "Total CY", "Date", "Notes",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, p := range projects {
		r := toRow(p)
		values := []any{
			r.ID, r.Address, r.Block, r.Lot,
			r.SidewalkSF, r.ApronSF, r.CurbLF, r.DrivewaySF,
			r.SidewalkCY, r.ApronCY, r.CurbCY, r.DrivewayCY,
			r.TotalSF, r.TotalCY, r.Date, r.Notes,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 38) // id
	_ = f.SetColWidth(sheet, "B", "B", 28) // address
	_ = f.SetColWidth(sheet, "E", "N", 12) // quantities
	_ = f.SetColWidth(sheet, "O", "O", 20) // date
	_ = f.SetColWidth(sheet, "P", "P", 48) // notes

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(projects),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
