package repository

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/entity"
)

const projectsTable = "projects"

// Column order matters: insert values and row scans both follow it.
var projectColumns = []string{
	"id", "address", "block", "lot",
	"sidewalk_sf", "apron_sf", "curb_lf", "driveway_sf",
	"sidewalk_cy", "apron_cy", "curb_cy", "driveway_cy",
	"total_sf", "total_cy", "created_at", "notes",
}

type ProjectRepository interface {
	CreateProject(ctx context.Context, p *entity.Project) error
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	Stats(ctx context.Context) (*entity.ProjectStats, error)
}

type projectRepository struct {
	drv    *entsql.Driver
	logger *slog.Logger
}

func NewProjectRepository(drv *entsql.Driver, logger *slog.Logger) ProjectRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &projectRepository{drv: drv, logger: logger}
}

// CreateProject appends a project row. Rows are never updated or deleted.
func (r *projectRepository) CreateProject(ctx context.Context, p *entity.Project) error {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Insert(projectsTable).
		Columns(projectColumns...).
		Values(
			p.ID, p.Address, p.Block, p.Lot,
			p.SidewalkSF, p.ApronSF, p.CurbLF, p.DrivewaySF,
			p.SidewalkCY, p.ApronCY, p.CurbCY, p.DrivewayCY,
			p.TotalSF, p.TotalCY, p.CreatedAt, p.Notes,
		).
		Query()

	if _, err := r.drv.DB().ExecContext(ctx, query, args...); err != nil {
		r.logger.Error("failed to create project", "address", p.Address, "error", err)
		return common.NewAppError("PROJECT_CREATE", "insert project", err)
	}
	return nil
}

// ListProjects returns all saved projects, newest first.
func (r *projectRepository) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select(projectColumns...).
		From(entsql.Table(projectsTable)).
		OrderBy(entsql.Desc("created_at")).
		Query()

	rows, err := r.drv.DB().QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("failed to list projects", "error", err)
		return nil, common.NewAppError("PROJECT_LIST", "query projects", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			r.logger.Warn("failed to close rows", "error", err)
		}
	}()

	var projects []*entity.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, common.NewAppError("PROJECT_LIST", "scan project", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewAppError("PROJECT_LIST", "iterate projects", err)
	}
	return projects, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select(projectColumns...).
		From(entsql.Table(projectsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	row := r.drv.DB().QueryRowContext(ctx, query, args...)
	p, err := scanProject(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.NewAppError("PROJECT_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	if err != nil {
		r.logger.Error("failed to get project", "project_id", id, "error", err)
		return nil, common.NewAppError("PROJECT_GET", "query project", err)
	}
	return p, nil
}

// Stats aggregates saved projects for the statistics view.
func (r *projectRepository) Stats(ctx context.Context) (*entity.ProjectStats, error) {
	query, args := entsql.Dialect(r.drv.Dialect()).
		Select(
			entsql.Count("*"),
			entsql.Sum("total_cy"),
			entsql.Avg("total_cy"),
			entsql.Avg("total_sf"),
		).
		From(entsql.Table(projectsTable)).
		Query()

	var (
		count                 int
		totalCY, avgCY, avgSF sql.NullFloat64
	)
	row := r.drv.DB().QueryRowContext(ctx, query, args...)
	if err := row.Scan(&count, &totalCY, &avgCY, &avgSF); err != nil {
		r.logger.Error("failed to aggregate projects", "error", err)
		return nil, common.NewAppError("PROJECT_STATS", "aggregate projects", err)
	}

	return &entity.ProjectStats{
		Count:   count,
		TotalCY: totalCY.Float64,
		AvgCY:   avgCY.Float64,
		AvgSF:   avgSF.Float64,
	}, nil
}

func scanProject(scan func(dest ...any) error) (*entity.Project, error) {
	var p entity.Project
	err := scan(
		&p.ID, &p.Address, &p.Block, &p.Lot,
		&p.SidewalkSF, &p.ApronSF, &p.CurbLF, &p.DrivewaySF,
		&p.SidewalkCY, &p.ApronCY, &p.CurbCY, &p.DrivewayCY,
		&p.TotalSF, &p.TotalCY, &p.CreatedAt, &p.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
