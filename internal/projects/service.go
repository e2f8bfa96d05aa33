// Package projects holds the business logic around saved takeoffs: input
// validation, volume calculation, and persistence.
package projects

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/entity"
	"github.com/plotplan/takeoff-tracker/internal/repository"
	"github.com/plotplan/takeoff-tracker/internal/takeoff"
)

// Service handles project business logic.
type Service struct {
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// NewService creates a new project service.
func NewService(projectRepo repository.ProjectRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// CreateProjectRequest represents project creation parameters. Quantities may
// come from extraction or manual entry; the service treats both the same.
type CreateProjectRequest struct {
	Address    string
	Block      string
	Lot        string
	SidewalkSF float64
	ApronSF    float64
	CurbLF     float64
	DrivewaySF float64
	Notes      string
}

// CreateProject validates the request, calculates concrete volumes, and
// persists the combined record. Negative quantities are rejected here; the
// calculator itself assumes non-negative input.
func (s *Service) CreateProject(ctx context.Context, req CreateProjectRequest) (*entity.Project, error) {
	validator := common.NewValidator()
	validator.Field("address", req.Address, common.Required)
	validator.Field("sidewalk_sf", req.SidewalkSF, common.NonNegative)
	validator.Field("apron_sf", req.ApronSF, common.NonNegative)
	validator.Field("curb_lf", req.CurbLF, common.NonNegative)
	validator.Field("driveway_sf", req.DrivewaySF, common.NonNegative)
	if err := validator.Error(); err != nil {
		return nil, err
	}

	volumes := takeoff.Calculate(req.SidewalkSF, req.ApronSF, req.CurbLF, req.DrivewaySF)

	p := &entity.Project{
		ID:         uuid.New(),
		Address:    strings.TrimSpace(req.Address),
		Block:      strings.TrimSpace(req.Block),
		Lot:        strings.TrimSpace(req.Lot),
		SidewalkSF: req.SidewalkSF,
		ApronSF:    req.ApronSF,
		CurbLF:     req.CurbLF,
		DrivewaySF: req.DrivewaySF,
		SidewalkCY: volumes.SidewalkCY,
		ApronCY:    volumes.ApronCY,
		CurbCY:     volumes.CurbCY,
		DrivewayCY: volumes.DrivewayCY,
		TotalSF:    volumes.TotalSF,
		TotalCY:    volumes.TotalCY,
		CreatedAt:  time.Now().UTC(),
		Notes:      strings.TrimSpace(req.Notes),
	}

	if err := s.projectRepo.CreateProject(ctx, p); err != nil {
		s.logger.Error("failed to save project", "address", p.Address, "error", err)
		return nil, err
	}

	s.logger.Info("project saved",
		"project_id", p.ID,
		"address", p.Address,
		"total_sf", p.TotalSF,
		"total_cy", p.TotalCY,
	)
	return p, nil
}

// ListProjects returns all saved projects, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, err
	}
	s.logger.Info("projects listed", "count", len(projects))
	return projects, nil
}

// GetProject returns a single saved project by its ID string.
func (s *Service) GetProject(ctx context.Context, id string) (*entity.Project, error) {
	validator := common.NewValidator()
	validator.Field("project_id", id, common.Required, common.UUID)
	if err := validator.Error(); err != nil {
		return nil, err
	}

	projectID, err := uuid.Parse(id)
	if err != nil {
		return nil, common.NewAppError("INVALID_PROJECT_ID", id, common.ErrInvalidInput)
	}
	return s.projectRepo.GetByID(ctx, projectID)
}

// Stats returns the aggregate statistics view over saved projects.
func (s *Service) Stats(ctx context.Context) (*entity.ProjectStats, error) {
	stats, err := s.projectRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("failed to aggregate projects", "error", err)
		return nil, err
	}
	return stats, nil
}
