package repository

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/entity"
)

func openTestDB(t *testing.T) *entsql.Driver {
	t.Helper()
	logger := slog.Default()
	drv, pool, err := Open(context.Background(), Config{
		DSN: "file:" + filepath.Join(t.TempDir(), "projects.db"),
	}, logger)
	require.NoError(t, err)
	require.Nil(t, pool)
	t.Cleanup(func() { Close(drv, nil, logger) })

	require.NoError(t, Migrate(context.Background(), drv, logger))
	return drv
}

func newProject(address string, createdAt time.Time) *entity.Project {
	return &entity.Project{
		ID:         uuid.New(),
		Address:    address,
		Block:      "45",
		Lot:        "12",
		SidewalkSF: 50,
		ApronSF:    32,
		CurbLF:     50,
		DrivewaySF: 200,
		SidewalkCY: 0.62,
		ApronCY:    0.59,
		CurbCY:     0.46,
		DrivewayCY: 3.70,
		TotalSF:    282,
		TotalCY:    5.38,
		CreatedAt:  createdAt,
		Notes:      "front of house",
	}
}

func TestProjectRepository(t *testing.T) {
	ctx := context.Background()
	drv := openTestDB(t)
	repo := NewProjectRepository(drv, slog.Default())

	now := time.Now().UTC().Truncate(time.Second)
	older := newProject("123 MAIN STREET", now.Add(-time.Hour))
	newer := newProject("456 OAK AVENUE", now)

	require.NoError(t, repo.CreateProject(ctx, older))
	require.NoError(t, repo.CreateProject(ctx, newer))

	t.Run("round-trips a saved project", func(t *testing.T) {
		got, err := repo.GetByID(ctx, older.ID)
		require.NoError(t, err)

		assert.Equal(t, older.ID, got.ID)
		assert.Equal(t, "123 MAIN STREET", got.Address)
		assert.Equal(t, "45", got.Block)
		assert.Equal(t, "12", got.Lot)
		assert.Equal(t, 50.0, got.SidewalkSF)
		assert.Equal(t, 5.38, got.TotalCY)
		assert.Equal(t, "front of house", got.Notes)
		assert.WithinDuration(t, older.CreatedAt, got.CreatedAt, time.Second)
	})

	t.Run("lists newest first", func(t *testing.T) {
		projects, err := repo.ListProjects(ctx)
		require.NoError(t, err)
		require.Len(t, projects, 2)

		assert.Equal(t, newer.ID, projects[0].ID)
		assert.Equal(t, older.ID, projects[1].ID)
	})

	t.Run("aggregates stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, stats.Count)
		assert.InDelta(t, 10.76, stats.TotalCY, 0.001)
		assert.InDelta(t, 5.38, stats.AvgCY, 0.001)
		assert.InDelta(t, 282.0, stats.AvgSF, 0.001)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrNotFound))
	})
}

func TestStatsOnEmptyStore(t *testing.T) {
	drv := openTestDB(t)
	repo := NewProjectRepository(drv, slog.Default())

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.TotalCY)
	assert.Zero(t, stats.AvgCY)
	assert.Zero(t, stats.AvgSF)
}
