package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/plotplan/takeoff-tracker/internal/common"
	"github.com/plotplan/takeoff-tracker/internal/entity"
)

type fakeProjectRepo struct {
	projects []*entity.Project
}

func (f *fakeProjectRepo) CreateProject(_ context.Context, p *entity.Project) error {
	f.projects = append(f.projects, p)
	return nil
}

func (f *fakeProjectRepo) ListProjects(_ context.Context) ([]*entity.Project, error) {
	return f.projects, nil
}

func (f *fakeProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Project, error) {
	return nil, common.NewAppError("PROJECT_NOT_FOUND", id.String(), common.ErrNotFound)
}

func (f *fakeProjectRepo) Stats(_ context.Context) (*entity.ProjectStats, error) {
	return &entity.ProjectStats{Count: len(f.projects)}, nil
}

func testRepo() *fakeProjectRepo {
	created := time.Date(2026, 8, 28, 14, 30, 0, 0, time.UTC)
	return &fakeProjectRepo{projects: []*entity.Project{
		{
			ID:      uuid.New(),
			Address: "456 OAK AVENUE", Block: "7", Lot: "3",
			SidewalkSF: 100, TotalSF: 100, SidewalkCY: 1.23, TotalCY: 1.23,
			CreatedAt: created,
		},
		{
			ID:      uuid.New(),
			Address: "123 MAIN STREET", Block: "45", Lot: "12",
			SidewalkSF: 50, ApronSF: 32, CurbLF: 50, DrivewaySF: 200,
			SidewalkCY: 0.62, ApronCY: 0.59, CurbCY: 0.46, DrivewayCY: 3.70,
			TotalSF: 282, TotalCY: 5.38,
			CreatedAt: created.Add(-time.Hour),
			Notes:     "curb replacement",
		},
	}}
}

func TestExportProjectsCSV(t *testing.T) {
	repo := testRepo()
	svc := NewService(repo, nil)

	out, err := svc.ExportProjectsCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"ID", "Address", "Block", "Lot",
		"Sidewalk SF", "Apron SF", "Curb LF", "Driveway SF",
		"Sidewalk CY", "Apron CY", "Curb CY", "Driveway CY",
		"Total SF", "Total CY", "Date", "Notes",
	}, records[0])

	// rows come out in repository order (newest first)
	assert.Equal(t, "456 OAK AVENUE", records[1][1])
	assert.Equal(t, "123 MAIN STREET", records[2][1])
	assert.Equal(t, "282", records[2][12])
	assert.Equal(t, "5.38", records[2][13])
	assert.Equal(t, "2026-08-28 13:30:00", records[2][14])
	assert.Equal(t, "curb replacement", records[2][15])
}

func TestExportProjectsCSV_Empty(t *testing.T) {
	svc := NewService(&fakeProjectRepo{}, nil)

	out, err := svc.ExportProjectsCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1) // header only
}

func TestExportProjectsXLSX(t *testing.T) {
	repo := testRepo()
	svc := NewService(repo, nil)

	out, err := svc.ExportProjectsXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() { require.NoError(t, f.Close()) }()

	const sheet = "Projects"

	a1, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", a1)

	b2, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "456 OAK AVENUE", b2)

	n3, err := f.GetCellValue(sheet, "N3")
	require.NoError(t, err)
	assert.Equal(t, "5.38", n3)
}
