package entity

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a saved takeoff for data transfer between layers.
// Raw quantities are square feet (curb: linear feet); volumes are cubic yards.
type Project struct {
	ID         uuid.UUID `json:"id"`
	Address    string    `json:"address"`
	Block      string    `json:"block"`
	Lot        string    `json:"lot"`
	SidewalkSF float64   `json:"sidewalk_sf"`
	ApronSF    float64   `json:"apron_sf"`
	CurbLF     float64   `json:"curb_lf"`
	DrivewaySF float64   `json:"driveway_sf"`
	SidewalkCY float64   `json:"sidewalk_cy"`
	ApronCY    float64   `json:"apron_cy"`
	CurbCY     float64   `json:"curb_cy"`
	DrivewayCY float64   `json:"driveway_cy"`
	TotalSF    float64   `json:"total_sf"`
	TotalCY    float64   `json:"total_cy"`
	CreatedAt  time.Time `json:"created_at"`
	Notes      string    `json:"notes"`
}

// ProjectStats aggregates saved projects for the statistics view.
type ProjectStats struct {
	Count   int     `json:"count"`
	TotalCY float64 `json:"total_cy"`
	AvgCY   float64 `json:"avg_cy"`
	AvgSF   float64 `json:"avg_sf"`
}
