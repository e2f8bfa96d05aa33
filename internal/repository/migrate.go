package repository

import (
	"context"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/plotplan/takeoff-tracker/internal/common"
)

// Rows are append-only; there is no schema versioning beyond this table.
const sqliteProjectsDDL = `
CREATE TABLE IF NOT EXISTS projects (
	id          TEXT PRIMARY KEY,
	address     TEXT NOT NULL,
	block       TEXT NOT NULL DEFAULT '',
	lot         TEXT NOT NULL DEFAULT '',
	sidewalk_sf REAL NOT NULL DEFAULT 0,
	apron_sf    REAL NOT NULL DEFAULT 0,
	curb_lf     REAL NOT NULL DEFAULT 0,
	driveway_sf REAL NOT NULL DEFAULT 0,
	sidewalk_cy REAL NOT NULL DEFAULT 0,
	apron_cy    REAL NOT NULL DEFAULT 0,
	curb_cy     REAL NOT NULL DEFAULT 0,
	driveway_cy REAL NOT NULL DEFAULT 0,
	total_sf    REAL NOT NULL DEFAULT 0,
	total_cy    REAL NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL,
	notes       TEXT NOT NULL DEFAULT ''
)`

const postgresProjectsDDL = `
CREATE TABLE IF NOT EXISTS projects (
	id          uuid PRIMARY KEY,
	address     text NOT NULL,
	block       text NOT NULL DEFAULT '',
	lot         text NOT NULL DEFAULT '',
	sidewalk_sf double precision NOT NULL DEFAULT 0,
	apron_sf    double precision NOT NULL DEFAULT 0,
	curb_lf     double precision NOT NULL DEFAULT 0,
	driveway_sf double precision NOT NULL DEFAULT 0,
	sidewalk_cy double precision NOT NULL DEFAULT 0,
	apron_cy    double precision NOT NULL DEFAULT 0,
	curb_cy     double precision NOT NULL DEFAULT 0,
	driveway_cy double precision NOT NULL DEFAULT 0,
	total_sf    double precision NOT NULL DEFAULT 0,
	total_cy    double precision NOT NULL DEFAULT 0,
	created_at  timestamptz NOT NULL,
	notes       text NOT NULL DEFAULT ''
)`

// Migrate creates the projects table if it does not exist.
func Migrate(ctx context.Context, drv *entsql.Driver, logger *slog.Logger) error {
	var ddl string
	switch drv.Dialect() {
	case dialect.SQLite:
		ddl = sqliteProjectsDDL
	case dialect.Postgres:
		ddl = postgresProjectsDDL
	default:
		return common.NewAppError("MIGRATE_ERROR", "unsupported dialect "+drv.Dialect(), common.ErrDatabase)
	}

	if _, err := drv.DB().ExecContext(ctx, ddl); err != nil {
		logger.Error("failed to create projects table", "error", err)
		return common.NewAppError("MIGRATE_ERROR", "create projects table", err)
	}
	logger.Debug("projects table ready", "dialect", drv.Dialect())
	return nil
}
