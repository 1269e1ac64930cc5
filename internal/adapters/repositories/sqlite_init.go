package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS itinerary_activities (
		trip_id TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		position INTEGER NOT NULL,
		activity_id TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		lat REAL,
		lng REAL,
		start_time TEXT,
		duration_minutes INTEGER NOT NULL,
		PRIMARY KEY (trip_id, day_number, activity_id)
	);
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		original_distance_meters INTEGER NOT NULL,
		optimized_distance_meters INTEGER NOT NULL,
		swaps_performed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_itinerary_activities_position
	ON itinerary_activities(trip_id, day_number, position);
	`

	return execSchema(db, createActivitiesQuery, createRunsQuery, createIndexQuery)
}

// Initialize the Postgres database schema.
func InitPostgresSchema(db *sql.DB) error {
	createActivitiesQuery := `
	CREATE TABLE IF NOT EXISTS itinerary_activities (
		trip_id TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		position INTEGER NOT NULL,
		activity_id TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		start_time TEXT,
		duration_minutes INTEGER NOT NULL,
		PRIMARY KEY (trip_id, day_number, activity_id)
	);
	`

	createRunsQuery := `
	CREATE TABLE IF NOT EXISTS optimization_runs (
		id UUID PRIMARY KEY,
		trip_id TEXT NOT NULL,
		day_number INTEGER NOT NULL,
		strategy TEXT NOT NULL,
		original_distance_meters INTEGER NOT NULL,
		optimized_distance_meters INTEGER NOT NULL,
		swaps_performed INTEGER NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_itinerary_activities_position
	ON itinerary_activities(trip_id, day_number, position);
	`

	return execSchema(db, createActivitiesQuery, createRunsQuery, createIndexQuery)
}

func execSchema(db *sql.DB, statements ...string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
