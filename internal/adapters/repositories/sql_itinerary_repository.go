package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
)

// Postgres-backed implementation of the ItineraryRepository port.
// Expects a *sql.DB opened through the pgx stdlib driver.
type SQLItineraryRepository struct{ DB *sql.DB }

func NewSQLItineraryRepository(db *sql.DB) *SQLItineraryRepository {
	return &SQLItineraryRepository{DB: db}
}

func (s *SQLItineraryRepository) GetDay(ctx context.Context, tripID string, dayNumber int) (_ *domain.ItineraryDay, err error) {
	defer obs.Time(ctx, "itinerary.sql.GetDay")(&err)

	if s.DB == nil {
		return nil, errors.New("sql itinerary repository: DB is nil")
	}
	if err := validateDayKey(tripID, dayNumber); err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}

	q := `
	SELECT ` + activityColumns + `
	FROM itinerary_activities
	WHERE trip_id = $1 AND day_number = $2
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, q, tripID, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("get day: query itinerary_activities table: %w", err)
	}
	defer rows.Close()

	days, err := collectDays(tripID, rows)
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("get day: trip %q day %d: %w", tripID, dayNumber, domain.ErrNotFound)
	}
	return days[0], nil
}

func (s *SQLItineraryRepository) ListDays(ctx context.Context, tripID string) (_ []*domain.ItineraryDay, err error) {
	defer obs.Time(ctx, "itinerary.sql.ListDays")(&err)

	if s.DB == nil {
		return nil, errors.New("sql itinerary repository: DB is nil")
	}

	q := `
	SELECT ` + activityColumns + `
	FROM itinerary_activities
	WHERE trip_id = $1
	ORDER BY day_number, position;
	`
	rows, err := s.DB.QueryContext(ctx, q, tripID)
	if err != nil {
		return nil, fmt.Errorf("list days: query itinerary_activities table: %w", err)
	}
	defer rows.Close()

	days, err := collectDays(tripID, rows)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("list days: trip %q: %w", tripID, domain.ErrNotFound)
	}
	return days, nil
}

// Replace the activities of a day. Rows for activities no longer in the day are
// removed; the rest are upserted with their new position.
func (s *SQLItineraryRepository) SaveDay(ctx context.Context, day *domain.ItineraryDay) (err error) {
	defer obs.Time(ctx, "itinerary.sql.SaveDay")(&err)

	if s.DB == nil {
		return errors.New("sql itinerary repository: DB is nil")
	}
	if day == nil {
		return fmt.Errorf("save day: day is nil: %w", domain.ErrInvalidInput)
	}
	if err := validateDayKey(day.TripID, day.DayNumber); err != nil {
		return fmt.Errorf("save day: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save day: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
	DELETE FROM itinerary_activities
	WHERE trip_id = $1
		AND day_number = $2
		AND NOT (activity_id = ANY($3::text[]));
	`, day.TripID, day.DayNumber, domain.IDs(day.Activities)); err != nil {
		return fmt.Errorf("save day: prune day: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO itinerary_activities (
		trip_id, day_number, position, activity_id, name, category, lat, lng, start_time, duration_minutes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (trip_id, day_number, activity_id) DO UPDATE
	SET position = EXCLUDED.position,
		name = EXCLUDED.name,
		category = EXCLUDED.category,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		start_time = EXCLUDED.start_time,
		duration_minutes = EXCLUDED.duration_minutes;
	`)
	if err != nil {
		return fmt.Errorf("save day: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, a := range day.Activities {
		lat, lng, start := activityArgs(a)
		if _, err := stmt.ExecContext(ctx, day.TripID, day.DayNumber, i, a.ID, a.Name, string(a.Category), lat, lng, start, a.DurationMinutes); err != nil {
			return fmt.Errorf("save day: upsert activity_id=%q: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save day: commit tx: %w", err)
	}
	return nil
}

func (s *SQLItineraryRepository) RecordRun(ctx context.Context, run domain.OptimizationRun) (err error) {
	defer obs.Time(ctx, "itinerary.sql.RecordRun")(&err)

	if s.DB == nil {
		return errors.New("sql itinerary repository: DB is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO optimization_runs (
		id, trip_id, day_number, strategy, original_distance_meters, optimized_distance_meters, swaps_performed, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO NOTHING;
	`,
		run.ID, run.TripID, run.DayNumber, string(run.Strategy),
		run.OriginalDistanceMeters, run.OptimizedDistanceMeters, run.SwapsPerformed, run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record run id=%s: %w", run.ID, err)
	}
	return nil
}
