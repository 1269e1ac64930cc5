package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/obs"
	"time"
)

// SQLite-backed implementation of the ItineraryRepository port.
type SqliteItineraryRepository struct{ DB *sql.DB }

func NewSqliteItineraryRepository(db *sql.DB) *SqliteItineraryRepository {
	return &SqliteItineraryRepository{DB: db}
}

// Return one day with its activities in stored order.
func (s *SqliteItineraryRepository) GetDay(ctx context.Context, tripID string, dayNumber int) (_ *domain.ItineraryDay, err error) {
	defer obs.Time(ctx, "itinerary.sqlite.GetDay")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite itinerary repository: DB is nil")
	}
	if err := validateDayKey(tripID, dayNumber); err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}

	query := `
	SELECT ` + activityColumns + `
	FROM itinerary_activities
	WHERE trip_id = ? AND day_number = ?
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query, tripID, dayNumber)
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

// Return every day of a trip ordered by day number.
func (s *SqliteItineraryRepository) ListDays(ctx context.Context, tripID string) (_ []*domain.ItineraryDay, err error) {
	defer obs.Time(ctx, "itinerary.sqlite.ListDays")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite itinerary repository: DB is nil")
	}

	query := `
	SELECT ` + activityColumns + `
	FROM itinerary_activities
	WHERE trip_id = ?
	ORDER BY day_number, position;
	`
	rows, err := s.DB.QueryContext(ctx, query, tripID)
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

// Replace the activities of a day inside one transaction.
func (s *SqliteItineraryRepository) SaveDay(ctx context.Context, day *domain.ItineraryDay) (err error) {
	defer obs.Time(ctx, "itinerary.sqlite.SaveDay")(&err)

	if s.DB == nil {
		return errors.New("sqlite itinerary repository: DB is nil")
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
	WHERE trip_id = ? AND day_number = ?;
	`, day.TripID, day.DayNumber); err != nil {
		return fmt.Errorf("save day: clear day: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO itinerary_activities (
		trip_id,
		day_number,
		position,
		activity_id,
		name,
		category,
		lat,
		lng,
		start_time,
		duration_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save day: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, a := range day.Activities {
		lat, lng, start := activityArgs(a)
		if _, err := stmt.ExecContext(ctx, day.TripID, day.DayNumber, i, a.ID, a.Name, string(a.Category), lat, lng, start, a.DurationMinutes); err != nil {
			return fmt.Errorf("save day: insert activity_id=%q: %w", a.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save day: commit tx: %w", err)
	}
	return nil
}

// Append an optimization audit record.
func (s *SqliteItineraryRepository) RecordRun(ctx context.Context, run domain.OptimizationRun) (err error) {
	defer obs.Time(ctx, "itinerary.sqlite.RecordRun")(&err)

	if s.DB == nil {
		return errors.New("sqlite itinerary repository: DB is nil")
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO optimization_runs (
		id,
		trip_id,
		day_number,
		strategy,
		original_distance_meters,
		optimized_distance_meters,
		swaps_performed,
		created_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`,
		run.ID, run.TripID, run.DayNumber, string(run.Strategy),
		run.OriginalDistanceMeters, run.OptimizedDistanceMeters, run.SwapsPerformed,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("record run id=%s: %w", run.ID, err)
	}
	return nil
}
