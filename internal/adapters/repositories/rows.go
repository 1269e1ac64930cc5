package repositories

import (
	"database/sql"
	"fmt"
	"itinerary-route-service/internal/domain"
)

// Column list shared by every activity SELECT, in scanActivity order.
const activityColumns = `day_number, activity_id, name, category, lat, lng, start_time, duration_minutes`

func scanActivity(rows *sql.Rows) (int, domain.Activity, error) {
	var (
		day      int
		a        domain.Activity
		category string
		lat, lng sql.NullFloat64
		start    sql.NullString
	)
	if err := rows.Scan(&day, &a.ID, &a.Name, &category, &lat, &lng, &start, &a.DurationMinutes); err != nil {
		return 0, domain.Activity{}, fmt.Errorf("scan row: %w", err)
	}

	a.Category = domain.ParseCategory(category)
	if lat.Valid && lng.Valid {
		a.Coordinates = &domain.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	if start.Valid {
		c, err := domain.ParseClock(start.String)
		if err != nil {
			return 0, domain.Activity{}, fmt.Errorf("activity %q: %w", a.ID, err)
		}
		a.StartTime = &c
	}
	return day, a, nil
}

// activityArgs returns the nullable columns of a in insert order: lat, lng, start_time.
func activityArgs(a domain.Activity) (lat, lng, start any) {
	if a.Coordinates != nil {
		lat, lng = a.Coordinates.Lat, a.Coordinates.Lng
	}
	if a.StartTime != nil {
		start = a.StartTime.String()
	}
	return lat, lng, start
}

// collectDays groups rows ordered by day_number, position into days.
func collectDays(tripID string, rows *sql.Rows) ([]*domain.ItineraryDay, error) {
	days := make([]*domain.ItineraryDay, 0, 8)
	for rows.Next() {
		dayNumber, a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		if len(days) == 0 || days[len(days)-1].DayNumber != dayNumber {
			days = append(days, &domain.ItineraryDay{TripID: tripID, DayNumber: dayNumber})
		}
		last := days[len(days)-1]
		last.Activities = append(last.Activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}
	return days, nil
}

func validateDayKey(tripID string, dayNumber int) error {
	if tripID == "" {
		return fmt.Errorf("trip id must not be empty: %w", domain.ErrInvalidInput)
	}
	if dayNumber < 1 {
		return fmt.Errorf("day number %d must be positive: %w", dayNumber, domain.ErrInvalidInput)
	}
	return nil
}
