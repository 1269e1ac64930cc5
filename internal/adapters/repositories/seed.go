package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/ports"
	"os"
	"strings"
)

// LoadSeed reads a JSON array of itinerary days.
func LoadSeed(jsonPath string) ([]*domain.ItineraryDay, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var days []*domain.ItineraryDay
	if err := json.Unmarshal(bytes, &days); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	for i, d := range days {
		d.TripID = strings.TrimSpace(d.TripID)
		if err := validateDayKey(d.TripID, d.DayNumber); err != nil {
			return nil, fmt.Errorf("load seed: day at index %d: %w", i, err)
		}
		for _, a := range d.Activities {
			if err := a.Validate(); err != nil {
				return nil, fmt.Errorf("load seed: trip %q day %d: %w", d.TripID, d.DayNumber, err)
			}
		}
	}
	return days, nil
}

// Populate the repository with itinerary days from a JSON file.
// Seeding is idempotent: each day replaces whatever was stored for it.
func SeedFromJSON(ctx context.Context, repo ports.ItineraryRepository, jsonPath string) error {
	days, err := LoadSeed(jsonPath)
	if err != nil {
		return fmt.Errorf("seed itinerary: %w", err)
	}

	for _, d := range days {
		if err := repo.SaveDay(ctx, d); err != nil {
			return fmt.Errorf("seed itinerary: trip %q day %d: %w", d.TripID, d.DayNumber, err)
		}
	}
	return nil
}
