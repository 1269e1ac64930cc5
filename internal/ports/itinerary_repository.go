package ports

import (
	"context"
	"itinerary-route-service/internal/domain"
)

// Port: a boundary for reading and writing itinerary days.
//
// Lookups of an unknown trip or day return an error wrapping domain.ErrNotFound.
type ItineraryRepository interface {
	// Return one day with its activities in stored sequence order.
	GetDay(ctx context.Context, tripID string, dayNumber int) (*domain.ItineraryDay, error)
	// Return every day of a trip ordered by day number.
	ListDays(ctx context.Context, tripID string) ([]*domain.ItineraryDay, error)
	// Replace the stored activities of a day with the given sequence.
	SaveDay(ctx context.Context, day *domain.ItineraryDay) error
	// Append an audit record for an optimization that was written back.
	RecordRun(ctx context.Context, run domain.OptimizationRun) error
}
