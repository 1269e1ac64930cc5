package services

import (
	"context"
	"fmt"
	"itinerary-route-service/internal/domain"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Outcome of optimizing one day of a trip.
type DayResult struct {
	DayNumber int                        `json:"day_number"`
	Result    *domain.OptimizationResult `json:"result"`
}

// OptimizeTrip optimizes independent days concurrently, at most concurrency at a time.
//
// Trip-wide fixed activity ids apply to whichever day contains them. Results come
// back in input order. The first failure cancels days that have not started yet.
func OptimizeTrip(
	ctx context.Context,
	days []*domain.ItineraryDay,
	constraints domain.OptimizationConstraints,
	opts Options,
	concurrency int,
) ([]DayResult, error) {
	return forEachDay(ctx, days, concurrency, func(_ context.Context, day *domain.ItineraryDay) (*domain.OptimizationResult, error) {
		return OptimizeDay(day.Activities, ConstraintsForDay(constraints, day.Activities), opts)
	})
}

// ConstraintsForDay narrows trip-wide fixed ids to the ones present in activities.
func ConstraintsForDay(c domain.OptimizationConstraints, activities []domain.Activity) domain.OptimizationConstraints {
	ids := domain.IDs(activities)

	var fixed []string
	for _, id := range c.FixedActivityIDs {
		if slices.Contains(ids, id) {
			fixed = append(fixed, id)
		}
	}
	c.FixedActivityIDs = fixed
	return c
}

func forEachDay(
	ctx context.Context,
	days []*domain.ItineraryDay,
	concurrency int,
	fn func(ctx context.Context, day *domain.ItineraryDay) (*domain.OptimizationResult, error),
) ([]DayResult, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	for i, day := range days {
		if day == nil {
			return nil, fmt.Errorf("optimize trip: day at index %d is nil: %w", i, domain.ErrInvalidInput)
		}
	}

	results := make([]DayResult, len(days))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, day := range days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			res, err := fn(gctx, day)
			if err != nil {
				return fmt.Errorf("optimize trip: day %d: %w", day.DayNumber, err)
			}
			results[i] = DayResult{DayNumber: day.DayNumber, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
