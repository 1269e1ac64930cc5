package services

import (
	"itinerary-route-service/internal/domain"
	"slices"
)

// buildResult compares the final order against the original and recomputes the
// timeline for the final order.
func buildResult(p *problem, out outcome, strategy domain.Strategy) *domain.OptimizationResult {
	before := ProjectSchedule(p.original, p.dayStart, p.est)
	after := ProjectSchedule(out.order, p.dayStart, p.est)

	optimized := make([]domain.Activity, len(out.order))
	for i, a := range out.order {
		start := after.StartTimes[a.ID]
		a.StartTime = &start
		optimized[i] = a
	}

	savings := before.TotalDistanceMeters - after.TotalDistanceMeters
	percent := 0.0
	if before.TotalDistanceMeters > 0 {
		percent = float64(savings) / float64(before.TotalDistanceMeters) * 100
	}

	return &domain.OptimizationResult{
		OriginalOrder:            slices.Clone(p.original),
		OptimizedOrder:           optimized,
		OriginalDistanceMeters:   before.TotalDistanceMeters,
		OptimizedDistanceMeters:  after.TotalDistanceMeters,
		SavingsMeters:            savings,
		SavingsPercent:           percent,
		OriginalTravelMinutes:    before.TotalTravelMinutes,
		OptimizedTravelMinutes:   after.TotalTravelMinutes,
		SavingsMinutes:           before.TotalTravelMinutes - after.TotalTravelMinutes,
		UpdatedStartTimes:        after.StartTimes,
		SwapsPerformed:           out.swaps,
		Iterations:               out.iterations,
		IterationBudgetExhausted: out.exhausted,
		Strategy:                 strategy,
	}
}
