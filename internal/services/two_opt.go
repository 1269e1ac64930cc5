package services

import (
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/geo"
	"slices"
)

// Everything a search needs about one day. Built once per OptimizeDay call.
type problem struct {
	original      []domain.Activity
	dayStart      domain.ClockTime
	windows       domain.MealWindows
	locked        []bool
	est           *geo.Estimator
	maxIterations int
}

// What a search found.
type outcome struct {
	order      []domain.Activity
	distance   int
	swaps      int
	iterations int
	exhausted  bool
}

func (p *problem) feasible(order []domain.Activity) bool {
	return mealWindowsHold(order, p.dayStart, p.windows, p.est)
}

func (p *problem) baseline() outcome {
	return outcome{order: slices.Clone(p.original), distance: totalDistance(p.original, p.est)}
}

// twoOpt improves start by segment reversals until no feasible reversal shortens it.
//
// Each scan takes the first strictly improving, lock-preserving, meal-feasible
// reversal and restarts; a scan that finds none ends the search at a local optimum.
// At most budget scans run. exhausted means the budget ran out before a scan
// confirmed the order as a local optimum; the order may still happen to be one.
func twoOpt(p *problem, start []domain.Activity, budget int) outcome {
	out := outcome{order: slices.Clone(start), distance: totalDistance(start, p.est)}
	n := len(out.order)
	if n < 3 {
		return out
	}

	for {
		if out.iterations >= budget {
			out.exhausted = true
			return out
		}
		out.iterations++

		improved := false
	scan:
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				if !isFeasibleReversal(p.locked, i, j) {
					continue
				}

				candidate := reverseSegment(out.order, i, j)
				d := totalDistance(candidate, p.est)
				if d >= out.distance || !p.feasible(candidate) {
					continue
				}

				out.order, out.distance = candidate, d
				out.swaps++
				improved = true
				break scan
			}
		}

		if !improved {
			return out
		}
	}
}

// defaultMaxIterations bounds 2-opt scans at 10*n^2.
func defaultMaxIterations(n int) int {
	if n < 1 {
		return 1
	}
	return 10 * n * n
}
