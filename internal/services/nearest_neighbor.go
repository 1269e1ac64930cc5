package services

import (
	"itinerary-route-service/internal/domain"
	"math"
	"slices"
)

// nearestNeighborSeed builds a greedy ordering of from over the unlocked positions.
//
// Locked activities stay in place. Each unlocked slot, left to right, receives the
// remaining movable activity with the shortest road leg from whatever now precedes
// the slot. It minimizes the immediate hop only and ignores meal windows.
func nearestNeighborSeed(p *problem, from []domain.Activity) []domain.Activity {
	seed := slices.Clone(from)

	var remaining []int
	for i, locked := range p.locked {
		if !locked {
			remaining = append(remaining, i)
		}
	}

	for slot, locked := range p.locked {
		if locked {
			continue
		}

		best := -1
		bestMeters := math.MaxInt
		for k, idx := range remaining {
			meters := 0
			if slot > 0 {
				meters = p.est.Leg(seed[slot-1].Coordinates, from[idx].Coordinates).RoadMeters
			}
			// Ties keep the current order so the seed is deterministic.
			if meters < bestMeters {
				bestMeters = meters
				best = k
			}
		}

		seed[slot] = from[remaining[best]]
		remaining = slices.Delete(remaining, best, best+1)
	}

	return seed
}

// hybrid starts from plain 2-opt of the original order, then repeatedly reseeds the
// best order found so far with nearest neighbour and refines the seed with 2-opt.
// A refined seed replaces the best order only when strictly shorter; the first round
// that does not improve ends the search, so the result reseeds to itself.
// Seeds that equal the current order or break meal windows end the search too.
//
// All 2-opt runs share p.maxIterations. Running out of it before a round confirms
// the result sets exhausted.
func hybrid(p *problem) outcome {
	best := twoOpt(p, p.original, p.maxIterations)
	budget := p.maxIterations - best.iterations

	for budget > 0 {
		seed := nearestNeighborSeed(p, best.order)
		if slices.Equal(domain.IDs(seed), domain.IDs(best.order)) || !p.feasible(seed) {
			return best
		}

		seeded := twoOpt(p, seed, budget)
		budget -= seeded.iterations
		best.iterations += seeded.iterations

		if seeded.distance >= best.distance {
			best.exhausted = seeded.exhausted
			return best
		}

		// the seed reordering itself counts as one accepted move
		best.order, best.distance = seeded.order, seeded.distance
		best.swaps += seeded.swaps + 1
	}

	best.exhausted = true
	return best
}
