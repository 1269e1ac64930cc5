package services

import (
	"itinerary-route-service/internal/domain"
	"slices"
)

// MaxExhaustiveMovable caps how many unlocked activities exhaustive search will permute (7! orders).
const MaxExhaustiveMovable = 7

// exhaustive tries every arrangement of the unlocked activities over the unlocked
// positions and keeps the shortest meal-feasible one. Locked activities never move.
//
// ok is false when there are too many movable activities to enumerate.
func exhaustive(p *problem) (out outcome, ok bool) {
	var slots []int
	for i, locked := range p.locked {
		if !locked {
			slots = append(slots, i)
		}
	}
	if len(slots) > MaxExhaustiveMovable {
		return outcome{}, false
	}

	best := p.baseline()
	if len(slots) < 2 {
		return best, true
	}

	movable := make([]domain.Activity, len(slots))
	for k, i := range slots {
		movable[k] = p.original[i]
	}
	candidate := slices.Clone(p.original)

	permute(movable, len(movable), func(perm []domain.Activity) {
		best.iterations++
		for k, i := range slots {
			candidate[i] = perm[k]
		}

		d := totalDistance(candidate, p.est)
		if d >= best.distance || !p.feasible(candidate) {
			return
		}
		best.order = slices.Clone(candidate)
		best.distance = d
		best.swaps++
	})

	return best, true
}

// permute calls visit with every ordering of a[:k] (Heap's algorithm). The first
// ordering visited is a itself.
func permute(a []domain.Activity, k int, visit func([]domain.Activity)) {
	if k <= 1 {
		visit(a)
		return
	}
	for i := 0; i < k-1; i++ {
		permute(a, k-1, visit)
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
	}
	permute(a, k-1, visit)
}
