package geo

import "itinerary-route-service/internal/domain"

type pairKey struct {
	a, b domain.Coordinates
}

// Estimator memoizes auto-mode legs for one optimization call.
//
// Keys are unordered coordinate pairs, so Leg(a, b) and Leg(b, a) share an entry and
// are exactly equal. An Estimator is not safe for concurrent use; create one per call.
// A nil *Estimator computes every leg without memoization.
type Estimator struct {
	legs map[pairKey]Leg
}

func NewEstimator() *Estimator {
	return &Estimator{legs: make(map[pairKey]Leg)}
}

// Leg returns the estimated hop between two optional coordinates.
// A missing endpoint yields the zero Leg: no distance and no travel time.
func (e *Estimator) Leg(from, to *domain.Coordinates) Leg {
	if from == nil || to == nil {
		return Leg{}
	}

	key := canonicalPair(*from, *to)
	if e == nil {
		return estimateLeg(key.a, key.b, ModeAuto)
	}
	if leg, ok := e.legs[key]; ok {
		return leg
	}
	leg := estimateLeg(key.a, key.b, ModeAuto)
	e.legs[key] = leg
	return leg
}

func canonicalPair(a, b domain.Coordinates) pairKey {
	if b.Lat < a.Lat || (b.Lat == a.Lat && b.Lng < a.Lng) {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}
