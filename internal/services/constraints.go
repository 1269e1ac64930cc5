package services

import (
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/geo"
	"slices"
)

// IsLocked reports whether the activity at index must stay where it is: it is
// listed as fixed, or it is the first/last stop and the matching keep flag is set.
func IsLocked(activities []domain.Activity, index int, constraints domain.OptimizationConstraints) bool {
	if index < 0 || index >= len(activities) {
		return false
	}
	if constraints.KeepFirstActivity && index == 0 {
		return true
	}
	if constraints.KeepLastActivity && index == len(activities)-1 {
		return true
	}
	return slices.Contains(constraints.FixedActivityIDs, activities[index].ID)
}

// lockedIndices evaluates IsLocked once per position of the supplied order.
//
// Accepted moves never relocate a locked activity, so the mask stays valid for
// every order the search produces.
func lockedIndices(activities []domain.Activity, constraints domain.OptimizationConstraints) []bool {
	locked := make([]bool, len(activities))
	for i := range activities {
		locked[i] = IsLocked(activities, i, constraints)
	}
	return locked
}

// isFeasibleReversal reports whether reversing [i, j] leaves every locked index in place.
// Reversal maps k to i+j-k, so only the midpoint of an odd-length segment stays put.
func isFeasibleReversal(locked []bool, i, j int) bool {
	for k := i; k <= j; k++ {
		if locked[k] && i+j-k != k {
			return false
		}
	}
	return true
}

// RespectsMealWindows reports whether every meal-category activity starts inside
// the lunch or dinner window when the order is projected from dayStart.
func RespectsMealWindows(
	order []domain.Activity,
	dayStart domain.ClockTime,
	constraints domain.OptimizationConstraints,
	est *geo.Estimator,
) bool {
	return mealWindowsHold(order, dayStart, constraints.Windows(), est)
}

func mealWindowsHold(order []domain.Activity, dayStart domain.ClockTime, windows domain.MealWindows, est *geo.Estimator) bool {
	ok := true
	walkSchedule(order, dayStart, est, func(i int, start domain.ClockTime, _ geo.Leg) bool {
		if order[i].Category.IsMeal() && !windows.Contains(start) {
			ok = false
		}
		return ok
	})
	return ok
}

// reverseSegment returns a copy of order with positions i..j reversed.
func reverseSegment(order []domain.Activity, i, j int) []domain.Activity {
	out := slices.Clone(order)
	slices.Reverse(out[i : j+1])
	return out
}
