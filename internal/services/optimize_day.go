package services

import (
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/geo"
	"strings"
)

// Auto strategy thresholds, by number of activities in the day.
const (
	autoExhaustiveMax = 7
	autoHybridMax     = 12
)

// Options tunes a single OptimizeDay call. The zero value runs 2-opt from the
// resolved day start with the default iteration budget.
type Options struct {
	Strategy domain.Strategy
	DayStart *domain.ClockTime
	// MaxIterations caps 2-opt scans for the whole call; hybrid shares it across
	// all of its 2-opt runs. Exhaustive search is bounded by MaxExhaustiveMovable
	// instead. Zero means 10*n^2.
	MaxIterations int
}

// ValidateDay rejects input the optimizer cannot reason about. Every error wraps
// domain.ErrInvalidInput.
func ValidateDay(activities []domain.Activity, constraints domain.OptimizationConstraints) error {
	seen := make(map[string]struct{}, len(activities))
	for i, a := range activities {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("validate day: activity %d: %w", i, err)
		}
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("validate day: duplicate activity id %q: %w", a.ID, domain.ErrInvalidInput)
		}
		seen[a.ID] = struct{}{}
	}

	for _, id := range constraints.FixedActivityIDs {
		if _, ok := seen[id]; !ok {
			return fmt.Errorf("validate day: fixed activity %q is not in the day: %w", id, domain.ErrInvalidInput)
		}
	}

	if constraints.MealWindows != nil {
		if err := constraints.MealWindows.Validate(); err != nil {
			return fmt.Errorf("validate day: meal windows: %w", err)
		}
	}
	return nil
}

// OptimizeDay reorders one day's activities to shorten total travel distance.
//
// Locked activities keep their positions, meal-category activities stay inside the
// meal windows, and the result is never longer than the input. The returned
// OptimizedOrder carries projected start times; the input slice is not modified.
func OptimizeDay(
	activities []domain.Activity,
	constraints domain.OptimizationConstraints,
	opts Options,
) (*domain.OptimizationResult, error) {
	if err := ValidateDay(activities, constraints); err != nil {
		return nil, fmt.Errorf("optimize day: %w", err)
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = domain.StrategyTwoOpt
	}
	if _, err := domain.ParseStrategy(string(strategy)); err != nil {
		return nil, fmt.Errorf("optimize day: %w", err)
	}
	if opts.MaxIterations < 0 {
		return nil, fmt.Errorf("optimize day: max iterations %d is negative: %w", opts.MaxIterations, domain.ErrInvalidInput)
	}

	p := &problem{
		original:      activities,
		dayStart:      ResolveDayStart(activities, opts.DayStart),
		windows:       constraints.Windows(),
		locked:        lockedIndices(activities, constraints),
		est:           geo.NewEstimator(),
		maxIterations: opts.MaxIterations,
	}
	if p.maxIterations == 0 {
		p.maxIterations = defaultMaxIterations(len(activities))
	}

	// Nothing to reorder.
	if len(activities) <= 2 {
		return buildResult(p, p.baseline(), resolveAuto(strategy, len(activities))), nil
	}

	out, used := search(p, resolveAuto(strategy, len(activities)))
	return buildResult(p, out, used), nil
}

func resolveAuto(s domain.Strategy, n int) domain.Strategy {
	if s != domain.StrategyAuto {
		return s
	}
	switch {
	case n <= autoExhaustiveMax:
		return domain.StrategyExhaustive
	case n <= autoHybridMax:
		return domain.StrategyHybrid
	default:
		return domain.StrategyTwoOpt
	}
}

// search runs the strategy and reports which one actually produced the order.
func search(p *problem, s domain.Strategy) (outcome, domain.Strategy) {
	switch s {
	case domain.StrategyExhaustive:
		if out, ok := exhaustive(p); ok {
			return out, domain.StrategyExhaustive
		}
		// Too many movable activities to enumerate.
		return twoOpt(p, p.original, p.maxIterations), domain.StrategyTwoOpt
	case domain.StrategyHybrid:
		return hybrid(p), domain.StrategyHybrid
	default:
		return twoOpt(p, p.original, p.maxIterations), domain.StrategyTwoOpt
	}
}

// DescribeResult renders a one-line summary used in logs and the CLI.
func DescribeResult(r *domain.OptimizationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "strategy=%s swaps=%d distance=%dm->%dm saved=%dm (%.1f%%) travel=%dmin->%dmin",
		r.Strategy, r.SwapsPerformed,
		r.OriginalDistanceMeters, r.OptimizedDistanceMeters, r.SavingsMeters, r.SavingsPercent,
		r.OriginalTravelMinutes, r.OptimizedTravelMinutes,
	)
	if r.IterationBudgetExhausted {
		b.WriteString(" budget_exhausted=true")
	}
	return b.String()
}
