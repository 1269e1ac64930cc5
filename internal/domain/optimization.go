package domain

import (
	"fmt"
	"time"
)

// Meal windows applied to meal-category activities.
type MealWindows struct {
	Lunch  TimeWindow `json:"lunch" yaml:"lunch"`
	Dinner TimeWindow `json:"dinner" yaml:"dinner"`
}

// DefaultMealWindows returns lunch 11:30-14:30 and dinner 18:30-21:30.
func DefaultMealWindows() MealWindows {
	return MealWindows{
		Lunch:  TimeWindow{Start: MustParseClock("11:30"), End: MustParseClock("14:30")},
		Dinner: TimeWindow{Start: MustParseClock("18:30"), End: MustParseClock("21:30")},
	}
}

// Contains reports whether t falls inside lunch or dinner.
func (m MealWindows) Contains(t ClockTime) bool {
	return m.Lunch.Contains(t) || m.Dinner.Contains(t)
}

func (m MealWindows) Validate() error {
	if err := m.Lunch.Validate(); err != nil {
		return fmt.Errorf("lunch: %w", err)
	}
	if err := m.Dinner.Validate(); err != nil {
		return fmt.Errorf("dinner: %w", err)
	}
	return nil
}

// Rules a reordering must respect.
//
// A nil MealWindows means DefaultMealWindows.
type OptimizationConstraints struct {
	FixedActivityIDs  []string     `json:"fixed_activity_ids,omitempty" yaml:"fixed_activity_ids,omitempty"`
	MealWindows       *MealWindows `json:"meal_windows,omitempty" yaml:"meal_windows,omitempty"`
	KeepFirstActivity bool         `json:"keep_first_activity" yaml:"keep_first_activity"`
	KeepLastActivity  bool         `json:"keep_last_activity" yaml:"keep_last_activity"`
}

// Windows returns the effective meal windows.
func (c OptimizationConstraints) Windows() MealWindows {
	if c.MealWindows == nil {
		return DefaultMealWindows()
	}
	return *c.MealWindows
}

// Search strategy used to reorder a day.
type Strategy string

const (
	StrategyTwoOpt     Strategy = "two_opt"
	StrategyExhaustive Strategy = "exhaustive"
	StrategyHybrid     Strategy = "hybrid"
	StrategyAuto       Strategy = "auto"
)

// ParseStrategy maps "" to StrategyTwoOpt and rejects unknown names.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "":
		return StrategyTwoOpt, nil
	case StrategyTwoOpt, StrategyExhaustive, StrategyHybrid, StrategyAuto:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown strategy %q: %w", s, ErrInvalidInput)
}

// Read-only report of one optimization.
//
// OptimizedOrder is always a permutation of OriginalOrder and SavingsMeters is never negative.
// Activities in OptimizedOrder carry their projected start times; OriginalOrder is returned as given.
type OptimizationResult struct {
	OriginalOrder            []Activity           `json:"original_order"`
	OptimizedOrder           []Activity           `json:"optimized_order"`
	OriginalDistanceMeters   int                  `json:"original_distance_meters"`
	OptimizedDistanceMeters  int                  `json:"optimized_distance_meters"`
	SavingsMeters            int                  `json:"savings_meters"`
	SavingsPercent           float64              `json:"savings_percent"`
	OriginalTravelMinutes    int                  `json:"original_travel_minutes"`
	OptimizedTravelMinutes   int                  `json:"optimized_travel_minutes"`
	SavingsMinutes           int                  `json:"savings_minutes"`
	UpdatedStartTimes        map[string]ClockTime `json:"updated_start_times"`
	SwapsPerformed           int                  `json:"swaps_performed"`
	Iterations               int                  `json:"iterations"`
	// Set when the scan budget ran out before a scan confirmed the order as a local
	// optimum. The order may still be one; only the confirmation is missing.
	IterationBudgetExhausted bool     `json:"iteration_budget_exhausted"`
	Strategy                 Strategy `json:"strategy"`
}

// Audit record of an optimization that was written back to storage.
type OptimizationRun struct {
	ID                      string    `json:"id"`
	TripID                  string    `json:"trip_id"`
	DayNumber               int       `json:"day_number"`
	Strategy                Strategy  `json:"strategy"`
	OriginalDistanceMeters  int       `json:"original_distance_meters"`
	OptimizedDistanceMeters int       `json:"optimized_distance_meters"`
	SwapsPerformed          int       `json:"swaps_performed"`
	CreatedAt               time.Time `json:"created_at"`
}
