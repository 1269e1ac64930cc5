package dto

import (
	"fmt"
	"itinerary-route-service/internal/domain"
)

type MealWindowsDTO struct {
	Lunch  string `json:"lunch"`
	Dinner string `json:"dinner"`
}

type ConstraintsRequest struct {
	FixedActivityIDs  []string        `json:"fixed_activity_ids"`
	MealWindows       *MealWindowsDTO `json:"meal_windows"`
	KeepFirstActivity bool            `json:"keep_first_activity"`
	KeepLastActivity  bool            `json:"keep_last_activity"`
}

// ToDomain converts optional constraints; nil means no constraints.
func (c *ConstraintsRequest) ToDomain() (domain.OptimizationConstraints, error) {
	if c == nil {
		return domain.OptimizationConstraints{}, nil
	}

	out := domain.OptimizationConstraints{
		FixedActivityIDs:  c.FixedActivityIDs,
		KeepFirstActivity: c.KeepFirstActivity,
		KeepLastActivity:  c.KeepLastActivity,
	}
	if c.MealWindows != nil {
		lunch, err := domain.ParseTimeWindow(c.MealWindows.Lunch)
		if err != nil {
			return out, fmt.Errorf("meal_windows.lunch: %w", err)
		}
		dinner, err := domain.ParseTimeWindow(c.MealWindows.Dinner)
		if err != nil {
			return out, fmt.Errorf("meal_windows.dinner: %w", err)
		}
		out.MealWindows = &domain.MealWindows{Lunch: lunch, Dinner: dinner}
	}
	return out, nil
}

type OptimizeRequest struct {
	Activities  []ActivityRequest   `json:"activities"`
	Constraints *ConstraintsRequest `json:"constraints"`
}

type StoredOptimizeRequest struct {
	Constraints *ConstraintsRequest `json:"constraints"`
	DryRun      bool                `json:"dry_run"`
}

type OptimizationResponse struct {
	OriginalOrder            []ActivityResponse `json:"original_order"`
	OptimizedOrder           []ActivityResponse `json:"optimized_order"`
	OriginalDistanceMeters   int                `json:"original_distance_meters"`
	OptimizedDistanceMeters  int                `json:"optimized_distance_meters"`
	SavingsMeters            int                `json:"savings_meters"`
	SavingsPercent           float64            `json:"savings_percent"`
	OriginalTravelMinutes    int                `json:"original_travel_minutes"`
	OptimizedTravelMinutes   int                `json:"optimized_travel_minutes"`
	SavingsMinutes           int                `json:"savings_minutes"`
	UpdatedStartTimes        map[string]string  `json:"updated_start_times"`
	SwapsPerformed           int                `json:"swaps_performed"`
	Iterations               int                `json:"iterations"`
	IterationBudgetExhausted bool               `json:"iteration_budget_exhausted"`
	Strategy                 string             `json:"strategy"`
}

func NewOptimizationResponse(r *domain.OptimizationResult) OptimizationResponse {
	starts := make(map[string]string, len(r.UpdatedStartTimes))
	for id, t := range r.UpdatedStartTimes {
		starts[id] = t.String()
	}

	return OptimizationResponse{
		OriginalOrder:            NewActivityResponses(r.OriginalOrder),
		OptimizedOrder:           NewActivityResponses(r.OptimizedOrder),
		OriginalDistanceMeters:   r.OriginalDistanceMeters,
		OptimizedDistanceMeters:  r.OptimizedDistanceMeters,
		SavingsMeters:            r.SavingsMeters,
		SavingsPercent:           r.SavingsPercent,
		OriginalTravelMinutes:    r.OriginalTravelMinutes,
		OptimizedTravelMinutes:   r.OptimizedTravelMinutes,
		SavingsMinutes:           r.SavingsMinutes,
		UpdatedStartTimes:        starts,
		SwapsPerformed:           r.SwapsPerformed,
		Iterations:               r.Iterations,
		IterationBudgetExhausted: r.IterationBudgetExhausted,
		Strategy:                 string(r.Strategy),
	}
}

type DayOptimizationResponse struct {
	DayNumber int                  `json:"day_number"`
	Result    OptimizationResponse `json:"result"`
}

type TripOptimizationResponse struct {
	TripID string                    `json:"trip_id"`
	DryRun bool                      `json:"dry_run"`
	Days   []DayOptimizationResponse `json:"days"`
}
