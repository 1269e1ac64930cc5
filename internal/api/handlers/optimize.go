package handlers

import (
	"context"
	"itinerary-route-service/internal/api/dto"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/services"
	"net/http"
)

// Optimizer is the service surface the HTTP layer needs.
type Optimizer interface {
	Optimize(ctx context.Context, activities []domain.Activity, constraints domain.OptimizationConstraints) (*domain.OptimizationResult, error)
	GetDay(ctx context.Context, tripID string, dayNumber int) (*domain.ItineraryDay, error)
	OptimizeStoredDay(ctx context.Context, tripID string, dayNumber int, constraints domain.OptimizationConstraints, dryRun bool) (*domain.OptimizationResult, error)
	OptimizeStoredTrip(ctx context.Context, tripID string, constraints domain.OptimizationConstraints, dryRun bool) ([]services.DayResult, error)
}

// OptimizeHandler serves stateless optimization of a single day.
type OptimizeHandler struct {
	Optimizer Optimizer
}

// Optimize handles POST /optimize.
//
// The body carries the day's activities in visiting order and optional constraints.
// Nothing is stored.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OptimizeRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	activities, err := dto.ActivitiesToDomain(req.Activities)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	constraints, err := req.Constraints.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Optimizer.Optimize(r.Context(), activities, constraints)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewOptimizationResponse(res))
}
