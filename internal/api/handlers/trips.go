package handlers

import (
	"itinerary-route-service/internal/api/dto"
	"net/http"
	"strings"
)

// TripHandler serves stored itineraries.
type TripHandler struct {
	Optimizer Optimizer
}

// GetDay handles GET /trips/{tripID}/days/{day}.
func (h *TripHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	tripID, day, ok := dayPath(w, r)
	if !ok {
		return
	}

	d, err := h.Optimizer.GetDay(r.Context(), tripID, day)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewDayResponse(d))
}

// OptimizeDay handles POST /trips/{tripID}/days/{day}/optimize.
// The body is optional; without dry_run the optimized order is saved.
func (h *TripHandler) OptimizeDay(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	tripID, day, ok := dayPath(w, r)
	if !ok {
		return
	}

	var req dto.StoredOptimizeRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	constraints, err := req.Constraints.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.Optimizer.OptimizeStoredDay(r.Context(), tripID, day, constraints, req.DryRun)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewOptimizationResponse(res))
}

// OptimizeTrip handles POST /trips/{tripID}/optimize.
func (h *TripHandler) OptimizeTrip(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	tripID := strings.TrimSpace(r.PathValue("tripID"))
	if tripID == "" {
		writeError(w, r, http.StatusBadRequest, "trip id is required")
		return
	}

	var req dto.StoredOptimizeRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	constraints, err := req.Constraints.ToDomain()
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.Optimizer.OptimizeStoredTrip(r.Context(), tripID, constraints, req.DryRun)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.TripOptimizationResponse{
		TripID: tripID,
		DryRun: req.DryRun,
		Days:   make([]dto.DayOptimizationResponse, 0, len(results)),
	}
	for _, d := range results {
		res.Days = append(res.Days, dto.DayOptimizationResponse{
			DayNumber: d.DayNumber,
			Result:    dto.NewOptimizationResponse(d.Result),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func dayPath(w http.ResponseWriter, r *http.Request) (string, int, bool) {
	tripID := strings.TrimSpace(r.PathValue("tripID"))
	if tripID == "" {
		writeError(w, r, http.StatusBadRequest, "trip id is required")
		return "", 0, false
	}

	day, err := pathDayNumber(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return "", 0, false
	}
	return tripID, day, true
}
