package api

import (
	"itinerary-route-service/internal/api/handlers"
	"itinerary-route-service/internal/platform/metrics"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers depend on the Optimizer interface, not on concrete adapters.
func NewRouter(optimizer handlers.Optimizer) http.Handler {
	mux := http.NewServeMux()

	optHandler := &handlers.OptimizeHandler{Optimizer: optimizer}
	tripHandler := &handlers.TripHandler{Optimizer: optimizer}

	mux.HandleFunc("/health", handlers.Health)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/optimize", optHandler.Optimize)
	mux.HandleFunc("/trips/{tripID}/days/{day}", tripHandler.GetDay)
	mux.HandleFunc("/trips/{tripID}/days/{day}/optimize", tripHandler.OptimizeDay)
	mux.HandleFunc("/trips/{tripID}/optimize", tripHandler.OptimizeTrip)

	// loggingMiddleware runs inside requestIDMiddleware so its log line carries the id.
	return requestIDMiddleware(loggingMiddleware(mux))
}
