package ports

import (
	"context"
	"itinerary-route-service/internal/domain"
)

// Contract for caching optimization results by input fingerprint.
type ResultCache interface {
	// Return the cached result, or ok=false on a miss.
	Get(ctx context.Context, key string) (_ *domain.OptimizationResult, ok bool, err error)
	Put(ctx context.Context, key string, result *domain.OptimizationResult) error
}
