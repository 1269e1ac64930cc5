package cache

import (
	"context"
	"itinerary-route-service/internal/domain"
)

// NopResultCache never stores anything. Used when no cache backend is configured.
type NopResultCache struct{}

func (NopResultCache) Get(context.Context, string) (*domain.OptimizationResult, bool, error) {
	return nil, false, nil
}

func (NopResultCache) Put(context.Context, string, *domain.OptimizationResult) error {
	return nil
}
