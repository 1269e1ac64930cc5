package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/platform/metrics"
	"itinerary-route-service/internal/platform/obs"
	"itinerary-route-service/internal/ports"
	"log"
	"time"

	"github.com/google/uuid"
)

// DayOptimizer runs optimizations against stored itineraries.
//
// Results are cached by input fingerprint. Unless a call is a dry run, the optimized
// order and its start times are written back and an audit run is recorded.
type DayOptimizer struct {
	Repo  ports.ItineraryRepository
	Cache ports.ResultCache

	Options Options
	// Applied when a request carries no meal windows of its own.
	MealWindows *domain.MealWindows
	Concurrency int

	Now   func() time.Time
	NewID func() string
}

func NewDayOptimizer(repo ports.ItineraryRepository, cache ports.ResultCache, opts Options) *DayOptimizer {
	if opts.Strategy == "" {
		opts.Strategy = domain.StrategyTwoOpt
	}
	return &DayOptimizer{
		Repo:        repo,
		Cache:       cache,
		Options:     opts,
		Concurrency: 4,
		Now:         time.Now,
		NewID:       uuid.NewString,
	}
}

// Optimize runs a stateless optimization through the cache. Nothing is persisted.
func (o *DayOptimizer) Optimize(
	ctx context.Context,
	activities []domain.Activity,
	constraints domain.OptimizationConstraints,
) (_ *domain.OptimizationResult, err error) {
	defer obs.Time(ctx, "optimizer.Optimize")(&err)

	res, err := o.optimizeCached(ctx, activities, o.withDefaults(constraints))
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	return res, nil
}

// GetDay returns a stored day.
func (o *DayOptimizer) GetDay(ctx context.Context, tripID string, dayNumber int) (*domain.ItineraryDay, error) {
	day, err := o.Repo.GetDay(ctx, tripID, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	return day, nil
}

// OptimizeStoredDay loads a day, optimizes it and, unless dryRun, writes it back.
func (o *DayOptimizer) OptimizeStoredDay(
	ctx context.Context,
	tripID string,
	dayNumber int,
	constraints domain.OptimizationConstraints,
	dryRun bool,
) (_ *domain.OptimizationResult, err error) {
	defer obs.Time(ctx, "optimizer.OptimizeStoredDay")(&err)

	day, err := o.Repo.GetDay(ctx, tripID, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("optimize stored day: %w", err)
	}

	res, err := o.optimizeAndPersist(ctx, day, o.withDefaults(constraints), dryRun)
	if err != nil {
		return nil, fmt.Errorf("optimize stored day: %w", err)
	}
	return res, nil
}

// OptimizeStoredTrip optimizes every stored day of a trip concurrently.
// Trip-wide fixed ids apply to the day that contains them.
func (o *DayOptimizer) OptimizeStoredTrip(
	ctx context.Context,
	tripID string,
	constraints domain.OptimizationConstraints,
	dryRun bool,
) (_ []DayResult, err error) {
	defer obs.Time(ctx, "optimizer.OptimizeStoredTrip")(&err)

	days, err := o.Repo.ListDays(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("optimize stored trip: %w", err)
	}

	constraints = o.withDefaults(constraints)
	results, err := forEachDay(ctx, days, o.Concurrency, func(ctx context.Context, day *domain.ItineraryDay) (*domain.OptimizationResult, error) {
		return o.optimizeAndPersist(ctx, day, ConstraintsForDay(constraints, day.Activities), dryRun)
	})
	if err != nil {
		return nil, fmt.Errorf("optimize stored trip %q: %w", tripID, err)
	}
	return results, nil
}

func (o *DayOptimizer) optimizeAndPersist(
	ctx context.Context,
	day *domain.ItineraryDay,
	constraints domain.OptimizationConstraints,
	dryRun bool,
) (*domain.OptimizationResult, error) {
	res, err := o.optimizeCached(ctx, day.Activities, constraints)
	if err != nil {
		return nil, err
	}
	if dryRun {
		return res, nil
	}

	updated := &domain.ItineraryDay{TripID: day.TripID, DayNumber: day.DayNumber, Activities: res.OptimizedOrder}
	if err := o.Repo.SaveDay(ctx, updated); err != nil {
		return nil, fmt.Errorf("save optimized day: %w", err)
	}

	run := domain.OptimizationRun{
		ID:                      o.NewID(),
		TripID:                  day.TripID,
		DayNumber:               day.DayNumber,
		Strategy:                res.Strategy,
		OriginalDistanceMeters:  res.OriginalDistanceMeters,
		OptimizedDistanceMeters: res.OptimizedDistanceMeters,
		SwapsPerformed:          res.SwapsPerformed,
		CreatedAt:               o.Now().UTC(),
	}
	if err := o.Repo.RecordRun(ctx, run); err != nil {
		return nil, fmt.Errorf("record optimization run: %w", err)
	}

	log.Printf("req_id=%s trip=%s day=%d run_id=%s %s",
		obs.RequestID(ctx), day.TripID, day.DayNumber, run.ID, DescribeResult(res))
	return res, nil
}

// optimizeCached consults the cache before running OptimizeDay. Cache failures are
// logged and otherwise ignored.
func (o *DayOptimizer) optimizeCached(
	ctx context.Context,
	activities []domain.Activity,
	constraints domain.OptimizationConstraints,
) (*domain.OptimizationResult, error) {
	if err := ValidateDay(activities, constraints); err != nil {
		metrics.Optimizations.WithLabelValues(string(o.Options.Strategy), "invalid").Inc()
		return nil, err
	}

	key, err := Fingerprint(activities, constraints, o.Options)
	if err != nil {
		return nil, err
	}

	if o.Cache != nil {
		cached, ok, err := o.Cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Printf("req_id=%s op=result.cache.get key=%s err=%v", obs.RequestID(ctx), key, err)
		case ok:
			metrics.CacheLookups.WithLabelValues("hit").Inc()
			metrics.Optimizations.WithLabelValues(string(cached.Strategy), "cached").Inc()
			return cached, nil
		default:
			metrics.CacheLookups.WithLabelValues("miss").Inc()
		}
	}

	res, err := OptimizeDay(activities, constraints, o.Options)
	if err != nil {
		outcome := "error"
		if errors.Is(err, domain.ErrInvalidInput) {
			outcome = "invalid"
		}
		metrics.Optimizations.WithLabelValues(string(o.Options.Strategy), outcome).Inc()
		return nil, err
	}

	metrics.Optimizations.WithLabelValues(string(res.Strategy), "ok").Inc()
	metrics.SavingsMeters.WithLabelValues(string(res.Strategy)).Observe(float64(res.SavingsMeters))

	if o.Cache != nil {
		if err := o.Cache.Put(ctx, key, res); err != nil {
			log.Printf("req_id=%s op=result.cache.put key=%s err=%v", obs.RequestID(ctx), key, err)
		}
	}
	return res, nil
}

func (o *DayOptimizer) withDefaults(c domain.OptimizationConstraints) domain.OptimizationConstraints {
	if c.MealWindows == nil && o.MealWindows != nil {
		w := *o.MealWindows
		c.MealWindows = &w
	}
	return c
}

// Fingerprint identifies an optimization input. Equal inputs give equal keys.
func Fingerprint(activities []domain.Activity, constraints domain.OptimizationConstraints, opts Options) (string, error) {
	windows := constraints.Windows()
	payload := struct {
		Activities    []domain.Activity  `json:"activities"`
		Fixed         []string           `json:"fixed"`
		Windows       domain.MealWindows `json:"windows"`
		KeepFirst     bool               `json:"keep_first"`
		KeepLast      bool               `json:"keep_last"`
		Strategy      domain.Strategy    `json:"strategy"`
		DayStart      *domain.ClockTime  `json:"day_start"`
		MaxIterations int                `json:"max_iterations"`
	}{
		Activities:    activities,
		Fixed:         constraints.FixedActivityIDs,
		Windows:       windows,
		KeepFirst:     constraints.KeepFirstActivity,
		KeepLast:      constraints.KeepLastActivity,
		Strategy:      opts.Strategy,
		DayStart:      opts.DayStart,
		MaxIterations: opts.MaxIterations,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
