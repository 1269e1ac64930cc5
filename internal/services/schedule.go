package services

import (
	"itinerary-route-service/internal/domain"
	"itinerary-route-service/internal/geo"
)

// DefaultDayStart is used when neither the caller nor the first activity names a start time.
var DefaultDayStart = domain.MustParseClock("09:00")

// One stop on a projected timeline.
type ScheduledStop struct {
	ActivityID    string           `json:"activity_id"`
	Start         domain.ClockTime `json:"start"`
	End           domain.ClockTime `json:"end"`
	TravelMeters  int              `json:"travel_meters"`
	TravelMinutes int              `json:"travel_minutes"`
}

// Projected timeline for an ordered day.
//
// TravelMeters and TravelMinutes on a stop describe the leg that arrives at it; the
// first stop never has an inbound leg.
type Projection struct {
	Stops               []ScheduledStop             `json:"stops"`
	StartTimes          map[string]domain.ClockTime `json:"start_times"`
	TotalDistanceMeters int                         `json:"total_distance_meters"`
	TotalTravelMinutes  int                         `json:"total_travel_minutes"`
}

// ResolveDayStart picks the fixed start of the day: an explicit override, else the
// first activity's own start time, else DefaultDayStart.
func ResolveDayStart(activities []domain.Activity, override *domain.ClockTime) domain.ClockTime {
	if override != nil {
		return *override
	}
	if len(activities) > 0 && activities[0].StartTime != nil {
		return *activities[0].StartTime
	}
	return DefaultDayStart
}

// ProjectSchedule walks the order from dayStart, adding each activity's duration and
// the estimated travel to the next stop. Legs with a missing endpoint cost nothing.
func ProjectSchedule(activities []domain.Activity, dayStart domain.ClockTime, est *geo.Estimator) Projection {
	p := Projection{
		Stops:      make([]ScheduledStop, 0, len(activities)),
		StartTimes: make(map[string]domain.ClockTime, len(activities)),
	}

	walkSchedule(activities, dayStart, est, func(i int, start domain.ClockTime, inbound geo.Leg) bool {
		a := activities[i]
		p.Stops = append(p.Stops, ScheduledStop{
			ActivityID:    a.ID,
			Start:         start,
			End:           start.Add(a.DurationMinutes),
			TravelMeters:  inbound.RoadMeters,
			TravelMinutes: inbound.Minutes,
		})
		p.StartTimes[a.ID] = start
		p.TotalDistanceMeters += inbound.RoadMeters
		p.TotalTravelMinutes += inbound.Minutes
		return true
	})

	return p
}

// walkSchedule visits every stop with its projected start and inbound leg until
// visit returns false.
func walkSchedule(
	activities []domain.Activity,
	dayStart domain.ClockTime,
	est *geo.Estimator,
	visit func(i int, start domain.ClockTime, inbound geo.Leg) bool,
) {
	clock := dayStart
	for i := range activities {
		var inbound geo.Leg
		if i > 0 {
			prev := activities[i-1]
			inbound = est.Leg(prev.Coordinates, activities[i].Coordinates)
			clock = clock.Add(prev.DurationMinutes + inbound.Minutes)
		}
		if !visit(i, clock, inbound) {
			return
		}
	}
}

// totalDistance sums road meters over consecutive legs.
func totalDistance(activities []domain.Activity, est *geo.Estimator) int {
	total := 0
	for i := 1; i < len(activities); i++ {
		total += est.Leg(activities[i-1].Coordinates, activities[i].Coordinates).RoadMeters
	}
	return total
}
