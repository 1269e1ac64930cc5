// Package geo estimates distances and travel times between activity coordinates.
//
// Everything here is derived from straight-line geometry: a great-circle distance,
// a distance-banded detour factor toward a realistic road or foot path, and a
// distance-banded average speed. No routing service is consulted.
package geo

import (
	"itinerary-route-service/internal/domain"
	"math"

	"github.com/golang/geo/s2"
)

const (
	EarthRadiusKm = 6371.0
	EarthRadiusM  = 6_371_000.0

	// Straight-line distance under which a leg is walked when no mode is given.
	WalkingThresholdMeters = 1200.0

	WalkingSpeedKmh = 4.8
)

// Unit selects the Earth radius used by HaversineDistance.
type Unit int

const (
	Kilometers Unit = iota
	Meters
)

type TravelMode string

const (
	ModeAuto    TravelMode = ""
	ModeWalking TravelMode = "WALKING"
	ModeDriving TravelMode = "DRIVING"
)

// HaversineDistance returns the great-circle distance between a and b.
// Invalid coordinates propagate as NaN.
func HaversineDistance(a, b domain.Coordinates, unit Unit) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lng).Distance(s2.LatLngFromDegrees(b.Lat, b.Lng))

	radius := EarthRadiusKm
	if unit == Meters {
		radius = EarthRadiusM
	}
	return angle.Radians() * radius
}

// EstimateRoadDistance inflates a straight-line distance by a detour factor
// that grows with distance, rounded to the nearest whole unit.
//
//	< 500        x1.20
//	500 - 2000   x1.30
//	2000 - 5000  x1.35
//	>= 5000      x1.40
func EstimateRoadDistance(straightLine float64) float64 {
	var factor float64
	switch {
	case straightLine < 500:
		factor = 1.2
	case straightLine < 2000:
		factor = 1.3
	case straightLine < 5000:
		factor = 1.35
	default:
		factor = 1.4
	}
	return math.Round(straightLine * factor)
}

// AverageSpeed returns km/h for the mode. Driving slows down on short urban hops.
func AverageSpeed(mode TravelMode, distanceMeters float64) float64 {
	if mode == ModeWalking {
		return WalkingSpeedKmh
	}

	switch {
	case distanceMeters < 2000:
		return 18
	case distanceMeters < 5000:
		return 22
	case distanceMeters < 10000:
		return 28
	default:
		return 35
	}
}

// ClassifyMode picks walking for short straight-line hops and driving otherwise.
func ClassifyMode(straightLineMeters float64) TravelMode {
	if straightLineMeters < WalkingThresholdMeters {
		return ModeWalking
	}
	return ModeDriving
}

// TravelTime returns whole minutes from origin to destination. ModeAuto lets
// the straight-line distance choose the mode.
func TravelTime(origin, destination domain.Coordinates, mode TravelMode) int {
	return estimateLeg(origin, destination, mode).Minutes
}

// Leg is one estimated hop between two stops.
type Leg struct {
	StraightMeters float64
	RoadMeters     int
	Minutes        int
	Mode           TravelMode
}

func estimateLeg(origin, destination domain.Coordinates, mode TravelMode) Leg {
	straight := HaversineDistance(origin, destination, Meters)
	road := EstimateRoadDistance(straight)

	if mode == ModeAuto {
		mode = ClassifyMode(straight)
	}
	speed := AverageSpeed(mode, road)

	// (meters / 1000) / (km/h) * 60 = minutes
	minutes := math.Round(road / 1000 / speed * 60)

	return Leg{
		StraightMeters: straight,
		RoadMeters:     int(road),
		Minutes:        int(minutes),
		Mode:           mode,
	}
}
