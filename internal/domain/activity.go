package domain

import (
	"fmt"
	"strings"
)

// Kind of stop in a day. The set is closed: unknown labels parse to CategoryActivity.
type Category string

const (
	CategoryAttraction    Category = "attraction"
	CategoryRestaurant    Category = "restaurant"
	CategoryActivity      Category = "activity"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryCafe          Category = "cafe"
	CategoryBar           Category = "bar"
	CategoryFoodie        Category = "foodie"
	CategoryMarket        Category = "market"
	CategoryShopping      Category = "shopping"
	CategoryCultural      Category = "cultural"
	CategoryMuseum        Category = "museum"
	CategoryLandmark      Category = "landmark"
	CategorySpa           Category = "spa"
	CategoryWellness      Category = "wellness"
	CategoryEntertainment Category = "entertainment"
	CategoryNightlife     Category = "nightlife"
	CategoryNature        Category = "nature"
	CategoryPark          Category = "park"
	CategoryEvent         Category = "event"
)

var knownCategories = map[Category]struct{}{
	CategoryAttraction: {}, CategoryRestaurant: {}, CategoryActivity: {}, CategoryTransport: {},
	CategoryFood: {}, CategoryCafe: {}, CategoryBar: {}, CategoryFoodie: {}, CategoryMarket: {},
	CategoryShopping: {}, CategoryCultural: {}, CategoryMuseum: {}, CategoryLandmark: {},
	CategorySpa: {}, CategoryWellness: {}, CategoryEntertainment: {}, CategoryNightlife: {},
	CategoryNature: {}, CategoryPark: {}, CategoryEvent: {},
}

// ParseCategory normalizes a free-form label into the closed set.
func ParseCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := knownCategories[c]; ok {
		return c
	}
	return CategoryActivity
}

// IsMeal reports whether activities of this category are bound by meal windows.
func (c Category) IsMeal() bool {
	switch c {
	case CategoryRestaurant, CategoryFood, CategoryCafe, CategoryBar, CategoryFoodie:
		return true
	}
	return false
}

func (c *Category) UnmarshalText(b []byte) error {
	*c = ParseCategory(string(b))
	return nil
}

// A single bookable stop in a day.
//
// StartTime is authoritative only for the order the caller supplied; the optimizer
// replaces it with a projected time. Coordinates may be nil when the stop was never
// geocoded.
type Activity struct {
	ID              string       `json:"id" yaml:"id"`
	Name            string       `json:"name,omitempty" yaml:"name,omitempty"`
	Category        Category     `json:"category" yaml:"category"`
	Coordinates     *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	StartTime       *ClockTime   `json:"start_time,omitempty" yaml:"start_time,omitempty"`
	DurationMinutes int          `json:"duration_minutes" yaml:"duration_minutes"`
}

// Validate checks a single activity in isolation.
func (a Activity) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("activity id must be non-empty: %w", ErrInvalidInput)
	}
	if a.DurationMinutes < 0 {
		return fmt.Errorf("activity %q: duration_minutes %d is negative: %w", a.ID, a.DurationMinutes, ErrInvalidInput)
	}
	if a.Coordinates != nil {
		if err := a.Coordinates.Validate(); err != nil {
			return fmt.Errorf("activity %q: %w", a.ID, err)
		}
	}
	return nil
}

// One calendar day of a trip; the unit of optimization.
type ItineraryDay struct {
	TripID     string     `json:"trip_id"`
	DayNumber  int        `json:"day_number"`
	Activities []Activity `json:"activities"`
}

// IDs returns the activity ids in sequence order.
func IDs(activities []Activity) []string {
	ids := make([]string, len(activities))
	for i, a := range activities {
		ids[i] = a.ID
	}
	return ids
}
