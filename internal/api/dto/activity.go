package dto

import (
	"fmt"
	"itinerary-route-service/internal/domain"
)

type CoordinatesDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ActivityRequest struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	Coordinates     *CoordinatesDTO `json:"coordinates"`
	StartTime       *string         `json:"start_time"`
	DurationMinutes int             `json:"duration_minutes"`
}

// ToDomain converts the request, normalizing the category. Start times must be HH:MM.
func (a ActivityRequest) ToDomain() (domain.Activity, error) {
	out := domain.Activity{
		ID:              a.ID,
		Name:            a.Name,
		Category:        domain.ParseCategory(a.Category),
		DurationMinutes: a.DurationMinutes,
	}
	if a.Coordinates != nil {
		out.Coordinates = &domain.Coordinates{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng}
	}
	if a.StartTime != nil {
		c, err := domain.ParseClock(*a.StartTime)
		if err != nil {
			return domain.Activity{}, fmt.Errorf("activity %q: start_time: %w", a.ID, err)
		}
		out.StartTime = &c
	}
	return out, nil
}

func ActivitiesToDomain(in []ActivityRequest) ([]domain.Activity, error) {
	out := make([]domain.Activity, 0, len(in))
	for _, a := range in {
		d, err := a.ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

type ActivityResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name,omitempty"`
	Category        string          `json:"category"`
	Coordinates     *CoordinatesDTO `json:"coordinates"`
	StartTime       *string         `json:"start_time"`
	DurationMinutes int             `json:"duration_minutes"`
}

func NewActivityResponse(a domain.Activity) ActivityResponse {
	res := ActivityResponse{
		ID:              a.ID,
		Name:            a.Name,
		Category:        string(a.Category),
		DurationMinutes: a.DurationMinutes,
	}
	if a.Coordinates != nil {
		res.Coordinates = &CoordinatesDTO{Lat: a.Coordinates.Lat, Lng: a.Coordinates.Lng}
	}
	if a.StartTime != nil {
		s := a.StartTime.String()
		res.StartTime = &s
	}
	return res
}

func NewActivityResponses(in []domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(in))
	for _, a := range in {
		out = append(out, NewActivityResponse(a))
	}
	return out
}

type DayResponse struct {
	TripID     string             `json:"trip_id"`
	DayNumber  int                `json:"day_number"`
	Activities []ActivityResponse `json:"activities"`
}

func NewDayResponse(d *domain.ItineraryDay) DayResponse {
	return DayResponse{
		TripID:     d.TripID,
		DayNumber:  d.DayNumber,
		Activities: NewActivityResponses(d.Activities),
	}
}
