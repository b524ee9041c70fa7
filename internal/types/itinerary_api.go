package types

import "github.com/google/uuid"

// PlanItineraryRequest is the JSON body of the plan endpoint.
type PlanItineraryRequest struct {
	NumberOfDays int    `json:"number_of_days" example:"3"`
	Destination  string `json:"destination" example:"Lisbon"`
	TravelStyle  string `json:"travel_style" example:"balanced"` // relaxed, balanced or packed
	BudgetLevel  string `json:"budget_level" example:"medium"`   // low, medium or high
	Seed         *int64 `json:"seed,omitempty"`                  // fixes the random draw for a reproducible plan
}

// ItineraryResponse is returned by the plan endpoint.
type ItineraryResponse struct {
	PlanID           uuid.UUID       `json:"plan_id"`
	Response         string          `json:"response"`
	Destination      string          `json:"destination"`
	NumberOfDays     int             `json:"number_of_days"`
	TravelStyle      TravelStyle     `json:"travel_style"`
	BudgetLevel      BudgetLevel     `json:"budget_level"`
	Itinerary        []DayAssignment `json:"itinerary"`
	Complete         bool            `json:"complete"`
	Attempts         int             `json:"attempts"`
	ValidationErrors []string        `json:"validation_errors,omitempty"`
	Seed             int64           `json:"seed"`
}

// NewActivityRequest is a single catalog entry in AddActivitiesRequest.
type NewActivityRequest struct {
	Name     string `json:"name" example:"Belem Tower"`
	Category string `json:"type" example:"sightseeing"`
}

// AddActivitiesRequest is the JSON body of the catalog insert endpoint.
type AddActivitiesRequest struct {
	Activities []NewActivityRequest `json:"activities"`
}
