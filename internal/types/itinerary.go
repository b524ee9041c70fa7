package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks a request that must be rejected before planning starts.
var ErrInvalidInput = errors.New("invalid input")

const (
	MinTripDays = 1
	MaxTripDays = 60

	// RestActivityName is the filler used when a day lacks real activities.
	RestActivityName = "Rest"
)

type TravelStyle string

const (
	TravelStyleRelaxed  TravelStyle = "relaxed"
	TravelStyleBalanced TravelStyle = "balanced"
	TravelStylePacked   TravelStyle = "packed"
)

// ParseTravelStyle accepts only the exact enum spelling.
func ParseTravelStyle(s string) (TravelStyle, error) {
	switch style := TravelStyle(s); style {
	case TravelStyleRelaxed, TravelStyleBalanced, TravelStylePacked:
		return style, nil
	}
	return "", fmt.Errorf("%w: travel style must be one of relaxed, balanced, packed (got %q)", ErrInvalidInput, s)
}

type BudgetLevel string

const (
	BudgetLevelLow    BudgetLevel = "low"
	BudgetLevelMedium BudgetLevel = "medium"
	BudgetLevelHigh   BudgetLevel = "high"
)

func ParseBudgetLevel(s string) (BudgetLevel, error) {
	switch level := BudgetLevel(s); level {
	case BudgetLevelLow, BudgetLevelMedium, BudgetLevelHigh:
		return level, nil
	}
	return "", fmt.Errorf("%w: budget level must be one of low, medium, high (got %q)", ErrInvalidInput, s)
}

// TripParameters is the immutable input of a single planning run.
type TripParameters struct {
	Days        int
	Destination string
	TravelStyle TravelStyle
	BudgetLevel BudgetLevel
}

// NewTripParameters validates raw request fields and builds TripParameters.
// Every failure wraps ErrInvalidInput.
func NewTripParameters(days int, destination, travelStyle, budgetLevel string) (TripParameters, error) {
	style, err := ParseTravelStyle(travelStyle)
	if err != nil {
		return TripParameters{}, err
	}
	budget, err := ParseBudgetLevel(budgetLevel)
	if err != nil {
		return TripParameters{}, err
	}
	trip := TripParameters{
		Days:        days,
		Destination: strings.TrimSpace(destination),
		TravelStyle: style,
		BudgetLevel: budget,
	}
	if err := trip.Validate(); err != nil {
		return TripParameters{}, err
	}
	return trip, nil
}

// Validate checks the day range, destination and enum membership.
func (t TripParameters) Validate() error {
	if t.Days < MinTripDays || t.Days > MaxTripDays {
		return fmt.Errorf("%w: number of days must be between %d and %d (got %d)", ErrInvalidInput, MinTripDays, MaxTripDays, t.Days)
	}
	if len([]rune(strings.TrimSpace(t.Destination))) < 2 {
		return fmt.Errorf("%w: destination must be at least 2 characters", ErrInvalidInput)
	}
	if _, err := ParseTravelStyle(string(t.TravelStyle)); err != nil {
		return err
	}
	if _, err := ParseBudgetLevel(string(t.BudgetLevel)); err != nil {
		return err
	}
	return nil
}

// DaySkeleton is the activity-count envelope of one day.
type DaySkeleton struct {
	Day           int `json:"day"`
	MinActivities int `json:"min_activities"`
	MaxActivities int `json:"max_activities"`
}

// Slot is one of the three fixed daily buckets.
type Slot int

const (
	Morning Slot = iota
	Afternoon
	Evening
)

// SlotOrder is the round-robin placement cycle.
var SlotOrder = [...]Slot{Morning, Afternoon, Evening}

func (s Slot) String() string {
	switch s {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	case Evening:
		return "evening"
	}
	return fmt.Sprintf("slot(%d)", int(s))
}

// DaySlots holds the ordered activities of each slot.
type DaySlots struct {
	Morning   []Activity `json:"morning"`
	Afternoon []Activity `json:"afternoon"`
	Evening   []Activity `json:"evening"`
}

func (s *DaySlots) bucket(slot Slot) *[]Activity {
	switch slot {
	case Morning:
		return &s.Morning
	case Afternoon:
		return &s.Afternoon
	case Evening:
		return &s.Evening
	}
	panic(fmt.Sprintf("types: unknown slot %d", int(slot)))
}

// Add appends a to the end of slot.
func (s *DaySlots) Add(slot Slot, a Activity) {
	b := s.bucket(slot)
	*b = append(*b, a)
}

// PopLast removes the last activity of slot. It reports false when the slot is empty.
func (s *DaySlots) PopLast(slot Slot) bool {
	b := s.bucket(slot)
	if len(*b) == 0 {
		return false
	}
	*b = (*b)[:len(*b)-1]
	return true
}

// Get returns the activities of slot.
func (s *DaySlots) Get(slot Slot) []Activity {
	return *s.bucket(slot)
}

// DayAssignment is the schedule of a single day.
type DayAssignment struct {
	Day   int      `json:"day"`
	Slots DaySlots `json:"slots"`
}

// NewDayAssignment returns a day with three empty, non-nil slots.
func NewDayAssignment(day int) DayAssignment {
	return DayAssignment{
		Day: day,
		Slots: DaySlots{
			Morning:   []Activity{},
			Afternoon: []Activity{},
			Evening:   []Activity{},
		},
	}
}

// Total counts the activities across all slots.
func (d DayAssignment) Total() int {
	return len(d.Slots.Morning) + len(d.Slots.Afternoon) + len(d.Slots.Evening)
}

// Clone returns a deep copy of d.
func (d DayAssignment) Clone() DayAssignment {
	return DayAssignment{
		Day: d.Day,
		Slots: DaySlots{
			Morning:   append([]Activity{}, d.Slots.Morning...),
			Afternoon: append([]Activity{}, d.Slots.Afternoon...),
			Evening:   append([]Activity{}, d.Slots.Evening...),
		},
	}
}

// ValidationReport is the outcome of one validation pass.
type ValidationReport struct {
	Passed bool     `json:"passed"`
	Errors []string `json:"errors"`
}

// PlanResult is what a planning run hands back to its caller.
// When Complete reports false, Itinerary holds the best-effort repaired
// assignment and Report the violations that were never cleared.
type PlanResult struct {
	Skeleton  []DaySkeleton
	Itinerary []DayAssignment
	Report    ValidationReport
	Attempts  int // number of assignment passes run
}

func (r *PlanResult) Complete() bool {
	return r.Report.Passed
}
