package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// BudgetTier selects which cost string an activity template reports.
type BudgetTier string

const (
	BudgetLow    BudgetTier = "low"
	BudgetMedium BudgetTier = "medium"
	BudgetHigh   BudgetTier = "high"
)

// ParseBudget normalizes a budget string, falling back to medium.
func ParseBudget(s string) BudgetTier {
	switch BudgetTier(strings.ToLower(strings.TrimSpace(s))) {
	case BudgetLow:
		return BudgetLow
	case BudgetHigh:
		return BudgetHigh
	default:
		return BudgetMedium
	}
}

// Pace controls how many activities are scheduled per day and which
// candidate time slots are offered.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceStandard Pace = "standard"
	PaceIntense  Pace = "intense"
)

// ParsePace normalizes a pace string, falling back to standard.
func ParsePace(s string) Pace {
	switch Pace(strings.ToLower(strings.TrimSpace(s))) {
	case PaceRelaxed:
		return PaceRelaxed
	case PaceIntense:
		return PaceIntense
	default:
		return PaceStandard
	}
}

// ActivityCount is the target number of activities per day for this pace.
func (p Pace) ActivityCount() int {
	switch p {
	case PaceRelaxed:
		return 3
	case PaceIntense:
		return 5
	default:
		return 4
	}
}

// TripInputs is the planning request payload.
type TripInputs struct {
	Destination string     `json:"destination"`
	From        string     `json:"from,omitempty"`
	Travelers   int        `json:"travelers"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Budget      BudgetTier `json:"budget"`
	Pace        Pace       `json:"pace"`
	Interests   []string   `json:"interests"`
}

var ErrMissingFields = errors.New("destination, startDate and endDate are required")

// Normalize fills defaults for the fields validation does not reject.
func (in *TripInputs) Normalize() {
	in.Budget = ParseBudget(string(in.Budget))
	in.Pace = ParsePace(string(in.Pace))
	if in.Travelers <= 0 {
		in.Travelers = 2
	}
}

// Validate checks the required fields and the date range.
func (in *TripInputs) Validate() error {
	if strings.TrimSpace(in.Destination) == "" || in.StartDate == "" || in.EndDate == "" {
		return ErrMissingFields
	}
	start, err := time.Parse(DateLayout, in.StartDate)
	if err != nil {
		return fmt.Errorf("invalid startDate %q: %w", in.StartDate, err)
	}
	end, err := time.Parse(DateLayout, in.EndDate)
	if err != nil {
		return fmt.Errorf("invalid endDate %q: %w", in.EndDate, err)
	}
	if end.Before(start) {
		return errors.New("endDate must not be before startDate")
	}
	return nil
}

// Activity is one scheduled item on a day plan. IDs are day-scoped
// ("dayNumber-slotIndex"); combine with the day number for a global key.
type Activity struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	Kind         string `json:"type" bson:"type"`
	Time         string `json:"time" bson:"time"`
	Duration     string `json:"duration" bson:"duration"`
	Description  string `json:"description" bson:"description"`
	Neighborhood string `json:"neighborhood" bson:"neighborhood"`
	Cost         string `json:"cost" bson:"cost"`
	TravelNote   string `json:"travelNote,omitempty" bson:"travel_note,omitempty"`
}

// WeatherSummary is the per-day forecast digest attached when data exists.
type WeatherSummary struct {
	Condition   string `json:"condition" bson:"condition"`
	Temperature string `json:"temperature" bson:"temperature"`
	Note        string `json:"note" bson:"note"`
}

type DayPlan struct {
	Date       string          `json:"date" bson:"date"`
	DayNumber  int             `json:"dayNumber" bson:"day_number"`
	Weather    *WeatherSummary `json:"weather,omitempty" bson:"weather,omitempty"`
	Activities []Activity      `json:"activities" bson:"activities"`
}

// Trip is a fully synthesized itinerary. Trips are never mutated in place;
// edits derive a new value.
type Trip struct {
	TripID      string     `json:"id" bson:"tripid"`
	Title       string     `json:"title" bson:"title"`
	Destination string     `json:"destination" bson:"destination"`
	From        string     `json:"from,omitempty" bson:"from,omitempty"`
	Travelers   int        `json:"travelers" bson:"travelers"`
	StartDate   string     `json:"startDate" bson:"start_date"`
	EndDate     string     `json:"endDate" bson:"end_date"`
	Budget      BudgetTier `json:"budget" bson:"budget"`
	Pace        Pace       `json:"pace" bson:"pace"`
	Interests   []string   `json:"interests" bson:"interests"`
	Itinerary   []DayPlan  `json:"itinerary" bson:"itinerary"`
	CreatedAt   string     `json:"createdAt" bson:"created_at"`
}
