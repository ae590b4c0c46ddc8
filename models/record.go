package models

import "time"

// TripParams is the parameters blob stored alongside a saved trip row.
type TripParams struct {
	From      string     `json:"from,omitempty" bson:"from,omitempty"`
	Travelers int        `json:"travelers" bson:"travelers"`
	Budget    BudgetTier `json:"budget" bson:"budget"`
	Pace      Pace       `json:"pace" bson:"pace"`
	Interests []string   `json:"interests" bson:"interests"`
	Title     string     `json:"title" bson:"title"`
}

// TripRecord is the persisted row shape, keyed by trip id and owning user.
type TripRecord struct {
	TripID      string     `json:"tripid" bson:"tripid"`
	UserID      string     `json:"user_id" bson:"user_id"`
	Destination string     `json:"destination" bson:"destination"`
	StartDate   string     `json:"start_date" bson:"start_date"`
	EndDate     string     `json:"end_date" bson:"end_date"`
	Params      TripParams `json:"params" bson:"params"`
	Itinerary   []DayPlan  `json:"itinerary" bson:"itinerary"`
	CreatedAt   time.Time  `json:"created_at" bson:"created_at"`
}

// Trip rebuilds the API-facing trip from a stored row, defaulting any
// fields older rows may be missing.
func (r TripRecord) Trip() Trip {
	title := r.Params.Title
	if title == "" {
		title = r.Destination + " Adventure"
	}
	travelers := r.Params.Travelers
	if travelers <= 0 {
		travelers = 2
	}
	interests := r.Params.Interests
	if interests == nil {
		interests = []string{}
	}
	itinerary := r.Itinerary
	if itinerary == nil {
		itinerary = []DayPlan{}
	}
	return Trip{
		TripID:      r.TripID,
		Title:       title,
		Destination: r.Destination,
		From:        r.Params.From,
		Travelers:   travelers,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      ParseBudget(string(r.Params.Budget)),
		Pace:        ParsePace(string(r.Params.Pace)),
		Interests:   interests,
		Itinerary:   itinerary,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
