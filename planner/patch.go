package planner

import (
	"fmt"
	"slices"

	"voyago/catalog"
	"voyago/models"
)

// ReplaceActivity derives a new trip with one activity swapped out. The
// input trip is left untouched; callers get a deep copy of the itinerary
// so the two values never alias.
func ReplaceActivity(trip *models.Trip, dayNumber int, replacement models.Activity) *models.Trip {
	out := *trip
	out.Interests = slices.Clone(trip.Interests)
	out.Itinerary = make([]models.DayPlan, len(trip.Itinerary))
	for i, day := range trip.Itinerary {
		cp := day
		cp.Activities = slices.Clone(day.Activities)
		if day.Weather != nil {
			w := *day.Weather
			cp.Weather = &w
		}
		if day.DayNumber == dayNumber {
			for j, act := range cp.Activities {
				if act.ID == replacement.ID {
					cp.Activities[j] = replacement
				}
			}
		}
		out.Itinerary[i] = cp
	}
	return &out
}

// Alternatives suggests up to two same-kind catalog templates as swaps for
// the current activity, keeping its time slot and neighborhood so the rest
// of the day is undisturbed.
func Alternatives(current models.Activity, destination string, budget models.BudgetTier) []models.Activity {
	budget = models.ParseBudget(string(budget))

	var alts []models.Activity
	for _, c := range catalog.Categories() {
		for _, tpl := range catalog.TemplatesFor(c) {
			if tpl.Kind != current.Kind || tpl.Name == current.Name {
				continue
			}
			alts = append(alts, models.Activity{
				ID:           fmt.Sprintf("%s-alt-%d", current.ID, len(alts)),
				Name:         tpl.Name,
				Kind:         tpl.Kind,
				Time:         current.Time,
				Duration:     tpl.Duration,
				Description:  describe(tpl.Kind, destination, current.Neighborhood),
				Neighborhood: current.Neighborhood,
				Cost:         tpl.Cost[budget],
				TravelNote:   current.TravelNote,
			})
			if len(alts) == 2 {
				return alts
			}
		}
	}
	return alts
}
