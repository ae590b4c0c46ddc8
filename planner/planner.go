package planner

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"voyago/catalog"
	"voyago/models"
	"voyago/weather"

	"github.com/google/uuid"
)

// ForecastProvider supplies the optional short-range forecast for a trip.
type ForecastProvider interface {
	ForecastFor(ctx context.Context, destination string, start, end time.Time) ([]weather.DayForecast, error)
}

// Planner synthesizes itineraries. All randomness goes through the injected
// source so tests can pin selection with a fixed seed.
type Planner struct {
	rng       *rand.Rand
	forecasts ForecastProvider
}

// New builds a planner. rng may be nil for a time-seeded source, forecasts
// may be nil to plan without weather.
func New(rng *rand.Rand, forecasts ForecastProvider) *Planner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Planner{rng: rng, forecasts: forecasts}
}

var travelNotes = []string{
	"Walking distance (5-10 minutes)",
	"Walking distance (10-15 minutes)",
	"Short walk (15-20 minutes)",
	"Public transport recommended (15-20 minutes)",
	"Public transport recommended (20-30 minutes)",
	"Taxi/rideshare suggested (10-15 minutes)",
	"Taxi/rideshare suggested (15-25 minutes)",
	"Metro/subway (20-25 minutes)",
	"Bus route available (25-35 minutes)",
}

// During Rainy or Thunderstorms days the pool narrows to these kinds.
var indoorKinds = map[string]bool{
	"Culture":  true,
	"Shopping": true,
	"Food":     true,
}

// GenerateTrip synthesizes a full multi-day itinerary from the inputs. A
// valid request always yields a trip; missing weather data only degrades
// the result, it never fails the call.
func (p *Planner) GenerateTrip(ctx context.Context, in models.TripInputs) (*models.Trip, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	start, _ := time.Parse(models.DateLayout, in.StartDate)
	end, _ := time.Parse(models.DateLayout, in.EndDate)
	days := int(end.Sub(start).Hours()/24) + 1

	var forecast []weather.DayForecast
	if p.forecasts != nil {
		fc, err := p.forecasts.ForecastFor(ctx, in.Destination, start, end)
		if err != nil {
			log.Printf("weather lookup failed, planning without forecast: %v", err)
		} else {
			forecast = fc
		}
	}

	itinerary := make([]models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		var fc *weather.DayForecast
		if i < len(forecast) {
			fc = &forecast[i]
		}
		day := models.DayPlan{
			Date:       start.AddDate(0, 0, i).Format(models.DateLayout),
			DayNumber:  i + 1,
			Activities: p.dayActivities(in, i+1, fc),
		}
		if fc != nil {
			day.Weather = &models.WeatherSummary{
				Condition:   fc.Condition,
				Temperature: fmt.Sprintf("%d°-%d°%s", fc.MinTemp, fc.MaxTemp, fc.Unit),
				Note:        weather.NoteFor(fc.Condition, fc.MaxTemp),
			}
		}
		itinerary = append(itinerary, day)
	}

	title := in.Destination + " Adventure"
	if in.From != "" {
		title = in.From + " to " + in.Destination + " Adventure"
	}

	return &models.Trip{
		TripID:      uuid.NewString(),
		Title:       title,
		Destination: in.Destination,
		From:        in.From,
		Travelers:   in.Travelers,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Budget:      in.Budget,
		Pace:        in.Pace,
		Interests:   in.Interests,
		Itinerary:   itinerary,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// templatePool unions the templates of the recognized interests. Unknown
// tags contribute nothing; an empty pool falls back to culture plus nature.
func templatePool(interests []string) []catalog.ActivityTemplate {
	var pool []catalog.ActivityTemplate
	for _, tag := range interests {
		if c, ok := catalog.ParseCategory(tag); ok {
			pool = append(pool, catalog.TemplatesFor(c)...)
		}
	}
	if len(pool) == 0 {
		pool = append(pool, catalog.TemplatesFor(catalog.Culture)...)
		pool = append(pool, catalog.TemplatesFor(catalog.Nature)...)
	}
	return pool
}

func (p *Planner) dayActivities(in models.TripInputs, dayNumber int, fc *weather.DayForecast) []models.Activity {
	pool := templatePool(in.Interests)

	if fc != nil && (fc.Condition == weather.CondRainy || fc.Condition == weather.CondThunderstorms) {
		indoor := make([]catalog.ActivityTemplate, 0, len(pool))
		for _, tpl := range pool {
			if indoorKinds[tpl.Kind] {
				indoor = append(indoor, tpl)
			}
		}
		// Never let weather filtering empty the pool.
		if len(indoor) > 0 {
			pool = indoor
		}
	}

	target := in.Pace.ActivityCount()
	activities := make([]models.Activity, 0, target)
	for i := 0; i < target; i++ {
		tpl := pool[p.rng.Intn(len(pool))]
		slots := SlotsFor(in.Pace, tpl.OpenHours)
		if len(slots) == 0 {
			continue
		}
		slot := slots[min(i, len(slots)-1)]
		hood := tpl.Neighborhoods[p.rng.Intn(len(tpl.Neighborhoods))]

		act := models.Activity{
			ID:           fmt.Sprintf("%d-%d", dayNumber, i+1),
			Name:         tpl.Name,
			Kind:         tpl.Kind,
			Time:         FormatClock(slot),
			Duration:     tpl.Duration,
			Description:  describe(tpl.Kind, in.Destination, hood),
			Neighborhood: hood,
			Cost:         tpl.Cost[in.Budget],
		}
		if i > 0 {
			act.TravelNote = travelNotes[p.rng.Intn(len(travelNotes))]
		}
		activities = append(activities, act)
	}
	return activities
}

func describe(kind, destination, neighborhood string) string {
	return fmt.Sprintf("Experience authentic %s in %s's %s",
		strings.ToLower(kind), destination, neighborhood)
}
