package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBudget(t *testing.T) {
	assert.Equal(t, BudgetLow, ParseBudget("low"))
	assert.Equal(t, BudgetHigh, ParseBudget(" HIGH "))
	assert.Equal(t, BudgetMedium, ParseBudget("medium"))
	assert.Equal(t, BudgetMedium, ParseBudget("platinum"))
	assert.Equal(t, BudgetMedium, ParseBudget(""))
}

func TestParsePaceAndActivityCount(t *testing.T) {
	assert.Equal(t, PaceRelaxed, ParsePace("Relaxed"))
	assert.Equal(t, PaceIntense, ParsePace("intense"))
	assert.Equal(t, PaceStandard, ParsePace("leisurely"))

	assert.Equal(t, 3, PaceRelaxed.ActivityCount())
	assert.Equal(t, 4, PaceStandard.ActivityCount())
	assert.Equal(t, 5, PaceIntense.ActivityCount())
}

func TestTripInputsValidate(t *testing.T) {
	valid := TripInputs{
		Destination: "Lisbon",
		StartDate:   "2026-10-12",
		EndDate:     "2026-10-14",
	}
	require.NoError(t, valid.Validate())

	missing := valid
	missing.Destination = "   "
	assert.ErrorIs(t, missing.Validate(), ErrMissingFields)

	missing = valid
	missing.StartDate = ""
	assert.ErrorIs(t, missing.Validate(), ErrMissingFields)

	bad := valid
	bad.EndDate = "2026-10-11"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.StartDate = "Oct 12, 2026"
	assert.Error(t, bad.Validate())
}

func TestTripInputsNormalize(t *testing.T) {
	in := TripInputs{Budget: "deluxe", Pace: "", Travelers: 0}
	in.Normalize()
	assert.Equal(t, BudgetMedium, in.Budget)
	assert.Equal(t, PaceStandard, in.Pace)
	assert.Equal(t, 2, in.Travelers)
}

func TestTripRecordTripDefaults(t *testing.T) {
	rec := TripRecord{
		TripID:      "t-1",
		UserID:      "u-1",
		Destination: "Kyoto",
		StartDate:   "2026-11-01",
		EndDate:     "2026-11-03",
		CreatedAt:   time.Date(2026, 9, 1, 8, 30, 0, 0, time.UTC),
	}

	trip := rec.Trip()
	assert.Equal(t, "Kyoto Adventure", trip.Title)
	assert.Equal(t, 2, trip.Travelers)
	assert.Equal(t, BudgetMedium, trip.Budget)
	assert.Equal(t, PaceStandard, trip.Pace)
	assert.NotNil(t, trip.Interests)
	assert.NotNil(t, trip.Itinerary)
	assert.Equal(t, "2026-09-01T08:30:00Z", trip.CreatedAt)
}
