package trips

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateResponse struct {
	Success bool        `json:"success"`
	Data    models.Trip `json:"data"`
	Error   string      `json:"error"`
}

func postGenerate(t *testing.T, body string) (*httptest.ResponseRecorder, generateResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/trips/generate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	GenerateTrip(rr, req, nil)

	var resp generateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return rr, resp
}

func TestGenerateTripHandlerRejectsBadJSON(t *testing.T) {
	rr, resp := postGenerate(t, "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGenerateTripHandlerRejectsMissingFields(t *testing.T) {
	rr, resp := postGenerate(t, `{"travelers": 2, "budget": "medium"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "required")
}

func TestGenerateTripHandlerProducesItinerary(t *testing.T) {
	// Dates far enough out that the weather adapter gates before fetching.
	start := time.Now().AddDate(0, 0, 20)
	inputs := models.TripInputs{
		Destination: "Lisbon",
		Travelers:   2,
		StartDate:   start.Format(models.DateLayout),
		EndDate:     start.AddDate(0, 0, 2).Format(models.DateLayout),
		Budget:      models.BudgetMedium,
		Pace:        models.PaceRelaxed,
		Interests:   []string{"culture"},
	}
	body, err := json.Marshal(inputs)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/trips/generate", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	GenerateTrip(rr, req, nil)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp generateResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.TripID)
	assert.Equal(t, "Lisbon Adventure", resp.Data.Title)
	require.Len(t, resp.Data.Itinerary, 3)
	for _, day := range resp.Data.Itinerary {
		assert.Nil(t, day.Weather)
		assert.LessOrEqual(t, len(day.Activities), 3)
	}
}

func TestStoreErrorNamesOperation(t *testing.T) {
	err := &StoreError{Op: "delete", Err: assert.AnError}
	assert.Contains(t, err.Error(), "delete")
	assert.ErrorIs(t, err, assert.AnError)
}
