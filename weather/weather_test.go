package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditionFor(t *testing.T) {
	cases := map[int]string{
		0:   CondClear,
		2:   CondPartlyCloudy,
		3:   CondPartlyCloudy,
		45:  CondFoggy,
		48:  CondFoggy,
		61:  CondRainy,
		67:  CondRainy,
		71:  CondSnowy,
		80:  CondShowers,
		95:  CondThunderstorms,
		99:  CondThunderstorms,
		100: CondVariable,
		-5:  CondVariable,
	}
	for code, want := range cases {
		assert.Equal(t, want, ConditionFor(code), "code %d", code)
	}
}

func TestNoteFor(t *testing.T) {
	assert.Equal(t, "Perfect weather for outdoor activities!", NoteFor(CondClear, 30))
	assert.Equal(t, "Great day for sightseeing!", NoteFor(CondClear, 18))
	assert.Contains(t, NoteFor(CondRainy, 12), "umbrella")
	assert.Equal(t, "Check local weather for updates!", NoteFor("Hailstorm", 5))
}

func fixedClient(now time.Time) *Client {
	c := NewClient(nil, nil)
	c.now = func() time.Time { return now }
	return c
}

func TestForecastForOutsideWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fixedClient(now)

	// 10 days ahead: gated before any network traffic.
	fc, err := c.ForecastFor(context.Background(), "Lisbon",
		now.AddDate(0, 0, 10), now.AddDate(0, 0, 12))
	require.NoError(t, err)
	assert.Nil(t, fc)

	// 3 days in the past.
	fc, err = c.ForecastFor(context.Background(), "Lisbon",
		now.AddDate(0, 0, -3), now.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Nil(t, fc)
}

func TestForecastForFetchesAndMaps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40.7128", r.URL.Query().Get("latitude"))
		assert.Equal(t, "temperature_2m_max,temperature_2m_min,weathercode", r.URL.Query().Get("daily"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"daily": {
				"time": ["2026-03-02", "2026-03-03"],
				"temperature_2m_max": [14.6, 9.2],
				"temperature_2m_min": [6.4, 2.8],
				"weathercode": [0, 63]
			},
			"daily_units": {"temperature_2m_max": "°C"}
		}`))
	}))
	defer srv.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fixedClient(now)
	c.baseURL = srv.URL

	fc, err := c.ForecastFor(context.Background(), "Lisbon",
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, fc, 2)

	assert.Equal(t, "2026-03-02", fc[0].Date)
	assert.Equal(t, CondClear, fc[0].Condition)
	assert.Equal(t, 15, fc[0].MaxTemp)
	assert.Equal(t, 6, fc[0].MinTemp)
	assert.Equal(t, "°C", fc[0].Unit)

	assert.Equal(t, CondRainy, fc[1].Condition)
	assert.Equal(t, 9, fc[1].MaxTemp)
}

func TestForecastForNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fixedClient(now)
	c.baseURL = srv.URL

	fc, err := c.ForecastFor(context.Background(), "Lisbon",
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 2))
	assert.Error(t, err)
	assert.Nil(t, fc)
}

func TestForecastForUnreachableHost(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := fixedClient(now)
	c.baseURL = "http://127.0.0.1:1"

	fc, err := c.ForecastFor(context.Background(), "Lisbon",
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 2))
	assert.Error(t, err)
	assert.Nil(t, fc)
}

type refusingLocator struct{}

func (refusingLocator) Locate(string) (Coord, bool) { return Coord{}, false }

func TestForecastForLocatorRefusal(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c := NewClient(refusingLocator{}, nil)
	c.now = func() time.Time { return now }

	fc, err := c.ForecastFor(context.Background(), "Atlantis",
		now.AddDate(0, 0, 1), now.AddDate(0, 0, 2))
	require.NoError(t, err)
	assert.Nil(t, fc)
}
