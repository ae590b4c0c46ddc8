package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const dateLayout = "2006-01-02"

// Forecasts are only useful for near-term trips: at most maxLeadDays ahead
// and at most one day in the past.
const maxLeadDays = 7

const cacheTTL = 2 * time.Hour

// Condition labels derived from Open-Meteo weather codes.
const (
	CondClear         = "Clear"
	CondPartlyCloudy  = "Partly Cloudy"
	CondFoggy         = "Foggy"
	CondRainy         = "Rainy"
	CondSnowy         = "Snowy"
	CondShowers       = "Showers"
	CondThunderstorms = "Thunderstorms"
	CondVariable      = "Variable"
)

// ConditionFor maps a numeric weather code to a coarse condition label.
// Codes outside the documented 0-99 range come back as Variable.
func ConditionFor(code int) string {
	switch {
	case code < 0:
		return CondVariable
	case code == 0:
		return CondClear
	case code <= 3:
		return CondPartlyCloudy
	case code <= 48:
		return CondFoggy
	case code <= 67:
		return CondRainy
	case code <= 77:
		return CondSnowy
	case code <= 82:
		return CondShowers
	case code <= 99:
		return CondThunderstorms
	default:
		return CondVariable
	}
}

// NoteFor renders the advisory note shown next to a day's forecast.
func NoteFor(condition string, maxTemp int) string {
	switch condition {
	case CondClear:
		if maxTemp > 25 {
			return "Perfect weather for outdoor activities!"
		}
		return "Great day for sightseeing!"
	case CondPartlyCloudy:
		return "Nice weather with some clouds - ideal for walking tours!"
	case CondFoggy:
		return "Atmospheric weather - great for cozy indoor activities!"
	case CondRainy:
		return "Pack an umbrella - perfect day for museums and indoor attractions!"
	case CondSnowy:
		return "Bundle up! Great weather for winter activities and warm cafes!"
	case CondShowers:
		return "Light rain expected - indoor activities recommended!"
	case CondThunderstorms:
		return "Stay indoors - perfect day for shopping and cultural sites!"
	case CondVariable:
		return "Weather may change - pack layers and stay flexible!"
	default:
		return "Check local weather for updates!"
	}
}

// Coord is a latitude/longitude pair.
type Coord struct {
	Lat float64
	Lon float64
}

// Locator resolves a destination name to coordinates. Real geocoding is out
// of scope; implementations may refuse a destination by returning false.
type Locator interface {
	Locate(destination string) (Coord, bool)
}

// StaticLocator answers every destination with one fixed coordinate.
type StaticLocator struct {
	Coord Coord
}

func (l StaticLocator) Locate(string) (Coord, bool) {
	return l.Coord, true
}

// DefaultLocator pins all forecasts to a reference location until a real
// geocoder is plugged in.
func DefaultLocator() Locator {
	return StaticLocator{Coord: Coord{Lat: 40.7128, Lon: -74.0060}}
}

// DayForecast is one day of the fetched forecast.
type DayForecast struct {
	Date      string `json:"date"`
	Condition string `json:"condition"`
	MinTemp   int    `json:"minTemp"`
	MaxTemp   int    `json:"maxTemp"`
	Unit      string `json:"unit"`
}

// Client fetches short-range daily forecasts from Open-Meteo, with an
// optional Redis cache in front of the API.
type Client struct {
	httpc   *http.Client
	locator Locator
	cache   *redis.Client
	baseURL string
	now     func() time.Time
}

// NewClient builds a forecast client. locator may be nil for the default
// fixed-location resolver, cache may be nil to skip caching.
func NewClient(locator Locator, cache *redis.Client) *Client {
	if locator == nil {
		locator = DefaultLocator()
	}
	return &Client{
		httpc:   &http.Client{Timeout: 10 * time.Second},
		locator: locator,
		cache:   cache,
		baseURL: "https://api.open-meteo.com/v1/forecast",
		now:     time.Now,
	}
}

type openMeteoResponse struct {
	Daily struct {
		Time           []string  `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		WeatherCode    []int     `json:"weathercode"`
	} `json:"daily"`
	DailyUnits struct {
		TemperatureMax string `json:"temperature_2m_max"`
	} `json:"daily_units"`
}

// ForecastFor returns one record per day of the range, or nil when the
// start date falls outside the supported window. Transport and status
// failures are returned as errors; callers absorb them as "no data".
func (c *Client) ForecastFor(ctx context.Context, destination string, start, end time.Time) ([]DayForecast, error) {
	lead := math.Ceil(start.Sub(c.now()).Hours() / 24)
	if lead > maxLeadDays || lead < -1 {
		return nil, nil
	}

	coord, ok := c.locator.Locate(destination)
	if !ok {
		return nil, nil
	}

	key := fmt.Sprintf("weather:%.4f:%.4f:%s:%s",
		coord.Lat, coord.Lon, start.Format(dateLayout), end.Format(dateLayout))
	if c.cache != nil {
		if val, err := c.cache.Get(ctx, key).Result(); err == nil && val != "" {
			var cached []DayForecast
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return cached, nil
			}
		}
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", coord.Lat))
	q.Set("longitude", fmt.Sprintf("%.4f", coord.Lon))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode")
	q.Set("start_date", start.Format(dateLayout))
	q.Set("end_date", end.Format(dateLayout))
	q.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather fetch: unexpected status %d", resp.StatusCode)
	}

	var payload openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("weather decode: %w", err)
	}

	out := make([]DayForecast, 0, len(payload.Daily.Time))
	for i, date := range payload.Daily.Time {
		fc := DayForecast{Date: date, Condition: CondVariable, Unit: payload.DailyUnits.TemperatureMax}
		if i < len(payload.Daily.WeatherCode) {
			fc.Condition = ConditionFor(payload.Daily.WeatherCode[i])
		}
		if i < len(payload.Daily.TemperatureMax) {
			fc.MaxTemp = int(math.Round(payload.Daily.TemperatureMax[i]))
		}
		if i < len(payload.Daily.TemperatureMin) {
			fc.MinTemp = int(math.Round(payload.Daily.TemperatureMin[i]))
		}
		out = append(out, fc)
	}

	if c.cache != nil {
		if data, err := json.Marshal(out); err == nil {
			_ = c.cache.Set(ctx, key, data, cacheTTL).Err()
		}
	}
	return out, nil
}
