// Package openmeteo implements a weather provider backed by the Open-Meteo
// forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/provider/resilience"
	"github.com/agrisense/agrisense/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "open-meteo"

	// DefaultBaseURL is the Open-Meteo forecast API base URL.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	// DefaultTimezone is the IANA timezone applied to every request.
	DefaultTimezone = "Asia/Kolkata"
)

const (
	currentFields = "temperature_2m,relative_humidity_2m,precipitation,weather_code," +
		"wind_speed_10m,wind_direction_10m,uv_index,visibility,surface_pressure"
	dailyFields = "weather_code,temperature_2m_max,temperature_2m_min,precipitation_sum," +
		"precipitation_probability_max,wind_speed_10m_max,uv_index_max,relative_humidity_2m_max"
)

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the public API).
	BaseURL string

	// Timezone is the IANA timezone for all requests (optional).
	Timezone string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo API client.
type Client struct {
	baseURL    string
	timezone   string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timezone := cfg.Timezone
	if timezone == "" {
		timezone = DefaultTimezone
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		timezone:   timezone,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

type currentResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Humidity      float64 `json:"relative_humidity_2m"`
		Precipitation float64 `json:"precipitation"`
		WeatherCode   int     `json:"weather_code"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WindDirection float64 `json:"wind_direction_10m"`
		UVIndex       float64 `json:"uv_index"`
		Visibility    float64 `json:"visibility"`
		Pressure      float64 `json:"surface_pressure"`
	} `json:"current"`
}

type dailyResponse struct {
	Daily struct {
		Time          []string  `json:"time"`
		WeatherCode   []int     `json:"weather_code"`
		MaxTemp       []float64 `json:"temperature_2m_max"`
		MinTemp       []float64 `json:"temperature_2m_min"`
		Precipitation []float64 `json:"precipitation_sum"`
		PrecipProb    []float64 `json:"precipitation_probability_max"`
		WindSpeed     []float64 `json:"wind_speed_10m_max"`
		UVIndex       []float64 `json:"uv_index_max"`
		Humidity      []float64 `json:"relative_humidity_2m_max"`
	} `json:"daily"`
}

// CurrentConditions fetches and normalizes current weather for a location.
func (c *Client) CurrentConditions(ctx context.Context, lat, lon float64) (*weather.CurrentConditions, error) {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	query.Set("current", currentFields)
	query.Set("timezone", c.timezone)

	var payload currentResponse
	if err := c.get(ctx, query, &payload); err != nil {
		return nil, fmt.Errorf("fetching current conditions: %w", err)
	}

	cur := payload.Current
	code := cur.WeatherCode
	return &weather.CurrentConditions{
		Temperature:        roundInt(cur.Temperature),
		Humidity:           roundInt(cur.Humidity),
		WindSpeed:          roundInt(cur.WindSpeed),
		WindDirection:      roundInt(cur.WindDirection),
		Precipitation:      roundTenth(cur.Precipitation),
		WeatherCode:        code,
		WeatherDescription: weather.Describe(code),
		UVIndex:            roundInt(cur.UVIndex),
		Visibility:         roundInt(cur.Visibility / 1000), // meters to km
		Pressure:           roundInt(cur.Pressure),
	}, nil
}

// DailyForecast fetches and normalizes a daily forecast of the given length.
func (c *Client) DailyForecast(ctx context.Context, lat, lon float64, days int) ([]weather.ForecastDay, error) {
	days = weather.ClampDays(days)

	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	query.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	query.Set("daily", dailyFields)
	query.Set("timezone", c.timezone)
	query.Set("forecast_days", strconv.Itoa(days))

	var payload dailyResponse
	if err := c.get(ctx, query, &payload); err != nil {
		return nil, fmt.Errorf("fetching daily forecast: %w", err)
	}

	daily := payload.Daily
	forecast := make([]weather.ForecastDay, 0, len(daily.Time))
	for i, date := range daily.Time {
		day := weather.ForecastDay{Date: date}
		if i < len(daily.MaxTemp) {
			day.MaxTemp = roundInt(daily.MaxTemp[i])
		}
		if i < len(daily.MinTemp) {
			day.MinTemp = roundInt(daily.MinTemp[i])
		}
		if i < len(daily.Humidity) {
			day.Humidity = roundInt(daily.Humidity[i])
		}
		if i < len(daily.Precipitation) {
			day.Precipitation = roundTenth(daily.Precipitation[i])
		}
		if i < len(daily.PrecipProb) {
			day.PrecipitationProbability = roundInt(daily.PrecipProb[i])
		}
		if i < len(daily.WindSpeed) {
			day.WindSpeed = roundInt(daily.WindSpeed[i])
		}
		if i < len(daily.WeatherCode) {
			day.WeatherCode = daily.WeatherCode[i]
		}
		if i < len(daily.UVIndex) {
			day.UVIndex = roundInt(daily.UVIndex[i])
		}
		day.WeatherDescription = weather.Describe(day.WeatherCode)
		forecast = append(forecast, day)
	}

	return forecast, nil
}

func (c *Client) get(ctx context.Context, query url.Values, out interface{}) error {
	reqURL := c.baseURL + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().
			Int("status", resp.StatusCode).
			Msg("open-meteo returned non-OK status")
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func roundInt(f float64) int {
	return int(math.Round(f))
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
