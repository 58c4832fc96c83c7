package weather

import "errors"

// Weather errors.
var (
	ErrUpstreamUnavailable = errors.New("weather upstream unavailable")
)

// Forecast length bounds. Requested day counts are clamped to this range
// before they reach the provider.
const (
	MinForecastDays = 1
	MaxForecastDays = 16
)

// CurrentConditions represents normalized current weather at a location.
// Temperatures, wind and humidity are rounded to whole units, precipitation
// to one decimal, visibility to whole kilometers.
type CurrentConditions struct {
	Temperature        int
	Humidity           int
	WindSpeed          int
	WindDirection      int
	Precipitation      float64
	WeatherCode        int
	WeatherDescription string
	UVIndex            int
	Visibility         int
	Pressure           int
}

// ForecastDay represents one day of a normalized daily forecast.
type ForecastDay struct {
	Date                     string // YYYY-MM-DD
	MaxTemp                  int
	MinTemp                  int
	Humidity                 int
	Precipitation            float64
	PrecipitationProbability int
	WindSpeed                int
	WeatherCode              int
	WeatherDescription       string
	UVIndex                  int
}

// Bulletin bundles current conditions with an ordered, chronological daily
// forecast for a single location.
type Bulletin struct {
	Current  CurrentConditions
	Forecast []ForecastDay
}

// ClampDays bounds a requested forecast length to [MinForecastDays, MaxForecastDays].
func ClampDays(days int) int {
	if days < MinForecastDays {
		return MinForecastDays
	}
	if days > MaxForecastDays {
		return MaxForecastDays
	}
	return days
}
