// Package agronomy derives categorical farming guidance and hazard alerts
// from weather data. Classification and alert generation are pure functions:
// identical inputs always produce identical outputs.
package agronomy

import "github.com/agrisense/agrisense/internal/weather"

// Aggregation windows. These are load-bearing thresholds: metrics always
// summarize the leading MetricsWindowDays of a forecast, and alerts only
// inspect the leading AlertWindowDays.
const (
	MetricsWindowDays = 7
	AlertWindowDays   = 3

	// RainyDayThresholdMM is the daily precipitation above which a day
	// counts as rainy.
	RainyDayThresholdMM = 5.0
)

// Metrics summarizes a forecast window. Derived per request, never stored.
type Metrics struct {
	AvgTemp     float64
	TotalRain   float64
	AvgHumidity float64
	RainyDays   int
}

// Aggregate reduces a forecast to summary metrics over its first
// MetricsWindowDays entries. Shorter forecasts use every entry.
func Aggregate(forecast []weather.ForecastDay) Metrics {
	window := forecast
	if len(window) > MetricsWindowDays {
		window = window[:MetricsWindowDays]
	}
	if len(window) == 0 {
		return Metrics{}
	}

	var m Metrics
	for _, day := range window {
		m.AvgTemp += float64(day.MaxTemp+day.MinTemp) / 2
		m.TotalRain += day.Precipitation
		m.AvgHumidity += float64(day.Humidity)
		if day.Precipitation > RainyDayThresholdMM {
			m.RainyDays++
		}
	}
	n := float64(len(window))
	m.AvgTemp /= n
	m.AvgHumidity /= n
	return m
}
