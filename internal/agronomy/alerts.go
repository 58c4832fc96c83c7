package agronomy

import (
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/agrisense/agrisense/internal/weather"
)

// Alert severities.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// Alert types.
const (
	AlertHeatWave      = "Heat Wave"
	AlertColdWave      = "Cold Wave"
	AlertHeavyRainfall = "Heavy Rainfall"
	AlertStrongWinds   = "Strong Winds"
	AlertHighUV        = "High UV Index"
)

// Hazard thresholds.
const (
	heatWaveTempC        = 40
	coldWaveTempC        = 5
	heavyRainfallMM      = 50.0
	strongWindSpeed      = 50
	highUVIndexThreshold = 8
)

// Alert is a time-bounded hazard warning. ValidUntil holds either an
// RFC 3339 timestamp or a forecast date, depending on the hazard.
type Alert struct {
	Type       string
	Severity   string
	Message    string
	ValidUntil string
}

// AlertGenerator derives hazard alerts from current conditions and the
// near-term forecast. The injected clock stamps alert expiry times.
type AlertGenerator struct {
	clock clockwork.Clock
}

// NewAlertGenerator creates a new AlertGenerator.
func NewAlertGenerator(clock clockwork.Clock) *AlertGenerator {
	return &AlertGenerator{clock: clock}
}

// Generate returns zero or more alerts for the given conditions. Only the
// first AlertWindowDays forecast entries are inspected. Rules other than
// the heat/cold pair are non-exclusive; several alerts may fire at once.
func (g *AlertGenerator) Generate(current weather.CurrentConditions, forecast []weather.ForecastDay) []Alert {
	window := forecast
	if len(window) > AlertWindowDays {
		window = window[:AlertWindowDays]
	}

	now := g.clock.Now()
	alerts := []Alert{}

	// Heat and cold wave are mutually exclusive.
	switch {
	case current.Temperature > heatWaveTempC:
		alerts = append(alerts, Alert{
			Type:       AlertHeatWave,
			Severity:   SeverityHigh,
			Message:    "Extreme heat conditions. Provide shade for crops and increase irrigation.",
			ValidUntil: now.Add(24 * time.Hour).Format(time.RFC3339),
		})
	case current.Temperature < coldWaveTempC:
		alerts = append(alerts, Alert{
			Type:       AlertColdWave,
			Severity:   SeverityHigh,
			Message:    "Very low temperatures. Protect sensitive crops from frost damage.",
			ValidUntil: now.Add(24 * time.Hour).Format(time.RFC3339),
		})
	}

	// Heavy rainfall is valid until the last qualifying day in the window.
	lastHeavyRainDate := ""
	for _, day := range window {
		if day.Precipitation > heavyRainfallMM {
			lastHeavyRainDate = day.Date
		}
	}
	if lastHeavyRainDate != "" {
		alerts = append(alerts, Alert{
			Type:       AlertHeavyRainfall,
			Severity:   SeverityMedium,
			Message:    "Heavy rainfall expected. Ensure proper drainage and postpone spraying operations.",
			ValidUntil: lastHeavyRainDate,
		})
	}

	if current.WindSpeed > strongWindSpeed {
		alerts = append(alerts, Alert{
			Type:       AlertStrongWinds,
			Severity:   SeverityMedium,
			Message:    "Strong winds may damage crops. Secure equipment and provide support to tall plants.",
			ValidUntil: now.Add(12 * time.Hour).Format(time.RFC3339),
		})
	}

	if current.UVIndex > highUVIndexThreshold {
		alerts = append(alerts, Alert{
			Type:       AlertHighUV,
			Severity:   SeverityLow,
			Message:    "Very high UV levels. Consider protective measures for outdoor farm work.",
			ValidUntil: now.Add(8 * time.Hour).Format(time.RFC3339),
		})
	}

	return alerts
}
