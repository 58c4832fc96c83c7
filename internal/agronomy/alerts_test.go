package agronomy_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/agronomy"
	"github.com/agrisense/agrisense/internal/weather"
)

var alertTestTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func newAlertGenerator() *agronomy.AlertGenerator {
	return agronomy.NewAlertGenerator(clockwork.NewFakeClockAt(alertTestTime))
}

func TestGenerateNoHazards(t *testing.T) {
	g := newAlertGenerator()

	alerts := g.Generate(weather.CurrentConditions{Temperature: 28, WindSpeed: 10}, nil)

	assert.Empty(t, alerts)
	assert.NotNil(t, alerts, "no hazards must encode as an empty list")
}

func TestGenerateHeatWave(t *testing.T) {
	g := newAlertGenerator()

	alerts := g.Generate(weather.CurrentConditions{Temperature: 41}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, agronomy.AlertHeatWave, alerts[0].Type)
	assert.Equal(t, agronomy.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, alertTestTime.Add(24*time.Hour).Format(time.RFC3339), alerts[0].ValidUntil)
}

func TestGenerateHeatWaveThresholdIsExclusive(t *testing.T) {
	g := newAlertGenerator()

	assert.Empty(t, g.Generate(weather.CurrentConditions{Temperature: 39}, nil))
	assert.Empty(t, g.Generate(weather.CurrentConditions{Temperature: 40}, nil))
	assert.Len(t, g.Generate(weather.CurrentConditions{Temperature: 41}, nil), 1)
}

func TestGenerateColdWave(t *testing.T) {
	g := newAlertGenerator()

	alerts := g.Generate(weather.CurrentConditions{Temperature: 2}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, agronomy.AlertColdWave, alerts[0].Type)
	assert.Equal(t, agronomy.SeverityHigh, alerts[0].Severity)
}

func TestGenerateHeavyRainfallValidUntilLastQualifyingDay(t *testing.T) {
	g := newAlertGenerator()
	forecast := []weather.ForecastDay{
		{Date: "2025-06-15", Precipitation: 60},
		{Date: "2025-06-16", Precipitation: 10},
		{Date: "2025-06-17", Precipitation: 75},
		{Date: "2025-06-18", Precipitation: 90}, // beyond the alert window
	}

	alerts := g.Generate(weather.CurrentConditions{Temperature: 28}, forecast)

	require.Len(t, alerts, 1)
	assert.Equal(t, agronomy.AlertHeavyRainfall, alerts[0].Type)
	assert.Equal(t, agronomy.SeverityMedium, alerts[0].Severity)
	assert.Equal(t, "2025-06-17", alerts[0].ValidUntil)
}

func TestGenerateStrongWinds(t *testing.T) {
	g := newAlertGenerator()

	alerts := g.Generate(weather.CurrentConditions{Temperature: 28, WindSpeed: 55}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, agronomy.AlertStrongWinds, alerts[0].Type)
	assert.Equal(t, alertTestTime.Add(12*time.Hour).Format(time.RFC3339), alerts[0].ValidUntil)
}

func TestGenerateHighUV(t *testing.T) {
	g := newAlertGenerator()

	alerts := g.Generate(weather.CurrentConditions{Temperature: 28, UVIndex: 9}, nil)

	require.Len(t, alerts, 1)
	assert.Equal(t, agronomy.AlertHighUV, alerts[0].Type)
	assert.Equal(t, agronomy.SeverityLow, alerts[0].Severity)
	assert.Equal(t, alertTestTime.Add(8*time.Hour).Format(time.RFC3339), alerts[0].ValidUntil)
}

func TestGenerateMultipleHazards(t *testing.T) {
	g := newAlertGenerator()
	current := weather.CurrentConditions{Temperature: 42, WindSpeed: 60, UVIndex: 10}
	forecast := []weather.ForecastDay{{Date: "2025-06-15", Precipitation: 80}}

	alerts := g.Generate(current, forecast)

	require.Len(t, alerts, 4)
	types := make([]string, 0, len(alerts))
	for _, a := range alerts {
		types = append(types, a.Type)
	}
	assert.ElementsMatch(t, []string{
		agronomy.AlertHeatWave,
		agronomy.AlertHeavyRainfall,
		agronomy.AlertStrongWinds,
		agronomy.AlertHighUV,
	}, types)
}

func TestGenerateHeatAndColdAreExclusive(t *testing.T) {
	g := newAlertGenerator()

	// A single temperature can only trip one of the pair.
	for _, temp := range []int{-10, 0, 25, 45} {
		alerts := g.Generate(weather.CurrentConditions{Temperature: temp}, nil)
		heatOrCold := 0
		for _, a := range alerts {
			if a.Type == agronomy.AlertHeatWave || a.Type == agronomy.AlertColdWave {
				heatOrCold++
			}
		}
		assert.LessOrEqual(t, heatOrCold, 1)
	}
}
