package weather_test

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/weather"
)

func synthAt(t time.Time) *weather.Synthesizer {
	return weather.NewSynthesizer(clockwork.NewFakeClockAt(t))
}

func TestBulletinShape(t *testing.T) {
	now := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)
	bulletin := synthAt(now).Bulletin("Odisha")

	require.Len(t, bulletin.Forecast, weather.SynthesizedDays)
	for i, day := range bulletin.Forecast {
		assert.Equal(t, now.AddDate(0, 0, i).Format("2006-01-02"), day.Date)
	}
}

func TestBulletinValuesStayInPlausibleBands(t *testing.T) {
	now := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)

	for _, loc := range []string{"Odisha", "Punjab", "Kerala", "India (Central)"} {
		bulletin := synthAt(now).Bulletin(loc)

		cur := bulletin.Current
		assert.GreaterOrEqual(t, cur.Humidity, 60)
		assert.Less(t, cur.Humidity, 80)
		assert.GreaterOrEqual(t, cur.WindSpeed, 10)
		assert.Less(t, cur.WindSpeed, 25)
		assert.GreaterOrEqual(t, cur.Precipitation, 0.0)
		assert.NotEqual(t, "Unknown", cur.WeatherDescription)

		for _, day := range bulletin.Forecast {
			assert.GreaterOrEqual(t, day.Humidity, 55)
			assert.Less(t, day.Humidity, 80)
			assert.GreaterOrEqual(t, day.WindSpeed, 8)
			assert.Less(t, day.WindSpeed, 28)
			assert.GreaterOrEqual(t, day.Precipitation, 0.0)
			assert.Greater(t, day.MaxTemp, day.MinTemp)
			assert.NotEqual(t, "Unknown", day.WeatherDescription)
		}
	}
}

func TestBulletinDeterministicPerLocationAndDay(t *testing.T) {
	now := time.Date(2025, 7, 1, 6, 0, 0, 0, time.UTC)

	first := synthAt(now).Bulletin("Odisha")
	second := synthAt(now.Add(3 * time.Hour)).Bulletin("Odisha")

	// Same location, same calendar date: identical output.
	assert.Equal(t, first, second)

	nextDay := synthAt(now.AddDate(0, 0, 1)).Bulletin("Odisha")
	assert.NotEqual(t, first.Current, nextDay.Current)

	elsewhere := synthAt(now).Bulletin("Punjab")
	assert.NotEqual(t, first.Current, elsewhere.Current)
}

func TestBulletinSeasonalBaseTemperature(t *testing.T) {
	tests := []struct {
		month time.Month
		min   int
		max   int
	}{
		{time.April, 29, 38},    // pre-monsoon base 32
		{time.July, 25, 34},     // monsoon base 28
		{time.December, 19, 28}, // cool season base 22
	}

	for _, tt := range tests {
		now := time.Date(2025, tt.month, 10, 6, 0, 0, 0, time.UTC)
		bulletin := synthAt(now).Bulletin("Odisha")
		assert.GreaterOrEqual(t, bulletin.Current.Temperature, tt.min, "month %s", tt.month)
		assert.LessOrEqual(t, bulletin.Current.Temperature, tt.max, "month %s", tt.month)
	}
}
