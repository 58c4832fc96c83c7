package agronomy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agrisense/agrisense/internal/agronomy"
	"github.com/agrisense/agrisense/internal/weather"
)

func day(maxTemp, minTemp, humidity int, precipitation float64) weather.ForecastDay {
	return weather.ForecastDay{
		MaxTemp:       maxTemp,
		MinTemp:       minTemp,
		Humidity:      humidity,
		Precipitation: precipitation,
	}
}

func TestAggregate(t *testing.T) {
	forecast := []weather.ForecastDay{
		day(30, 20, 60, 0),
		day(32, 22, 70, 6),
		day(28, 18, 50, 10),
	}

	m := agronomy.Aggregate(forecast)

	assert.InDelta(t, 25.0, m.AvgTemp, 0.001)
	assert.InDelta(t, 16.0, m.TotalRain, 0.001)
	assert.InDelta(t, 60.0, m.AvgHumidity, 0.001)
	assert.Equal(t, 2, m.RainyDays)
}

func TestAggregateTruncatesToWindow(t *testing.T) {
	forecast := make([]weather.ForecastDay, 0, 10)
	for i := 0; i < 10; i++ {
		forecast = append(forecast, day(20, 10, 50, 10))
	}

	m := agronomy.Aggregate(forecast)

	// Only the first 7 days count.
	assert.InDelta(t, 70.0, m.TotalRain, 0.001)
	assert.Equal(t, 7, m.RainyDays)
}

func TestAggregateRainyDayThresholdIsExclusive(t *testing.T) {
	m := agronomy.Aggregate([]weather.ForecastDay{
		day(20, 10, 50, 5.0),
		day(20, 10, 50, 5.1),
	})

	assert.Equal(t, 1, m.RainyDays)
}

func TestAggregateEmptyForecast(t *testing.T) {
	assert.Equal(t, agronomy.Metrics{}, agronomy.Aggregate(nil))
}
