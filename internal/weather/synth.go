package weather

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
)

// SynthesizedDays is the forecast length of every synthesized bulletin.
const SynthesizedDays = 7

// Synthesizer produces a structurally complete, seasonally plausible
// substitute bulletin when the upstream provider is unreachable. Output is
// deterministic for a given location and calendar date: the perturbation
// RNG is seeded from both, so repeated calls on the same day agree while
// different days and regions still vary.
type Synthesizer struct {
	clock clockwork.Clock
}

// NewSynthesizer creates a new Synthesizer using the given clock.
func NewSynthesizer(clock clockwork.Clock) *Synthesizer {
	return &Synthesizer{clock: clock}
}

// Bulletin synthesizes current conditions plus a 7-day forecast for the
// named location. Every field stays within a physically plausible band:
// humidity 55-100%, wind 8-43, non-negative precipitation, and weather
// codes drawn from the known description table.
func (s *Synthesizer) Bulletin(locationName string) *Bulletin {
	now := s.clock.Now()
	base := seasonalBaseTemp(now.Month())
	rng := rand.New(rand.NewSource(synthSeed(locationName, now)))

	current := CurrentConditions{
		Temperature:   base + rng.Intn(6) - 3,
		Humidity:      60 + rng.Intn(20),
		WindSpeed:     10 + rng.Intn(15),
		WindDirection: rng.Intn(360),
		UVIndex:       rng.Intn(10),
		Visibility:    8 + rng.Intn(12),
		Pressure:      1010 + rng.Intn(20),
	}
	if rng.Float64() < 0.3 {
		current.Precipitation = roundTenth(rng.Float64() * 5)
	}
	current.WeatherCode = pickCode(rng, 0.7)
	current.WeatherDescription = Describe(current.WeatherCode)

	forecast := make([]ForecastDay, SynthesizedDays)
	for i := range forecast {
		day := ForecastDay{
			Date:                     now.AddDate(0, 0, i).Format("2006-01-02"),
			MaxTemp:                  base + rng.Intn(8) - 2,
			MinTemp:                  base - 8 + rng.Intn(6),
			Humidity:                 55 + rng.Intn(25),
			PrecipitationProbability: rng.Intn(60),
			WindSpeed:                8 + rng.Intn(20),
			UVIndex:                  rng.Intn(10),
		}
		if rng.Float64() < 0.4 {
			day.Precipitation = roundTenth(rng.Float64() * 15)
		}
		day.WeatherCode = pickCode(rng, 0.6)
		day.WeatherDescription = Describe(day.WeatherCode)
		forecast[i] = day
	}

	return &Bulletin{Current: current, Forecast: forecast}
}

// seasonalBaseTemp returns the base temperature for a month: pre-monsoon
// heat March-May, monsoon June-September, the cooler October-February
// stretch, 25 otherwise.
func seasonalBaseTemp(m time.Month) int {
	switch {
	case m >= time.March && m <= time.May:
		return 32
	case m >= time.June && m <= time.September:
		return 28
	case m >= time.October || m <= time.February:
		return 22
	default:
		return 25
	}
}

// pickCode selects a benign weather code: mainly clear or partly cloudy
// with probability clearChance, light rain otherwise.
func pickCode(rng *rand.Rand, clearChance float64) int {
	if rng.Float64() < clearChance {
		if rng.Float64() < 0.5 {
			return 1
		}
		return 2
	}
	return 61
}

func synthSeed(locationName string, now time.Time) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(locationName))))
	_, _ = h.Write([]byte("|"))
	_, _ = h.Write([]byte(now.Format("2006-01-02")))
	return int64(h.Sum64())
}

func roundTenth(f float64) float64 {
	return math.Round(f*10) / 10
}
