// Package handler provides HTTP handlers for the AgriSense API.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/agronomy"
	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/api/response"
	"github.com/agrisense/agrisense/internal/location"
	"github.com/agrisense/agrisense/internal/tiered"
	"github.com/agrisense/agrisense/internal/weather"
)

// DefaultForecastDays is the forecast length when the caller does not ask
// for one.
const DefaultForecastDays = 7

// WeatherHandler handles the weather advisory endpoint.
type WeatherHandler struct {
	locations *location.Registry
	weather   *weather.Service
	synth     *weather.Synthesizer
	alerts    *agronomy.AlertGenerator
	clock     clockwork.Clock
	logger    zerolog.Logger
}

// WeatherHandlerConfig holds dependencies for the weather handler.
type WeatherHandlerConfig struct {
	Locations *location.Registry
	Weather   *weather.Service
	Synth     *weather.Synthesizer
	Alerts    *agronomy.AlertGenerator
	Clock     clockwork.Clock
	Logger    zerolog.Logger
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(cfg WeatherHandlerConfig) *WeatherHandler {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &WeatherHandler{
		locations: cfg.Locations,
		weather:   cfg.Weather,
		synth:     cfg.Synth,
		alerts:    cfg.Alerts,
		clock:     clock,
		logger:    cfg.Logger,
	}
}

// Get handles GET /v1/weather - weather advisory by query parameters.
func (h *WeatherHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	days := DefaultForecastDays
	if v := q.Get("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			days = n
		}
	}
	includeAlerts := q.Get("includeAlerts") == "true"

	envelope := h.advise(r.Context(), q.Get("location"), days, includeAlerts)
	response.JSON(w, r, http.StatusOK, envelope)
}

// Post handles POST /v1/weather - weather advisory by JSON body.
func (h *WeatherHandler) Post(w http.ResponseWriter, r *http.Request) {
	var input models.WeatherRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}
	if input.Location == "" {
		response.BadRequest(w, r, "Location is required")
		return
	}

	days := input.Days
	if days == 0 {
		days = DefaultForecastDays
	}

	envelope := h.advise(r.Context(), input.Location, days, input.IncludeAlerts)
	envelope.RequestedDays = days
	envelope.CropType = input.CropType
	if envelope.CropType == "" {
		envelope.CropType = "general"
	}
	response.JSON(w, r, http.StatusOK, envelope)
}

// advise runs the full pipeline: resolve the region, fetch (or synthesize)
// the bulletin, aggregate, classify and generate alerts. Upstream failure
// degrades to the fallback tier; it never surfaces as an error status.
func (h *WeatherHandler) advise(ctx context.Context, locationQuery string, days int, includeAlerts bool) models.WeatherEnvelope {
	coords := h.locations.Resolve(locationQuery)
	days = weather.ClampDays(days)

	chain := tiered.Chain[*weather.Bulletin]{
		Name:   "weather",
		Logger: h.logger,
		Primary: func(ctx context.Context) (*weather.Bulletin, error) {
			return h.weather.Fetch(ctx, coords.Lat, coords.Lon, days)
		},
		Fallback: func() *weather.Bulletin {
			return h.synth.Bulletin(coords.DisplayName)
		},
	}
	result := chain.Lookup(ctx)
	bulletin := result.Value

	data := models.WeatherData{
		Current:  models.FromCurrentConditions(bulletin.Current),
		Forecast: models.FromForecast(bulletin.Forecast),
		Alerts:   []models.Alert{},
	}

	if result.Source == tiered.SourceFallback {
		// Synthesized data carries a fixed neutral advisory and no alerts.
		data.Agricultural = models.FromAdvisory(agronomy.NeutralAdvisory())
		return models.WeatherEnvelope{
			Success:  false,
			Error:    "Weather service temporarily unavailable",
			Location: coords.DisplayName,
			Data:     data,
			Source:   string(result.Source),
		}
	}

	metrics := agronomy.Aggregate(bulletin.Forecast)
	data.Agricultural = models.FromAdvisory(agronomy.Classify(metrics, bulletin.Current))
	if includeAlerts {
		data.Alerts = models.FromAlerts(h.alerts.Generate(bulletin.Current, bulletin.Forecast))
	}

	return models.WeatherEnvelope{
		Success:     true,
		Location:    coords.DisplayName,
		Coordinates: &models.LatLon{Lat: coords.Lat, Lon: coords.Lon},
		Data:        data,
		LastUpdated: h.clock.Now().UTC().Format(time.RFC3339),
		Source:      string(result.Source),
	}
}
