package weather

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Provider defines the interface for weather data providers.
type Provider interface {
	// CurrentConditions fetches normalized current weather for a location.
	CurrentConditions(ctx context.Context, lat, lon float64) (*CurrentConditions, error)

	// DailyForecast fetches a normalized daily forecast of the given length.
	DailyForecast(ctx context.Context, lat, lon float64, days int) ([]ForecastDay, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service fetches weather bulletins from the configured provider.
type Service struct {
	provider Provider
	logger   zerolog.Logger
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		provider: cfg.Provider,
		logger:   cfg.Logger,
	}
}

// Fetch retrieves a bulletin for the given coordinates. The current and
// daily forecast calls run concurrently; both must succeed, otherwise the
// bulletin is discarded and ErrUpstreamUnavailable is returned. Partial
// results are never used.
func (s *Service) Fetch(ctx context.Context, lat, lon float64, days int) (*Bulletin, error) {
	days = ClampDays(days)

	var (
		current  *CurrentConditions
		forecast []ForecastDay
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.provider.CurrentConditions(gctx, lat, lon)
		if err != nil {
			return err
		}
		current = c
		return nil
	})
	g.Go(func() error {
		f, err := s.provider.DailyForecast(gctx, lat, lon, days)
		if err != nil {
			return err
		}
		forecast = f
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn().
			Err(err).
			Float64("lat", lat).
			Float64("lon", lon).
			Str("provider", s.provider.Name()).
			Msg("weather fetch failed")
		return nil, ErrUpstreamUnavailable
	}

	return &Bulletin{Current: *current, Forecast: forecast}, nil
}
