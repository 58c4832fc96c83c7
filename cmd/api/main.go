// Package main provides the entrypoint for the AgriSense API server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/agronomy"
	"github.com/agrisense/agrisense/internal/api"
	"github.com/agrisense/agrisense/internal/api/handler"
	"github.com/agrisense/agrisense/internal/api/middleware"
	"github.com/agrisense/agrisense/internal/cropyield"
	"github.com/agrisense/agrisense/internal/cropyield/hosted"
	"github.com/agrisense/agrisense/internal/inference"
	"github.com/agrisense/agrisense/internal/location"
	"github.com/agrisense/agrisense/internal/price"
	"github.com/agrisense/agrisense/internal/price/agmark"
	"github.com/agrisense/agrisense/internal/provider/resilience"
	"github.com/agrisense/agrisense/internal/telemetry"
	"github.com/agrisense/agrisense/internal/weather"
	"github.com/agrisense/agrisense/internal/weather/openmeteo"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	const serviceName = "agrisense-api"

	// Setup structured logging
	log := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Msg("starting AgriSense API")

	// Get configuration from environment
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	otlpEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otlpEndpoint == "" {
		otlpEndpoint = "localhost:4317"
	}

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	telemetryEnabled := os.Getenv("OTEL_ENABLED") == "true"

	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: Version,
		Environment:    env,
		OTLPEndpoint:   otlpEndpoint,
		Enabled:        telemetryEnabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if telemetryEnabled {
		log.Info().
			Str("otlp_endpoint", otlpEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	clock := clockwork.NewRealClock()
	locations := location.NewRegistry()
	providers := resilience.GlobalRegistry

	// Initialize the weather provider and service
	weatherHTTP := resilience.NewClient(resilience.DefaultClientConfig(openmeteo.ProviderName))
	providers.Register(openmeteo.ProviderName, weatherHTTP)
	weatherProvider := openmeteo.NewClient(openmeteo.ClientConfig{
		BaseURL:    os.Getenv("OPEN_METEO_BASE_URL"),
		HTTPClient: weatherHTTP,
		Logger:     log,
	})
	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: weatherProvider,
		Logger:   log,
	})
	log.Info().Str("provider", weatherProvider.Name()).Msg("weather service initialized")

	// Initialize the generative estimator (optional, needs an API key)
	var generator inference.Generator
	inferenceClient, err := inference.NewClient(inference.ClientConfig{
		APIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:  os.Getenv("INFERENCE_MODEL"),
	})
	switch {
	case err == nil:
		generator = inferenceClient
		log.Info().Msg("inference client initialized")
	case errors.Is(err, inference.ErrNotConfigured):
		log.Warn().Msg("inference not configured - estimates fall back to static defaults")
	default:
		log.Fatal().Err(err).Msg("failed to initialize inference client")
	}

	// Initialize the price quote provider (optional, needs an API key)
	var quotes price.QuoteProvider
	if apiKey := os.Getenv("DATA_GOV_API_KEY"); apiKey != "" {
		agmarkHTTP := resilience.NewClient(resilience.DefaultClientConfig(agmark.ProviderName))
		providers.Register(agmark.ProviderName, agmarkHTTP)
		quotes = agmark.NewClient(agmark.ClientConfig{
			APIKey:     apiKey,
			HTTPClient: agmarkHTTP,
			Logger:     log,
		})
		log.Info().Msg("AGMARKNET quote provider initialized")
	} else {
		log.Warn().Msg("AGMARKNET not configured - price lookups skip the live tier")
	}

	priceService := price.NewService(price.ServiceConfig{
		Quotes:    quotes,
		Generator: generator,
		Logger:    log,
	})
	log.Info().Msg("price service initialized")

	// Initialize the yield model provider (optional, needs a predict URL)
	var yieldModel cropyield.ModelProvider
	if predictURL := os.Getenv("YIELD_MODEL_URL"); predictURL != "" {
		hostedHTTP := resilience.NewClient(resilience.DefaultClientConfig(hosted.ProviderName))
		providers.Register(hosted.ProviderName, hostedHTTP)
		yieldModel = hosted.NewClient(hosted.ClientConfig{
			PredictURL: predictURL,
			HTTPClient: hostedHTTP,
			Logger:     log,
		})
		log.Info().Msg("hosted yield model initialized")
	} else {
		log.Warn().Msg("yield model not configured - predictions skip the hosted tier")
	}

	yieldService := cropyield.NewService(cropyield.ServiceConfig{
		Model:     yieldModel,
		Generator: generator,
		Clock:     clock,
		Logger:    log,
	})
	log.Info().Msg("yield service initialized")

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Logger:      log,
		ServiceName: serviceName,
		Metrics:     metrics,
		WeatherHandler: handler.NewWeatherHandler(handler.WeatherHandlerConfig{
			Locations: locations,
			Weather:   weatherService,
			Synth:     weather.NewSynthesizer(clock),
			Alerts:    agronomy.NewAlertGenerator(clock),
			Clock:     clock,
			Logger:    log,
		}),
		PriceHandler:     handler.NewPriceHandler(priceService, log),
		YieldHandler:     handler.NewYieldHandler(yieldService, log),
		MetadataHandler:  handler.NewMetadataHandler(locations),
		ProviderRegistry: providers,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
