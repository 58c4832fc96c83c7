// Package price looks up market prices for crops through a tiered chain:
// the commodity quote API first, a generative estimate second, a static
// per-crop default last.
package price

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/inference"
	"github.com/agrisense/agrisense/internal/tiered"
)

// Price errors.
var (
	ErrNoPriceFound = errors.New("no price found in response")
)

// Quote is a market price lookup result. Price is a per-quintal INR figure
// or range like "2500-3000". Raw carries the generated text when the
// inferred tier produced the quote.
type Quote struct {
	Price string
	Raw   string
}

// QuoteProvider fetches authoritative market prices.
type QuoteProvider interface {
	// LatestPrice returns the most recent per-quintal price for a crop in
	// a state, formatted as "NNNN" or "NNNN-NNNN".
	LatestPrice(ctx context.Context, crop, state string) (string, error)

	// Name returns the provider name for logging.
	Name() string
}

// defaultPrices maps crops to a per-quintal INR price range used when every
// other tier fails.
var defaultPrices = map[string]string{
	"rice":      "2500-3000",
	"wheat":     "2000-2500",
	"cotton":    "5000-6000",
	"sugarcane": "300-400",
	"soybean":   "4000-5000",
	"maize":     "1500-2000",
	"chickpea":  "4000-5000",
}

// fallbackPriceRange is the default for crops without a table entry.
const fallbackPriceRange = "2000-3000"

// DefaultPrice returns the static price range for a crop.
func DefaultPrice(crop string) string {
	if p, ok := defaultPrices[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return p
	}
	return fallbackPriceRange
}

// priceRangePattern extracts a 3-4 digit price or price range near optional
// currency and unit words from generated text.
var priceRangePattern = regexp.MustCompile(`(?i)(\d{3,4}(?:-\d{3,4})?)\s*(?:INR|Rs\.?)?\s*(?:per\s+quintal)?`)

// ExtractPrice pulls a price figure out of free-form text. The second
// return value reports whether extraction succeeded.
func ExtractPrice(text string) (string, bool) {
	m := priceRangePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ServiceConfig holds configuration for the price service.
type ServiceConfig struct {
	// Quotes is the authoritative quote provider. Optional; without it the
	// chain starts at the inferred tier.
	Quotes QuoteProvider

	// Generator produces inferred estimates. Optional.
	Generator inference.Generator

	// Logger for service operations.
	Logger zerolog.Logger
}

// Service resolves market prices through the tiered chain.
type Service struct {
	quotes    QuoteProvider
	generator inference.Generator
	logger    zerolog.Logger
}

// NewService creates a new price service.
func NewService(cfg ServiceConfig) *Service {
	return &Service{
		quotes:    cfg.Quotes,
		generator: cfg.Generator,
		logger:    cfg.Logger,
	}
}

// Lookup resolves the market price for a crop in a state. It always
// returns a quote; the result's Source says which tier produced it.
func (s *Service) Lookup(ctx context.Context, crop, state string) tiered.Result[Quote] {
	chain := tiered.Chain[Quote]{
		Name:   "crop-price",
		Logger: s.logger,
		Fallback: func() Quote {
			return Quote{Price: DefaultPrice(crop)}
		},
	}

	if s.quotes != nil {
		chain.Primary = func(ctx context.Context) (Quote, error) {
			p, err := s.quotes.LatestPrice(ctx, crop, state)
			if err != nil {
				return Quote{}, err
			}
			return Quote{Price: p}, nil
		}
	}

	if s.generator != nil {
		chain.Inferred = func(ctx context.Context) (Quote, error) {
			return s.infer(ctx, crop, state)
		}
	}

	return chain.Lookup(ctx)
}

// infer asks the generative model for a price estimate and extracts a
// numeric figure from the response. A response with no extractable figure
// counts as a tier failure.
func (s *Service) infer(ctx context.Context, crop, state string) (Quote, error) {
	prompt := fmt.Sprintf(
		"What is the current market price for %s in %s, India per quintal in INR? "+
			"Provide the price range or average price in a simple format.",
		crop, state)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return Quote{}, fmt.Errorf("generating estimate: %w", err)
	}

	figure, ok := ExtractPrice(text)
	if !ok {
		return Quote{}, ErrNoPriceFound
	}
	return Quote{Price: figure, Raw: text}, nil
}
