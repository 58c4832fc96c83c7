// Package agmark implements a quote provider backed by the data.gov.in
// AGMARKNET daily mandi price dataset.
package agmark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/price"
	"github.com/agrisense/agrisense/internal/provider/resilience"
)

const (
	// ProviderName identifies this quote provider.
	ProviderName = "agmarknet"

	// DefaultBaseURL is the AGMARKNET current-price resource URL.
	DefaultBaseURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"
)

// ClientConfig holds configuration for the AGMARKNET client.
type ClientConfig struct {
	// APIKey is the data.gov.in API key (required).
	APIKey string

	// BaseURL is the resource URL (optional).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an AGMARKNET quote client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

var _ price.QuoteProvider = (*Client)(nil)

// NewClient creates a new AGMARKNET client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

type priceResponse struct {
	Records []struct {
		Commodity  string `json:"commodity"`
		State      string `json:"state"`
		MinPrice   string `json:"min_price"`
		MaxPrice   string `json:"max_price"`
		ModalPrice string `json:"modal_price"`
	} `json:"records"`
}

// LatestPrice fetches the most recent mandi price for a crop in a state.
// Returns "min-max" when both bounds are present, otherwise the modal price.
func (c *Client) LatestPrice(ctx context.Context, crop, state string) (string, error) {
	query := url.Values{}
	query.Set("api-key", c.apiKey)
	query.Set("format", "json")
	query.Set("limit", "1")
	query.Set("filters[commodity]", titleCase(crop))
	query.Set("filters[state]", titleCase(state))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(payload.Records) == 0 {
		return "", price.ErrNoPriceFound
	}

	rec := payload.Records[0]
	if rec.MinPrice != "" && rec.MaxPrice != "" && rec.MinPrice != rec.MaxPrice {
		return rec.MinPrice + "-" + rec.MaxPrice, nil
	}
	if rec.ModalPrice != "" {
		return rec.ModalPrice, nil
	}
	return "", price.ErrNoPriceFound
}

// titleCase uppercases the first letter of each word, matching how the
// dataset spells commodity and state names.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
