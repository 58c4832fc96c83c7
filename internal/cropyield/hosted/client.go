// Package hosted implements a yield model provider backed by an external
// HTTP prediction service.
package hosted

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/cropyield"
	"github.com/agrisense/agrisense/internal/provider/resilience"
)

// ProviderName identifies this model provider.
const ProviderName = "hosted-yield-model"

// ClientConfig holds configuration for the hosted model client.
type ClientConfig struct {
	// PredictURL is the full URL of the model's predict endpoint (required).
	PredictURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client calls the hosted yield-prediction model.
type Client struct {
	predictURL string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

var _ cropyield.ModelProvider = (*Client)(nil)

// NewClient creates a new hosted model client.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		predictURL: cfg.PredictURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Predict posts the request to the hosted model and decodes its prediction.
func (c *Client) Predict(ctx context.Context, req cropyield.Request) (*cropyield.Prediction, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var prediction cropyield.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if prediction.PredictedYield == "" {
		return nil, fmt.Errorf("model returned no predicted yield")
	}

	return &prediction, nil
}
