// Package inference wraps the Anthropic messages API behind a minimal
// text-generation interface so callers stay decoupled from the SDK and
// tests can substitute a mock.
package inference

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("inference client not configured")

// DefaultModel is the model used when none is configured. Estimates here
// are short and latency-sensitive, so the small model is the default.
const DefaultModel = "claude-haiku-4-5-20251001"

const defaultMaxTokens = 512

// Generator produces free-form text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client is an Anthropic-backed Generator.
type Client struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// ClientConfig holds configuration for the inference client.
type ClientConfig struct {
	// APIKey is the Anthropic API key (required).
	APIKey string

	// Model overrides DefaultModel (optional).
	Model string

	// MaxTokens caps response length (optional).
	MaxTokens int64
}

// NewClient creates a new inference client. Returns ErrNotConfigured when
// no API key is provided, so callers can skip the inferred tier entirely.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		client:    sdk.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     model,
		maxTokens: maxTokens,
	}, nil
}

// Generate sends a single-turn prompt and returns the concatenated text of
// the response.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	msg, err := c.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("creating message: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("empty response")
	}
	return b.String(), nil
}
