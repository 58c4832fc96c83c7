package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/api/handler"
	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/price"
)

type stubQuotes struct {
	price string
	err   error
}

func (s *stubQuotes) LatestPrice(_ context.Context, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.price, nil
}

func (s *stubQuotes) Name() string { return "stub-quotes" }

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func newPriceHandler(cfg price.ServiceConfig) *handler.PriceHandler {
	cfg.Logger = zerolog.Nop()
	return handler.NewPriceHandler(price.NewService(cfg), zerolog.Nop())
}

func postPrices(t *testing.T, h *handler.PriceHandler, body string) (*httptest.ResponseRecorder, models.PriceResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/prices", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Lookup(rec, req)

	var out models.PriceResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	}
	return rec, out
}

func TestPriceLookupPrimary(t *testing.T) {
	h := newPriceHandler(price.ServiceConfig{Quotes: &stubQuotes{price: "2800-3100"}})

	rec, out := postPrices(t, h, `{"crop": "rice", "state": "odisha"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2800-3100", out.Price)
	assert.Equal(t, "primary", out.Source)
	assert.Empty(t, out.RawResponse)
	assert.Empty(t, out.Message)
}

func TestPriceLookupInferredCarriesRawResponse(t *testing.T) {
	h := newPriceHandler(price.ServiceConfig{
		Quotes:    &stubQuotes{err: errors.New("down")},
		Generator: &stubGenerator{text: "Roughly 2650 INR per quintal."},
	})

	rec, out := postPrices(t, h, `{"crop": "rice", "state": "odisha"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2650", out.Price)
	assert.Equal(t, "inferred", out.Source)
	assert.Equal(t, "Roughly 2650 INR per quintal.", out.RawResponse)
}

func TestPriceLookupFallback(t *testing.T) {
	h := newPriceHandler(price.ServiceConfig{})

	rec, out := postPrices(t, h, `{"crop": "rice", "state": "odisha"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2500-3000", out.Price)
	assert.Equal(t, "fallback", out.Source)
	assert.NotEmpty(t, out.Message)
}

func TestPriceLookupMissingInput(t *testing.T) {
	h := newPriceHandler(price.ServiceConfig{})

	for _, body := range []string{`{}`, `{"crop": "rice"}`, `{"state": "odisha"}`} {
		rec, _ := postPrices(t, h, body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)

		var errResp models.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
		assert.Equal(t, "Crop and state are required", errResp.Error)
	}
}
