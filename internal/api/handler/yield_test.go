package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrisense/agrisense/internal/api/handler"
	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/cropyield"
)

func newYieldHandler() *handler.YieldHandler {
	service := cropyield.NewService(cropyield.ServiceConfig{
		Clock:  clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)),
		Logger: zerolog.Nop(),
	})
	return handler.NewYieldHandler(service, zerolog.Nop())
}

func postYield(t *testing.T, h *handler.YieldHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/yield", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Predict(rec, req)
	return rec
}

func TestYieldPredict(t *testing.T) {
	body := `{
		"crop": "Rice",
		"season": "Kharif",
		"state": "Odisha",
		"annualRainfall": 1200,
		"area": 10,
		"fertilizer": 150,
		"pesticide": 20,
		"cropYear": 2025
	}`

	rec := postYield(t, newYieldHandler(), body)

	require.Equal(t, http.StatusOK, rec.Code)
	var out models.YieldResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))

	// No model or generator configured, so the canned tier answers.
	assert.Equal(t, "fallback", out.Source)
	assert.NotEmpty(t, out.Model)
	assert.Contains(t, out.PredictedYield, "kg/hectare")
	assert.Contains(t, out.TotalExpectedProduction, "tons")
	assert.NotEmpty(t, out.Assessment)
}

func TestYieldPredictMissingFields(t *testing.T) {
	body := `{
		"crop": "Rice",
		"season": "Kharif",
		"state": "Odisha",
		"annualRainfall": 1200,
		"area": 10,
		"fertilizer": 150,
		"cropYear": 2025
	}`

	rec := postYield(t, newYieldHandler(), body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t, "Missing required fields: pesticide", errResp.Error)
}

func TestYieldPredictListsEveryMissingField(t *testing.T) {
	rec := postYield(t, newYieldHandler(), `{"crop": "Rice"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var errResp models.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errResp))
	assert.Equal(t,
		"Missing required fields: season, state, annualRainfall, area, fertilizer, pesticide, cropYear",
		errResp.Error)
}

func TestYieldPredictInvalidJSON(t *testing.T) {
	rec := postYield(t, newYieldHandler(), `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
