package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/api/response"
	"github.com/agrisense/agrisense/internal/cropyield"
)

// YieldHandler handles the yield prediction endpoint.
type YieldHandler struct {
	yields *cropyield.Service
	logger zerolog.Logger
}

// NewYieldHandler creates a new YieldHandler.
func NewYieldHandler(yields *cropyield.Service, logger zerolog.Logger) *YieldHandler {
	return &YieldHandler{yields: yields, logger: logger}
}

// Predict handles POST /v1/yield - yield prediction for a cultivation plan.
func (h *YieldHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var input cropyield.Request
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}
	if missing := input.MissingFields(); len(missing) > 0 {
		response.BadRequest(w, r, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	result := h.yields.Predict(r.Context(), input)

	response.JSON(w, r, http.StatusOK, models.YieldResponse{
		Model:                   result.Value.Model,
		PredictedYield:          result.Value.PredictedYield,
		TotalExpectedProduction: result.Value.TotalExpectedProduction,
		Assessment:              result.Value.Assessment,
		Source:                  string(result.Source),
	})
}
