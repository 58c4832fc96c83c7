package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/api/response"
	"github.com/agrisense/agrisense/internal/price"
	"github.com/agrisense/agrisense/internal/tiered"
)

// PriceHandler handles the market price endpoint.
type PriceHandler struct {
	prices *price.Service
	logger zerolog.Logger
}

// NewPriceHandler creates a new PriceHandler.
func NewPriceHandler(prices *price.Service, logger zerolog.Logger) *PriceHandler {
	return &PriceHandler{prices: prices, logger: logger}
}

// Lookup handles POST /v1/prices - market price for a crop in a state.
func (h *PriceHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var input models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body")
		return
	}
	if input.Crop == "" || input.State == "" {
		response.BadRequest(w, r, "Crop and state are required")
		return
	}

	result := h.prices.Lookup(r.Context(), input.Crop, input.State)

	out := models.PriceResponse{
		Price:  result.Value.Price,
		Source: string(result.Source),
	}
	switch result.Source {
	case tiered.SourceInferred:
		out.RawResponse = result.Value.Raw
	case tiered.SourceFallback:
		out.Message = "Using default price range, live price services unavailable"
	}

	response.JSON(w, r, http.StatusOK, out)
}
