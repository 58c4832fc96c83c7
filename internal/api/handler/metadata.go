package handler

import (
	"net/http"

	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/api/response"
	"github.com/agrisense/agrisense/internal/location"
)

// MetadataHandler handles the service metadata endpoints.
type MetadataHandler struct {
	locations *location.Registry
}

// NewMetadataHandler creates a new MetadataHandler.
func NewMetadataHandler(locations *location.Registry) *MetadataHandler {
	return &MetadataHandler{locations: locations}
}

// Locations handles GET /v1/metadata/locations - the supported regions.
func (h *MetadataHandler) Locations(w http.ResponseWriter, r *http.Request) {
	all := h.locations.All()

	out := models.LocationList{Locations: make([]models.Location, 0, len(all))}
	for _, c := range all {
		out.Locations = append(out.Locations, models.Location{
			Name: c.DisplayName,
			Lat:  c.Lat,
			Lon:  c.Lon,
		})
	}

	response.JSON(w, r, http.StatusOK, out)
}
