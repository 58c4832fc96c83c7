// Package models provides request and response models for the AgriSense API.
package models

// ErrorResponse is the error body for non-200 responses. Error names the
// problem (including any missing input fields); Message adds optional
// human-readable context.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// LatLon is a coordinate pair.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Health statuses.
const (
	HealthStatusOK       = "OK"
	HealthStatusDegraded = "DEGRADED"
)

// Health is the body of the health and readiness endpoints.
type Health struct {
	Status    string                 `json:"status"`
	Time      string                 `json:"time"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Providers []ProviderStatus       `json:"providers,omitempty"`
}

// ProviderStatus reports one upstream provider's circuit state.
type ProviderStatus struct {
	Provider string `json:"provider"`
	Status   string `json:"status"`
}

// Location is one supported region in the metadata listing.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// LocationList is the body of the locations metadata endpoint.
type LocationList struct {
	Locations []Location `json:"locations"`
}
