// Package response provides utilities for HTTP response handling.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/agrisense/agrisense/internal/api/middleware"
	"github.com/agrisense/agrisense/internal/api/models"
)

// JSON writes a JSON response with the given status code.
// Includes X-Request-Id header for correlation.
func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	requestID := middleware.GetRequestID(r.Context())
	if requestID != "" {
		w.Header().Set("X-Request-Id", requestID)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// BadRequest writes a 400 Bad Request error response.
func BadRequest(w http.ResponseWriter, r *http.Request, errMsg string) {
	JSON(w, r, http.StatusBadRequest, models.ErrorResponse{Error: errMsg})
}

// InternalError writes a 500 Internal Server Error response with a generic
// message; internal detail is never leaked to the caller.
func InternalError(w http.ResponseWriter, r *http.Request, errMsg, message string) {
	JSON(w, r, http.StatusInternalServerError, models.ErrorResponse{Error: errMsg, Message: message})
}
