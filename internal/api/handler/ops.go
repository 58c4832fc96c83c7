package handler

import (
	"net/http"
	"time"

	"github.com/agrisense/agrisense/internal/api/models"
	"github.com/agrisense/agrisense/internal/api/response"
	"github.com/agrisense/agrisense/internal/provider/resilience"
)

// OpsHandler handles the health and readiness endpoints.
type OpsHandler struct {
	registry *resilience.Registry
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(registry *resilience.Registry) *OpsHandler {
	return &OpsHandler{registry: registry}
}

// Health handles GET /v1/ops/health - liveness with provider circuit states.
func (h *OpsHandler) Health(w http.ResponseWriter, r *http.Request) {
	providers := h.registry.GetAllHealth()

	status := models.HealthStatusOK
	statuses := make([]models.ProviderStatus, 0, len(providers))
	for _, p := range providers {
		s := "healthy"
		switch {
		case p.IsUnhealthy():
			s = "unhealthy"
			status = models.HealthStatusDegraded
		case p.IsDegraded():
			s = "degraded"
			status = models.HealthStatusDegraded
		}
		statuses = append(statuses, models.ProviderStatus{Provider: p.Name, Status: s})
	}

	response.JSON(w, r, http.StatusOK, models.Health{
		Status:    status,
		Time:      time.Now().UTC().Format(time.RFC3339),
		Providers: statuses,
	})
}

// Ready handles GET /v1/ops/ready - readiness for traffic. The service
// degrades to synthesized data when providers fail, so readiness does not
// depend on provider health.
func (h *OpsHandler) Ready(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{
		Status: models.HealthStatusOK,
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
