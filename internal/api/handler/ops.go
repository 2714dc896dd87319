// Package handler provides HTTP handlers for the CamperPlan API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/camperplan/camperplan/internal/api/models"
	"github.com/camperplan/camperplan/internal/api/response"
)

// ReadyCheck reports whether a dependency is ready to serve.
type ReadyCheck func(ctx context.Context) error

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	checks    map[string]ReadyCheck
}

// NewOpsHandler creates a new OpsHandler. The checks map holds named
// readiness probes, typically a database ping; it may be nil.
func NewOpsHandler(version, buildTime string, checks map[string]ReadyCheck) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		checks:    checks,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. Every
// registered probe must pass; a single failure returns 503.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if len(h.checks) > 0 {
		health.Details = make(map[string]interface{}, len(h.checks))
		for name, check := range h.checks {
			if err := check(r.Context()); err != nil {
				health.Status = models.HealthStatusFail
				health.Details[name] = err.Error()
				continue
			}
			health.Details[name] = "ok"
		}
	}

	if health.Status != models.HealthStatusOK {
		response.JSON(w, r, http.StatusServiceUnavailable, health)
		return
	}
	response.JSON(w, r, http.StatusOK, health)
}
