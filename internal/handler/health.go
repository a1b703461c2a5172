package handler

import (
	"context"
	"net/http"
	"time"
)

// readinessTimeout bounds the total time spent pinging dependencies.
const readinessTimeout = 5 * time.Second

// HealthChecker defines an interface for checking service health.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandler manages health check endpoints.
type HealthHandler struct {
	db    HealthChecker
	cache HealthChecker
}

// NewHealthHandler creates a new HealthHandler.
// Pass nil for cache when Redis is not configured.
func NewHealthHandler(db, cache HealthChecker) *HealthHandler {
	return &HealthHandler{
		db:    db,
		cache: cache,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Healthz is a liveness probe. It never touches dependencies.
//
// GET /healthz
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// Readyz is a readiness probe.
// Postgres must answer for the service to be ready. The cache is optional:
// list requests fall back to the store, so a failing Redis only degrades.
//
// GET /readyz
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	checks := make(map[string]string, 2)
	status := "ok"
	statusCode := http.StatusOK

	result, ok := ping(ctx, h.db)
	checks["postgres"] = result
	if !ok {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	result, ok = ping(ctx, h.cache)
	checks["redis"] = result
	if !ok && statusCode == http.StatusOK {
		status = "degraded"
	}

	writeJSON(w, statusCode, HealthResponse{
		Status: status,
		Checks: checks,
	})
}

func ping(ctx context.Context, c HealthChecker) (string, bool) {
	if c == nil {
		return "not configured", true
	}
	if err := c.Ping(ctx); err != nil {
		return "error: " + err.Error(), false
	}
	return "ok", true
}
