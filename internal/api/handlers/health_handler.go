package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/zatekoja/inspectionreport/internal/application/services"
	"github.com/zatekoja/inspectionreport/internal/infrastructure/observability"
)

const readinessTimeout = 2 * time.Second

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	db services.Pinger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db services.Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready; the service is ready once the database answers a ping
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("readiness check failed")
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": "unreachable",
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":   "ready",
		"database": "ok",
	})
}
