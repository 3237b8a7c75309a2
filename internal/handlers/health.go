package handlers

import (
	"net/http"
	"time"

	"github.com/hostelhub/complaint-server/internal/models"
	"github.com/hostelhub/complaint-server/internal/store"
	"go.uber.org/zap"
)

var startTime = time.Now()

const version = "1.2.0"

// HealthHandler provides health check endpoints
type HealthHandler struct {
	store  *store.ComplaintStore
	logger *zap.SugaredLogger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(s *store.ComplaintStore, logger *zap.SugaredLogger) *HealthHandler {
	return &HealthHandler{store: s, logger: logger}
}

// Check handles GET /api/v1/health (liveness probe)
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:  "ok",
		Version: version,
		Uptime:  time.Since(startTime).String(),
	})
}

// Ready handles GET /api/v1/health/ready (readiness probe)
// The store lives in process memory, so readiness reduces to liveness
// plus the current complaint count.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthStatus{
		Status:     "ready",
		Version:    version,
		Uptime:     time.Since(startTime).String(),
		Complaints: h.store.Count(),
	})
}
