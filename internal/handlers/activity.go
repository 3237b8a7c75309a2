package handlers

import (
	"net/http"

	"github.com/hostelhub/complaint-server/internal/service"
	"go.uber.org/zap"
)

// ActivityHandler handles activity log endpoints
type ActivityHandler struct {
	svc          *service.ActivityLogService
	complaintSvc *service.ComplaintService
	logger       *zap.SugaredLogger
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityLogService, cs *service.ComplaintService, logger *zap.SugaredLogger) *ActivityHandler {
	return &ActivityHandler{svc: svc, complaintSvc: cs, logger: logger}
}

// ForComplaint handles GET /api/v1/complaints/{id}/activity
func (h *ActivityHandler) ForComplaint(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	// 404 for unknown complaints rather than an empty history
	if _, err := h.complaintSvc.Get(id); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.svc.ForComplaint(id, 50))
}

// Recent handles GET /api/v1/activity/recent
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Recent(100))
}
