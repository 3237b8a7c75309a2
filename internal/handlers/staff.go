package handlers

import (
	"net/http"

	"github.com/hostelhub/complaint-server/internal/service"
	"go.uber.org/zap"
)

// StaffHandler exposes the staff roster.
type StaffHandler struct {
	complaintSvc *service.ComplaintService
	logger       *zap.SugaredLogger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(cs *service.ComplaintService, logger *zap.SugaredLogger) *StaffHandler {
	return &StaffHandler{complaintSvc: cs, logger: logger}
}

// List handles GET /api/v1/staff
func (h *StaffHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.complaintSvc.Staff())
}
