// Package handlers contains HTTP request handlers for the complaint API.
// Handlers parse requests, call services, and return JSON responses.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hostelhub/complaint-server/internal/middleware"
	"github.com/hostelhub/complaint-server/internal/models"
	"github.com/hostelhub/complaint-server/internal/service"
	"github.com/hostelhub/complaint-server/internal/store"
	"go.uber.org/zap"
)

// ComplaintHandler handles complaint-related HTTP endpoints
type ComplaintHandler struct {
	complaintSvc *service.ComplaintService
	activitySvc  *service.ActivityLogService
	logger       *zap.SugaredLogger
}

// NewComplaintHandler creates a new complaint handler
func NewComplaintHandler(cs *service.ComplaintService, as *service.ActivityLogService, logger *zap.SugaredLogger) *ComplaintHandler {
	return &ComplaintHandler{complaintSvc: cs, activitySvc: as, logger: logger}
}

// Submit handles POST /api/v1/complaints
func (h *ComplaintHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ComplaintSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ident := middleware.IdentityFrom(r.Context())
	if ident.Email == "" {
		respondError(w, http.StatusBadRequest, "Caller identity required")
		return
	}

	complaint, err := h.complaintSvc.Submit(ident.Email, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.activitySvc.Record(complaint.ID, "submission",
		fmt.Sprintf("Complaint %q filed", complaint.Title), ident.Email)

	respondJSON(w, http.StatusCreated, complaint)
}

// List handles GET /api/v1/complaints
// Admins see every complaint, students only their own.
func (h *ComplaintHandler) List(w http.ResponseWriter, r *http.Request) {
	ident := middleware.IdentityFrom(r.Context())

	complaints, err := h.complaintSvc.ListFor(ident.Role, ident.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, complaints)
}

// Get handles GET /api/v1/complaints/{id}
func (h *ComplaintHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	complaint, err := h.complaintSvc.Get(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, complaint)
}

// ChangeStatus handles PATCH /api/v1/complaints/{id}/status
func (h *ComplaintHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	var req models.StatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	complaint, err := h.complaintSvc.ChangeStatus(id, req.Status)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	ident := middleware.IdentityFrom(r.Context())
	h.activitySvc.Record(id, "status_change",
		fmt.Sprintf("Status changed to %s", req.Status), ident.Email)

	respondJSON(w, http.StatusOK, complaint)
}

// Assign handles PATCH /api/v1/complaints/{id}/assign
func (h *ComplaintHandler) Assign(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	var req models.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	complaint, err := h.complaintSvc.Assign(id, req.StaffID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	ident := middleware.IdentityFrom(r.Context())
	h.activitySvc.Record(id, "assignment",
		fmt.Sprintf("Assigned to %s (%s)", complaint.AssignedTo.Name, complaint.AssignedTo.Department),
		ident.Email)

	respondJSON(w, http.StatusOK, complaint)
}

// Vote handles POST /api/v1/complaints/{id}/vote
func (h *ComplaintHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	var req models.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ident := middleware.IdentityFrom(r.Context())
	if ident.Email == "" {
		respondError(w, http.StatusBadRequest, "Caller identity required")
		return
	}

	outcome, complaint, err := h.complaintSvc.Vote(id, ident.Email, req.Value)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	h.activitySvc.Record(id, "vote",
		fmt.Sprintf("Vote %s", outcome.Applied), ident.Email)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"applied":   outcome.Applied,
		"complaint": complaint,
	})
}

// UserVote handles GET /api/v1/complaints/{id}/vote
// Returns the caller's live vote, or "none".
func (h *ComplaintHandler) UserVote(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	ident := middleware.IdentityFrom(r.Context())
	value, voted, err := h.complaintSvc.UserVote(id, ident.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	vote := "none"
	if voted {
		vote = string(value)
	}
	respondJSON(w, http.StatusOK, map[string]string{"vote": vote})
}

// Feedback handles POST /api/v1/complaints/{id}/feedback
func (h *ComplaintHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	id, ok := complaintID(w, r)
	if !ok {
		return
	}

	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	complaint, err := h.complaintSvc.Feedback(id, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	ident := middleware.IdentityFrom(r.Context())
	h.activitySvc.Record(id, "feedback",
		fmt.Sprintf("Rated %d/5", req.Rating), ident.Email)

	respondJSON(w, http.StatusOK, complaint)
}

// Categories handles GET /api/v1/analytics/categories
func (h *ComplaintHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.complaintSvc.CategoryDistribution())
}

// Statuses handles GET /api/v1/analytics/status
func (h *ComplaintHandler) Statuses(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.complaintSvc.StatusBreakdown())
}

// complaintID parses the {id} route parameter, responding with 400 on
// garbage input.
func complaintID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid complaint id")
		return 0, false
	}
	return id, true
}

// respondServiceError maps the service/store error taxonomy onto HTTP
// status codes.
func respondServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, store.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest, "Unrecognized status value")
	case errors.Is(err, store.ErrInvalidState):
		respondError(w, http.StatusConflict, "Feedback requires a resolved complaint")
	case errors.Is(err, service.ErrUnauthorized):
		respondError(w, http.StatusForbidden, "Role not permitted")
	default:
		respondError(w, http.StatusInternalServerError, "Internal error")
	}
}

// Helper: respond with JSON
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Helper: respond with error
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
