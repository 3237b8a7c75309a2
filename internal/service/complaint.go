// Package service contains the business logic layer. Services validate
// requests, apply role scoping, and delegate state changes to the store.
package service

import (
	"fmt"

	"github.com/hostelhub/complaint-server/internal/models"
	"github.com/hostelhub/complaint-server/internal/store"
	"go.uber.org/zap"
)

// Submission policy constants.
const (
	MinTitleLen       = 5
	MinDescriptionLen = 10
	MinRating         = 1
	MaxRating         = 5
)

// ComplaintService is the façade the handlers call. It owns validation
// and role scoping; the store owns state and its invariants.
type ComplaintService struct {
	store  *store.ComplaintStore
	staff  *store.StaffDirectory
	logger *zap.SugaredLogger
}

// NewComplaintService creates a new complaint service.
func NewComplaintService(cs *store.ComplaintStore, staff *store.StaffDirectory, logger *zap.SugaredLogger) *ComplaintService {
	return &ComplaintService{store: cs, staff: staff, logger: logger}
}

// Submit validates and files a new complaint owned by owner.
func (s *ComplaintService) Submit(owner string, req models.ComplaintSubmission) (models.Complaint, error) {
	fields := make(map[string]string)
	if len(req.Title) < MinTitleLen {
		fields["title"] = fmt.Sprintf("must be at least %d characters", MinTitleLen)
	}
	if len(req.Description) < MinDescriptionLen {
		fields["description"] = fmt.Sprintf("must be at least %d characters", MinDescriptionLen)
	}
	if !req.Category.Valid() {
		fields["category"] = "unrecognized category"
	}
	if len(fields) > 0 {
		return models.Complaint{}, newValidationError(fields)
	}

	c := s.store.Create(owner, req)
	s.logger.Infow("Complaint submitted",
		"id", c.ID,
		"category", c.Category,
		"student", c.Student,
	)
	return c, nil
}

// ListFor returns the complaints visible to the caller: admins see every
// complaint, students see their own. Any other role is rejected.
func (s *ComplaintService) ListFor(role, owner string) ([]models.Complaint, error) {
	switch role {
	case models.RoleAdmin:
		return s.store.ListAll(), nil
	case models.RoleStudent:
		return s.store.ListByOwner(owner), nil
	default:
		return nil, fmt.Errorf("role %q: %w", role, ErrUnauthorized)
	}
}

// Get returns a single complaint by id.
func (s *ComplaintService) Get(id int) (models.Complaint, error) {
	return s.store.Get(id)
}

// ChangeStatus moves a complaint to newStatus.
func (s *ComplaintService) ChangeStatus(id int, newStatus models.Status) (models.Complaint, error) {
	c, err := s.store.SetStatus(id, newStatus)
	if err != nil {
		return models.Complaint{}, err
	}
	s.logger.Infow("Complaint status changed", "id", id, "status", newStatus)
	return c, nil
}

// Assign binds a staff member to a complaint, starting progress on it.
func (s *ComplaintService) Assign(id, staffID int) (models.Complaint, error) {
	c, err := s.store.Assign(id, staffID)
	if err != nil {
		return models.Complaint{}, err
	}
	s.logger.Infow("Complaint assigned", "id", id, "staff_id", staffID)
	return c, nil
}

// Vote casts, switches, or retracts userID's vote on a complaint.
func (s *ComplaintService) Vote(id int, userID string, value models.VoteValue) (models.VoteOutcome, models.Complaint, error) {
	if !value.Valid() {
		return models.VoteOutcome{}, models.Complaint{}, newValidationError(map[string]string{
			"value": `must be "up" or "down"`,
		})
	}
	return s.store.CastVote(id, userID, value)
}

// UserVote returns userID's live vote on a complaint, if any.
func (s *ComplaintService) UserVote(id int, userID string) (models.VoteValue, bool, error) {
	return s.store.UserVote(id, userID)
}

// Feedback attaches a resolution rating to a resolved complaint.
func (s *ComplaintService) Feedback(id, rating int, comment string) (models.Complaint, error) {
	fields := make(map[string]string)
	if rating < MinRating || rating > MaxRating {
		fields["rating"] = fmt.Sprintf("must be between %d and %d", MinRating, MaxRating)
	}
	if comment == "" {
		fields["comment"] = "must not be empty"
	}
	if len(fields) > 0 {
		return models.Complaint{}, newValidationError(fields)
	}

	c, err := s.store.AttachFeedback(id, rating, comment)
	if err != nil {
		return models.Complaint{}, err
	}
	s.logger.Infow("Feedback recorded", "id", id, "rating", rating)
	return c, nil
}

// Staff returns the assignable staff roster.
func (s *ComplaintService) Staff() []models.StaffMember {
	return s.staff.List()
}

// CategoryDistribution counts complaints per category for the admin
// dashboard. Categories with no complaints are omitted.
func (s *ComplaintService) CategoryDistribution() []models.CategoryCount {
	counts := make(map[models.Category]int)
	for _, c := range s.store.ListAll() {
		counts[c.Category]++
	}

	order := []models.Category{
		models.CategoryElectricity,
		models.CategoryWater,
		models.CategoryMessFood,
		models.CategoryWiFi,
		models.CategoryOther,
	}
	out := make([]models.CategoryCount, 0, len(order))
	for _, cat := range order {
		if n := counts[cat]; n > 0 {
			out = append(out, models.CategoryCount{Category: cat, Count: n})
		}
	}
	return out
}

// StatusBreakdown counts complaints per lifecycle state.
func (s *ComplaintService) StatusBreakdown() []models.StatusCount {
	counts := make(map[models.Status]int)
	for _, c := range s.store.ListAll() {
		counts[c.Status]++
	}

	order := []models.Status{models.StatusPending, models.StatusInProgress, models.StatusResolved}
	out := make([]models.StatusCount, 0, len(order))
	for _, st := range order {
		out = append(out, models.StatusCount{Status: st, Count: counts[st]})
	}
	return out
}
