package service

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hostelhub/complaint-server/internal/models"
	"go.uber.org/zap"
)

// maxActivityEntries bounds the in-memory log; the oldest entries are
// dropped once it fills.
const maxActivityEntries = 1000

// ActivityLogService keeps a bounded in-memory record of actions taken on
// complaints, for the per-complaint history view and the admin feed.
type ActivityLogService struct {
	mu      sync.RWMutex
	entries []models.ActivityEntry // oldest first
	logger  *zap.SugaredLogger
}

// NewActivityLogService creates a new activity log service.
func NewActivityLogService(logger *zap.SugaredLogger) *ActivityLogService {
	return &ActivityLogService{logger: logger}
}

// Record appends an entry describing an action taken on a complaint.
func (s *ActivityLogService) Record(complaintID int, activityType, description, actor string) {
	entry := models.ActivityEntry{
		ID:           uuid.New(),
		ComplaintID:  complaintID,
		ActivityType: activityType,
		Description:  description,
		Actor:        actor,
		CreatedAt:    time.Now(),
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	if len(s.entries) > maxActivityEntries {
		s.entries = s.entries[len(s.entries)-maxActivityEntries:]
	}
	s.mu.Unlock()

	s.logger.Infow("Activity logged",
		"complaint_id", complaintID,
		"type", activityType,
		"actor", actor,
	)
}

// ForComplaint returns up to limit entries for one complaint, newest
// first.
func (s *ActivityLogService) ForComplaint(complaintID, limit int) []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ActivityEntry
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if s.entries[i].ComplaintID == complaintID {
			out = append(out, s.entries[i])
		}
	}
	return out
}

// Recent returns up to limit entries across all complaints, newest first.
func (s *ActivityLogService) Recent(limit int) []models.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.entries)
	if limit > n {
		limit = n
	}
	out := make([]models.ActivityEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		out = append(out, s.entries[i])
	}
	return out
}
