// Package store holds the in-memory state of the complaint tracker: the
// complaint collection, the vote ledger, and the staff roster. All
// mutations go through ComplaintStore, which serializes them under a
// single write lock; reads return copies, never aliases of internal state.
package store

import (
	"sync"
	"time"

	"github.com/hostelhub/complaint-server/internal/models"
)

// ComplaintStore owns the complaint collection. It assigns ids, enforces
// the status rules, and keeps the vote counters in step with the ledger.
type ComplaintStore struct {
	mu     sync.RWMutex
	nextID int
	byID   map[int]*models.Complaint
	order  []int // newest first
	ledger *VoteLedger
	staff  *StaffDirectory
}

// NewComplaintStore creates an empty store backed by the given staff
// directory for assignment lookups.
func NewComplaintStore(staff *StaffDirectory) *ComplaintStore {
	return &ComplaintStore{
		nextID: 1,
		byID:   make(map[int]*models.Complaint),
		ledger: NewVoteLedger(),
		staff:  staff,
	}
}

// Create inserts a new complaint with a fresh id, Pending status, the
// current time, and zero votes. The new complaint heads the listing order.
func (s *ComplaintStore) Create(owner string, req models.ComplaintSubmission) models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.Complaint{
		ID:          s.nextID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Status:      models.StatusPending,
		Room:        req.Room,
		Block:       req.Block,
		Student:     owner,
		Date:        time.Now(),
	}
	s.nextID++
	s.byID[c.ID] = c
	s.order = append([]int{c.ID}, s.order...)

	return snapshot(c)
}

// Get returns a snapshot of the complaint with the given id.
func (s *ComplaintStore) Get(id int) (models.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}
	return snapshot(c), nil
}

// ListAll returns snapshots of every complaint, newest first.
func (s *ComplaintStore) ListAll() []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Complaint, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshot(s.byID[id]))
	}
	return out
}

// ListByOwner returns snapshots of the complaints filed by owner, newest
// first.
func (s *ComplaintStore) ListByOwner(owner string) []models.Complaint {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Complaint
	for _, id := range s.order {
		if c := s.byID[id]; c.Student == owner {
			out = append(out, snapshot(c))
		}
	}
	return out
}

// Count returns the number of complaints in the store.
func (s *ComplaintStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// SetStatus moves a complaint to newStatus. Every transition between
// recognized states is legal, including reopening a resolved complaint
// and no-op self-transitions; only an unrecognized status value is
// rejected. Feedback left from an earlier resolution survives a reopen.
func (s *ComplaintStore) SetStatus(id int, newStatus models.Status) (models.Complaint, error) {
	if !newStatus.Valid() {
		return models.Complaint{}, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}
	c.Status = newStatus
	return snapshot(c), nil
}

// Assign binds a staff member to a complaint and moves it to In Progress
// regardless of its prior status: assignment means work has started.
func (s *ComplaintStore) Assign(id, staffID int) (models.Complaint, error) {
	member, err := s.staff.Get(staffID)
	if err != nil {
		return models.Complaint{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}
	c.AssignedTo = &member
	c.Status = models.StatusInProgress
	return snapshot(c), nil
}

// AttachFeedback records a resolution rating. Legal only while the
// complaint is Resolved; the store checks the state, the service owns the
// rating and comment policy beyond non-emptiness.
func (s *ComplaintStore) AttachFeedback(id, rating int, comment string) (models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return models.Complaint{}, ErrNotFound
	}
	if c.Status != models.StatusResolved {
		return models.Complaint{}, ErrInvalidState
	}
	c.Feedback = &models.Feedback{Rating: rating, Comment: comment, Date: time.Now()}
	return snapshot(c), nil
}

// CastVote applies a user's vote through the ledger and updates the
// complaint's derived counters to match. Toggling the same value retracts
// the vote; casting the opposite value replaces it without double-counting.
func (s *ComplaintStore) CastVote(id int, userID string, value models.VoteValue) (models.VoteOutcome, models.Complaint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return models.VoteOutcome{}, models.Complaint{}, ErrNotFound
	}

	outcome, previous, hadPrevious := s.ledger.Cast(id, userID, value)
	if hadPrevious {
		decrement(c, previous)
	}
	if outcome.Applied != models.VoteRemoved {
		increment(c, value)
	}
	return outcome, snapshot(c), nil
}

// UserVote returns the caller's live vote on a complaint, or ok=false if
// they have none.
func (s *ComplaintStore) UserVote(id int, userID string) (models.VoteValue, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.byID[id]; !exists {
		return "", false, ErrNotFound
	}
	v, ok := s.ledger.Get(id, userID)
	return v, ok, nil
}

func increment(c *models.Complaint, value models.VoteValue) {
	if value == models.VoteUp {
		c.Upvotes++
	} else {
		c.Downvotes++
	}
}

// decrement clamps at zero. Unreachable under normal operation since the
// counters mirror the ledger, but a miscount must never go negative.
func decrement(c *models.Complaint, value models.VoteValue) {
	if value == models.VoteUp {
		if c.Upvotes > 0 {
			c.Upvotes--
		}
	} else {
		if c.Downvotes > 0 {
			c.Downvotes--
		}
	}
}

// snapshot deep-copies a complaint so callers never hold references into
// store-owned state.
func snapshot(c *models.Complaint) models.Complaint {
	out := *c
	if c.AssignedTo != nil {
		member := *c.AssignedTo
		out.AssignedTo = &member
	}
	if c.Feedback != nil {
		fb := *c.Feedback
		out.Feedback = &fb
	}
	return out
}
