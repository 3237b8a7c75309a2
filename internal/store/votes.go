package store

import (
	"sync"

	"github.com/hostelhub/complaint-server/internal/models"
)

// voteKey identifies one user's vote on one complaint. A single flat map
// keyed by (complaint, user) replaces per-complaint vote maps so the whole
// ledger shares one lock.
type voteKey struct {
	complaintID int
	userID      string
}

// VoteLedger tracks at most one live vote per (complaint, user) pair and
// is the single source of truth for vote counts. The complaint's
// upvote/downvote counters are a projection of this ledger maintained by
// ComplaintStore.
type VoteLedger struct {
	mu    sync.RWMutex
	votes map[voteKey]models.VoteValue
}

// NewVoteLedger creates an empty ledger.
func NewVoteLedger() *VoteLedger {
	return &VoteLedger{votes: make(map[voteKey]models.VoteValue)}
}

// Cast records, replaces, or retracts a vote:
//
//   - no prior vote: the vote is recorded and applied is its value
//   - prior vote equal to value: the vote is removed (toggle-off) and
//     applied is "removed"
//   - prior vote different from value: the vote is replaced and applied
//     is the new value
//
// previous and hadPrevious report the entry that was on record before the
// call, so the caller can adjust derived counters.
func (l *VoteLedger) Cast(complaintID int, userID string, value models.VoteValue) (outcome models.VoteOutcome, previous models.VoteValue, hadPrevious bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := voteKey{complaintID: complaintID, userID: userID}
	previous, hadPrevious = l.votes[key]

	if hadPrevious && previous == value {
		delete(l.votes, key)
		return models.VoteOutcome{Applied: models.VoteRemoved}, previous, hadPrevious
	}

	l.votes[key] = value
	return models.VoteOutcome{Applied: string(value)}, previous, hadPrevious
}

// Get returns the caller's live vote on a complaint, if any. Pure lookup.
func (l *VoteLedger) Get(complaintID int, userID string) (models.VoteValue, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	v, ok := l.votes[voteKey{complaintID: complaintID, userID: userID}]
	return v, ok
}

// Counts tallies the live up and down votes for a complaint by scanning
// the ledger. Used by tests and consistency checks; the store keeps the
// counters incrementally.
func (l *VoteLedger) Counts(complaintID int) (up, down int) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for key, v := range l.votes {
		if key.complaintID != complaintID {
			continue
		}
		if v == models.VoteUp {
			up++
		} else {
			down++
		}
	}
	return up, down
}
