package store_test

import (
	"sync"
	"testing"

	"github.com/hostelhub/complaint-server/internal/models"
	"github.com/hostelhub/complaint-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *store.ComplaintStore {
	return store.NewComplaintStore(store.NewStaffDirectory(store.DefaultStaff()))
}

func submission(title string) models.ComplaintSubmission {
	return models.ComplaintSubmission{
		Title:       title,
		Description: "Something in the hostel is broken.",
		Category:    models.CategoryOther,
		Room:        "101",
		Block:       "A",
	}
}

func TestCreateAssignsFreshState(t *testing.T) {
	s := newTestStore()

	c := s.Create("john.doe@college.edu", submission("Broken fan"))

	assert.Equal(t, 1, c.ID)
	assert.Equal(t, models.StatusPending, c.Status)
	assert.Equal(t, "john.doe@college.edu", c.Student)
	assert.Nil(t, c.AssignedTo)
	assert.Nil(t, c.Feedback)
	assert.Zero(t, c.Upvotes)
	assert.Zero(t, c.Downvotes)
	assert.False(t, c.Date.IsZero())
}

func TestCreateIDsUniqueAndNewestFirst(t *testing.T) {
	s := newTestStore()

	first := s.Create("a@college.edu", submission("First complaint"))
	second := s.Create("b@college.edu", submission("Second complaint"))

	assert.NotEqual(t, first.ID, second.ID)

	all := s.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest complaint should head the listing")
	assert.Equal(t, first.ID, all[1].ID)
}

func TestListByOwnerFilters(t *testing.T) {
	s := newTestStore()
	s.Create("a@college.edu", submission("From A"))
	s.Create("b@college.edu", submission("From B"))
	s.Create("a@college.edu", submission("Also from A"))

	mine := s.ListByOwner("a@college.edu")
	require.Len(t, mine, 2)
	for _, c := range mine {
		assert.Equal(t, "a@college.edu", c.Student)
	}

	assert.Empty(t, s.ListByOwner("nobody@college.edu"))
}

func TestSetStatusAllowsAnyRecognizedTransition(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Flaky light"))

	// Pending -> Resolved (skipping In Progress) is legal
	updated, err := s.SetStatus(c.ID, models.StatusResolved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, updated.Status)

	// Reopen: Resolved -> Pending
	updated, err = s.SetStatus(c.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)

	// Self-transition is an idempotent no-op
	updated, err = s.SetStatus(c.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, updated.Status)
}

func TestSetStatusRejectsUnknownValue(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Flaky light"))

	_, err := s.SetStatus(c.ID, models.Status("Escalated"))
	assert.ErrorIs(t, err, store.ErrInvalidStatus)

	current, err := s.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, current.Status, "rejected transition must not mutate")
}

func TestSetStatusUnknownComplaint(t *testing.T) {
	s := newTestStore()

	_, err := s.SetStatus(99, models.StatusResolved)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAssignForcesInProgress(t *testing.T) {
	s := newTestStore()

	for _, prior := range []models.Status{models.StatusPending, models.StatusInProgress, models.StatusResolved} {
		c := s.Create("a@college.edu", submission("Needs staff"))
		_, err := s.SetStatus(c.ID, prior)
		require.NoError(t, err)

		updated, err := s.Assign(c.ID, 2)
		require.NoError(t, err)
		assert.Equal(t, models.StatusInProgress, updated.Status, "assignment from %s must start progress", prior)
		require.NotNil(t, updated.AssignedTo)
		assert.Equal(t, "Sarah Electrician", updated.AssignedTo.Name)
	}
}

func TestAssignUnknownIDs(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Needs staff"))

	_, err := s.Assign(99, 1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Assign(c.ID, 42)
	assert.ErrorIs(t, err, store.ErrNotFound)

	current, err := s.Get(c.ID)
	require.NoError(t, err)
	assert.Nil(t, current.AssignedTo, "failed assignment must not mutate")
	assert.Equal(t, models.StatusPending, current.Status)
}

func TestAttachFeedbackOnlyWhenResolved(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Leaky tap"))

	for _, status := range []models.Status{models.StatusPending, models.StatusInProgress} {
		_, err := s.SetStatus(c.ID, status)
		require.NoError(t, err)

		_, err = s.AttachFeedback(c.ID, 4, "Fixed quickly")
		assert.ErrorIs(t, err, store.ErrInvalidState)

		current, _ := s.Get(c.ID)
		assert.Nil(t, current.Feedback, "rejected feedback must leave the complaint unchanged")
	}

	_, err := s.SetStatus(c.ID, models.StatusResolved)
	require.NoError(t, err)

	updated, err := s.AttachFeedback(c.ID, 4, "Fixed quickly")
	require.NoError(t, err)
	require.NotNil(t, updated.Feedback)
	assert.Equal(t, 4, updated.Feedback.Rating)
	assert.Equal(t, "Fixed quickly", updated.Feedback.Comment)
	assert.False(t, updated.Feedback.Date.IsZero())
}

func TestFeedbackSurvivesReopen(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Leaky tap"))
	s.SetStatus(c.ID, models.StatusResolved)
	s.AttachFeedback(c.ID, 5, "Great work")

	reopened, err := s.SetStatus(c.ID, models.StatusPending)
	require.NoError(t, err)
	require.NotNil(t, reopened.Feedback, "reopen leaves earlier feedback in place")

	// But fresh feedback is rejected until resolved again
	_, err = s.AttachFeedback(c.ID, 1, "Broke again")
	assert.ErrorIs(t, err, store.ErrInvalidState)
}

func TestCastVoteKeepsCountersInStep(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Cold showers"))

	users := []string{"u1@college.edu", "u2@college.edu", "u3@college.edu"}
	sequence := []struct {
		user  string
		value models.VoteValue
	}{
		{users[0], models.VoteUp},
		{users[1], models.VoteUp},
		{users[2], models.VoteDown},
		{users[0], models.VoteUp},   // toggle off
		{users[1], models.VoteDown}, // switch
		{users[2], models.VoteDown}, // toggle off
		{users[0], models.VoteDown},
	}

	for _, step := range sequence {
		_, updated, err := s.CastVote(c.ID, step.user, step.value)
		require.NoError(t, err)

		// Counters always equal the number of live voters.
		live := 0
		for _, u := range users {
			if _, ok, _ := s.UserVote(c.ID, u); ok {
				live++
			}
		}
		assert.Equal(t, live, updated.Upvotes+updated.Downvotes)
		assert.GreaterOrEqual(t, updated.Upvotes, 0)
		assert.GreaterOrEqual(t, updated.Downvotes, 0)
	}

	final, _ := s.Get(c.ID)
	assert.Equal(t, 0, final.Upvotes)
	assert.Equal(t, 2, final.Downvotes)
}

func TestCastVoteToggleRestoresCounts(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Cold showers"))

	outcome, updated, err := s.CastVote(c.ID, "v@college.edu", models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, "up", outcome.Applied)
	assert.Equal(t, 1, updated.Upvotes)

	outcome, updated, err = s.CastVote(c.ID, "v@college.edu", models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, models.VoteRemoved, outcome.Applied)
	assert.Equal(t, 0, updated.Upvotes)
	assert.Equal(t, 0, updated.Downvotes)
}

func TestCastVoteUnknownComplaint(t *testing.T) {
	s := newTestStore()

	_, _, err := s.CastVote(42, "v@college.edu", models.VoteUp)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Dusty corridor"))
	s.Assign(c.ID, 1)

	got, err := s.Get(c.ID)
	require.NoError(t, err)

	got.Title = "tampered"
	got.AssignedTo.Name = "tampered"

	fresh, err := s.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dusty corridor", fresh.Title)
	assert.Equal(t, "John Maintenance", fresh.AssignedTo.Name)
}

func TestConcurrentVotesStayConsistent(t *testing.T) {
	s := newTestStore()
	c := s.Create("a@college.edu", submission("Noisy generator"))

	const voters = 32
	var wg sync.WaitGroup
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			user := string(rune('a'+n%26)) + "@college.edu"
			value := models.VoteUp
			if n%2 == 1 {
				value = models.VoteDown
			}
			_, _, err := s.CastVote(c.ID, user, value)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	final, err := s.Get(c.ID)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, final.Upvotes, 0)
	assert.GreaterOrEqual(t, final.Downvotes, 0)

	// The counters must agree with the set of live votes.
	live := 0
	for n := 0; n < 26; n++ {
		user := string(rune('a'+n)) + "@college.edu"
		if _, ok, _ := s.UserVote(c.ID, user); ok {
			live++
		}
	}
	assert.Equal(t, live, final.Upvotes+final.Downvotes)
}
