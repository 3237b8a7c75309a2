package store_test

import (
	"testing"

	"github.com/hostelhub/complaint-server/internal/models"
	"github.com/hostelhub/complaint-server/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteLedgerFirstCast(t *testing.T) {
	ledger := store.NewVoteLedger()

	outcome, _, hadPrevious := ledger.Cast(1, "john.doe@college.edu", models.VoteUp)

	assert.Equal(t, "up", outcome.Applied)
	assert.False(t, hadPrevious)

	v, ok := ledger.Get(1, "john.doe@college.edu")
	require.True(t, ok)
	assert.Equal(t, models.VoteUp, v)
}

func TestVoteLedgerToggleOffRemoves(t *testing.T) {
	ledger := store.NewVoteLedger()
	ledger.Cast(1, "john.doe@college.edu", models.VoteUp)

	outcome, previous, hadPrevious := ledger.Cast(1, "john.doe@college.edu", models.VoteUp)

	assert.Equal(t, models.VoteRemoved, outcome.Applied)
	assert.True(t, hadPrevious)
	assert.Equal(t, models.VoteUp, previous)

	_, ok := ledger.Get(1, "john.doe@college.edu")
	assert.False(t, ok, "toggled-off vote should leave no entry")
}

func TestVoteLedgerSwitchReplaces(t *testing.T) {
	ledger := store.NewVoteLedger()
	ledger.Cast(1, "john.doe@college.edu", models.VoteUp)

	outcome, previous, hadPrevious := ledger.Cast(1, "john.doe@college.edu", models.VoteDown)

	assert.Equal(t, "down", outcome.Applied)
	assert.True(t, hadPrevious)
	assert.Equal(t, models.VoteUp, previous)

	up, down := ledger.Counts(1)
	assert.Equal(t, 0, up, "switching must not leave a stale up entry")
	assert.Equal(t, 1, down)
}

func TestVoteLedgerOneEntryPerUser(t *testing.T) {
	ledger := store.NewVoteLedger()

	// A long churn of casts from one user can never yield more than one
	// live entry.
	sequence := []models.VoteValue{
		models.VoteUp, models.VoteDown, models.VoteDown,
		models.VoteUp, models.VoteUp, models.VoteDown,
	}
	for _, v := range sequence {
		ledger.Cast(7, "jane.smith@college.edu", v)
	}

	up, down := ledger.Counts(7)
	assert.LessOrEqual(t, up+down, 1)
}

func TestVoteLedgerIsolatesComplaints(t *testing.T) {
	ledger := store.NewVoteLedger()
	ledger.Cast(1, "john.doe@college.edu", models.VoteUp)
	ledger.Cast(2, "john.doe@college.edu", models.VoteDown)

	up, down := ledger.Counts(1)
	assert.Equal(t, 1, up)
	assert.Equal(t, 0, down)

	up, down = ledger.Counts(2)
	assert.Equal(t, 0, up)
	assert.Equal(t, 1, down)
}
