package attendance_test

import (
	"testing"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDrafts_CoversFullRoster(t *testing.T) {
	players := []roster.Player{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	existing := []attendance.Record{
		{PlayerID: "p2", EventID: "e1", IsPresent: true, IsEarly: true, Notes: "brought the cones"},
	}

	drafts := attendance.SeedDrafts(players, existing, "e1")
	require.Len(t, drafts, 3)

	byPlayer := make(map[string]attendance.Record)
	for _, d := range drafts {
		byPlayer[d.PlayerID] = d
	}

	// Existing record carried over verbatim.
	assert.True(t, byPlayer["p2"].IsPresent)
	assert.True(t, byPlayer["p2"].IsEarly)
	assert.Equal(t, "brought the cones", byPlayer["p2"].Notes)

	// Absent players defaulted to all-false flags.
	assert.Equal(t, attendance.Record{PlayerID: "p1", EventID: "e1"}, byPlayer["p1"])
	assert.Equal(t, attendance.Record{PlayerID: "p3", EventID: "e1"}, byPlayer["p3"])
}

func TestSeedDrafts_SaveWithoutEditsPreservesState(t *testing.T) {
	// The invariant behind seeding: toggling one player's checkbox must never
	// drop another player's already-saved state. Saving an unedited seeded
	// draft set leaves the store exactly as it was.
	store, teardown := setupTestDB(t)
	defer teardown()

	players := []roster.Player{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}
	require.NoError(t, store.BulkUpsert("e1", []attendance.Record{
		{PlayerID: "p1", EventID: "e1", IsPresent: true, IsOnTime: true},
	}))

	before, err := store.GetForEvent("e1")
	require.NoError(t, err)

	drafts := attendance.SeedDrafts(players, before, "e1")

	// Admin edits only p2, then saves the whole set.
	for i := range drafts {
		if drafts[i].PlayerID == "p2" {
			drafts[i].IsPresent = true
		}
	}
	require.NoError(t, store.BulkUpsert("e1", drafts))

	after, err := store.GetForEvent("e1")
	require.NoError(t, err)
	byPlayer := make(map[string]attendance.Record)
	for _, r := range after {
		byPlayer[r.PlayerID] = r
	}

	// p1 untouched by the edit, still present and on time.
	assert.True(t, byPlayer["p1"].IsPresent)
	assert.True(t, byPlayer["p1"].IsOnTime)
	assert.True(t, byPlayer["p2"].IsPresent)
	assert.False(t, byPlayer["p3"].IsPresent)
}

func TestSeedDrafts_EmptyExisting(t *testing.T) {
	drafts := attendance.SeedDrafts([]roster.Player{{ID: "p1"}}, nil, "e9")
	require.Len(t, drafts, 1)
	assert.Equal(t, attendance.Record{PlayerID: "p1", EventID: "e9"}, drafts[0])
}
