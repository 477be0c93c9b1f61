package attendance_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (attendance.AttendanceStore, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return attendance.New(db), dbTeardown
}

func TestBulkUpsert_InsertsFullRoster(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	records := []attendance.Record{
		{PlayerID: "p1", EventID: "e1", IsPresent: true, IsEarly: true},
		{PlayerID: "p2", EventID: "e1", IsPresent: true, Notes: "left early"},
		{PlayerID: "p3", EventID: "e1"},
	}
	require.NoError(t, store.BulkUpsert("e1", records))

	got, err := store.GetForEvent("e1")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

func TestBulkUpsert_OverwritesEntireRecord(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.BulkUpsert("e1", []attendance.Record{
		{PlayerID: "p1", EventID: "e1", IsPresent: true, IsEarly: true, IsOnTime: true, Notes: "first pull"},
	}))

	// The save is a full replacement, not a patch: cleared flags must clear.
	require.NoError(t, store.BulkUpsert("e1", []attendance.Record{
		{PlayerID: "p1", EventID: "e1", IsPresent: true},
	}))

	got, err := store.GetForEvent("e1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].IsPresent)
	assert.False(t, got[0].IsEarly)
	assert.False(t, got[0].IsOnTime)
	assert.Empty(t, got[0].Notes)
}

func TestBulkUpsert_Idempotent(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	records := []attendance.Record{
		{PlayerID: "p1", EventID: "e1", IsPresent: true, HasDoubleJersey: true},
		{PlayerID: "p2", EventID: "e1"},
	}
	require.NoError(t, store.BulkUpsert("e1", records))
	first, err := store.GetForEvent("e1")
	require.NoError(t, err)

	require.NoError(t, store.BulkUpsert("e1", records))
	second, err := store.GetForEvent("e1")
	require.NoError(t, err)

	sortRecords(first)
	sortRecords(second)
	assert.Equal(t, first, second)
}

func TestBulkUpsert_Completeness(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	// Three players already have records for the event.
	require.NoError(t, store.BulkUpsert("e1", []attendance.Record{
		{PlayerID: "p01", EventID: "e1", IsPresent: true, IsEarly: true},
		{PlayerID: "p02", EventID: "e1", IsPresent: true},
		{PlayerID: "p03", EventID: "e1", IsPresent: true, Notes: "stale"},
	}))

	// Admin saves a 20-player draft set covering the full roster.
	var drafts []attendance.Record
	for i := 1; i <= 20; i++ {
		id := playerID(i)
		drafts = append(drafts, attendance.Record{PlayerID: id, EventID: "e1", IsPresent: i%2 == 0})
	}
	require.NoError(t, store.BulkUpsert("e1", drafts))

	got, err := store.GetForEvent("e1")
	require.NoError(t, err)
	require.Len(t, got, 20, "exactly one record per roster player, no duplicates, no gaps")

	byPlayer := make(map[string]attendance.Record)
	for _, r := range got {
		byPlayer[r.PlayerID] = r
	}
	// The pre-existing rows were fully overwritten with the new values.
	assert.False(t, byPlayer["p01"].IsEarly)
	assert.Empty(t, byPlayer["p03"].Notes)
	assert.False(t, byPlayer["p01"].IsPresent)
	assert.True(t, byPlayer["p02"].IsPresent)
}

func TestGetForEvent_ScopedToEvent(t *testing.T) {
	store, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.BulkUpsert("e1", []attendance.Record{{PlayerID: "p1", EventID: "e1", IsPresent: true}}))
	require.NoError(t, store.BulkUpsert("e2", []attendance.Record{{PlayerID: "p1", EventID: "e2"}}))

	got, err := store.GetForEvent("e1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "e1", got[0].EventID)

	all, err := store.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBulkSaveError_NamesFailedPlayers(t *testing.T) {
	err := &attendance.BulkSaveError{EventID: "e1", FailedPlayerIDs: []string{"p2", "p5"}}
	assert.Contains(t, err.Error(), "e1")
	assert.Contains(t, err.Error(), "p2")
	assert.Contains(t, err.Error(), "p5")
	assert.Contains(t, err.Error(), "2 record(s)")
}

func playerID(i int) string {
	return fmt.Sprintf("p%02d", i)
}

func sortRecords(records []attendance.Record) {
	sort.Slice(records, func(i, j int) bool { return records[i].PlayerID < records[j].PlayerID })
}
