package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_RunsMigrations(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	for _, table := range []string{"players", "events", "attendance", "rsvps", "gallery", "gallery_submissions", "comments"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDB_CompositeAttendanceKey(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	defer teardown()

	_, err = db.Exec(`INSERT INTO attendance (player_id, event_id, is_present) VALUES ('p1', 'e1', 1)`)
	require.NoError(t, err)

	// A second row for the same (player, event) pair must be rejected.
	_, err = db.Exec(`INSERT INTO attendance (player_id, event_id, is_present) VALUES ('p1', 'e1', 0)`)
	assert.Error(t, err)
}
