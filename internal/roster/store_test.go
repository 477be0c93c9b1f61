package roster_test

import (
	"database/sql"
	"testing"

	"github.com/askelund/huddle/internal/database"
	"github.com/askelund/huddle/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (roster.RosterStore, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	return roster.New(db), db, dbTeardown
}

func testPlayer(id, name string) *roster.Player {
	return &roster.Player{
		ID:           id,
		Name:         name,
		JerseyNumber: 7,
		Position:     roster.PositionCutter,
		YearJoined:   2021,
		Email:        name + "@example.com",
		AccessCode:   "code-" + id,
	}
}

func TestUpsertAndGetPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p := testPlayer("p1", "Frida Holm")
	p.Nickname = "Frysen"
	p.CardConfig = &roster.CardConfig{Theme: "dark", Background: "dots", Accent: "#ff7a00"}
	require.NoError(t, store.UpsertPlayer(p))

	got, err := store.GetPlayer("p1")
	require.NoError(t, err)
	assert.Equal(t, "Frida Holm", got.Name)
	assert.Equal(t, "Frysen", got.Nickname)
	assert.Equal(t, roster.PositionCutter, got.Position)
	require.NotNil(t, got.CardConfig)
	assert.Equal(t, "dots", got.CardConfig.Background)

	// Upsert overwrites the row entirely.
	p.Name = "Frida H. Holm"
	p.IsCaptain = true
	require.NoError(t, store.UpsertPlayer(p))

	got, err = store.GetPlayer("p1")
	require.NoError(t, err)
	assert.Equal(t, "Frida H. Holm", got.Name)
	assert.True(t, got.IsCaptain)
}

func TestGetPlayer_NotFound(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	_, err := store.GetPlayer("nope")
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestGetPlayerByAccessCode(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayer(testPlayer("p1", "Frida Holm")))
	require.NoError(t, store.UpsertPlayer(testPlayer("p2", "Jonas Krag")))

	got, err := store.GetPlayerByAccessCode("code-p2")
	require.NoError(t, err)
	assert.Equal(t, "Jonas Krag", got.Name)

	_, err = store.GetPlayerByAccessCode("wrong-code")
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestGetAllPlayers_OrderedByName(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayer(testPlayer("p1", "Nina Dahl")))
	require.NoError(t, store.UpsertPlayer(testPlayer("p2", "Anders Beck")))

	players, err := store.GetAllPlayers()
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Anders Beck", players[0].Name)
	assert.Equal(t, "Nina Dahl", players[1].Name)
}

func TestUpdateProfile(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p := testPlayer("p1", "Frida Holm")
	p.IsAdmin = true
	require.NoError(t, store.UpsertPlayer(p))

	err := store.UpdateProfile("p1", roster.ProfileUpdate{
		Name:       "Frida Holm",
		Nickname:   "Frysen",
		FunFact:    "Once scored a callahan in a hailstorm",
		CardConfig: &roster.CardConfig{Theme: "light", Background: "waves", Accent: "#2266aa"},
	})
	require.NoError(t, err)

	got, err := store.GetPlayer("p1")
	require.NoError(t, err)
	assert.Equal(t, "Frysen", got.Nickname)
	assert.Equal(t, "Once scored a callahan in a hailstorm", got.FunFact)
	require.NotNil(t, got.CardConfig)
	assert.Equal(t, "waves", got.CardConfig.Background)
	// Admin flag must survive a profile update.
	assert.True(t, got.IsAdmin)

	// Access code must survive too.
	var code string
	require.NoError(t, db.QueryRow("SELECT access_code FROM players WHERE id = 'p1'").Scan(&code))
	assert.Equal(t, "code-p1", code)

	err = store.UpdateProfile("ghost", roster.ProfileUpdate{Name: "Ghost"})
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestDeletePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	require.NoError(t, store.UpsertPlayer(testPlayer("p1", "Frida Holm")))
	require.NoError(t, store.DeletePlayer("p1"))

	_, err := store.GetPlayer("p1")
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)

	assert.ErrorIs(t, store.DeletePlayer("p1"), roster.ErrPlayerNotFound)
}

func TestParsePosition(t *testing.T) {
	for _, valid := range []string{"handler", "cutter", "hybrid"} {
		pos, err := roster.ParsePosition(valid)
		require.NoError(t, err)
		assert.Equal(t, roster.Position(valid), pos)
	}

	_, err := roster.ParsePosition("goalkeeper")
	assert.Error(t, err)
}
