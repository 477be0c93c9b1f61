package leaderboard_test

import (
	"testing"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/leaderboard"
	"github.com/askelund/huddle/internal/roster"
	"github.com/askelund/huddle/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func present(playerID, eventID string, early, onTime, double bool) attendance.Record {
	return attendance.Record{
		PlayerID:        playerID,
		EventID:         eventID,
		IsPresent:       true,
		IsEarly:         early,
		IsOnTime:        onTime,
		HasDoubleJersey: double,
	}
}

func TestAssemble_CountersAndPoints(t *testing.T) {
	players := []roster.Player{{ID: "p1", Name: "Frida"}}
	records := []attendance.Record{
		present("p1", "e1", true, false, false),  // 3
		present("p1", "e2", false, true, false),  // 2
		present("p1", "e3", false, false, true),  // 2
		{PlayerID: "p1", EventID: "e4", IsEarly: true}, // absent, ignored entirely
	}

	stats := leaderboard.Assemble(players, records)
	require.Len(t, stats, 1)
	assert.Equal(t, 3, stats[0].AttendanceCount)
	assert.Equal(t, 1, stats[0].EarlyArrivalCount)
	assert.Equal(t, 1, stats[0].OnTimeCount)
	assert.Equal(t, 1, stats[0].DoubleJerseyCount)
	assert.Equal(t, 7, stats[0].TotalPoints)
	assert.Equal(t, 1, stats[0].Rank)
}

func TestAssemble_ZeroRecordPlayersRankLast(t *testing.T) {
	players := []roster.Player{
		{ID: "p1", Name: "Frida"},
		{ID: "p2", Name: "Jonas"},
	}
	records := []attendance.Record{present("p1", "e1", false, false, false)}

	stats := leaderboard.Assemble(players, records)
	require.Len(t, stats, 2)
	assert.Equal(t, "Frida", stats[0].Name)
	assert.Equal(t, "Jonas", stats[1].Name)
	assert.Equal(t, 0, stats[1].TotalPoints)
	assert.Equal(t, 0, stats[1].AttendanceCount)
	assert.Equal(t, 2, stats[1].Rank)
	assert.Empty(t, stats[1].Badges)
}

func TestAssemble_RankingStrictOrder(t *testing.T) {
	players := []roster.Player{
		{ID: "a", Name: "Anders"},
		{ID: "b", Name: "Bo"},
		{ID: "c", Name: "Clara"},
	}
	var records []attendance.Record
	// Anders: 3 plain attendances = 3 points. Bo: 1 full house = 5 points.
	for _, e := range []string{"e1", "e2", "e3"} {
		records = append(records, present("a", e, false, false, false))
	}
	records = append(records, present("b", "e1", true, true, true))

	stats := leaderboard.Assemble(players, records)
	require.Len(t, stats, 3)

	// More points always means a strictly better rank.
	for i := 0; i < len(stats); i++ {
		for j := i + 1; j < len(stats); j++ {
			if stats[i].TotalPoints > stats[j].TotalPoints {
				assert.Less(t, stats[i].Rank, stats[j].Rank)
			}
		}
	}
	assert.Equal(t, "Bo", stats[0].Name)
	assert.Equal(t, "Anders", stats[1].Name)
	assert.Equal(t, "Clara", stats[2].Name)
}

func TestAssemble_TieBreaking(t *testing.T) {
	// A and B tie at 10 points, C trails on 7. Ties break on attendance
	// count first, then name; ranks stay distinct and consecutive.
	players := []roster.Player{
		{ID: "b", Name: "Bo"},
		{ID: "a", Name: "Anders"},
		{ID: "c", Name: "Clara"},
	}
	var records []attendance.Record
	// Anders: 2 x (present+early+onTime) = 2 x 4 points, plus 2 plain = 10 points, attendance 4.
	records = append(records,
		present("a", "e1", true, true, false),
		present("a", "e2", true, true, false),
		present("a", "e3", false, false, false),
		present("a", "e4", false, false, false),
	)
	// Bo: 2 x full house = 10 points, attendance 2.
	records = append(records,
		present("b", "e1", true, true, true),
		present("b", "e2", true, true, true),
	)
	// Clara: 7 points.
	records = append(records,
		present("c", "e1", true, true, true),
		present("c", "e2", false, true, false),
	)

	stats := leaderboard.Assemble(players, records)
	require.Len(t, stats, 3)

	assert.Equal(t, 10, stats[0].TotalPoints)
	assert.Equal(t, 10, stats[1].TotalPoints)
	assert.Equal(t, 7, stats[2].TotalPoints)

	// Higher attendance count wins the tie.
	assert.Equal(t, "Anders", stats[0].Name)
	assert.Equal(t, "Bo", stats[1].Name)
	assert.Equal(t, []int{1, 2, 3}, []int{stats[0].Rank, stats[1].Rank, stats[2].Rank})
}

func TestAssemble_BadgesIncluded(t *testing.T) {
	players := []roster.Player{{ID: "p1", Name: "Frida"}}
	var records []attendance.Record
	// 5 attendances, 3 of them early: iron_man + early_bird.
	for i, e := range []string{"e1", "e2", "e3", "e4", "e5"} {
		records = append(records, present("p1", e, i < 3, false, false))
	}

	stats := leaderboard.Assemble(players, records)
	require.Len(t, stats, 1)
	assert.Equal(t, 5, stats[0].AttendanceCount)
	assert.Equal(t, 3, stats[0].EarlyArrivalCount)
	assert.Contains(t, stats[0].Badges, scoring.BadgeIronMan)
	assert.Contains(t, stats[0].Badges, scoring.BadgeEarlyBird)
	assert.Len(t, stats[0].Badges, 2)
}

func TestAssemble_EmptyRoster(t *testing.T) {
	stats := leaderboard.Assemble(nil, nil)
	assert.Empty(t, stats)
}
