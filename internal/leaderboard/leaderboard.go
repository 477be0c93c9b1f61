package leaderboard

import (
	"sort"

	"github.com/askelund/huddle/internal/attendance"
	"github.com/askelund/huddle/internal/roster"
	"github.com/askelund/huddle/internal/scoring"
)

// PlayerStats is the derived, never-stored leaderboard row for one player.
// It is recomputed from the full attendance history on every read.
type PlayerStats struct {
	roster.Player
	scoring.Counters
	TotalPoints int             `json:"total_points"`
	Rank        int             `json:"rank"`
	Badges      []scoring.Badge `json:"badges"`
}

// Assemble aggregates all attendance records per rostered player and returns
// one PlayerStats per player, sorted by total points descending with 1-based
// ranks. Players with no records still appear with zero stats, ranked last.
//
// Ties on total points break on attendance count (higher first), then on name
// ascending, so the ordering is deterministic across reads. Tied players still
// receive distinct consecutive ranks.
func Assemble(players []roster.Player, records []attendance.Record) []PlayerStats {
	byPlayer := make(map[string][]attendance.Record, len(players))
	for _, r := range records {
		byPlayer[r.PlayerID] = append(byPlayer[r.PlayerID], r)
	}

	stats := make([]PlayerStats, 0, len(players))
	for _, p := range players {
		var c scoring.Counters
		for _, r := range byPlayer[p.ID] {
			if !r.IsPresent {
				continue
			}
			c.AttendanceCount++
			if r.IsEarly {
				c.EarlyArrivalCount++
			}
			if r.IsOnTime {
				c.OnTimeCount++
			}
			if r.HasDoubleJersey {
				c.DoubleJerseyCount++
			}
		}
		stats = append(stats, PlayerStats{
			Player:      p,
			Counters:    c,
			TotalPoints: scoring.TotalPoints(c),
			Badges:      scoring.EvaluateBadges(c),
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].TotalPoints != stats[j].TotalPoints {
			return stats[i].TotalPoints > stats[j].TotalPoints
		}
		if stats[i].AttendanceCount != stats[j].AttendanceCount {
			return stats[i].AttendanceCount > stats[j].AttendanceCount
		}
		return stats[i].Name < stats[j].Name
	})

	for i := range stats {
		stats[i].Rank = i + 1
	}
	return stats
}
