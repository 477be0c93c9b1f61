package http

import (
	"net/http"
	"time"

	"github.com/askelund/huddle/internal/leaderboard"
	"github.com/charmbracelet/log"
)

// LeaderboardHandler recomputes the full standings from the attendance
// history on every request. The club is small enough that caching would
// only add staleness.
func (s *Server) LeaderboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		players, err := s.Roster.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get players")
			return
		}
		records, err := s.Attendance.GetAll()
		if err != nil {
			log.Error("Failed to get attendance records", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get attendance")
			return
		}

		stats := leaderboard.Assemble(players, records)
		s.Metrics.ObserveLeaderboardBuildDuration(time.Since(start).Seconds())
		writeJSON(w, http.StatusOK, stats)
	}
}

// LeaderboardDigestHandler posts the current standings to the club channel.
func (s *Server) LeaderboardDigestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Roster.GetAllPlayers()
		if err != nil {
			log.Error("Failed to get players", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get players")
			return
		}
		records, err := s.Attendance.GetAll()
		if err != nil {
			log.Error("Failed to get attendance records", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to get attendance")
			return
		}

		stats := leaderboard.Assemble(players, records)
		if err := s.Notifier.SendLeaderboardDigest(stats, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send leaderboard digest", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to send digest")
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}
