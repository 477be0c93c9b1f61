package notifier

import (
	"github.com/askelund/huddle/internal/leaderboard"
	"github.com/askelund/huddle/internal/schedule"
)

// Notifier defines a high-level interface for sending notifications about club events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For newly created or updated events
	SendEventAnnouncement(event *schedule.Event, dryRun bool) error
	// For the weekly standings post
	SendLeaderboardDigest(stats []leaderboard.PlayerStats, dryRun bool) error
}
