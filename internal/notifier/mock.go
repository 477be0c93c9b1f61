package notifier

import (
	"sync"

	"github.com/askelund/huddle/internal/leaderboard"
	"github.com/askelund/huddle/internal/schedule"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendEventAnnouncementFunc func(event *schedule.Event, dryRun bool) error
	SendLeaderboardDigestFunc func(stats []leaderboard.PlayerStats, dryRun bool) error

	// Call records
	SendEventAnnouncementCalls []*schedule.Event
	SendLeaderboardDigestCalls [][]leaderboard.PlayerStats
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventAnnouncementCalls = nil
	m.SendLeaderboardDigestCalls = nil
}

func (m *Mock) SendEventAnnouncement(event *schedule.Event, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendEventAnnouncementCalls = append(m.SendEventAnnouncementCalls, event)
	if m.SendEventAnnouncementFunc != nil {
		return m.SendEventAnnouncementFunc(event, dryRun)
	}
	return nil
}

func (m *Mock) SendLeaderboardDigest(stats []leaderboard.PlayerStats, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLeaderboardDigestCalls = append(m.SendLeaderboardDigestCalls, stats)
	if m.SendLeaderboardDigestFunc != nil {
		return m.SendLeaderboardDigestFunc(stats, dryRun)
	}
	return nil
}
