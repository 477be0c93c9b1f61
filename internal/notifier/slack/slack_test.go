package slack

import (
	"context"
	"errors"
	"testing"

	"github.com/askelund/huddle/internal/leaderboard"
	"github.com/askelund/huddle/internal/metrics"
	"github.com/askelund/huddle/internal/roster"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/askelund/huddle/internal/scoring"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSlackAPI is a mock implementation of the parts of the slack.Client that we use.
type mockSlackAPI struct {
	postMessageContextFunc func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

func (m *mockSlackAPI) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postMessageContextFunc != nil {
		return m.postMessageContextFunc(ctx, channelID, options...)
	}
	return "C12345", "123456789.12345", nil
}

func TestSendMessage_DryRun(t *testing.T) {
	metrics := metrics.NewMock()
	// Pass nil for the api, as it shouldn't be called in dry-run mode.
	notifier := NewNotifierWithAPI(nil, "C123", "", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, true)
	require.NoError(t, err)
}

func TestSendMessage_Success(t *testing.T) {
	postMessageCalled := false
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			postMessageCalled = true
			assert.Equal(t, "C123", channelID)
			return "C123", "ts123", nil
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", "", metrics)

	message := slackapi.NewBlockMessage(slackapi.NewSectionBlock(slackapi.NewTextBlockObject("plain_text", "hello", false, false), nil, nil))
	_, _, err := notifier.sendMessage(message, false)

	require.NoError(t, err)
	assert.True(t, postMessageCalled, "PostMessageContext should have been called")
	assert.Equal(t, 1, metrics.NotifSent())
	assert.Equal(t, 0, metrics.NotifFailed())
}

func TestSendMessage_Failure(t *testing.T) {
	expectedErr := errors.New("slack API is down")
	api := &mockSlackAPI{
		postMessageContextFunc: func(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
			return "", "", expectedErr
		},
	}

	metrics := metrics.NewMock()
	notifier := NewNotifierWithAPI(api, "C123", "", metrics)

	message := slackapi.NewBlockMessage()
	_, _, err := notifier.sendMessage(message, false)

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.Equal(t, 0, metrics.NotifSent())
	assert.Equal(t, 1, metrics.NotifFailed())
}

func TestFormatEventAnnouncement(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", "https://huddle.club", metrics.NewMock())

	event := &schedule.Event{
		ID:        "e1",
		Title:     "Tuesday practice",
		Date:      "2025-09-02",
		StartTime: "18:00",
		EndTime:   "20:00",
		Location:  "Fælledparken",
		Type:      schedule.EventPractice,
	}

	msg := notifier.formatEventAnnouncement(event)
	require.NotEmpty(t, msg.Blocks.BlockSet)

	header, ok := msg.Blocks.BlockSet[0].(*slackapi.HeaderBlock)
	require.True(t, ok, "first block should be a header")
	assert.Contains(t, header.Text.Text, "Practice")

	ctxBlock, ok := msg.Blocks.BlockSet[len(msg.Blocks.BlockSet)-1].(*slackapi.ContextBlock)
	require.True(t, ok, "last block should be a context")
	elements := ctxBlock.ContextElements.Elements
	require.NotEmpty(t, elements)
	rsvp, ok := elements[len(elements)-1].(*slackapi.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "RSVP: https://huddle.club/events/e1", rsvp.Text)
}

func TestFormatEventAnnouncement_MatchIncludesOpponent(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", "https://huddle.club", metrics.NewMock())

	event := &schedule.Event{
		ID:       "e2",
		Title:    "League round 3",
		Date:     "2025-09-06",
		Location: "Valby Idrætspark",
		Type:     schedule.EventMatch,
		Opponent: "Aarhus Hucks",
	}

	msg := notifier.formatEventAnnouncement(event)
	require.Greater(t, len(msg.Blocks.BlockSet), 1)

	section, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
	require.True(t, ok, "second block should be a section")
	assert.Contains(t, section.Text.Text, "Aarhus Hucks")
}

func TestFormatLeaderboardDigest(t *testing.T) {
	notifier := NewNotifierWithAPI(nil, "C123", "https://huddle.club", metrics.NewMock())

	t.Run("empty standings", func(t *testing.T) {
		msg := notifier.formatLeaderboardDigest(nil)
		require.Len(t, msg.Blocks.BlockSet, 2)
	})

	t.Run("ranked standings", func(t *testing.T) {
		stats := []leaderboard.PlayerStats{
			{
				Player:      roster.Player{ID: "p1", Name: "Astrid"},
				Counters:    scoring.Counters{AttendanceCount: 5, EarlyArrivalCount: 3},
				TotalPoints: 12,
				Rank:        1,
				Badges:      []scoring.Badge{scoring.BadgeIronMan, scoring.BadgeEarlyBird},
			},
			{
				Player:      roster.Player{ID: "p2", Name: "Bo"},
				Counters:    scoring.Counters{AttendanceCount: 2},
				TotalPoints: 2,
				Rank:        2,
				Badges:      []scoring.Badge{},
			},
		}

		msg := notifier.formatLeaderboardDigest(stats)
		require.Len(t, msg.Blocks.BlockSet, 3)

		first, ok := msg.Blocks.BlockSet[1].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.Contains(t, first.Text.Text, "Astrid")
		assert.Contains(t, first.Text.Text, "Points: 12")
		assert.Contains(t, first.Text.Text, "iron_man")

		second, ok := msg.Blocks.BlockSet[2].(*slackapi.SectionBlock)
		require.True(t, ok)
		assert.NotContains(t, second.Text.Text, "Badges:")
	})
}
