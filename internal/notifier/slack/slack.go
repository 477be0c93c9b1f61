package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/askelund/huddle/internal/leaderboard"
	"github.com/askelund/huddle/internal/metrics"
	"github.com/askelund/huddle/internal/notifier"
	"github.com/askelund/huddle/internal/schedule"
	"github.com/charmbracelet/log"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	baseURL   string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier. baseURL is the public address of the
// club site, used to link announcements back to the event page.
func NewNotifier(token, channelID, baseURL string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		baseURL:   baseURL,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID, baseURL string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		baseURL:   baseURL,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// SendEventAnnouncement posts a new or updated event to the club channel.
func (s *Notifier) SendEventAnnouncement(event *schedule.Event, dryRun bool) error {
	msg := s.formatEventAnnouncement(event)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// SendLeaderboardDigest posts the current standings to the club channel.
func (s *Notifier) SendLeaderboardDigest(stats []leaderboard.PlayerStats, dryRun bool) error {
	msg := s.formatLeaderboardDigest(stats)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// formatEventAnnouncement creates the Slack message for an event using Block Kit.
func (s *Notifier) formatEventAnnouncement(event *schedule.Event) slack.Message {
	blocks := make([]slack.Block, 0)

	var header string
	switch event.Type {
	case schedule.EventMatch:
		header = "🥏 Game day! 🥏"
	case schedule.EventTournament:
		header = "🏆 Tournament time! 🏆"
	case schedule.EventSocial:
		header = "🎉 Club social 🎉"
	default:
		header = "🥏 Practice scheduled 🥏"
	}
	blocks = append(blocks, slack.NewHeaderBlock(slack.NewTextBlockObject("plain_text", header, true, false)))

	details := fmt.Sprintf("%s\nWhen: %s %s-%s\nWhere: %s", event.Title, event.Date, event.StartTime, event.EndTime, event.Location)
	if event.Opponent != "" {
		details += fmt.Sprintf("\nOpponent: %s", event.Opponent)
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", details, true, false), nil, nil))

	if event.Description != "" {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", event.Description, true, false), nil, nil))
	}

	var contextElements []slack.MixedElement
	if event.MapURL != "" {
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", fmt.Sprintf("Directions: %s", event.MapURL), false, false))
	}
	rsvpText := "RSVP on the club site!"
	if s.baseURL != "" {
		rsvpText = fmt.Sprintf("RSVP: %s/events/%s", s.baseURL, event.ID)
	}
	contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", rsvpText, true, false))
	blocks = append(blocks, slack.NewContextBlock("", contextElements...))

	return slack.NewBlockMessage(blocks...)
}

// formatLeaderboardDigest creates the Slack message for the standings using Block Kit.
func (s *Notifier) formatLeaderboardDigest(stats []leaderboard.PlayerStats) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏆 Spirit Leaderboard 🏆", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(stats) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No attendance recorded yet. See you at practice!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, stat := range stats {
		var medal string
		switch stat.Rank {
		case 1:
			medal = "🥇"
		case 2:
			medal = "🥈"
		case 3:
			medal = "🥉"
		}

		playerText := fmt.Sprintf("%d. %s %s\n> Points: %d | Sessions: %d",
			stat.Rank,
			medal,
			stat.Name,
			stat.TotalPoints,
			stat.AttendanceCount,
		)
		if len(stat.Badges) > 0 {
			badges := make([]string, 0, len(stat.Badges))
			for _, b := range stat.Badges {
				badges = append(badges, string(b))
			}
			playerText += " | Badges: " + strings.Join(badges, ", ")
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", playerText, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
