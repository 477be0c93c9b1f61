package schedule

import (
	"database/sql"
	"fmt"
	"sync"
)

// store handles all database operations for events and RSVPs.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// EventType classifies an event.
type EventType string

const (
	EventPractice   EventType = "practice"
	EventMatch      EventType = "match"
	EventSocial     EventType = "social"
	EventTournament EventType = "tournament"
)

// ParseEventType validates an event type string from a form or API payload.
func ParseEventType(s string) (EventType, error) {
	switch EventType(s) {
	case EventPractice, EventMatch, EventSocial, EventTournament:
		return EventType(s), nil
	}
	return "", fmt.Errorf("unknown event type %q", s)
}

// Event is a scheduled club activity.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // YYYY-MM-DD
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time,omitempty"`
	Location    string    `json:"location"`
	MapURL      string    `json:"map_url,omitempty"`
	Type        EventType `json:"type"`
	Opponent    string    `json:"opponent,omitempty"`
}

// RSVPStatus is a player's declared intent for an event. It is independent of
// attendance; the attendance editor only surfaces it for convenience.
type RSVPStatus string

const (
	RSVPComing    RSVPStatus = "coming"
	RSVPMaybe     RSVPStatus = "maybe"
	RSVPNotComing RSVPStatus = "not_coming"
)

// ParseRSVPStatus validates an RSVP status string.
func ParseRSVPStatus(s string) (RSVPStatus, error) {
	switch RSVPStatus(s) {
	case RSVPComing, RSVPMaybe, RSVPNotComing:
		return RSVPStatus(s), nil
	}
	return "", fmt.Errorf("unknown rsvp status %q", s)
}

// RSVP is keyed by (player, event); at most one per pair.
type RSVP struct {
	PlayerID  string     `json:"player_id"`
	EventID   string     `json:"event_id"`
	Status    RSVPStatus `json:"status"`
	CreatedAt int64      `json:"created_at"`
}
