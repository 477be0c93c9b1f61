package roster

import (
	"database/sql"
	"fmt"
	"sync"
)

// store handles all database operations for the roster.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Position is a player's field position.
type Position string

const (
	PositionHandler Position = "handler"
	PositionCutter  Position = "cutter"
	PositionHybrid  Position = "hybrid"
)

// ParsePosition validates a position string from a form or API payload.
func ParsePosition(s string) (Position, error) {
	switch Position(s) {
	case PositionHandler, PositionCutter, PositionHybrid:
		return Position(s), nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// CardConfig holds a player's card customization.
type CardConfig struct {
	Theme      string `json:"theme"`
	Background string `json:"background"`
	Accent     string `json:"accent"`
}

// Player is a club member.
type Player struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Nickname     string      `json:"nickname,omitempty"`
	JerseyNumber int         `json:"jersey_number"`
	Position     Position    `json:"position"`
	ImageURL     string      `json:"image_url"`
	FunFact      string      `json:"fun_fact"`
	YearJoined   int         `json:"year_joined"`
	IsCaptain    bool        `json:"is_captain"`
	IsAdmin      bool        `json:"is_admin"`
	Email        string      `json:"email"`
	AccessCode   string      `json:"-"`
	CardConfig   *CardConfig `json:"card_config,omitempty"`
}

// ProfileUpdate carries the fields a player may edit about themself.
// Everything else is admin-only.
type ProfileUpdate struct {
	Name       string      `json:"name"`
	Nickname   string      `json:"nickname"`
	FunFact    string      `json:"fun_fact"`
	CardConfig *CardConfig `json:"card_config"`
}
