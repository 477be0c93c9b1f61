package attendance

import (
	"database/sql"
	"sync"

	"github.com/askelund/huddle/internal/scoring"
)

// store handles all database operations for attendance records.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Record is the stored truth of whether and how a player attended one event.
// At most one record exists per (player, event) pair; the bulk save upserts
// on that key.
type Record struct {
	PlayerID        string `json:"player_id"`
	EventID         string `json:"event_id"`
	IsPresent       bool   `json:"is_present"`
	IsEarly         bool   `json:"is_early"`
	IsOnTime        bool   `json:"is_on_time"`
	HasDoubleJersey bool   `json:"has_double_jersey"`
	Notes           string `json:"notes"`
}

// Flags returns the scoring view of the record.
func (r Record) Flags() scoring.Record {
	return scoring.Record{
		IsPresent:       r.IsPresent,
		IsEarly:         r.IsEarly,
		IsOnTime:        r.IsOnTime,
		HasDoubleJersey: r.HasDoubleJersey,
	}
}
