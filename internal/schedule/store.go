package schedule

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new EventStore.
func New(db *sql.DB) EventStore {
	return &store{
		db: db,
	}
}

const eventColumns = `id, title, description, date, start_time, end_time, location, map_url, type, opponent`

// UpsertEvent inserts a new event or overwrites an existing one.
func (s *store) UpsertEvent(e *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO events (`+eventColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			date = excluded.date,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			location = excluded.location,
			map_url = excluded.map_url,
			type = excluded.type,
			opponent = excluded.opponent;
	`, e.ID, e.Title, e.Description, e.Date, e.StartTime, nullIfEmpty(e.EndTime),
		e.Location, nullIfEmpty(e.MapURL), e.Type, nullIfEmpty(e.Opponent))
	if err != nil {
		return fmt.Errorf("failed to upsert event %s: %w", e.ID, err)
	}
	return nil
}

// GetEvent retrieves a single event by id.
func (s *store) GetEvent(eventID string) (*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+eventColumns+` FROM events WHERE id = ?`, eventID)
	return scanEvent(row)
}

// GetAllEvents retrieves all events ordered by date and start time.
func (s *store) GetAllEvents() ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryEvents(`SELECT ` + eventColumns + ` FROM events ORDER BY date, start_time`)
}

// UpcomingEvents retrieves events on or after fromDate (YYYY-MM-DD).
func (s *store) UpcomingEvents(fromDate string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryEvents(`SELECT `+eventColumns+` FROM events WHERE date >= ? ORDER BY date, start_time`, fromDate)
}

// DeleteEvent removes an event, orphaning any attendance rows that reference it.
func (s *store) DeleteEvent(eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// SetRSVP inserts or overwrites a player's RSVP for an event.
func (s *store) SetRSVP(rsvp *RSVP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rsvp.CreatedAt == 0 {
		rsvp.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.Exec(`
		INSERT INTO rsvps (player_id, event_id, status, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(player_id, event_id) DO UPDATE SET
			status = excluded.status,
			created_at = excluded.created_at;
	`, rsvp.PlayerID, rsvp.EventID, rsvp.Status, rsvp.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to set rsvp for %s/%s: %w", rsvp.PlayerID, rsvp.EventID, err)
	}
	return nil
}

// GetRSVP retrieves a player's RSVP for an event, or nil if none was declared.
func (s *store) GetRSVP(playerID, eventID string) (*RSVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r RSVP
	err := s.db.QueryRow(`
		SELECT player_id, event_id, status, created_at FROM rsvps
		WHERE player_id = ? AND event_id = ?
	`, playerID, eventID).Scan(&r.PlayerID, &r.EventID, &r.Status, &r.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// GetRSVPsForEvent retrieves all declared RSVPs for an event.
func (s *store) GetRSVPsForEvent(eventID string) ([]RSVP, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player_id, event_id, status, created_at FROM rsvps WHERE event_id = ?
	`, eventID)
	if err != nil {
		log.Error("Failed to query rsvps", "error", err, "eventID", eventID)
		return nil, err
	}
	defer rows.Close()

	var rsvps []RSVP
	for rows.Next() {
		var r RSVP
		if err := rows.Scan(&r.PlayerID, &r.EventID, &r.Status, &r.CreatedAt); err != nil {
			log.Error("Failed to scan rsvp row", "error", err)
			continue
		}
		rsvps = append(rsvps, r)
	}
	return rsvps, rows.Err()
}

func (s *store) queryEvents(query string, args ...any) ([]Event, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query events", "error", err)
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			log.Error("Failed to scan event row", "error", err)
			continue
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

// scanEvent scans a single event row from a row or rows scanner.
func scanEvent(scanner interface{ Scan(...any) error }) (*Event, error) {
	var e Event
	var endTime, mapURL, opponent sql.NullString

	err := scanner.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime,
		&endTime, &e.Location, &mapURL, &e.Type, &opponent)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	e.EndTime = endTime.String
	e.MapURL = mapURL.String
	e.Opponent = opponent.String
	return &e, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
