package attendance

import (
	"database/sql"

	"github.com/charmbracelet/log"
)

// New creates a new AttendanceStore.
func New(db *sql.DB) AttendanceStore {
	return &store{
		db: db,
	}
}

// BulkUpsert writes one row per draft record, keyed on (player_id, event_id).
// Each row replaces the stored record entirely: all four flags and the notes.
// There is no cross-row transaction; concurrent saves of the same event are
// last-writer-wins per row.
func (s *store) BulkUpsert(eventID string, records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmt, err := s.db.Prepare(`
		INSERT INTO attendance (player_id, event_id, is_present, is_early, is_on_time, has_double_jersey, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(player_id, event_id) DO UPDATE SET
			is_present = excluded.is_present,
			is_early = excluded.is_early,
			is_on_time = excluded.is_on_time,
			has_double_jersey = excluded.has_double_jersey,
			notes = excluded.notes;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var failed []string
	for _, r := range records {
		if _, err := stmt.Exec(r.PlayerID, eventID, r.IsPresent, r.IsEarly, r.IsOnTime, r.HasDoubleJersey, r.Notes); err != nil {
			log.Error("Failed to upsert attendance record", "error", err, "playerID", r.PlayerID, "eventID", eventID)
			failed = append(failed, r.PlayerID)
		}
	}

	if len(failed) > 0 {
		return &BulkSaveError{EventID: eventID, FailedPlayerIDs: failed}
	}
	log.Info("Saved attendance", "eventID", eventID, "records", len(records))
	return nil
}

// GetForEvent retrieves all attendance records for one event.
func (s *store) GetForEvent(eventID string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryRecords(`
		SELECT player_id, event_id, is_present, is_early, is_on_time, has_double_jersey, notes
		FROM attendance WHERE event_id = ?
	`, eventID)
}

// GetAll retrieves the full attendance history. The leaderboard recomputes
// from this on every read; volumes are tens to low hundreds of rows.
func (s *store) GetAll() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryRecords(`
		SELECT player_id, event_id, is_present, is_early, is_on_time, has_double_jersey, notes
		FROM attendance
	`)
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM attendance`); err != nil {
		log.Error("Failed to clear attendance table", "error", err)
	}
}

func (s *store) queryRecords(query string, args ...any) ([]Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		log.Error("Failed to query attendance records", "error", err)
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.PlayerID, &r.EventID, &r.IsPresent, &r.IsEarly, &r.IsOnTime, &r.HasDoubleJersey, &r.Notes); err != nil {
			log.Error("Failed to scan attendance row", "error", err)
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

var _ AttendanceStore = (*store)(nil)
