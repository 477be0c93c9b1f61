package attendance

import (
	"fmt"
	"strings"
)

// AttendanceStore defines the interface for persisting attendance records.
type AttendanceStore interface {
	// BulkUpsert persists a full draft set for one event as one logical save.
	// Writes are best-effort per row: rows that fail do not roll back rows
	// that succeeded, and the returned *BulkSaveError names the players whose
	// rows failed so the caller can retry from its unchanged draft state.
	BulkUpsert(eventID string, records []Record) error
	GetForEvent(eventID string) ([]Record, error)
	GetAll() ([]Record, error)
	Clear()
}

// BulkSaveError reports the rows of a bulk save that failed to persist.
type BulkSaveError struct {
	EventID         string
	FailedPlayerIDs []string
}

func (e *BulkSaveError) Error() string {
	return fmt.Sprintf("bulk save for event %s failed for %d record(s): %s",
		e.EventID, len(e.FailedPlayerIDs), strings.Join(e.FailedPlayerIDs, ", "))
}
