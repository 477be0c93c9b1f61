package gallery

import (
	"database/sql"
	"fmt"
	"sync"
)

// store handles all database operations for the photo gallery.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Album groups photos from one occasion.
type Album struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EventDate   string  `json:"event_date"`
	CoverURL    string  `json:"cover_url"`
	CreatedAt   int64   `json:"created_at"`
	Photos      []Photo `json:"photos,omitempty"`
}

// Photo is a published image in an album.
type Photo struct {
	ID        string `json:"id"`
	AlbumID   string `json:"album_id"`
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	CreatedAt int64  `json:"created_at"`
}

// SubmissionStatus tracks review state of a member-submitted photo.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// ParseSubmissionStatus validates a status string.
func ParseSubmissionStatus(s string) (SubmissionStatus, error) {
	switch SubmissionStatus(s) {
	case SubmissionPending, SubmissionApproved, SubmissionRejected:
		return SubmissionStatus(s), nil
	}
	return "", fmt.Errorf("unknown submission status %q", s)
}

// Submission is a member-submitted photo awaiting admin review.
type Submission struct {
	ID        string           `json:"id"`
	AlbumID   string           `json:"album_id"`
	PlayerID  string           `json:"player_id"`
	URL       string           `json:"url"`
	Caption   string           `json:"caption"`
	Status    SubmissionStatus `json:"status"`
	CreatedAt int64            `json:"created_at"`
}

// Comment is a member comment on an album.
type Comment struct {
	ID        string `json:"id"`
	AlbumID   string `json:"album_id"`
	PlayerID  string `json:"player_id"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}
