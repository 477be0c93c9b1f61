package gallery

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var _ GalleryStore = (*store)(nil)

// New creates a new gallery store backed by the given database.
func New(db *sql.DB) GalleryStore {
	return &store{db: db}
}

func (s *store) CreateAlbum(album Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if album.CreatedAt == 0 {
		album.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.Exec(`
		INSERT INTO gallery (id, title, description, event_date, cover_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			event_date = excluded.event_date,
			cover_url = excluded.cover_url`,
		album.ID, album.Title, album.Description, album.EventDate, album.CoverURL, album.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create album %s: %w", album.ID, err)
	}
	return nil
}

func (s *store) GetAlbum(id string) (*Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, title, description, event_date, cover_url, created_at
		FROM gallery WHERE id = ?`, id)
	album, err := scanAlbum(row)
	if err == sql.ErrNoRows {
		return nil, ErrAlbumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album %s: %w", id, err)
	}

	rows, err := s.db.Query(`
		SELECT id, album_id, url, caption, created_at
		FROM gallery_photos WHERE album_id = ?
		ORDER BY created_at ASC, id ASC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get photos for album %s: %w", id, err)
	}
	defer rows.Close()

	album.Photos = make([]Photo, 0)
	for rows.Next() {
		var p Photo
		if err := rows.Scan(&p.ID, &p.AlbumID, &p.URL, &p.Caption, &p.CreatedAt); err != nil {
			log.Error("Error scanning photo row", "album_id", id, "error", err)
			continue
		}
		album.Photos = append(album.Photos, p)
	}
	return album, rows.Err()
}

func (s *store) GetAllAlbums() ([]Album, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, title, description, event_date, cover_url, created_at
		FROM gallery
		ORDER BY event_date DESC, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get albums: %w", err)
	}
	defer rows.Close()

	albums := make([]Album, 0)
	for rows.Next() {
		album, err := scanAlbum(rows)
		if err != nil {
			log.Error("Error scanning album row", "error", err)
			continue
		}
		albums = append(albums, *album)
	}
	return albums, rows.Err()
}

func (s *store) UpdateAlbum(album Album) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`
		UPDATE gallery SET title = ?, description = ?, event_date = ?, cover_url = ?
		WHERE id = ?`,
		album.Title, album.Description, album.EventDate, album.CoverURL, album.ID)
	if err != nil {
		return fmt.Errorf("failed to update album %s: %w", album.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of album %s: %w", album.ID, err)
	}
	if n == 0 {
		return ErrAlbumNotFound
	}
	return nil
}

func (s *store) DeleteAlbum(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Photos, submissions and comments go with the album via ON DELETE CASCADE.
	res, err := s.db.Exec(`DELETE FROM gallery WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete album %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAlbumNotFound
	}
	return nil
}

func (s *store) AddPhoto(photo Photo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPhoto(photo)
}

// insertPhoto assumes the caller holds the write lock.
func (s *store) insertPhoto(photo Photo) error {
	if photo.ID == "" {
		photo.ID = uuid.NewString()
	}
	if photo.CreatedAt == 0 {
		photo.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.Exec(`
		INSERT INTO gallery_photos (id, album_id, url, caption, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		photo.ID, photo.AlbumID, photo.URL, photo.Caption, photo.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add photo to album %s: %w", photo.AlbumID, err)
	}
	return nil
}

func (s *store) DeletePhoto(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM gallery_photos WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPhotoNotFound
	}
	return nil
}

func (s *store) SubmitPhoto(sub Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.Status == "" {
		sub.Status = SubmissionPending
	}
	if sub.CreatedAt == 0 {
		sub.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.Exec(`
		INSERT INTO gallery_submissions (id, album_id, player_id, url, caption, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.AlbumID, sub.PlayerID, sub.URL, sub.Caption, sub.Status, sub.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to submit photo for album %s: %w", sub.AlbumID, err)
	}
	return nil
}

func (s *store) GetSubmission(id string) (*Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, album_id, player_id, url, caption, status, created_at
		FROM gallery_submissions WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get submission %s: %w", id, err)
	}
	return sub, nil
}

func (s *store) GetPendingSubmissions() ([]Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, album_id, player_id, url, caption, status, created_at
		FROM gallery_submissions WHERE status = ?
		ORDER BY created_at ASC`, SubmissionPending)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]Submission, 0)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			log.Error("Error scanning submission row", "error", err)
			continue
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

func (s *store) ReviewSubmission(id string, approved bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := s.db.QueryRow(`
		SELECT id, album_id, player_id, url, caption, status, created_at
		FROM gallery_submissions WHERE id = ?`, id)
	sub, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return ErrSubmissionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get submission %s: %w", id, err)
	}
	if sub.Status != SubmissionPending {
		return fmt.Errorf("submission %s already reviewed as %s", id, sub.Status)
	}

	status := SubmissionRejected
	if approved {
		status = SubmissionApproved
	}
	if _, err := s.db.Exec(`UPDATE gallery_submissions SET status = ? WHERE id = ?`, status, id); err != nil {
		return fmt.Errorf("failed to review submission %s: %w", id, err)
	}
	if approved {
		return s.insertPhoto(Photo{
			AlbumID: sub.AlbumID,
			URL:     sub.URL,
			Caption: sub.Caption,
		})
	}
	return nil
}

func (s *store) AddComment(comment Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt == 0 {
		comment.CreatedAt = time.Now().Unix()
	}
	_, err := s.db.Exec(`
		INSERT INTO comments (id, album_id, player_id, body, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		comment.ID, comment.AlbumID, comment.PlayerID, comment.Body, comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add comment to album %s: %w", comment.AlbumID, err)
	}
	return nil
}

func (s *store) GetComments(albumID string) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, album_id, player_id, body, created_at
		FROM comments WHERE album_id = ?
		ORDER BY created_at ASC, id ASC`, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments for album %s: %w", albumID, err)
	}
	defer rows.Close()

	comments := make([]Comment, 0)
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.AlbumID, &c.PlayerID, &c.Body, &c.CreatedAt); err != nil {
			log.Error("Error scanning comment row", "album_id", albumID, "error", err)
			continue
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (s *store) DeleteComment(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"comments", "gallery_submissions", "gallery_photos", "gallery"} {
		if _, err := s.db.Exec(`DELETE FROM ` + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

func scanAlbum(row interface{ Scan(dest ...any) error }) (*Album, error) {
	var a Album
	if err := row.Scan(&a.ID, &a.Title, &a.Description, &a.EventDate, &a.CoverURL, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func scanSubmission(row interface{ Scan(dest ...any) error }) (*Submission, error) {
	var s Submission
	if err := row.Scan(&s.ID, &s.AlbumID, &s.PlayerID, &s.URL, &s.Caption, &s.Status, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
