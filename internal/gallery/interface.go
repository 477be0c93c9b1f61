package gallery

import "errors"

var (
	ErrAlbumNotFound      = errors.New("album not found")
	ErrPhotoNotFound      = errors.New("photo not found")
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrCommentNotFound    = errors.New("comment not found")
)

// GalleryStore manages albums, photos, member submissions and comments.
type GalleryStore interface {
	CreateAlbum(album Album) error
	GetAlbum(id string) (*Album, error)
	GetAllAlbums() ([]Album, error)
	UpdateAlbum(album Album) error
	DeleteAlbum(id string) error

	AddPhoto(photo Photo) error
	DeletePhoto(id string) error

	SubmitPhoto(sub Submission) error
	GetSubmission(id string) (*Submission, error)
	GetPendingSubmissions() ([]Submission, error)
	// ReviewSubmission flips a pending submission to approved or rejected.
	// Approval also publishes the photo into the submission's album.
	ReviewSubmission(id string, approved bool) error

	AddComment(comment Comment) error
	GetComments(albumID string) ([]Comment, error)
	DeleteComment(id string) error

	Clear() error
}
