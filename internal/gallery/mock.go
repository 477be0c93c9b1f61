package gallery

import "sync"

// MockStore is a mock implementation of the GalleryStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateAlbumFunc           func(album Album) error
	GetAlbumFunc              func(id string) (*Album, error)
	GetAllAlbumsFunc          func() ([]Album, error)
	UpdateAlbumFunc           func(album Album) error
	DeleteAlbumFunc           func(id string) error
	AddPhotoFunc              func(photo Photo) error
	DeletePhotoFunc           func(id string) error
	SubmitPhotoFunc           func(sub Submission) error
	GetSubmissionFunc         func(id string) (*Submission, error)
	GetPendingSubmissionsFunc func() ([]Submission, error)
	ReviewSubmissionFunc      func(id string, approved bool) error
	AddCommentFunc            func(comment Comment) error
	GetCommentsFunc           func(albumID string) ([]Comment, error)
	DeleteCommentFunc         func(id string) error

	// Call records
	CreateAlbumCalls      []Album
	SubmitPhotoCalls      []Submission
	ReviewSubmissionCalls []struct {
		ID       string
		Approved bool
	}
	AddCommentCalls []Comment
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) CreateAlbum(album Album) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateAlbumCalls = append(m.CreateAlbumCalls, album)
	if m.CreateAlbumFunc != nil {
		return m.CreateAlbumFunc(album)
	}
	return nil
}

func (m *MockStore) GetAlbum(id string) (*Album, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAlbumFunc != nil {
		return m.GetAlbumFunc(id)
	}
	return nil, ErrAlbumNotFound
}

func (m *MockStore) GetAllAlbums() ([]Album, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllAlbumsFunc != nil {
		return m.GetAllAlbumsFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateAlbum(album Album) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateAlbumFunc != nil {
		return m.UpdateAlbumFunc(album)
	}
	return nil
}

func (m *MockStore) DeleteAlbum(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteAlbumFunc != nil {
		return m.DeleteAlbumFunc(id)
	}
	return nil
}

func (m *MockStore) AddPhoto(photo Photo) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AddPhotoFunc != nil {
		return m.AddPhotoFunc(photo)
	}
	return nil
}

func (m *MockStore) DeletePhoto(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeletePhotoFunc != nil {
		return m.DeletePhotoFunc(id)
	}
	return nil
}

func (m *MockStore) SubmitPhoto(sub Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SubmitPhotoCalls = append(m.SubmitPhotoCalls, sub)
	if m.SubmitPhotoFunc != nil {
		return m.SubmitPhotoFunc(sub)
	}
	return nil
}

func (m *MockStore) GetSubmission(id string) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetSubmissionFunc != nil {
		return m.GetSubmissionFunc(id)
	}
	return nil, ErrSubmissionNotFound
}

func (m *MockStore) GetPendingSubmissions() ([]Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPendingSubmissionsFunc != nil {
		return m.GetPendingSubmissionsFunc()
	}
	return nil, nil
}

func (m *MockStore) ReviewSubmission(id string, approved bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReviewSubmissionCalls = append(m.ReviewSubmissionCalls, struct {
		ID       string
		Approved bool
	}{id, approved})
	if m.ReviewSubmissionFunc != nil {
		return m.ReviewSubmissionFunc(id, approved)
	}
	return nil
}

func (m *MockStore) AddComment(comment Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCommentCalls = append(m.AddCommentCalls, comment)
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(comment)
	}
	return nil
}

func (m *MockStore) GetComments(albumID string) ([]Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetCommentsFunc != nil {
		return m.GetCommentsFunc(albumID)
	}
	return nil, nil
}

func (m *MockStore) DeleteComment(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(id)
	}
	return nil
}

func (m *MockStore) Clear() error { return nil }
