package roster

import "sync"

// MockStore is a mock implementation of the RosterStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	UpsertPlayerFunc          func(p *Player) error
	GetPlayerFunc             func(playerID string) (*Player, error)
	GetPlayerByAccessCodeFunc func(code string) (*Player, error)
	GetAllPlayersFunc         func() ([]Player, error)
	UpdateProfileFunc         func(playerID string, update ProfileUpdate) error
	DeletePlayerFunc          func(playerID string) error

	// Call records
	UpsertPlayerCalls  []*Player
	UpdateProfileCalls []struct {
		PlayerID string
		Update   ProfileUpdate
	}
	DeletePlayerCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertPlayer(p *Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertPlayerCalls = append(m.UpsertPlayerCalls, p)
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(p)
	}
	return nil
}

func (m *MockStore) GetPlayer(playerID string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(playerID)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) GetPlayerByAccessCode(code string) (*Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetPlayerByAccessCodeFunc != nil {
		return m.GetPlayerByAccessCodeFunc(code)
	}
	return nil, ErrPlayerNotFound
}

func (m *MockStore) GetAllPlayers() ([]Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllPlayersFunc != nil {
		return m.GetAllPlayersFunc()
	}
	return nil, nil
}

func (m *MockStore) UpdateProfile(playerID string, update ProfileUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateProfileCalls = append(m.UpdateProfileCalls, struct {
		PlayerID string
		Update   ProfileUpdate
	}{playerID, update})
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(playerID, update)
	}
	return nil
}

func (m *MockStore) DeletePlayer(playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeletePlayerCalls = append(m.DeletePlayerCalls, playerID)
	if m.DeletePlayerFunc != nil {
		return m.DeletePlayerFunc(playerID)
	}
	return nil
}

func (m *MockStore) Clear() {}
