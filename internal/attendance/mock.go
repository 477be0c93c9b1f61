package attendance

import "sync"

// MockStore is a mock implementation of the AttendanceStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	BulkUpsertFunc  func(eventID string, records []Record) error
	GetForEventFunc func(eventID string) ([]Record, error)
	GetAllFunc      func() ([]Record, error)

	BulkUpsertCalls []struct {
		EventID string
		Records []Record
	}
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) BulkUpsert(eventID string, records []Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BulkUpsertCalls = append(m.BulkUpsertCalls, struct {
		EventID string
		Records []Record
	}{eventID, records})
	if m.BulkUpsertFunc != nil {
		return m.BulkUpsertFunc(eventID, records)
	}
	return nil
}

func (m *MockStore) GetForEvent(eventID string) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetForEventFunc != nil {
		return m.GetForEventFunc(eventID)
	}
	return nil, nil
}

func (m *MockStore) GetAll() ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockStore) Clear() {}
