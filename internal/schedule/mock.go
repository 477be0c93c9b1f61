package schedule

import "sync"

// MockStore is a mock implementation of the EventStore interface for testing.
type MockStore struct {
	mu sync.Mutex

	UpsertEventFunc      func(e *Event) error
	GetEventFunc         func(eventID string) (*Event, error)
	GetAllEventsFunc     func() ([]Event, error)
	UpcomingEventsFunc   func(fromDate string) ([]Event, error)
	DeleteEventFunc      func(eventID string) error
	SetRSVPFunc          func(rsvp *RSVP) error
	GetRSVPFunc          func(playerID, eventID string) (*RSVP, error)
	GetRSVPsForEventFunc func(eventID string) ([]RSVP, error)

	UpsertEventCalls []*Event
	SetRSVPCalls     []*RSVP
	DeleteEventCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

func (m *MockStore) UpsertEvent(e *Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertEventCalls = append(m.UpsertEventCalls, e)
	if m.UpsertEventFunc != nil {
		return m.UpsertEventFunc(e)
	}
	return nil
}

func (m *MockStore) GetEvent(eventID string) (*Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetEventFunc != nil {
		return m.GetEventFunc(eventID)
	}
	return nil, ErrEventNotFound
}

func (m *MockStore) GetAllEvents() ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetAllEventsFunc != nil {
		return m.GetAllEventsFunc()
	}
	return nil, nil
}

func (m *MockStore) UpcomingEvents(fromDate string) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpcomingEventsFunc != nil {
		return m.UpcomingEventsFunc(fromDate)
	}
	return nil, nil
}

func (m *MockStore) DeleteEvent(eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteEventCalls = append(m.DeleteEventCalls, eventID)
	if m.DeleteEventFunc != nil {
		return m.DeleteEventFunc(eventID)
	}
	return nil
}

func (m *MockStore) SetRSVP(rsvp *RSVP) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetRSVPCalls = append(m.SetRSVPCalls, rsvp)
	if m.SetRSVPFunc != nil {
		return m.SetRSVPFunc(rsvp)
	}
	return nil
}

func (m *MockStore) GetRSVP(playerID, eventID string) (*RSVP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRSVPFunc != nil {
		return m.GetRSVPFunc(playerID, eventID)
	}
	return nil, nil
}

func (m *MockStore) GetRSVPsForEvent(eventID string) ([]RSVP, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetRSVPsForEventFunc != nil {
		return m.GetRSVPsForEventFunc(eventID)
	}
	return nil, nil
}
