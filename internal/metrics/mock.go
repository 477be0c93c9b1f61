package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                   sync.Mutex
	logins               int
	loginFailures        int
	attendanceSaves      int
	attendanceRowsFailed int
	rsvpUpdates          int
	leaderboardBuilds    []float64
	notifSent            int
	notifFailed          int
	startupTime          float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		leaderboardBuilds: make([]float64, 0),
	}
}

func (m *Mock) IncLogins() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logins++
}

func (m *Mock) IncLoginFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginFailures++
}

func (m *Mock) IncAttendanceSaves() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attendanceSaves++
}

func (m *Mock) IncAttendanceRowsFailed(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attendanceRowsFailed += count
}

func (m *Mock) IncRSVPUpdates() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rsvpUpdates++
}

func (m *Mock) ObserveLeaderboardBuildDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaderboardBuilds = append(m.leaderboardBuilds, duration)
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifSent++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// Logins returns the number of times IncLogins was called.
func (m *Mock) Logins() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.logins
}

// LoginFailures returns the number of times IncLoginFailures was called.
func (m *Mock) LoginFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginFailures
}

// AttendanceSaves returns the number of times IncAttendanceSaves was called.
func (m *Mock) AttendanceSaves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attendanceSaves
}

// AttendanceRowsFailed returns the accumulated failed row count.
func (m *Mock) AttendanceRowsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attendanceRowsFailed
}

// RSVPUpdates returns the number of times IncRSVPUpdates was called.
func (m *Mock) RSVPUpdates() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rsvpUpdates
}

// NotifSent returns the number of times IncNotifSent was called.
func (m *Mock) NotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifSent
}

// NotifFailed returns the number of times IncNotifFailed was called.
func (m *Mock) NotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notifFailed
}
