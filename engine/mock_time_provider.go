package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Timers fire synchronously inside Advance, in due-time order
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	timers      []*mockTimer
	nextSeq     uint64
}

type mockTimer struct {
	owner   *MockTimeProvider
	due     time.Time
	seq     uint64 // Tie-break for equal due times
	fn      func()
	stopped bool
	fired   bool
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime sets the current time for the mock without firing timers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// AfterFunc registers fn to fire once mocked time reaches now+d
func (m *MockTimeProvider) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSeq++
	t := &mockTimer{
		owner: m,
		due:   m.currentTime.Add(d),
		seq:   m.nextSeq,
		fn:    fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing every timer that becomes due
// Time is set to each timer's due time while its callback runs
// Callbacks run without the mock lock held and may register new timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDueLocked(target)
		if next == nil {
			m.currentTime = target
			m.mu.Unlock()
			return
		}
		if next.due.After(m.currentTime) {
			m.currentTime = next.due
		}
		next.fired = true
		m.mu.Unlock()

		next.fn()
	}
}

// PendingTimers returns the number of timers not yet fired or stopped
func (m *MockTimeProvider) PendingTimers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, t := range m.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

// popDueLocked removes and returns the earliest live timer due at or before target
func (m *MockTimeProvider) popDueLocked(target time.Time) *mockTimer {
	best := -1
	live := m.timers[:0]
	for _, t := range m.timers {
		if t.stopped || t.fired {
			continue
		}
		live = append(live, t)
	}
	m.timers = live

	for i, t := range m.timers {
		if t.due.After(target) {
			continue
		}
		if best < 0 || t.due.Before(m.timers[best].due) ||
			(t.due.Equal(m.timers[best].due) && t.seq < m.timers[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	t := m.timers[best]
	m.timers = append(m.timers[:best], m.timers[best+1:]...)
	return t
}

func (t *mockTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
