package clock

import (
	"sync"
	"time"
)

// TimeProvider supplies wall-clock time for timestamps that must not pause,
// such as transition history and session records.
type TimeProvider interface {
	Now() time.Time
}

// System is the real time source.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time {
	return time.Now()
}

// Manual is a controllable time source for tests.
type Manual struct {
	mu      sync.RWMutex
	current time.Time
}

// NewManual creates a manual time source starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{current: start}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set replaces the current time.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = t
}

// Advance moves the current time forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.current.Add(d)
}
