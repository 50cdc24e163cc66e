package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a manually stepped clock for tests
// Time only moves through SetTime and Advance
type MockTimeProvider struct {
	epoch  time.Time
	offset atomic.Int64 // nanoseconds past epoch
}

// NewMockTimeProvider creates a clock frozen at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: start}
}

// Now implements TimeProvider
func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.offset.Load()))
}

// SetTime jumps the clock, backwards jumps are allowed
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.offset.Store(int64(t.Sub(m.epoch)))
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.offset.Add(int64(d))
}

// AdvanceSeconds moves the clock by a simulation step expressed in seconds
func (m *MockTimeProvider) AdvanceSeconds(s float64) {
	m.Advance(time.Duration(s * float64(time.Second)))
}
