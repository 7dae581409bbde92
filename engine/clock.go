package engine

import (
	"sync"
	"time"
)

// TimeProvider supplies wall time to the frame loop
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, including its monotonic component
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

// NewMockTimeProvider creates a mock starting at startTime
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// SetTime jumps the mock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// TickClock turns frame wall time into whole game ticks
// Leftover time carries into the next frame; a backlog beyond maxCatchUp ticks is dropped
type TickClock struct {
	provider   TimeProvider
	last       time.Time
	acc        time.Duration
	maxCatchUp int
}

// NewTickClock creates a clock reading provider, starting now
func NewTickClock(provider TimeProvider, maxCatchUp int) *TickClock {
	if maxCatchUp < 1 {
		maxCatchUp = 1
	}
	return &TickClock{provider: provider, last: provider.Now(), maxCatchUp: maxCatchUp}
}

// Reset discards accumulated time, used while the game is not advancing
func (c *TickClock) Reset() {
	c.last = c.provider.Now()
	c.acc = 0
}

// Pending returns accumulated time not yet spent on ticks
func (c *TickClock) Pending() time.Duration {
	return c.acc
}

// Run spends accumulated time on step calls, re-reading interval before each one
// since the tick rate depends on state the previous step may have changed
// Returns the number of steps run
func (c *TickClock) Run(interval func() time.Duration, step func(time.Duration)) int {
	now := c.provider.Now()
	if d := now.Sub(c.last); d > 0 {
		c.acc += d
	}
	c.last = now

	n := 0
	for n < c.maxCatchUp {
		iv := interval()
		if iv <= 0 || c.acc < iv {
			return n
		}
		c.acc -= iv
		step(iv)
		n++
	}

	// Stalled frame: do not spiral trying to catch up
	if iv := interval(); iv > 0 && c.acc >= iv {
		c.acc = 0
	}
	return n
}
