package engine

import (
	"time"
)

// MiniGame is the coin-triggered double-score window
type MiniGame struct {
	active    bool
	remaining time.Duration
	gained    int // Extra points earned through doubling in the current window
}

// Start opens the window for d; restarting an active window resets its timer
// Returns true when an active window was restarted
func (m *MiniGame) Start(d time.Duration) bool {
	restarted := m.active
	m.active = true
	m.remaining = d
	if !restarted {
		m.gained = 0
	}
	return restarted
}

// Active reports whether doubling is in force
func (m *MiniGame) Active() bool {
	return m.active
}

// Remaining returns the time left in the window
func (m *MiniGame) Remaining() time.Duration {
	return m.remaining
}

// Gained returns the extra points earned by doubling so far
func (m *MiniGame) Gained() int {
	return m.gained
}

// Credit applies the multiplier to points while active
func (m *MiniGame) Credit(points, multiplier int) int {
	if !m.active {
		return points
	}
	scaled := points * multiplier
	m.gained += scaled - points
	return scaled
}

// Advance counts the window down and returns true exactly once, on natural expiry
func (m *MiniGame) Advance(elapsed time.Duration) bool {
	if !m.active {
		return false
	}
	m.remaining -= elapsed
	if m.remaining > 0 {
		return false
	}
	m.active = false
	m.remaining = 0
	return true
}

// Cancel closes the window without completion
func (m *MiniGame) Cancel() {
	*m = MiniGame{}
}
