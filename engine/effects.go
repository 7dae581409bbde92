package engine

import (
	"time"
)

// Inventory holds collected, not yet activated power-ups
// At most one unit per kind is held
type Inventory struct {
	held [powerUpKindCount]bool
}

// Add stores one unit of kind, returns false if one is already held
func (inv *Inventory) Add(k PowerUpKind) bool {
	if k >= powerUpKindCount || inv.held[k] {
		return false
	}
	inv.held[k] = true
	return true
}

// Take removes the held unit of kind, returns false if none is held
func (inv *Inventory) Take(k PowerUpKind) bool {
	if k >= powerUpKindCount || !inv.held[k] {
		return false
	}
	inv.held[k] = false
	return true
}

// Has reports whether a unit of kind is held
func (inv *Inventory) Has(k PowerUpKind) bool {
	return k < powerUpKindCount && inv.held[k]
}

// Kinds returns held kinds in slot order
func (inv *Inventory) Kinds() []PowerUpKind {
	var out []PowerUpKind
	for _, k := range AllPowerUpKinds {
		if inv.held[k] {
			out = append(out, k)
		}
	}
	return out
}

// Clear drops every held unit
func (inv *Inventory) Clear() {
	inv.held = [powerUpKindCount]bool{}
}

// Effects is the kind → remaining-duration table of active power-ups
// A zero entry means inactive
type Effects struct {
	remaining [powerUpKindCount]time.Duration
}

// Activate starts kind for d, or refreshes it to d when already active
// Returns true when an active effect was refreshed
func (e *Effects) Activate(k PowerUpKind, d time.Duration) bool {
	if k >= powerUpKindCount || d <= 0 {
		return false
	}
	refreshed := e.remaining[k] > 0
	e.remaining[k] = d
	return refreshed
}

// Active reports whether kind is in force
func (e *Effects) Active(k PowerUpKind) bool {
	return k < powerUpKindCount && e.remaining[k] > 0
}

// Remaining returns the countdown of kind, zero when inactive
func (e *Effects) Remaining(k PowerUpKind) time.Duration {
	if k >= powerUpKindCount {
		return 0
	}
	return e.remaining[k]
}

// Consume ends kind immediately, returns false if it was not active
func (e *Effects) Consume(k PowerUpKind) bool {
	if !e.Active(k) {
		return false
	}
	e.remaining[k] = 0
	return true
}

// Advance decrements every active effect by elapsed and returns the kinds that expired
func (e *Effects) Advance(elapsed time.Duration) []PowerUpKind {
	var expired []PowerUpKind
	for _, k := range AllPowerUpKinds {
		if e.remaining[k] <= 0 {
			continue
		}
		e.remaining[k] -= elapsed
		if e.remaining[k] <= 0 {
			e.remaining[k] = 0
			expired = append(expired, k)
		}
	}
	return expired
}

// List returns active effects in slot order
func (e *Effects) List() []ActiveEffect {
	var out []ActiveEffect
	for _, k := range AllPowerUpKinds {
		if e.remaining[k] > 0 {
			out = append(out, ActiveEffect{Kind: k, Remaining: e.remaining[k]})
		}
	}
	return out
}

// Clear deactivates everything
func (e *Effects) Clear() {
	e.remaining = [powerUpKindCount]time.Duration{}
}
