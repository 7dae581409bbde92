package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/score"
)

// MiniGameView is the read-only mini-game state
type MiniGameView struct {
	Active    bool
	Remaining time.Duration
	Gained    int
}

// Snapshot is the read-only view handed to the presentation layer once per frame
// All slices are copies; mutating them does not affect the session
type Snapshot struct {
	State  State
	Paused bool
	Tick   uint64
	Round  string
	Grid   Grid

	Snake   []Cell
	Heading Direction

	Food    Food
	HasFood bool
	Coin    Cell
	HasCoin bool

	PowerUps  []PowerUp
	Inventory []PowerUpKind
	Effects   []ActiveEffect
	MiniGame  MiniGameView

	Score       int
	LatestScore int
	HasLatest   bool
	HighScores  []score.Entry
	LastRound   score.RoundResult

	Interval time.Duration
}

// EffectActive reports whether kind appears in the snapshot's active effects
func (s Snapshot) EffectActive(k PowerUpKind) bool {
	for _, e := range s.Effects {
		if e.Kind == k {
			return true
		}
	}
	return false
}

// Holds reports whether kind is in the snapshot's inventory
func (s Snapshot) Holds(k PowerUpKind) bool {
	for _, h := range s.Inventory {
		if h == k {
			return true
		}
	}
	return false
}

// Snapshot captures the current session state
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Paused:     s.paused,
		Tick:       s.tick,
		Round:      s.round,
		Grid:       s.opts.Grid,
		Food:       s.food,
		HasFood:    s.hasFood,
		PowerUps:   append([]PowerUp(nil), s.powerUps...),
		Inventory:  s.inventory.Kinds(),
		Effects:    s.effects.List(),
		Score:      s.ledger.Current(),
		HighScores: s.ledger.Entries(),
		LastRound:  s.lastRound,
		Interval:   s.Interval(),
		MiniGame: MiniGameView{
			Active:    s.miniGame.Active(),
			Remaining: s.miniGame.Remaining(),
			Gained:    s.miniGame.Gained(),
		},
	}
	snap.LatestScore, snap.HasLatest = s.ledger.Latest()
	if s.snake != nil {
		snap.Snake = s.snake.Body()
		snap.Heading = s.snake.Heading()
	}
	if s.coin != nil {
		snap.Coin = *s.coin
		snap.HasCoin = true
	}
	return snap
}
