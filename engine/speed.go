package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// SpeedModel converts score into the game tick interval
type SpeedModel struct {
	BaseRate int // Moves per second at score 0
	MaxRate  int // Moves per second ceiling
}

// DefaultSpeedModel returns the stock progression
func DefaultSpeedModel() SpeedModel {
	return SpeedModel{BaseRate: constants.DefaultBaseTickRate, MaxRate: constants.DefaultMaxTickRate}
}

// Rate returns moves per second for score, one step per SpeedStepScore points, capped at MaxRate
func (m SpeedModel) Rate(score int) int {
	if score < 0 {
		score = 0
	}
	rate := m.BaseRate + score/constants.SpeedStepScore
	if rate > m.MaxRate {
		rate = m.MaxRate
	}
	if rate < 1 {
		rate = 1
	}
	return rate
}

// BaseInterval is the score-driven interval, non-increasing in score
func (m SpeedModel) BaseInterval(score int) time.Duration {
	return time.Second / time.Duration(m.Rate(score))
}

// Interval applies time-slow and speed-boost to the score-driven interval
func (m SpeedModel) Interval(score int, effects *Effects) time.Duration {
	d := m.BaseInterval(score)
	if effects == nil {
		return d
	}
	if effects.Active(PowerUpTimeSlow) {
		d *= constants.SlowFactor
	}
	if effects.Active(PowerUpSpeedBoost) {
		d /= constants.BoostDivisor
	}
	return d
}
