package audio

import (
	"github.com/lixenwraith/vi-snake/events"
)

// Cue is a sound the game can request
type Cue uint8

const (
	CueNone Cue = iota
	CueEat
	CueEatSpecial
	CuePowerUp
	CueActivate
	CueShield
	CueCollision
	CueMiniGameStart
	CueMiniGameEnd
)

// CueFor maps a game event to its sound
func CueFor(ev events.GameEvent) Cue {
	switch ev.Type {
	case events.EventFoodEaten:
		if p, ok := ev.Payload.(*events.FoodEatenPayload); ok && p.Special {
			return CueEatSpecial
		}
		return CueEat
	case events.EventPowerUpCollected:
		return CuePowerUp
	case events.EventPowerUpActivated:
		return CueActivate
	case events.EventShieldAbsorbed:
		return CueShield
	case events.EventCollision:
		return CueCollision
	case events.EventMiniGameStart:
		return CueMiniGameStart
	case events.EventMiniGameEnd:
		return CueMiniGameEnd
	default:
		return CueNone
	}
}

// EventTypes lists the events the manager reacts to
func (sm *SoundManager) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventFoodEaten,
		events.EventPowerUpCollected,
		events.EventPowerUpActivated,
		events.EventShieldAbsorbed,
		events.EventCollision,
		events.EventMiniGameStart,
		events.EventMiniGameEnd,
		events.EventRoundEnd,
		events.EventRoundAbandoned,
	}
}

// HandleEvent plays the cue for ev
func (sm *SoundManager) HandleEvent(ev events.GameEvent) {
	switch CueFor(ev) {
	case CueEat:
		sm.PlayEat(false)
	case CueEatSpecial:
		sm.PlayEat(true)
	case CuePowerUp:
		sm.PlayPowerUp()
	case CueActivate:
		sm.PlayActivate()
	case CueShield:
		sm.PlayShield()
	case CueCollision:
		sm.PlayCollision()
	case CueMiniGameStart:
		sm.StartMiniGame()
	case CueMiniGameEnd:
		sm.StopMiniGame(true)
	default:
		if ev.Type == events.EventRoundEnd || ev.Type == events.EventRoundAbandoned {
			sm.StopMiniGame(false)
		}
	}
}
