package events

// EventType represents the type of game event
type EventType int

const (
	// EventRoundStart marks a fresh round entering play
	// Trigger: Start/Reset command | Payload: *RoundPayload
	EventRoundStart EventType = iota

	// EventFoodEaten signals food consumption by the snake head
	// Trigger: movement step | Consumer: SoundManager | Payload: *FoodEatenPayload
	EventFoodEaten

	// EventPowerUpCollected signals a field power-up moved into the inventory
	// Trigger: movement step | Consumer: SoundManager | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventPowerUpActivated signals an inventory unit turned into an active effect
	// Trigger: Activate command | Payload: *PowerUpPayload
	EventPowerUpActivated

	// EventEffectExpired signals an active effect reaching zero remaining time
	// Trigger: effect timer | Payload: *PowerUpPayload
	EventEffectExpired

	// EventShieldAbsorbed signals a collision cancelled by the shield
	// Trigger: movement step | Consumer: SoundManager | Payload: *CollisionPayload
	EventShieldAbsorbed

	// EventCollision signals a fatal wall or self collision
	// Trigger: movement step | Consumer: SoundManager | Payload: *CollisionPayload
	EventCollision

	// EventMiniGameStart signals coin consumption starting the double-score window
	// Trigger: movement step | Consumer: SoundManager | Payload: nil
	EventMiniGameStart

	// EventMiniGameEnd signals natural mini-game completion and bonus credit
	// Trigger: mini-game timer | Consumer: SoundManager | Payload: *MiniGamePayload
	EventMiniGameEnd

	// EventRoundEnd signals the round result being recorded in the ledger
	// Trigger: fatal collision | Consumer: SoundManager | Payload: *RoundPayload
	EventRoundEnd

	// EventRoundAbandoned signals a round left without recording (menu, reset, quit)
	// Trigger: Menu/Reset/Quit command while playing | Consumer: SoundManager | Payload: *RoundPayload
	EventRoundAbandoned
)

var eventNames = [...]string{
	EventRoundStart:       "round_start",
	EventFoodEaten:        "food_eaten",
	EventPowerUpCollected: "powerup_collected",
	EventPowerUpActivated: "powerup_activated",
	EventEffectExpired:    "effect_expired",
	EventShieldAbsorbed:   "shield_absorbed",
	EventCollision:        "collision",
	EventMiniGameStart:    "minigame_start",
	EventMiniGameEnd:      "minigame_end",
	EventRoundEnd:         "round_end",
	EventRoundAbandoned:   "round_abandoned",
}

// String returns the snake_case name used in logs
func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64 // Session tick that produced the event
}
