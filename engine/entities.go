package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/constants"
)

// FoodKind distinguishes regular from special food
type FoodKind uint8

const (
	FoodRegular FoodKind = iota
	FoodSpecial
)

// Points returns the base score for consuming the food kind
func (k FoodKind) Points() int {
	if k == FoodSpecial {
		return constants.SpecialFoodPoints
	}
	return constants.RegularFoodPoints
}

func (k FoodKind) String() string {
	if k == FoodSpecial {
		return "special"
	}
	return "regular"
}

// Food is the single active food item
type Food struct {
	Cell Cell
	Kind FoodKind
}

// PowerUpKind identifies a power-up; activation slots are Kind+1
type PowerUpKind uint8

const (
	PowerUpTimeSlow PowerUpKind = iota
	PowerUpZoom
	PowerUpSpeedBoost
	PowerUpShield

	powerUpKindCount
)

// AllPowerUpKinds lists kinds in activation slot order
var AllPowerUpKinds = [powerUpKindCount]PowerUpKind{
	PowerUpTimeSlow, PowerUpZoom, PowerUpSpeedBoost, PowerUpShield,
}

// Slot returns the 1-based activation key for the kind
func (k PowerUpKind) Slot() int {
	return int(k) + 1
}

// Name returns the display label
func (k PowerUpKind) Name() string {
	if k >= powerUpKindCount {
		return "Unknown"
	}
	return constants.PowerUpNames[k]
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpTimeSlow:
		return "time_slow"
	case PowerUpZoom:
		return "zoom"
	case PowerUpSpeedBoost:
		return "speed_boost"
	case PowerUpShield:
		return "shield"
	default:
		return "unknown"
	}
}

// PowerUpForSlot maps an activation slot (1..4) to its kind
func PowerUpForSlot(slot int) (PowerUpKind, bool) {
	if slot < 1 || slot > int(powerUpKindCount) {
		return 0, false
	}
	return PowerUpKind(slot - 1), true
}

// PowerUp is an uncollected power-up on the field
type PowerUp struct {
	Cell Cell
	Kind PowerUpKind
}

// ActiveEffect is a power-up in force with its countdown
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining time.Duration
}
