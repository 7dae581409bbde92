package events

// CollisionKind distinguishes wall hits from self hits
type CollisionKind uint8

const (
	CollisionWall CollisionKind = iota
	CollisionSelf
)

func (k CollisionKind) String() string {
	if k == CollisionSelf {
		return "self"
	}
	return "wall"
}

// FoodEatenPayload describes a consumed food
type FoodEatenPayload struct {
	X, Y    int
	Special bool
	Points  int // Points credited after the mini-game multiplier
}

// PowerUpPayload identifies a power-up kind by its activation slot (1..4)
type PowerUpPayload struct {
	Slot int
	Name string
}

// CollisionPayload contains the cell the head tried to enter
type CollisionPayload struct {
	X, Y int
	Kind CollisionKind
}

// MiniGamePayload contains the result of a completed mini-game
type MiniGamePayload struct {
	Bonus       int // Flat completion bonus
	DoubledGain int // Extra points earned through doubling
}

// RoundPayload describes a round boundary
type RoundPayload struct {
	Round        string
	Score        int
	NewHighScore bool
}
