package constants

// Board
const (
	// DefaultGridWidth is the playing field width in cells
	DefaultGridWidth = 20

	// DefaultGridHeight is the playing field height in cells
	DefaultGridHeight = 20

	// MinGridSize is the smallest accepted width or height
	MinGridSize = 5

	// DefaultInitialLength is the snake length at round start
	DefaultInitialLength = 3
)

// Speed Progression
const (
	// DefaultBaseTickRate is the number of moves per second at score 0
	DefaultBaseTickRate = 6

	// DefaultMaxTickRate caps the score-driven speed-up
	DefaultMaxTickRate = 12

	// SpeedStepScore is the score distance between speed levels
	SpeedStepScore = 50

	// SlowFactor multiplies the tick interval while time-slow is active
	SlowFactor = 2

	// BoostDivisor divides the tick interval while speed-boost is active
	BoostDivisor = 2
)

// High Scores
const (
	// MaxHighScores is the capacity of the persisted high-score list
	MaxHighScores = 10

	// DefaultScoreFile is the high-score file path relative to the working directory
	DefaultScoreFile = "high_scores.toml"
)
