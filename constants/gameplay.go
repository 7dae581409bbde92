package constants

import "time"

// Food
const (
	// RegularFoodPoints is awarded for a regular food
	RegularFoodPoints = 10

	// SpecialFoodPoints is awarded for a special food
	SpecialFoodPoints = 25

	// SpecialFoodChance is the probability that a newly placed food is special
	SpecialFoodChance = 0.15
)

// Power-Ups
const (
	// EffectDuration is how long an activated power-up stays in force
	EffectDuration = 5 * time.Second

	// PowerUpSpawnInterval is the cooldown between field power-up spawns
	PowerUpSpawnInterval = 10 * time.Second

	// MaxFieldPowerUps is the number of uncollected power-ups allowed on the field
	MaxFieldPowerUps = 2
)

// Coin & Mini-Game
const (
	// CoinSpawnInterval is the cooldown between coin spawns
	CoinSpawnInterval = 15 * time.Second

	// MiniGameDuration is the length of the double-score window
	MiniGameDuration = 3 * time.Second

	// MiniGameMultiplier scales food points while the mini-game runs
	MiniGameMultiplier = 2

	// MiniGameBonus is credited once when a mini-game runs to completion
	MiniGameBonus = 50
)
