package engine

import (
	"golang.org/x/exp/rand"
)

// Placer picks random free cells for food, coins and power-ups
// Implementations must be deterministic for a given seed
type Placer interface {
	// Place returns a uniformly chosen cell for which occupied is false
	// Returns false when the grid has no free cell
	Place(g Grid, occupied func(Cell) bool) (Cell, bool)

	// Intn returns a value in [0,n) from the same stream
	Intn(n int) int

	// Float64 returns a value in [0,1) from the same stream
	Float64() float64
}

// RandomPlacer is the seedable default Placer
type RandomPlacer struct {
	rng *rand.Rand
}

// NewRandomPlacer creates a placer seeded with seed
func NewRandomPlacer(seed uint64) *RandomPlacer {
	return &RandomPlacer{rng: rand.New(rand.NewSource(seed))}
}

// Reseed restarts the random sequence
func (p *RandomPlacer) Reseed(seed uint64) {
	p.rng.Seed(seed)
}

// Place enumerates free cells and picks one by index, so a crowded board never spins
func (p *RandomPlacer) Place(g Grid, occupied func(Cell) bool) (Cell, bool) {
	free := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if !occupied(Cell{X: x, Y: y}) {
				free++
			}
		}
	}
	if free == 0 {
		return Cell{}, false
	}

	target := p.rng.Intn(free)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if occupied(c) {
				continue
			}
			if target == 0 {
				return c, true
			}
			target--
		}
	}
	return Cell{}, false
}

func (p *RandomPlacer) Intn(n int) int {
	return p.rng.Intn(n)
}

func (p *RandomPlacer) Float64() float64 {
	return p.rng.Float64()
}
