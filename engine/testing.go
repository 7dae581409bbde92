package engine

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/score"
)

// ScriptedPlacer replays fixed placement decisions for tests
// Scripted cells that are off-grid or occupied are skipped; once exhausted, the first free
// cell in row-major order is used. Float64 defaults to 0.99 (regular food), Intn to 0
type ScriptedPlacer struct {
	Cells  []Cell
	Ints   []int
	Floats []float64
}

func (p *ScriptedPlacer) Place(g Grid, occupied func(Cell) bool) (Cell, bool) {
	for len(p.Cells) > 0 {
		c := p.Cells[0]
		p.Cells = p.Cells[1:]
		if g.Contains(c) && !occupied(c) {
			return c, true
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Cell{X: x, Y: y}
			if !occupied(c) {
				return c, true
			}
		}
	}
	return Cell{}, false
}

func (p *ScriptedPlacer) Intn(n int) int {
	if len(p.Ints) == 0 || n <= 0 {
		return 0
	}
	v := p.Ints[0]
	p.Ints = p.Ints[1:]
	return v % n
}

func (p *ScriptedPlacer) Float64() float64 {
	if len(p.Floats) == 0 {
		return 0.99
	}
	v := p.Floats[0]
	p.Floats = p.Floats[1:]
	return v
}

// NewTestSession creates a session on the default board backed by an in-memory score store
// Round IDs are sequential ("round-1", "round-2", ...)
func NewTestSession(placer Placer) (*Session, *score.MemoryStore) {
	store := score.NewMemoryStore()
	ledger := score.NewLedger(store, zerolog.Nop())

	n := 0
	opts := DefaultOptions()
	opts.Placer = placer
	opts.NewRoundID = func() string {
		n++
		return fmt.Sprintf("round-%d", n)
	}
	return NewSession(ledger, opts), store
}
