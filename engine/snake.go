package engine

import (
	"fmt"
)

// Snake is the ordered body (head first) with its heading and buffered turn
type Snake struct {
	body    []Cell
	heading Direction
	pending Direction
	moved   Direction // Heading of the last completed move, restored by CancelMove
}

// NewSnake creates a snake of the given length with its head at head, trailing opposite to heading
func NewSnake(head Cell, length int, heading Direction) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]Cell, length)
	body[0] = head
	back := heading.Opposite()
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Step(back)
	}
	return &Snake{body: body, heading: heading, pending: heading}
}

// Head returns the first body cell
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Tail returns the last body cell
func (s *Snake) Tail() Cell {
	return s.body[len(s.body)-1]
}

// Len returns the body length
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body cells, head first
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Heading returns the direction applied on the last tick
func (s *Snake) Heading() Direction {
	return s.heading
}

// Pending returns the direction that will be applied on the next tick
func (s *Snake) Pending() Direction {
	return s.pending
}

// Steer buffers a turn for the next tick
// A request reversing the applied heading is rejected, so several key presses within one tick
// can never fold the snake back onto itself
func (s *Snake) Steer(d Direction) bool {
	if d == s.heading.Opposite() || d == s.pending {
		return false
	}
	s.pending = d
	return true
}

// ApplyHeading commits the buffered turn and returns the cell the head moves into
func (s *Snake) ApplyHeading() Cell {
	s.moved = s.heading
	s.heading = s.pending
	return s.body[0].Step(s.heading)
}

// CancelMove undoes the last ApplyHeading when the move was blocked
// The blocked turn is dropped so later turns are checked against the direction the body faces
func (s *Snake) CancelMove() {
	s.heading = s.moved
	s.pending = s.moved
}

// Occupies reports whether any body cell equals c
func (s *Snake) Occupies(c Cell) bool {
	for _, b := range s.body {
		if b == c {
			return true
		}
	}
	return false
}

// HitsSelf reports whether moving into next collides with the body
// The tail is vacated during a non-growing move and does not count
func (s *Snake) HitsSelf(next Cell, growing bool) bool {
	n := len(s.body)
	if !growing {
		n--
	}
	for i := 0; i < n; i++ {
		if s.body[i] == next {
			return true
		}
	}
	return false
}

// Advance pushes next as the new head and drops the tail unless growing
func (s *Snake) Advance(next Cell, growing bool) {
	if growing {
		s.body = append(s.body, Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = next
}

// Validate checks the body invariants: contiguous unit steps and no overlap
func (s *Snake) Validate() error {
	if len(s.body) == 0 {
		return fmt.Errorf("snake has no body")
	}
	seen := make(map[Cell]struct{}, len(s.body))
	for i, c := range s.body {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("body overlaps at %v (index %d)", c, i)
		}
		seen[c] = struct{}{}
		if i == 0 {
			continue
		}
		dx, dy := c.X-s.body[i-1].X, c.Y-s.body[i-1].Y
		if dx*dx+dy*dy != 1 {
			return fmt.Errorf("body gap between index %d %v and %d %v", i-1, s.body[i-1], i, c)
		}
	}
	return nil
}
