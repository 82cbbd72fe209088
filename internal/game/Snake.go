package game

import "github.com/gammazero/deque"

// Snake owns the body and heading. Front of the body is the head, back is the tail.
type Snake struct {
	heading Direction
	body    deque.Deque[Cell]

	lastRemovedTail    Cell
	hasLastRemovedTail bool
}

// NewSnake lays out a 3-cell body rightward from the origin, head at (x+2, y).
func NewSnake(x int, y int) *Snake {
	s := &Snake{heading: DirectionRight}
	for i := startingSnakeLength - 1; i >= 0; i-- {
		s.body.PushBack(Cell{X: x + i, Y: y})
	}
	return s
}

func (s *Snake) Head() Cell {
	if s.body.Len() == 0 {
		invariantViolation("head requested from an empty snake body")
	}
	return s.body.Front()
}

func (s *Snake) Heading() Direction {
	return s.heading
}

func (s *Snake) Len() int {
	return s.body.Len()
}

// Body returns a head-first copy of the body.
func (s *Snake) Body() []Cell {
	cells := make([]Cell, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}

// PeekNextHead returns where the head would land moving in override, or in
// the current heading when override is DirectionNone.
func (s *Snake) PeekNextHead(override Direction) Cell {
	moving := s.heading
	if override != DirectionNone {
		moving = override
	}
	return s.Head().Step(moving)
}

// Advance moves the snake one cell. The caller must already have rejected
// reversals.
func (s *Snake) Advance(override Direction) {
	if override != DirectionNone {
		s.heading = override
	}

	next := s.Head().Step(s.heading)
	s.body.PushFront(next)
	s.lastRemovedTail = s.body.PopBack()
	s.hasLastRemovedTail = true
}

// Grow puts back the tail dropped by the latest Advance.
func (s *Snake) Grow() {
	if !s.hasLastRemovedTail {
		invariantViolation("grow called without a preceding advance")
	}
	s.body.PushBack(s.lastRemovedTail)
	s.hasLastRemovedTail = false
}

// OccupiesHazard reports whether c is on the body, ignoring the tail, which
// moves out of the way on the same tick.
func (s *Snake) OccupiesHazard(c Cell) bool {
	for i := 0; i < s.body.Len()-1; i++ {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}
