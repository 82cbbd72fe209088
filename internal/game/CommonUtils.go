package game

import "fmt"

type Direction int

const (
	// DirectionNone means "keep the current heading" wherever an override is accepted.
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
)

// indexed by Direction
var directionDeltas = [][]int{
	{0, 0},
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
}

var directionNames = []string{"none", "up", "down", "left", "right"}

func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return DirectionNone
}

func (d Direction) Delta() (dx int, dy int) {
	if d < DirectionNone || d > DirectionRight {
		return 0, 0
	}
	return directionDeltas[d][0], directionDeltas[d][1]
}

func (d Direction) String() string {
	if d < DirectionNone || d > DirectionRight {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

type Cell struct {
	X int
	Y int
}

func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Key is a raw input as seen by the core. Anything that is not an arrow
// arrives as KeyOther.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

func (k Key) direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirectionUp, true
	case KeyDown:
		return DirectionDown, true
	case KeyLeft:
		return DirectionLeft, true
	case KeyRight:
		return DirectionRight, true
	}
	return DirectionNone, false
}
