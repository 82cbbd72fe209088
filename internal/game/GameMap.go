package game

// Board is the fixed playing field. The outermost ring of cells is wall.
type Board struct {
	Width  int
	Height int
}

func IsWall(c Cell, width int, height int) bool {
	if c.X <= 0 || c.Y <= 0 {
		return true
	}

	if c.X >= width-1 || c.Y >= height-1 {
		return true
	}

	return false
}

func (b Board) IsWall(c Cell) bool {
	return IsWall(c, b.Width, b.Height)
}

// IsInterior reports whether c is a traversable cell, i.e. inside the board and not wall.
func (b Board) IsInterior(c Cell) bool {
	return !b.IsWall(c)
}

func (b Board) InteriorSize() int {
	if b.Width < 3 || b.Height < 3 {
		return 0
	}
	return (b.Width - 2) * (b.Height - 2)
}

// InteriorCells lists every interior cell row by row.
func (b Board) InteriorCells() []Cell {
	cells := make([]Cell, 0, b.InteriorSize())
	for row := 1; row < b.Height-1; row++ {
		for col := 1; col < b.Width-1; col++ {
			cells = append(cells, Cell{X: col, Y: row})
		}
	}
	return cells
}
