package hideseek

import "github.com/vovakirdan/tui-mazes/internal/core"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Grid is a rectangular playfield of cells stored row-major.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// CreateGameWindow returns a width x height grid whose border cells are
// walls and whose interior is open floor.
func CreateGameWindow(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	for y := range height {
		for x := range width {
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				g.cells[y*width+x] = CellWall
			}
		}
	}
	return g
}

// Width returns the grid width.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height.
func (g *Grid) Height() int {
	return g.height
}

// Bounds returns the full grid area.
func (g *Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.width, g.height)
}

// Interior returns the area inside the border walls.
func (g *Grid) Interior() core.Rect {
	return core.NewRect(1, 1, g.width-2, g.height-2)
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return g.Bounds().Contains(x, y)
}

// At returns the cell at (x, y) and whether the coordinate is on the grid.
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return CellWall, false
	}
	return g.cells[y*g.width+x], true
}

// Set stores a cell at (x, y). Off-grid writes are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y*g.width+x] = c
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// clearLight turns every lit cell back into open floor.
func (g *Grid) clearLight() {
	for i, v := range g.cells {
		if v == CellLight {
			g.cells[i] = CellSpace
		}
	}
}
