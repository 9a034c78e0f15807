package raycast

import (
	"errors"
	"fmt"
)

// ErrInvalidMap is returned when a map layout cannot be used for raycasting.
var ErrInvalidMap = errors.New("raycast: invalid map")

// Tile is the content of one map cell.
type Tile uint8

const (
	Space Tile = iota
	Wall
)

// Map is a rectangular grid of tiles indexed as [x][y].
// Every border tile is a wall, so any ray cast from inside the map hits one.
type Map struct {
	tiles  [][]Tile
	width  int // Extent along x
	height int // Extent along y
}

// DefaultLayout is the classic 5x5 room: walls all around, a 3x3 open interior.
var DefaultLayout = []string{
	"#####",
	"#...#",
	"#...#",
	"#...#",
	"#####",
}

// ParseMap builds a map from layout rows. Row i holds the tiles for x = i,
// character j the tile for y = j. '#' is a wall and '.' or ' ' is open space.
func ParseMap(rows []string) (*Map, error) {
	if len(rows) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 rows, got %d", ErrInvalidMap, len(rows))
	}

	width := len(rows)
	height := len(rows[0])
	if height < 3 {
		return nil, fmt.Errorf("%w: need at least 3 columns, got %d", ErrInvalidMap, height)
	}

	m := &Map{
		tiles:  make([][]Tile, width),
		width:  width,
		height: height,
	}
	for x, row := range rows {
		if len(row) != height {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidMap, x, len(row), height)
		}
		m.tiles[x] = make([]Tile, height)
		for y, ch := range []byte(row) {
			switch ch {
			case '#':
				m.tiles[x][y] = Wall
			case '.', ' ':
				m.tiles[x][y] = Space
			default:
				return nil, fmt.Errorf("%w: unknown tile %q at (%d,%d)", ErrInvalidMap, ch, x, y)
			}
		}
	}

	// A closed border guarantees every ray terminates on a wall
	for x := 0; x < width; x++ {
		if m.tiles[x][0] != Wall || m.tiles[x][height-1] != Wall {
			return nil, fmt.Errorf("%w: border is open at x=%d", ErrInvalidMap, x)
		}
	}
	for y := 0; y < height; y++ {
		if m.tiles[0][y] != Wall || m.tiles[width-1][y] != Wall {
			return nil, fmt.Errorf("%w: border is open at y=%d", ErrInvalidMap, y)
		}
	}

	return m, nil
}

// DefaultMap returns the classic 5x5 room.
func DefaultMap() *Map {
	m, err := ParseMap(DefaultLayout)
	if err != nil {
		panic(err) // DefaultLayout is a constant and always valid
	}
	return m
}

// Width returns the map extent along x.
func (m *Map) Width() int {
	return m.width
}

// Height returns the map extent along y.
func (m *Map) Height() int {
	return m.height
}

// At returns the tile at (x, y). Cells outside the map are walls.
func (m *Map) At(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Wall
	}
	return m.tiles[x][y]
}

// IsWall reports whether (x, y) blocks movement and rays.
func (m *Map) IsWall(x, y int) bool {
	return m.At(x, y) == Wall
}
