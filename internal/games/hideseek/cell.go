package hideseek

import "github.com/vovakirdan/tui-mazes/internal/core"

// Cell is the content of one grid square.
type Cell uint8

const (
	CellSpace      Cell = iota // Open floor
	CellWall                   // Impassable
	CellHidingSpot             // Enter to become hidden
	CellPlayer                 // Visible player
	CellDoor                   // Exit; reaching it starts the next round
	CellHidden                 // Player standing in a hiding spot
	CellEnemy                  // Searchlight origin
	CellLight                  // Open floor currently lit; recomputed every sweep
)

var cellNames = [...]string{
	CellSpace:      "space",
	CellWall:       "wall",
	CellHidingSpot: "hiding spot",
	CellPlayer:     "player",
	CellDoor:       "door",
	CellHidden:     "hidden",
	CellEnemy:      "enemy",
	CellLight:      "light",
}

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "unknown"
}

type cellStyle struct {
	glyph rune
	color core.Pair
}

var cellStyles = [...]cellStyle{
	CellSpace:      {' ', core.Pair{}},
	CellWall:       {'#', core.Fg(core.ColorWhite).On(core.ColorBlue)},
	CellHidingSpot: {'H', core.Fg(core.ColorGreen)},
	CellPlayer:     {'@', core.Fg(core.ColorBrightYellow)},
	CellDoor:       {'D', core.Fg(core.ColorBrightMagenta)},
	CellHidden:     {'h', core.NewPair(core.ColorBlack, core.ColorCyan)},
	CellEnemy:      {'E', core.Fg(core.ColorBrightRed)},
	CellLight:      {'.', core.NewPair(core.ColorBlack, core.ColorYellow)},
}

// Glyph returns the rune and color pair used to draw the cell.
func (c Cell) Glyph() (rune, core.Pair) {
	if int(c) < len(cellStyles) {
		s := cellStyles[c]
		return s.glyph, s.color
	}
	return '?', core.Pair{}
}
