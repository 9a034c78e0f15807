package hideseek

// Direction is a single-step move on the grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the grid offset of one step in this direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MoveResult is the outcome of a MovePlayer call.
type MoveResult int

const (
	MoveBlocked     MoveResult = iota // Target was a wall, the enemy, or off the grid
	MoveMoved                         // Stepped onto open floor
	MoveHid                           // Stepped into a hiding spot
	MoveReachedDoor                   // Target is the door; the player marker stays put
)

func (r MoveResult) String() string {
	switch r {
	case MoveBlocked:
		return "blocked"
	case MoveMoved:
		return "moved"
	case MoveHid:
		return "hid"
	case MoveReachedDoor:
		return "reached door"
	default:
		return "unknown"
	}
}

// MovePlayer moves the player one cell. The target is bounds-checked before
// the grid is read. Leaving a hiding spot puts the spot back.
func MovePlayer(s *GameState, d Direction) MoveResult {
	dx, dy := d.Delta()
	nx, ny := s.Player.X+dx, s.Player.Y+dy

	target, ok := s.Grid.At(nx, ny)
	if !ok || (dx == 0 && dy == 0) {
		return MoveBlocked
	}

	var next Cell
	switch target {
	case CellSpace, CellLight:
		next = CellPlayer
	case CellHidingSpot:
		next = CellHidden
	case CellDoor:
		return MoveReachedDoor
	default:
		return MoveBlocked
	}

	vacated := CellSpace
	if s.PlayerHidden() {
		vacated = CellHidingSpot
	}
	s.Grid.Set(s.Player.X, s.Player.Y, vacated)
	s.Grid.Set(nx, ny, next)
	s.Player = Player{X: nx, Y: ny}

	if next == CellHidden {
		return MoveHid
	}
	return MoveMoved
}
