package raycast

import (
	"math"

	"github.com/vovakirdan/tui-mazes/internal/core"
)

// Player is the camera: a position, a view direction and a camera plane
// perpendicular to it whose length sets the field of view.
type Player struct {
	Pos   core.Vec2
	Dir   core.Vec2
	Plane core.Vec2
}

// cell returns the map cell containing the player.
func (p Player) cell() (int, int) {
	return int(math.Floor(p.Pos.X)), int(math.Floor(p.Pos.Y))
}

// Rotate turns the view by theta radians. Direction and camera plane are
// rotated together so the field of view is preserved.
func (p *Player) Rotate(theta float64) {
	p.Dir = p.Dir.Rotate(theta)
	p.Plane = p.Plane.Rotate(theta)
}

// Move walks step cells along the view direction (negative walks backward).
// Each axis is checked and applied on its own, so walking into a wall at an
// angle slides along it instead of stopping dead.
func (p *Player) Move(m *Map, step float64) {
	nextX := p.Pos.X + p.Dir.X*step
	if !m.IsWall(int(math.Floor(nextX)), int(math.Floor(p.Pos.Y))) {
		p.Pos.X = nextX
	}

	nextY := p.Pos.Y + p.Dir.Y*step
	if !m.IsWall(int(math.Floor(p.Pos.X)), int(math.Floor(nextY))) {
		p.Pos.Y = nextY
	}
}

// Heading returns the view direction in degrees within [0, 360).
func (p Player) Heading() float64 {
	deg := math.Atan2(p.Dir.Y, p.Dir.X) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}
