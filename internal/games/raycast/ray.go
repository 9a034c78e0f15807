package raycast

import "math"

// Side identifies which kind of grid line a ray crossed when it hit a wall.
type Side int

const (
	SideX Side = iota // Crossed a line of constant x
	SideY             // Crossed a line of constant y
)

// Hit describes where a single ray struck a wall.
type Hit struct {
	MapX, MapY int
	Side       Side
	// Dist is the perpendicular distance from the camera plane to the wall,
	// which avoids the fisheye distortion of the Euclidean distance.
	Dist float64
	Hit  bool
}

// CastRay marches a ray through the map with a DDA until it enters a wall.
// cameraX is the horizontal screen position mapped to [-1, 1].
func CastRay(m *Map, p Player, cameraX float64) Hit {
	rayDir := p.Dir.Add(p.Plane.Scale(cameraX))
	if rayDir.X == 0 && rayDir.Y == 0 {
		return Hit{Dist: math.Inf(1)}
	}

	mapX, mapY := p.cell()

	stepX, sideDistX, deltaX := stepFor(rayDir.X, p.Pos.X, mapX)
	stepY, sideDistY, deltaY := stepFor(rayDir.Y, p.Pos.Y, mapY)

	// Out-of-bounds cells are walls, so the border is reached well within
	// this many steps; the cap only guards against a malformed map.
	limit := 2*(m.Width()+m.Height()) + 2

	side := SideX
	for range limit {
		if sideDistX < sideDistY {
			sideDistX += deltaX
			mapX += stepX
			side = SideX
		} else {
			sideDistY += deltaY
			mapY += stepY
			side = SideY
		}

		if m.IsWall(mapX, mapY) {
			dist := sideDistY - deltaY
			if side == SideX {
				dist = sideDistX - deltaX
			}
			return Hit{MapX: mapX, MapY: mapY, Side: side, Dist: dist, Hit: true}
		}
	}

	return Hit{MapX: mapX, MapY: mapY, Side: side, Dist: math.Inf(1)}
}

// stepFor returns the cell step direction, the distance along the ray to the
// first grid line on this axis, and the distance between grid lines.
// A ray parallel to the axis never crosses its grid lines.
func stepFor(dir, pos float64, cell int) (step int, sideDist, delta float64) {
	if dir == 0 {
		return 0, math.Inf(1), math.Inf(1)
	}

	delta = math.Abs(1 / dir)
	if dir < 0 {
		return -1, (pos - float64(cell)) * delta, delta
	}
	return 1, (float64(cell) + 1 - pos) * delta, delta
}
