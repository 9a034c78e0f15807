package hideseek

import "math"

// AngleDiff returns the shortest angular distance between a and b, in [0, pi].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// InCone reports whether (x, y) lies inside the enemy's light cone.
func InCone(e Enemy, x, y int, halfAngle, radius float64) bool {
	dx := float64(x - e.X)
	dy := float64(y - e.Y)
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist > radius {
		return false
	}
	return AngleDiff(math.Atan2(dy, dx), e.Angle) <= halfAngle
}

// UpdateEnemy advances the searchlight one sweep step and recomputes the lit
// cells. It returns true if the visible player is inside the cone.
// Hiding spots, hidden players and the door are never lit.
func UpdateEnemy(s *GameState) bool {
	e := &s.Enemy
	e.Angle += float64(e.Sweep) * s.Rules.Step

	switch off := e.Angle - e.Forward; {
	case off > s.Rules.MaxSweep:
		e.Sweep = -1
	case off < -s.Rules.MaxSweep:
		e.Sweep = 1
	}

	g := s.Grid
	g.clearLight()

	caught := false
	for y := range g.Height() {
		for x := range g.Width() {
			c, _ := g.At(x, y)
			if c == CellWall || c == CellEnemy {
				continue
			}
			if !InCone(*e, x, y, s.Rules.HalfAngle, s.Rules.Radius) {
				continue
			}

			switch c {
			case CellPlayer:
				caught = true
			case CellSpace:
				g.Set(x, y, CellLight)
			}
		}
	}
	return caught
}
