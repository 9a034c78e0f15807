package hideseek

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-mazes/internal/config"
	"github.com/vovakirdan/tui-mazes/internal/core"
)

// ErrNoPlacement is returned when rejection sampling runs out of attempts
// before finding an empty cell.
var ErrNoPlacement = errors.New("hideseek: no placement found")

// ErrGridTooSmall is returned for grids that cannot hold a round.
var ErrGridTooSmall = errors.New("hideseek: grid too small")

// Rules are the per-round parameters of the maze and the searchlight.
type Rules struct {
	Width, Height int
	Start         Point
	HidingSpots   int
	MaxAttempts   int

	Step      float64 // Searchlight radians per sweep
	HalfAngle float64 // Cone half-angle in radians
	Radius    float64 // Cone reach in cells
	MaxSweep  float64 // Max deviation from forward before the sweep reverses
}

// RulesFromConfig converts a loaded config into round rules.
func RulesFromConfig(cfg config.HideSeekConfig) Rules {
	return Rules{
		Width:       cfg.Grid.Width,
		Height:      cfg.Grid.Height,
		Start:       Point{X: cfg.Start.X, Y: cfg.Start.Y},
		HidingSpots: cfg.HidingSpots,
		MaxAttempts: cfg.Placement.MaxAttempts,
		Step:        cfg.Searchlight.Step,
		HalfAngle:   cfg.Searchlight.HalfAngle,
		Radius:      cfg.Searchlight.Radius,
		MaxSweep:    cfg.Searchlight.MaxSweep,
	}
}

// Player is the player's grid position. Whether the player is hidden is
// read from the grid cell under it.
type Player struct {
	X, Y int
}

// Enemy is a stationary searchlight that sweeps around a forward direction.
type Enemy struct {
	X, Y    int
	Angle   float64 // Current facing in radians
	Forward float64 // Center of the sweep
	Sweep   int     // +1 or -1
}

// GameState holds everything one hide-and-seek session mutates.
// Update and render functions take it explicitly; there is no package state.
type GameState struct {
	Grid   *Grid
	Player Player
	Enemy  Enemy
	Rules  Rules
	Round  int // Doors reached so far

	rng *rand.Rand
}

// NewGameState creates a session and lays out the first round.
func NewGameState(rules Rules, rng *rand.Rand) (*GameState, error) {
	s := &GameState{
		Rules: rules,
		rng:   rng,
	}
	if err := s.Regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// PlayerHidden reports whether the player currently stands in a hiding spot.
func (s *GameState) PlayerHidden() bool {
	c, _ := s.Grid.At(s.Player.X, s.Player.Y)
	return c == CellHidden
}

// Regenerate builds a fresh round: border walls, the player at the start
// cell, hiding spots and the door at random empty cells, and the enemy in
// the right-hand middle band. The previous layout is kept if placement fails.
func (s *GameState) Regenerate() error {
	r := s.Rules
	if r.Width < 5 || r.Height < 5 {
		return fmt.Errorf("%w: %dx%d", ErrGridTooSmall, r.Width, r.Height)
	}

	grid := CreateGameWindow(r.Width, r.Height)
	if !grid.Interior().Contains(r.Start.X, r.Start.Y) {
		return fmt.Errorf("%w: start (%d,%d) outside the interior", ErrGridTooSmall, r.Start.X, r.Start.Y)
	}
	grid.Set(r.Start.X, r.Start.Y, CellPlayer)

	for i := range r.HidingSpots {
		if _, err := s.place(grid, CellHidingSpot, grid.Interior()); err != nil {
			return fmt.Errorf("hiding spot %d: %w", i+1, err)
		}
	}
	if _, err := s.place(grid, CellDoor, grid.Interior()); err != nil {
		return fmt.Errorf("door: %w", err)
	}
	enemyAt, err := s.place(grid, CellEnemy, enemyBand(r.Width, r.Height))
	if err != nil {
		return fmt.Errorf("enemy: %w", err)
	}

	s.Grid = grid
	s.Player = Player{X: r.Start.X, Y: r.Start.Y}
	s.Enemy = Enemy{
		X:       enemyAt.X,
		Y:       enemyAt.Y,
		Angle:   math.Pi,
		Forward: math.Pi, // Faces the player's side of the maze
		Sweep:   1,
	}
	return nil
}

// NextRound counts the escape and lays out a new maze under rules.
// On failure the previous layout, rules and round are kept.
func (s *GameState) NextRound(rules Rules) error {
	prev := s.Rules
	s.Rules = rules
	if err := s.Regenerate(); err != nil {
		s.Rules = prev
		return err
	}
	s.Round++
	return nil
}

// enemyBand is the right-hand middle region the enemy spawns in:
// x in [w/2, w-2], y in [h/4, 3h/4].
func enemyBand(w, h int) core.Rect {
	x0, x1 := w/2, w-2
	y0, y1 := max(h/4, 1), min(3*h/4, h-2)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// place rejection-samples area for an empty cell, writes c there and
// returns its position. It gives up after Rules.MaxAttempts tries.
func (s *GameState) place(grid *Grid, c Cell, area core.Rect) (Point, error) {
	attempts := max(s.Rules.MaxAttempts, 1)
	if area.W <= 0 || area.H <= 0 {
		return Point{}, fmt.Errorf("%w: empty area for %s", ErrNoPlacement, c)
	}

	for range attempts {
		x := area.X + s.rng.Intn(area.W)
		y := area.Y + s.rng.Intn(area.H)
		if v, ok := grid.At(x, y); ok && v == CellSpace {
			grid.Set(x, y, c)
			return Point{X: x, Y: y}, nil
		}
	}
	return Point{}, fmt.Errorf("%w: %s after %d attempts", ErrNoPlacement, c, attempts)
}
