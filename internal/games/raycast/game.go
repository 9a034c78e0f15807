// Package raycast implements a first-person maze walker rendered with a
// DDA raycaster into the terminal cell buffer.
package raycast

import (
	"fmt"

	"github.com/vovakirdan/tui-mazes/internal/config"
	"github.com/vovakirdan/tui-mazes/internal/core"
	"github.com/vovakirdan/tui-mazes/internal/registry"
)

// GameID is the registry identifier of the raycast game.
const GameID = "raycast"

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path read when a game created by New is first reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the raycast maze walker.
type Game struct {
	cfg    config.RaycastConfig
	world  *Map
	player Player
	steps  int

	// loadErr holds a config problem; the default room is used instead.
	loadErr error
}

// New creates a raycast game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a raycast game from an explicit configuration.
func NewWithConfig(cfg config.RaycastConfig) (*Game, error) {
	g := &Game{}
	if err := g.apply(cfg); err != nil {
		return nil, err
	}
	return g, nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// CheckConfig loads and validates the configured map without starting a game.
func CheckConfig(path string) error {
	cfg, err := config.LoadRaycast(path)
	if err != nil {
		return err
	}
	_, err = NewWithConfig(cfg)
	return err
}

// apply parses the map and start position from cfg.
func (g *Game) apply(cfg config.RaycastConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	world, err := ParseMap(cfg.Map)
	if err != nil {
		return err
	}
	sx, sy := int(cfg.Start.X), int(cfg.Start.Y)
	if cfg.Start.X < 0 || cfg.Start.Y < 0 || world.IsWall(sx, sy) {
		return fmt.Errorf("%w: start (%.2f, %.2f) is not on open floor", ErrInvalidMap, cfg.Start.X, cfg.Start.Y)
	}

	g.cfg = cfg
	g.world = world
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Raycast Maze"
}

// Reset places the player back at the start of the map.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.steps = 0

	if g.world == nil {
		g.loadErr = nil
		cfg, err := config.LoadRaycast(configPath)
		if err == nil {
			err = g.apply(cfg)
		}
		if err != nil {
			g.loadErr = err
			//nolint:errcheck // Defaults are always valid
			g.apply(config.DefaultRaycastConfig())
		}
	}

	g.player = Player{
		Pos:   core.Vec2{X: g.cfg.Start.X, Y: g.cfg.Start.Y},
		Dir:   core.Vec2{X: g.cfg.Camera.DirX, Y: g.cfg.Camera.DirY},
		Plane: core.Vec2{X: g.cfg.Camera.PlaneX, Y: g.cfg.Camera.PlaneY},
	}
}

// Step applies one keypress: W/S walk, A/D turn.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	speed := g.cfg.Movement.MoveSpeed
	rot := g.cfg.Movement.RotSpeed

	switch {
	case in.Has(core.ActionUp):
		g.player.Move(g.world, speed)
		g.steps++
	case in.Has(core.ActionDown):
		g.player.Move(g.world, -speed)
		g.steps++
	case in.Has(core.ActionLeft):
		g.player.Rotate(-rot)
	case in.Has(core.ActionRight):
		g.player.Rotate(rot)
	}

	return core.StepResult{State: g.State()}
}

// Render draws the 3D view with a one-line HUD underneath.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	viewH := dst.Height() - 1
	RenderView(dst, g.world, g.player, dst.Width(), viewH)

	hud := fmt.Sprintf(" Raycast | pos (%.2f, %.2f)  heading %3.0f°  steps %d  W/S: walk  A/D: turn  Q: quit",
		g.player.Pos.X, g.player.Pos.Y, g.player.Heading(), g.steps)
	if g.loadErr != nil {
		hud = fmt.Sprintf(" Config error, using default room: %v", g.loadErr)
	}
	dst.DrawTextStyled(0, dst.Height()-1, hud, core.Fg(core.ColorCyan))
}

// State returns the current game state. The walker has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{}
}

// Player returns a copy of the current camera state.
func (g *Game) Player() Player {
	return g.player
}
