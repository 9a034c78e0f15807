// Package hideseek implements a top-down stealth game: cross the maze to the
// door while a stationary enemy sweeps a searchlight cone over the floor.
// Hiding spots block the light.
package hideseek

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-mazes/internal/config"
	"github.com/vovakirdan/tui-mazes/internal/core"
	"github.com/vovakirdan/tui-mazes/internal/registry"
)

// GameID is the registry identifier of the hide-and-seek game.
const GameID = "hideseek"

// Package-level settings, applied by the CLI before the game is created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the config file path read when the game is first reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game wraps a GameState with the platform game lifecycle.
type Game struct {
	cfg        config.HideSeekConfig
	configured bool
	difficulty *config.DifficultyManager

	state   *GameState
	seed    int64
	ticks   int
	over    bool
	paused  bool
	message string // Overlay headline when the game is over
	failErr error  // Layout failure that ended the game

	loadErr error
}

// New creates a hide-and-seek game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game from an explicit configuration.
func NewWithConfig(cfg config.HideSeekConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{}
	g.apply(cfg)
	return g, nil
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

func (g *Game) apply(cfg config.HideSeekConfig) {
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.configured = true
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Hide and Seek"
}

// Pacing reports whether the searchlight sweeps on keypresses or on a timer.
func (g *Game) Pacing() registry.Pacing {
	if g.cfg.Pace == config.PaceRealtime {
		return registry.PacingRealtime
	}
	return registry.PacingInput
}

// Reset starts a new session from round zero.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if !g.configured {
		g.loadErr = nil
		cfg, err := config.LoadHideSeek(configPath)
		if err != nil {
			g.loadErr = err
			cfg = config.DefaultHideSeekConfig()
		}
		if difficultyPreset != "" {
			config.ApplyHideSeekPreset(&cfg, difficultyPreset)
		}
		g.apply(cfg)
	}

	g.seed = rc.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}
	g.restart()
}

// restart lays out round zero with the current seed.
func (g *Game) restart() {
	g.ticks = 0
	g.over = false
	g.paused = false
	g.message = ""
	g.failErr = nil

	rng := rand.New(rand.NewSource(g.seed))
	state, err := NewGameState(g.rulesFor(0), rng)
	if err != nil {
		g.state = nil
		g.fail(err)
		return
	}
	g.state = state
	if UpdateEnemy(g.state) {
		g.caught()
	}
}

// rulesFor returns the round rules after the given number of escapes.
func (g *Game) rulesFor(round int) Rules {
	r := RulesFromConfig(g.cfg)
	r.Step = g.difficulty.SweepStep(r.Step, round)
	r.Radius = g.difficulty.Radius(r.Radius, round)
	r.HidingSpots = g.difficulty.HidingSpots(r.HidingSpots, round)
	return r
}

// Step applies one input frame. In input pacing every call sweeps the light
// once; in realtime pacing the light moves every SweepEvery calls.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.over {
		if in.Has(core.ActionRestart) {
			g.seed++
			g.restart()
		}
		return core.StepResult{State: g.State()}
	}

	realtime := g.Pacing() == registry.PacingRealtime
	if realtime && in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionOf(in); ok {
		if MovePlayer(g.state, dir) == MoveReachedDoor {
			if err := g.state.NextRound(g.rulesFor(g.state.Round + 1)); err != nil {
				g.fail(err)
				return core.StepResult{State: g.State()}
			}
		}
	}

	g.ticks++
	if !realtime || g.ticks%max(g.cfg.SweepEvery, 1) == 0 {
		if UpdateEnemy(g.state) {
			g.caught()
		}
	}

	return core.StepResult{State: g.State()}
}

// directionOf maps the first movement action in the frame to a direction.
func directionOf(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

func (g *Game) caught() {
	g.over = true
	g.message = "Caught!"
}

func (g *Game) fail(err error) {
	g.over = true
	g.message = "Maze generation failed"
	if errors.Is(err, ErrNoPlacement) {
		g.message = "No room left in the maze"
	}
	g.failErr = err
}

// Render draws the playfield, the HUD, and the game-over overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state != nil {
		viewH := max(dst.Height()-hudRows, 0)
		RenderGrid(dst, g.state, dst.Width(), viewH)
		renderHUD(dst, g.state)
	}

	if g.loadErr != nil && !g.over {
		dst.DrawTextStyled(0, 0, fmt.Sprintf(" Config error, using defaults: %v", g.loadErr),
			core.Fg(core.ColorBrightRed))
	}

	switch {
	case g.over:
		lines := []string{g.message, fmt.Sprintf("Rounds escaped: %d", g.score())}
		if g.failErr != nil {
			lines = append(lines, g.failErr.Error())
		}
		lines = append(lines, "R: restart  Q: quit")
		dst.DrawOverlay(lines...)
	case g.paused:
		dst.DrawOverlay("PAUSED", "P: resume")
	}
}

func (g *Game) score() int {
	if g.state == nil {
		return 0
	}
	return g.state.Round
}

// State returns the current game state. Score counts doors reached.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.over,
		Paused:   g.paused,
	}
}

// Session exposes the underlying state for inspection.
func (g *Game) Session() *GameState {
	return g.state
}
