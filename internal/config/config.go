// Package config provides YAML-based game configuration loading and
// difficulty management for the maze arcade.
package config

import "fmt"

// RaycastConfig contains all configuration for the raycasting maze walker.
type RaycastConfig struct {
	Movement RaycastMovement `yaml:"movement"`
	Camera   RaycastCamera   `yaml:"camera"`
	Start    PointF          `yaml:"start"`
	// Map rows use '#' for walls and '.' for open floor.
	// Rows run along the first map axis, matching map[x][y] indexing.
	Map []string `yaml:"map"`
}

// RaycastMovement defines walking and turning speeds.
type RaycastMovement struct {
	MoveSpeed float64 `yaml:"move_speed"` // Cells per keypress
	RotSpeed  float64 `yaml:"rot_speed"`  // Radians per keypress
}

// RaycastCamera defines the initial view direction and camera plane.
type RaycastCamera struct {
	DirX   float64 `yaml:"dir_x"`
	DirY   float64 `yaml:"dir_y"`
	PlaneX float64 `yaml:"plane_x"`
	PlaneY float64 `yaml:"plane_y"`
}

// PointF is a continuous map position.
type PointF struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Point is a grid cell position.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// HideSeekConfig contains all configuration for the hide-and-seek game.
type HideSeekConfig struct {
	Grid        HideSeekGrid      `yaml:"grid"`
	Start       Point             `yaml:"start"`
	HidingSpots int               `yaml:"hiding_spots"`
	Searchlight SearchlightConfig `yaml:"searchlight"`
	Placement   PlacementConfig   `yaml:"placement"`
	Pace        Pace              `yaml:"pace"`
	SweepEvery  int               `yaml:"sweep_every"` // Ticks between sweeps when pace is realtime
	Difficulty  DifficultyConfig  `yaml:"difficulty"`

	// Set by the loader when a config file names these keys, so a
	// difficulty preset does not override them.
	enabledSet bool
	levelSet   bool
}

// HideSeekGrid defines the playfield size including the border walls.
type HideSeekGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SearchlightConfig defines the enemy's vision cone and sweep.
type SearchlightConfig struct {
	Step      float64 `yaml:"step"`       // Radians advanced per tick
	HalfAngle float64 `yaml:"half_angle"` // Cone half-angle in radians
	Radius    float64 `yaml:"radius"`     // Maximum lit distance in cells
	MaxSweep  float64 `yaml:"max_sweep"`  // Max deviation from forward before reversing
}

// PlacementConfig bounds the rejection-sampling loops used to lay out a round.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// Pace selects what drives the searchlight.
type Pace string

const (
	PaceInput    Pace = "input"    // One sweep per keypress
	PaceRealtime Pace = "realtime" // Sweeps on a timer between keypresses
)

// DifficultyConfig defines how the searchlight tightens as rounds are won.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over rounds.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rounds" or "none"
	MaxAt int    `yaml:"max_at"` // Rounds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	StepMultiplier float64 `yaml:"step_multiplier"` // Added to sweep step multiplier at max difficulty
	RadiusBonus    float64 `yaml:"radius_bonus"`    // Cells added to the radius at max difficulty
	SpotReduction  int     `yaml:"spot_reduction"`  // Hiding spots removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name yields DifficultyNormal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
// Easy and normal open on the configured searchlight and ramp from there.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
