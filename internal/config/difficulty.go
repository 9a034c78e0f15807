package config

import "math"

// DifficultyManager calculates searchlight parameters from rounds won.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) after the given
// number of rounds have been won.
func (d *DifficultyManager) Level(rounds int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "rounds" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(rounds)/maxAt, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// SweepStep returns the searchlight angle step for the given round.
func (d *DifficultyManager) SweepStep(baseStep float64, rounds int) float64 {
	return baseStep * (1.0 + d.Level(rounds)*d.cfg.Scaling.StepMultiplier)
}

// Radius returns the searchlight radius for the given round.
func (d *DifficultyManager) Radius(baseRadius float64, rounds int) float64 {
	return baseRadius + d.Level(rounds)*d.cfg.Scaling.RadiusBonus
}

// HidingSpots returns the number of hiding spots placed for the given round.
func (d *DifficultyManager) HidingSpots(baseSpots int, rounds int) int {
	reduction := int(d.Level(rounds) * float64(d.cfg.Scaling.SpotReduction))
	result := baseSpots - reduction
	if result < 1 && baseSpots > 0 { // Keep at least one place to hide
		result = 1
	}
	return max(result, 0)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
