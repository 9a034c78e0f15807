package config

import (
	_ "embed"
	"math"
)

//go:embed defaults/raycast.yaml
var defaultRaycastYAML []byte

//go:embed defaults/hideseek.yaml
var defaultHideSeekYAML []byte

// DefaultRaycastConfig returns the default raycast configuration:
// a 5x5 walled room with the player in the middle, facing -x.
func DefaultRaycastConfig() RaycastConfig {
	return RaycastConfig{
		Movement: RaycastMovement{
			MoveSpeed: 0.1,
			RotSpeed:  0.1,
		},
		Camera: RaycastCamera{
			DirX:   -1,
			DirY:   0,
			PlaneX: 0,
			PlaneY: 0.66,
		},
		Start: PointF{X: 2.5, Y: 2.5},
		Map: []string{
			"#####",
			"#...#",
			"#...#",
			"#...#",
			"#####",
		},
	}
}

// DefaultHideSeekConfig returns the default hide-and-seek configuration.
func DefaultHideSeekConfig() HideSeekConfig {
	return HideSeekConfig{
		Grid:        HideSeekGrid{Width: 100, Height: 25},
		Start:       Point{X: 2, Y: 2},
		HidingSpots: 12,
		Searchlight: SearchlightConfig{
			Step:      0.1,
			HalfAngle: 0.5,
			Radius:    15,
			MaxSweep:  math.Pi / 2,
		},
		Placement:  PlacementConfig{MaxAttempts: 1000},
		Pace:       PaceInput,
		SweepEvery: 6,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "rounds",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				StepMultiplier: 1.0,
				RadiusBonus:    5,
				SpotReduction:  6,
			},
		},
	}
}
