package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// LoadRaycast loads raycast configuration.
// Search order: customPath -> ~/.mazes/configs/raycast.yaml -> ./configs/raycast.yaml -> embedded default
func LoadRaycast(customPath string) (RaycastConfig, error) {
	cfg, _, err := load("raycast.yaml", customPath, defaultRaycastYAML, DefaultRaycastConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadHideSeek loads hide-and-seek configuration.
// Search order: customPath -> ~/.mazes/configs/hideseek.yaml -> ./configs/hideseek.yaml -> embedded default
func LoadHideSeek(customPath string) (HideSeekConfig, error) {
	cfg, data, err := load("hideseek.yaml", customPath, defaultHideSeekYAML, DefaultHideSeekConfig)
	if err != nil {
		return cfg, err
	}
	if err := markDifficultyKeys(&cfg, data); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// markDifficultyKeys records which difficulty keys a config file sets.
// data is nil when the embedded defaults were used.
func markDifficultyKeys(cfg *HideSeekConfig, data []byte) error {
	if data == nil {
		return nil
	}
	var keys struct {
		Difficulty struct {
			Enabled      *bool    `yaml:"enabled"`
			InitialLevel *float64 `yaml:"initial_level"`
		} `yaml:"difficulty"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return fmt.Errorf("failed to parse difficulty: %w", err)
	}
	cfg.enabledSet = keys.Difficulty.Enabled != nil
	cfg.levelSet = keys.Difficulty.InitialLevel != nil
	return nil
}

// load resolves a config file through the search order. Files are decoded
// over the hardcoded defaults so partial files only override what they name.
// The file contents are returned alongside, or nil for the embedded default.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, []byte, error) {
	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, data, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := defaults()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, data, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".mazes", "configs", filename)
}

// Validate checks raycast settings that the game cannot recover from.
// Map layout is validated by the raycast package when the map is parsed.
func (c RaycastConfig) Validate() error {
	if c.Movement.MoveSpeed <= 0 || c.Movement.RotSpeed <= 0 {
		return fmt.Errorf("%w: raycast movement speeds must be positive", ErrInvalidConfig)
	}
	if c.Camera.DirX == 0 && c.Camera.DirY == 0 {
		return fmt.Errorf("%w: raycast camera direction must be non-zero", ErrInvalidConfig)
	}
	if len(c.Map) == 0 {
		return fmt.Errorf("%w: raycast map is empty", ErrInvalidConfig)
	}
	return nil
}

// Validate checks hide-and-seek settings.
func (c HideSeekConfig) Validate() error {
	if c.Grid.Width < 5 || c.Grid.Height < 5 {
		return fmt.Errorf("%w: grid must be at least 5x5, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Start.X < 1 || c.Start.X > c.Grid.Width-2 || c.Start.Y < 1 || c.Start.Y > c.Grid.Height-2 {
		return fmt.Errorf("%w: start (%d,%d) is not inside the grid", ErrInvalidConfig, c.Start.X, c.Start.Y)
	}
	if c.HidingSpots < 0 {
		return fmt.Errorf("%w: hiding_spots must not be negative", ErrInvalidConfig)
	}
	if c.Searchlight.Step <= 0 || c.Searchlight.HalfAngle <= 0 || c.Searchlight.Radius <= 0 || c.Searchlight.MaxSweep <= 0 {
		return fmt.Errorf("%w: searchlight values must be positive", ErrInvalidConfig)
	}
	if c.Placement.MaxAttempts <= 0 {
		return fmt.Errorf("%w: placement.max_attempts must be positive", ErrInvalidConfig)
	}
	switch c.Pace {
	case PaceInput, PaceRealtime:
	default:
		return fmt.Errorf("%w: unknown pace %q", ErrInvalidConfig, c.Pace)
	}
	if c.Pace == PaceRealtime && c.SweepEvery <= 0 {
		return fmt.Errorf("%w: sweep_every must be positive for realtime pace", ErrInvalidConfig)
	}
	return nil
}

// ApplyHideSeekPreset modifies the config based on a difficulty preset.
// difficulty.enabled and difficulty.initial_level named in a config file
// are kept; the preset only fills in what the file left out.
func ApplyHideSeekPreset(cfg *HideSeekConfig, preset DifficultyPreset) {
	if !cfg.enabledSet {
		cfg.Difficulty.Enabled = !IsFixedPreset(preset)
	}
	if !cfg.levelSet && !IsFixedPreset(preset) {
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the round layout based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.HidingSpots += cfg.HidingSpots / 2
		cfg.Searchlight.Radius = max(cfg.Searchlight.Radius-3, 1)
	case DifficultyHard:
		cfg.HidingSpots /= 2
		cfg.Searchlight.HalfAngle += 0.1
	}
}
