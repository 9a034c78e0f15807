package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	t.Chdir(t.TempDir()) // Keep ./configs lookups out of the picture

	rc, err := LoadRaycast("")
	if err != nil {
		t.Fatalf("LoadRaycast() failed: %v", err)
	}
	want := DefaultRaycastConfig()
	if rc.Movement != want.Movement || rc.Camera != want.Camera || rc.Start != want.Start {
		t.Errorf("Embedded raycast config differs from defaults: %+v", rc)
	}
	if len(rc.Map) != 5 {
		t.Errorf("Expected 5 map rows, got %d", len(rc.Map))
	}

	hc, err := LoadHideSeek("")
	if err != nil {
		t.Fatalf("LoadHideSeek() failed: %v", err)
	}
	if hc.Grid.Width != 100 || hc.Grid.Height != 25 {
		t.Errorf("Grid = %dx%d, expected 100x25", hc.Grid.Width, hc.Grid.Height)
	}
	if math.Abs(hc.Searchlight.MaxSweep-math.Pi/2) > 1e-9 {
		t.Errorf("MaxSweep = %f, expected pi/2", hc.Searchlight.MaxSweep)
	}
	if hc.Pace != PaceInput {
		t.Errorf("Pace = %q, expected input", hc.Pace)
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hs.yaml")
	data := []byte("grid:\n  width: 40\n  height: 12\nhiding_spots: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHideSeek(path)
	if err != nil {
		t.Fatalf("LoadHideSeek() failed: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 12 || cfg.HidingSpots != 3 {
		t.Errorf("Custom values not applied: %+v", cfg)
	}
	// Unspecified values keep defaults
	if cfg.Searchlight.Radius != 15 {
		t.Errorf("Radius = %f, expected default 15", cfg.Searchlight.Radius)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadRaycast(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("movement: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRaycast(path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestHideSeekValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HideSeekConfig)
	}{
		{"tiny grid", func(c *HideSeekConfig) { c.Grid.Width = 3 }},
		{"start on border", func(c *HideSeekConfig) { c.Start = Point{X: 0, Y: 2} }},
		{"negative spots", func(c *HideSeekConfig) { c.HidingSpots = -1 }},
		{"zero radius", func(c *HideSeekConfig) { c.Searchlight.Radius = 0 }},
		{"zero attempts", func(c *HideSeekConfig) { c.Placement.MaxAttempts = 0 }},
		{"unknown pace", func(c *HideSeekConfig) { c.Pace = "warp" }},
		{"realtime without interval", func(c *HideSeekConfig) {
			c.Pace = PaceRealtime
			c.SweepEvery = 0
		}},
	}

	if err := DefaultHideSeekConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHideSeekConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestRaycastValidate(t *testing.T) {
	cfg := DefaultRaycastConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	cfg.Camera.DirX, cfg.Camera.DirY = 0, 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Zero direction should be invalid, got %v", err)
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "fixed"} {
		if p, err := ParsePreset(name); err != nil || string(p) != name {
			t.Errorf("ParsePreset(%q) = %q, %v", name, p, err)
		}
	}
	if p, _ := ParsePreset(""); p != DifficultyNormal {
		t.Errorf("Empty preset should be normal, got %q", p)
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("Unknown preset should fail")
	}
}

func TestApplyHideSeekPreset(t *testing.T) {
	easy := DefaultHideSeekConfig()
	ApplyHideSeekPreset(&easy, DifficultyEasy)
	if easy.HidingSpots != 18 {
		t.Errorf("Easy hiding spots = %d, expected 18", easy.HidingSpots)
	}

	hard := DefaultHideSeekConfig()
	ApplyHideSeekPreset(&hard, DifficultyHard)
	if hard.HidingSpots != 6 || hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("Hard preset not applied: spots=%d level=%f", hard.HidingSpots, hard.Difficulty.InitialLevel)
	}

	fixed := DefaultHideSeekConfig()
	ApplyHideSeekPreset(&fixed, DifficultyFixed)
	if fixed.Difficulty.Enabled {
		t.Error("Fixed preset should disable progression")
	}

	normal := DefaultHideSeekConfig()
	ApplyHideSeekPreset(&normal, DifficultyNormal)
	if !normal.Difficulty.Enabled || normal.Difficulty.InitialLevel != 0 || normal.HidingSpots != 12 {
		t.Errorf("Normal preset should start from the base config: enabled=%v level=%f spots=%d",
			normal.Difficulty.Enabled, normal.Difficulty.InitialLevel, normal.HidingSpots)
	}
}

func TestApplyHideSeekPresetKeepsFileDifficulty(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name        string
		body        string
		preset      DifficultyPreset
		wantEnabled bool
		wantLevel   float64
	}{
		{"level kept under hard", "difficulty:\n  initial_level: 0.5\n", DifficultyHard, true, 0.5},
		{"level kept under normal", "difficulty:\n  initial_level: 0.5\n", DifficultyNormal, true, 0.5},
		{"enabled kept under fixed", "difficulty:\n  enabled: true\n", DifficultyFixed, true, 0},
		{"disabled kept under hard", "difficulty:\n  enabled: false\n", DifficultyHard, false, 0.7},
		{"no difficulty block", "hiding_spots: 8\n", DifficultyHard, true, 0.7},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(fmt.Sprintf("hs%d.yaml", i), tt.body)
			cfg, err := LoadHideSeek(path)
			if err != nil {
				t.Fatalf("LoadHideSeek() failed: %v", err)
			}
			ApplyHideSeekPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.wantEnabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tt.wantEnabled)
			}
			if cfg.Difficulty.InitialLevel != tt.wantLevel {
				t.Errorf("InitialLevel = %f, expected %f", cfg.Difficulty.InitialLevel, tt.wantLevel)
			}
		})
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultHideSeekConfig().Difficulty
	dm := NewDifficultyManager(cfg)

	if dm.Level(0) != 0 {
		t.Errorf("Level(0) = %f, expected 0", dm.Level(0))
	}
	if dm.Level(5) != 0.5 {
		t.Errorf("Level(5) = %f, expected 0.5", dm.Level(5))
	}
	if dm.Level(100) != 1 {
		t.Errorf("Level should cap at 1, got %f", dm.Level(100))
	}

	if got := dm.SweepStep(0.1, 10); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("SweepStep at max = %f, expected 0.2", got)
	}
	if got := dm.Radius(15, 10); got != 20 {
		t.Errorf("Radius at max = %f, expected 20", got)
	}
	if got := dm.HidingSpots(12, 10); got != 6 {
		t.Errorf("HidingSpots at max = %d, expected 6", got)
	}
	if got := dm.HidingSpots(2, 10); got != 1 {
		t.Errorf("HidingSpots should keep one spot, got %d", got)
	}

	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	fixed := NewDifficultyManager(cfg)
	if fixed.Level(50) != 0.3 {
		t.Errorf("Disabled manager should stay at initial level, got %f", fixed.Level(50))
	}
}
