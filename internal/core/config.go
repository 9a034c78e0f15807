package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Ticks per second for realtime-paced games
	Seed     int64 // RNG seed; 0 asks the platform to seed from the clock

	// Difficulty is the preset name the game was started with.
	// It is recorded with saved runs and is empty for config defaults.
	Difficulty string
}

// DefaultConfig returns an 80x24 terminal ticking at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalized replaces non-positive sizes and tick rate with the defaults.
// Terminals that cannot report their size show up as 0x0.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	return c
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int  // Rounds escaped, or 0 for games without scoring
	GameOver bool // Caught, or a maze could not be generated
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
