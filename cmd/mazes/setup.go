package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mazes/internal/config"
	"github.com/vovakirdan/tui-mazes/internal/core"
	"github.com/vovakirdan/tui-mazes/internal/games/hideseek"
	"github.com/vovakirdan/tui-mazes/internal/games/raycast"
	"github.com/vovakirdan/tui-mazes/internal/platform/tui"
	"github.com/vovakirdan/tui-mazes/internal/storage"
)

// runtimeConfig builds the platform config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the runs database. Failure is reported and play continues
// without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open runs database, results will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// prepareGame applies --config and --difficulty to a game before it is
// created. The config file is loaded once here so errors surface before the
// terminal switches to the alternate screen. For hideseek without
// --difficulty the difficulty picker is shown when interactive is set.
// ok is false when the user backed out of the picker.
func prepareGame(gameID string, cfg core.RuntimeConfig, interactive bool) (out core.RuntimeConfig, ok bool, err error) {
	switch gameID {
	case raycast.GameID:
		raycast.SetConfigPath(flagConfig)
		if err := raycast.CheckConfig(flagConfig); err != nil {
			return cfg, false, fmt.Errorf("raycast config: %w", err)
		}

	case hideseek.GameID:
		hideseek.SetConfigPath(flagConfig)
		if _, err := config.LoadHideSeek(flagConfig); err != nil {
			return cfg, false, fmt.Errorf("hideseek config: %w", err)
		}

		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return cfg, false, err
		}
		if flagDifficulty == "" && interactive {
			chosen, err := tui.RunDifficultySelector("Hide and Seek", cfg)
			if err != nil {
				return cfg, false, err
			}
			if chosen == nil {
				return cfg, false, nil
			}
			preset = *chosen
		}

		hideseek.SetDifficultyPreset(preset)
		cfg.Difficulty = string(preset)
	}

	return cfg, true, nil
}
