package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazes/internal/platform/tui"
	"github.com/vovakirdan/tui-mazes/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick games from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - Best runs
  Q            - Quit

Examples:
  mazes menu
  mazes menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for hideseek: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		gameCfg, ok, err := prepareGame(result.GameID, cfg, true)
		if err != nil {
			log.Error("cannot start game", "game", result.GameID, "err", err)
			continue
		}
		if !ok {
			continue // Backed out of the difficulty picker
		}

		game, err := registry.Create(result.GameID)
		if err != nil {
			log.Error("cannot create game", "game", result.GameID, "err", err)
			continue
		}

		if flagSeed == 0 {
			gameCfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(game, store, gameCfg); err != nil {
			log.Error("game exited with error", "game", result.GameID, "err", err)
		}
	}
}
