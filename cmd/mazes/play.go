package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazes/internal/platform/tui"
	"github.com/vovakirdan/tui-mazes/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls (raycast):
  W/S or Up/Down      - Walk forward/backward
  A/D or Left/Right   - Turn left/right
  Q/Ctrl+C            - Quit

Controls (hideseek):
  W/A/S/D or arrows   - Move one cell
  P                   - Pause (realtime pace only)
  R                   - Restart after being caught
  Q/Ctrl+C            - Quit

Difficulty options (hideseek):
  easy   - More hiding spots, shorter beam
  normal - Searchlight tightens as rounds are won
  hard   - Fewer hiding spots, wider beam
  fixed  - No progression between rounds

Without --difficulty a picker is shown before hideseek starts.

Examples:
  mazes play raycast
  mazes play raycast --config ./my-maze.yaml
  mazes play hideseek --difficulty easy
  mazes play hideseek --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'mazes list' to see available games)", gameID)
	}

	cfg, ok, err := prepareGame(gameID, runtimeConfig(), true)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
