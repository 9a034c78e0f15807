package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mazes/internal/registry"
	"github.com/vovakirdan/tui-mazes/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show best runs for a game",
	Long: `Display the best runs for the specified game, with the seed and
difficulty needed to replay each layout.

Examples:
  mazes scores hideseek
  mazes scores hideseek --limit 25
  mazes scores hideseek --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'mazes list' to see available games)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", game.Title())
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mazes play %s' to set the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %-20s  %s\n", "Rank", "Score", "Difficulty", "Seed", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %-20s  %s\n", "----", "-----", "----------", "----", "----")
	for i, r := range runs {
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-10s  %-20d  %s\n",
			i+1, r.Score, difficulty, r.Seed, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	fmt.Printf("Replay a layout with: mazes play %s --seed <seed> --difficulty <difficulty>\n", gameID)
	return nil
}
