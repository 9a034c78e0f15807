// mazes is a terminal maze arcade: a first-person raycasting maze walker
// and a top-down hide-and-seek game against a sweeping searchlight.
//
// Usage:
//
//	mazes list              - List available games
//	mazes play <game>       - Play a game
//	mazes menu              - Start menu to pick games interactively
//	mazes serve             - Start SSH server for remote play
//	mazes scores <game>     - Show best runs for a game
//
// Global flags:
//
//	--fps <rate>    - Tick rate for realtime pacing (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.mazes/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-mazes/internal/games/hideseek"
	_ "github.com/vovakirdan/tui-mazes/internal/games/raycast"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mazes",
	Short: "Terminal maze games",
	Long: `mazes bundles two terminal maze games:

  raycast   - walk a small maze in first person, drawn by a raycaster
  hideseek  - reach the door while a searchlight sweeps the floor

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  mazes list
  mazes play raycast
  mazes play hideseek --difficulty hard
  mazes menu
  mazes serve --ssh :2222
  mazes scores hideseek`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		log.SetReportTimestamp(true)
		log.SetPrefix("mazes")
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate for realtime pacing (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mazes/scores.db", "Path to runs database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
