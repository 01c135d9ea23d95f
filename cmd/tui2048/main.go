// tui2048 is a terminal version of the 2048 sliding-tile puzzle.
//
// Usage:
//
//	tui2048                  - Play with default settings
//	tui2048 play             - Play (same as bare invocation)
//	tui2048 scores           - Show high scores
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible games
//	--db <path>     - Set database path (default: ~/.tui2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tui2048",
	Short: "2048 - Play the sliding-tile puzzle in your terminal",
	Long: `tui2048 is a terminal version of the 2048 puzzle. Slide tiles with
WASD or the arrow keys; equal tiles merge and double. Reach the win
tile (2048 by default) before the board fills up.

Available commands:
  play     - Start a game (default when no command given)
  scores   - View high scores

Examples:
  tui2048
  tui2048 play --size 5
  tui2048 play --win-tile 4096 --seed 42
  tui2048 scores
  tui2048 scores --plain`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui2048/scores.db", "Path to scores database")

	// The root command plays directly, so it carries the play flags too.
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
