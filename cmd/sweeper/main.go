// sweeper is a terminal minesweeper variant with hidden treasures.
//
// Usage:
//
//	sweeper play                 - Play a game in the terminal
//	sweeper validate <file>      - Check a board layout file against the rules
//	sweeper gen                  - Generate a random board layout
//	sweeper scores               - Show fastest wins
//	sweeper serve                - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.sweeper/results.db)
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
	Use:   "sweeper",
	Short: "Sweeper - Minesweeper with hidden treasures in your terminal",
	Long: `Sweeper is a terminal minesweeper variant. Each board hides mines and
treasures: reveal a treasure and you win instantly, reveal a mine and you
lose, or clear every plain cell for the classic win.

Available commands:
  play      - Play a game (random board or a board file)
  validate  - Check a board layout file against the placement rules
  gen       - Generate a random board layout as CSV
  scores    - View fastest wins per difficulty
  serve     - Start SSH server for remote play

Examples:
  sweeper play
  sweeper play --difficulty expert
  sweeper play --board ./boards/tricky.csv
  sweeper validate ./boards/tricky.csv
  sweeper gen --difficulty beginner --seed 42
  sweeper scores --difficulty expert
  sweeper serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
