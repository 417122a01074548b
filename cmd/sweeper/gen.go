package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var (
	flagGenDifficulty string
	flagGenConfig     string
	flagGenOutput     string
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random board layout as CSV",
	Long: `Generate a random board for the chosen difficulty and print it as CSV
(0 empty, 1 mine, 2 treasure). Use --seed for reproducible boards.

Generated boards are random placements and are not guaranteed to satisfy
the board-file placement rules checked by 'sweeper validate'.

Examples:
  sweeper gen
  sweeper gen --difficulty expert
  sweeper gen --difficulty beginner --seed 42
  sweeper gen -o ./boards/random.csv`,
	Args: cobra.NoArgs,
	Run:  runGen,
}

func init() {
	genCmd.Flags().StringVar(&flagGenDifficulty, "difficulty", "beginner", "Difficulty preset: beginner, intermediate, expert")
	genCmd.Flags().StringVar(&flagGenConfig, "config", "", "Path to custom presets YAML")
	genCmd.Flags().StringVarP(&flagGenOutput, "output", "o", "", "Write to file instead of stdout")
}

func runGen(cmd *cobra.Command, args []string) {
	presets, err := config.Load(flagGenConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagGenDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	board := presets.Board(preset)

	grid, err := sweeper.Generate(sweeper.GenParams{
		Rows:      board.Rows,
		Cols:      board.Cols,
		Mines:     board.Mines,
		Treasures: board.Treasures,
		Seed:      flagSeed,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating board: %v\n", err)
		os.Exit(1)
	}

	out := sweeper.FormatBoard(grid)

	if flagGenOutput == "" {
		fmt.Print(out)
		return
	}

	if err := os.WriteFile(flagGenOutput, []byte(out), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", flagGenOutput, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s board to %s\n", preset.Title(), flagGenOutput)
}
