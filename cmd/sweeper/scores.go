package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var flagScoresDifficulty string

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show fastest wins",
	Long: `Display the top 10 fastest wins for a difficulty.

Examples:
  sweeper scores
  sweeper scores --difficulty expert`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresDifficulty, "difficulty", "beginner", "Difficulty preset: beginner, intermediate, expert")
}

func runScores(cmd *cobra.Command, args []string) {
	preset, err := config.ParsePreset(flagScoresDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	wins, err := store.FastestWins(string(preset), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fastest Wins - %s\n", preset.Title())
	fmt.Println()

	if len(wins) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play --difficulty %s' to set the first time!\n", preset)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %s\n", "Rank", "Time", "Cells", "Board", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-8s  %s\n", "----", "----", "-----", "-----", "----")

	for i, w := range wins {
		timeStr := fmt.Sprintf("%d:%02d", w.DurationSecs/60, w.DurationSecs%60)
		dateStr := w.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-7d  %-8s  %s\n", i+1, timeStr, w.CellsRevealed, w.BoardSource, dateStr)
	}

	// Show aggregate stats
	stats, err := store.DifficultyStats(string(preset))
	if err == nil && stats.Games > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d:%02d\n",
			stats.Games, stats.Wins, stats.BestSecs/60, stats.BestSecs%60)
	}
}
