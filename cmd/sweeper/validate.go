package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a board layout file against the placement rules",
	Long: `Validate a CSV board layout against all placement rules:

  - The board is exactly 8x8 with only values 0 (empty), 1 (mine), 2 (treasure)
  - Exactly 10 mines
  - Every row and every column contains at least one mine
  - Exactly one mine on the main diagonal
  - Exactly one pair of orthogonally adjacent mines
  - Between 1 and 9 treasures

All violated rules are reported, not just the first one found.

Examples:
  sweeper validate ./boards/tricky.csv`,
	Args: cobra.ExactArgs(1),
	Run:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	path := args[0]

	_, violations, err := sweeper.LoadBoardFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading board file: %v\n", err)
		os.Exit(1)
	}

	if len(violations) > 0 {
		fmt.Printf("Board %s is INVALID:\n", path)
		for _, v := range violations {
			fmt.Printf("  %s\n", v.Error())
		}
		os.Exit(1)
	}

	fmt.Printf("Board %s is valid.\n", path)
}
