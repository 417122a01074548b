package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var (
	flagConfig     string
	flagDifficulty string
	flagBoard      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game on a random board, or load a fixed board from a CSV file.

Controls:
  Arrows/WASD  - Move cursor
  Space/Enter  - Reveal cell
  F            - Toggle flag
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Without --difficulty or --board an interactive difficulty menu is shown.

Board files are 8x8 CSV layouts (0 empty, 1 mine, 2 treasure) and are
validated against the placement rules before play.

Examples:
  sweeper play
  sweeper play --difficulty expert
  sweeper play --board ./boards/tricky.csv
  sweeper play --config ./my-presets.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom presets YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: beginner, intermediate, expert")
	playCmd.Flags().StringVar(&flagBoard, "board", "", "Path to a CSV board layout file")
}

func runPlay(cmd *cobra.Command, args []string) {
	presets, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading presets: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	if flagBoard != "" {
		runPlayBoardFile(cfg)
		return
	}

	difficulty := flagDifficulty
	if difficulty == "" {
		// No difficulty requested, show the interactive menu
		for {
			result, menuErr := tui.RunMenu(presets, cfg)
			if menuErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
				os.Exit(1)
			}
			if result.Quit {
				return
			}
			if result.WantsScoreboard {
				runScoreboardScreen(cfg)
				continue
			}
			difficulty = string(result.Preset)
			break
		}
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	board := presets.Board(preset)

	store := openStore()
	defer closeStore(store)

	runErr := tui.Run(tui.GameOptions{
		NewBoard: func() (*sweeper.Grid, error) {
			return sweeper.Generate(sweeper.GenParams{
				Rows:      board.Rows,
				Cols:      board.Cols,
				Mines:     board.Mines,
				Treasures: board.Treasures,
				Seed:      flagSeed,
			})
		},
		Store:       store,
		Config:      cfg,
		Difficulty:  string(preset),
		BoardSource: storage.SourceRandom,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runPlayBoardFile loads and validates a fixed board, then plays it.
// Restarting replays the same layout.
func runPlayBoardFile(cfg core.RuntimeConfig) {
	grid, violations, err := sweeper.LoadBoardFile(flagBoard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading board file: %v\n", err)
		os.Exit(1)
	}
	if len(violations) > 0 {
		fmt.Fprintf(os.Stderr, "Board %s is invalid:\n", flagBoard)
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v.Error())
		}
		os.Exit(1)
	}

	store := openStore()
	defer closeStore(store)

	runErr := tui.Run(tui.GameOptions{
		NewBoard: func() (*sweeper.Grid, error) {
			return grid.Clone(), nil
		},
		Store:       store,
		Config:      cfg,
		Difficulty:  string(config.PresetBeginner), // Board files are 8x8 beginner boards
		BoardSource: storage.SourceFile,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runScoreboardScreen shows the scoreboard and returns to the caller.
func runScoreboardScreen(cfg core.RuntimeConfig) {
	store := openStore()
	defer closeStore(store)

	if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore opens the results database, or returns nil when unavailable.
// The game still works without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
