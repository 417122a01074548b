package config

import (
	_ "embed"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// Default returns the built-in difficulty presets.
func Default() Config {
	return Config{
		Beginner:     BoardConfig{Rows: 8, Cols: 8, Mines: 10, Treasures: 2},
		Intermediate: BoardConfig{Rows: 16, Cols: 16, Mines: 40, Treasures: 4},
		Expert:       BoardConfig{Rows: 30, Cols: 16, Mines: 99, Treasures: 6},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSweeperYAML
}
