// Package config provides YAML-based difficulty configuration for the
// sweeper platform: the three board presets and the loader resolving custom
// override files.
package config

import "fmt"

// BoardConfig defines the dimensions and contents of one difficulty level.
type BoardConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	Mines     int `yaml:"mines"`
	Treasures int `yaml:"treasures"`
}

// Config is the full game configuration file.
type Config struct {
	Beginner     BoardConfig `yaml:"beginner"`
	Intermediate BoardConfig `yaml:"intermediate"`
	Expert       BoardConfig `yaml:"expert"`
}

// Preset names a difficulty level.
type Preset string

const (
	PresetBeginner     Preset = "beginner"
	PresetIntermediate Preset = "intermediate"
	PresetExpert       Preset = "expert"
)

// Presets lists all difficulty levels in ascending order.
func Presets() []Preset {
	return []Preset{PresetBeginner, PresetIntermediate, PresetExpert}
}

// ParsePreset resolves a user-supplied difficulty name.
func ParsePreset(name string) (Preset, error) {
	switch Preset(name) {
	case PresetBeginner, PresetIntermediate, PresetExpert:
		return Preset(name), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want beginner, intermediate or expert)", name)
}

// Board returns the board configuration for a preset.
func (c Config) Board(p Preset) BoardConfig {
	switch p {
	case PresetIntermediate:
		return c.Intermediate
	case PresetExpert:
		return c.Expert
	default:
		return c.Beginner
	}
}

// Title returns the display name for a preset.
func (p Preset) Title() string {
	switch p {
	case PresetBeginner:
		return "Beginner"
	case PresetIntermediate:
		return "Intermediate"
	case PresetExpert:
		return "Expert"
	default:
		return string(p)
	}
}
