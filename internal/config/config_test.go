package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPresets(t *testing.T) {
	cfg := Default()

	tests := []struct {
		preset    Preset
		rows      int
		cols      int
		mines     int
		treasures int
	}{
		{PresetBeginner, 8, 8, 10, 2},
		{PresetIntermediate, 16, 16, 40, 4},
		{PresetExpert, 30, 16, 99, 6},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			b := cfg.Board(tc.preset)
			if b.Rows != tc.rows || b.Cols != tc.cols {
				t.Errorf("board is %dx%d, expected %dx%d", b.Rows, b.Cols, tc.rows, tc.cols)
			}
			if b.Mines != tc.mines {
				t.Errorf("mines = %d, expected %d", b.Mines, tc.mines)
			}
			if b.Treasures != tc.treasures {
				t.Errorf("treasures = %d, expected %d", b.Treasures, tc.treasures)
			}
		})
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Loading with no files on disk falls through to the embedded YAML,
	// which must agree with the hardcoded fallback. Point HOME and the
	// working directory at empty temp dirs so a developer's real
	// ~/.sweeper/configs or ./configs override cannot leak in.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := Default()
	for _, p := range Presets() {
		if cfg.Board(p) != want.Board(p) {
			t.Errorf("embedded %s = %+v, hardcoded %+v", p, cfg.Board(p), want.Board(p))
		}
	}
}

func TestLoadCustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	custom := `
beginner:
  rows: 9
  cols: 9
  mines: 12
  treasures: 3
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	b := cfg.Board(PresetBeginner)
	if b.Rows != 9 || b.Cols != 9 || b.Mines != 12 || b.Treasures != 3 {
		t.Errorf("custom beginner = %+v", b)
	}
}

func TestLoadMissingCustomFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("explicitly requested file that is missing should be an error")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"beginner", "intermediate", "expert"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) returned error: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
