package sweeper

import (
	"errors"
	"testing"
)

// wallBoard builds a 5x5 grid with a mine wall down column 3 and a treasure
// at (0,4) sealed behind it. Columns 0-1 are a connected zero-adjacency
// region; column 2 is its numbered border.
func wallBoard() *Grid {
	g := NewGrid(5, 5)
	for r := 0; r < 5; r++ {
		g.At(r, 3).Mine = true
	}
	g.At(0, 4).Treasure = true
	g.ComputeAdjacency()
	return g
}

func TestCascadeRevealsRegionOnce(t *testing.T) {
	s := NewSession(wallBoard())

	outcome, err := s.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Fatalf("outcome = %v, expected continue", outcome)
	}

	g := s.Grid()
	// The whole zero region (columns 0-1) and its numbered one-ring
	// (column 2) are revealed; the mine wall and the treasure are not.
	for r := 0; r < 5; r++ {
		for c := 0; c < 3; c++ {
			if !g.At(r, c).Revealed {
				t.Errorf("cell (%d,%d) should be revealed by the cascade", r, c)
			}
		}
		if g.At(r, 3).Revealed {
			t.Errorf("mine at (%d,3) must never be revealed by a cascade", r)
		}
	}
	if g.At(0, 4).Revealed {
		t.Error("treasure behind the mine wall should stay hidden")
	}

	// Numbered border cells do not cascade further
	if g.At(1, 4).Revealed {
		t.Error("cells beyond the mine wall should stay hidden")
	}
}

func TestCascadeSkipsFlaggedCells(t *testing.T) {
	s := NewSession(wallBoard())

	if err := s.ToggleFlag(2, 1); err != nil {
		t.Fatalf("ToggleFlag() returned error: %v", err)
	}
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}

	if s.Grid().At(2, 1).Revealed {
		t.Error("flagged cell must not be revealed by the cascade")
	}
	// The cascade flows around the flag
	if !s.Grid().At(3, 1).Revealed || !s.Grid().At(2, 0).Revealed {
		t.Error("cascade should continue around a flagged cell")
	}
}

func TestRevealMineLoses(t *testing.T) {
	s := NewSession(wallBoard())

	outcome, err := s.Reveal(2, 3)
	if err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if outcome != OutcomeLost {
		t.Fatalf("outcome = %v, expected lost", outcome)
	}
	if s.Status() != StatusLost {
		t.Errorf("Status() = %v, expected lost", s.Status())
	}

	// All mines and treasures become visible for the end-of-game display
	g := s.Grid()
	for r := 0; r < 5; r++ {
		if !g.At(r, 3).Revealed {
			t.Errorf("mine at (%d,3) should be revealed after a loss", r)
		}
	}
	if !g.At(0, 4).Revealed {
		t.Error("treasure should be revealed after a loss")
	}
	// Safe cells keep their visibility
	if g.At(0, 0).Revealed {
		t.Error("hidden safe cells should stay hidden after a loss")
	}
}

func TestRevealTreasureWinsImmediately(t *testing.T) {
	g := NewGrid(4, 4)
	g.At(0, 0).Mine = true
	g.At(3, 3).Treasure = true
	g.ComputeAdjacency()
	s := NewSession(g)

	outcome, err := s.Reveal(3, 3)
	if err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if outcome != OutcomeWon {
		t.Fatalf("outcome = %v, expected won", outcome)
	}
	if s.Status() != StatusWon {
		t.Errorf("Status() = %v, expected won", s.Status())
	}
}

func TestCascadeTreasureWins(t *testing.T) {
	// One corner mine; the zero region reaches the treasure, which ends
	// the game as a win mid-cascade.
	g := NewGrid(5, 5)
	g.At(4, 4).Mine = true
	g.At(0, 4).Treasure = true
	g.ComputeAdjacency()
	s := NewSession(g)

	outcome, err := s.Reveal(0, 0)
	if err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if outcome != OutcomeWon {
		t.Fatalf("outcome = %v, expected won when the cascade reaches a treasure", outcome)
	}
	if !s.Grid().At(0, 4).Revealed {
		t.Error("the winning treasure should be revealed")
	}
}

func TestWinByLastSafeCell(t *testing.T) {
	g := NewGrid(2, 2)
	g.At(0, 0).Mine = true
	g.At(0, 1).Treasure = true
	g.ComputeAdjacency()
	s := NewSession(g)

	outcome, err := s.Reveal(1, 0)
	if err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if outcome != OutcomeContinue {
		t.Fatalf("first safe reveal: outcome = %v, expected continue", outcome)
	}

	outcome, err = s.Reveal(1, 1)
	if err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if outcome != OutcomeWon {
		t.Fatalf("revealing the last safe cell: outcome = %v, expected won", outcome)
	}
}

func TestToggleFlagIdempotence(t *testing.T) {
	s := NewSession(wallBoard())

	if err := s.ToggleFlag(1, 1); err != nil {
		t.Fatalf("ToggleFlag() returned error: %v", err)
	}
	if !s.Grid().At(1, 1).Flagged {
		t.Error("first toggle should set the flag")
	}
	if err := s.ToggleFlag(1, 1); err != nil {
		t.Fatalf("ToggleFlag() returned error: %v", err)
	}
	if s.Grid().At(1, 1).Flagged {
		t.Error("second toggle should clear the flag")
	}
}

func TestOperationErrors(t *testing.T) {
	s := NewSession(wallBoard())

	// Out of bounds
	if _, err := s.Reveal(-1, 0); !isOpError(err) {
		t.Errorf("out-of-bounds reveal: expected OpError, got %v", err)
	}
	if err := s.ToggleFlag(5, 5); !isOpError(err) {
		t.Errorf("out-of-bounds flag: expected OpError, got %v", err)
	}

	// Flagged cell cannot be revealed
	if err := s.ToggleFlag(2, 2); err != nil {
		t.Fatalf("ToggleFlag() returned error: %v", err)
	}
	if _, err := s.Reveal(2, 2); !isOpError(err) {
		t.Errorf("revealing a flagged cell: expected OpError, got %v", err)
	}

	// Revealed cell cannot be revealed again or flagged
	if err := s.ToggleFlag(2, 2); err != nil {
		t.Fatalf("ToggleFlag() returned error: %v", err)
	}
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if _, err := s.Reveal(0, 0); !isOpError(err) {
		t.Errorf("double reveal: expected OpError, got %v", err)
	}
	if err := s.ToggleFlag(0, 0); !isOpError(err) {
		t.Errorf("flagging a revealed cell: expected OpError, got %v", err)
	}
}

func TestTerminalSessionIsImmutable(t *testing.T) {
	s := NewSession(wallBoard())
	if _, err := s.Reveal(2, 3); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if s.Status() != StatusLost {
		t.Fatalf("Status() = %v, expected lost", s.Status())
	}

	before := s.Grid().Clone()

	if _, err := s.Reveal(0, 0); !isOpError(err) {
		t.Errorf("reveal after loss: expected OpError, got %v", err)
	}
	if err := s.ToggleFlag(0, 0); !isOpError(err) {
		t.Errorf("flag after loss: expected OpError, got %v", err)
	}

	after := s.Grid()
	for i := range before.Cells {
		if before.Cells[i] != after.Cells[i] {
			t.Fatalf("grid changed after terminal state at index %d", i)
		}
	}
}

func TestElapsedStartsAtFirstReveal(t *testing.T) {
	s := NewSession(wallBoard())
	if s.Elapsed() != 0 {
		t.Error("elapsed time should be zero before the first reveal")
	}

	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if s.Elapsed() < 0 {
		t.Error("elapsed time should never be negative")
	}
}

func isOpError(err error) bool {
	var opErr OpError
	return err != nil && errors.As(err, &opErr)
}
