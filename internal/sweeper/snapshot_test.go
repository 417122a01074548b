package sweeper

import "testing"

func TestSnapshotHidesSecretsWhileLive(t *testing.T) {
	s := NewSession(wallBoard())
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if err := s.ToggleFlag(0, 4); err != nil {
		t.Fatalf("ToggleFlag() returned error: %v", err)
	}

	snap := s.Snapshot()

	if snap.Status != StatusInProgress {
		t.Fatalf("Status = %v, expected in progress", snap.Status)
	}
	if snap.Rows != 5 || snap.Cols != 5 {
		t.Errorf("snapshot is %dx%d, expected 5x5", snap.Rows, snap.Cols)
	}
	if snap.Mines != 5 || snap.Treasures != 1 || snap.Flags != 1 {
		t.Errorf("counts = %d mines, %d treasures, %d flags; expected 5, 1, 1",
			snap.Mines, snap.Treasures, snap.Flags)
	}

	// Hidden mine must not leak through the view
	if view := snap.Cell(2, 3); view.Mine {
		t.Error("unrevealed mine should be hidden in a live snapshot")
	}
	// The flagged hidden treasure must not leak either
	if view := snap.Cell(0, 4); view.Treasure || !view.Flagged {
		t.Error("flagged treasure should show the flag but not the treasure")
	}
	// Revealed safe cells expose their adjacency count
	if view := snap.Cell(2, 2); !view.Revealed || view.AdjacentMines != 3 {
		t.Errorf("revealed border cell = %+v, expected revealed with 3 adjacent mines", view)
	}
}

func TestSnapshotExposesSecretsWhenTerminal(t *testing.T) {
	s := NewSession(wallBoard())
	if _, err := s.Reveal(1, 3); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}
	if s.Status() != StatusLost {
		t.Fatalf("Status() = %v, expected lost", s.Status())
	}

	snap := s.Snapshot()
	for r := 0; r < 5; r++ {
		if view := snap.Cell(r, 3); !view.Mine {
			t.Errorf("mine at (%d,3) should be visible after the game ends", r)
		}
	}
	if view := snap.Cell(0, 4); !view.Treasure {
		t.Error("treasure should be visible after the game ends")
	}
}

func TestSnapshotRevealedSafeCount(t *testing.T) {
	s := NewSession(wallBoard())
	if _, err := s.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() returned error: %v", err)
	}

	snap := s.Snapshot()
	// The cascade uncovers columns 0-2: 15 safe cells
	if snap.RevealedSafe != 15 {
		t.Errorf("RevealedSafe = %d, expected 15", snap.RevealedSafe)
	}
}
