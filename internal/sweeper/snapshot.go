package sweeper

// CellView is the read-only, information-hiding view of one cell. Mine and
// Treasure are only populated when the cell is revealed or the session has
// ended; AdjacentMines only for revealed safe cells.
type CellView struct {
	Revealed      bool
	Flagged       bool
	Mine          bool
	Treasure      bool
	AdjacentMines int
}

// Snapshot is the core-to-view contract: everything a renderer needs to draw
// the board, with hidden information stripped while the game is live.
type Snapshot struct {
	Rows         int
	Cols         int
	Status       Status
	Mines        int
	Treasures    int
	Flags        int
	RevealedSafe int
	ElapsedSecs  int
	Cells        []CellView // Row-major, Rows*Cols entries
}

// Cell returns the view of the cell at (row, col).
func (s *Snapshot) Cell(row, col int) CellView {
	return s.Cells[row*s.Cols+col]
}

// Snapshot captures the current board state for a view. Mines and treasures
// stay hidden on unrevealed cells until the game reaches a terminal outcome.
func (s *Session) Snapshot() Snapshot {
	g := s.grid
	terminal := s.status != StatusInProgress

	snap := Snapshot{
		Rows:         g.Rows,
		Cols:         g.Cols,
		Status:       s.status,
		Mines:        g.MineCount(),
		Treasures:    g.TreasureCount(),
		Flags:        g.FlagCount(),
		RevealedSafe: s.revealedSafe,
		ElapsedSecs:  int(s.Elapsed().Seconds()),
		Cells:        make([]CellView, len(g.Cells)),
	}

	for i := range g.Cells {
		cell := &g.Cells[i]
		view := CellView{
			Revealed: cell.Revealed,
			Flagged:  cell.Flagged,
		}
		if cell.Revealed || terminal {
			view.Mine = cell.Mine
			view.Treasure = cell.Treasure
		}
		if cell.Revealed && !cell.Mine && !cell.Treasure {
			view.AdjacentMines = cell.AdjacentMines
		}
		snap.Cells[i] = view
	}
	return snap
}
