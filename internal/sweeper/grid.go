// Package sweeper implements the Treasure Sweeper board engine: board
// generation, layout validation, the cascading reveal, and the game session
// state machine. It contains pure logic with no external dependencies
// (especially no Bubble Tea) so the platform layers stay thin.
package sweeper

// Cell is one board position. Zero value is a hidden, empty, unflagged cell.
type Cell struct {
	Row           int
	Col           int
	Mine          bool
	Treasure      bool
	Flagged       bool
	Revealed      bool
	AdjacentMines int // Count of mines among the up-to-8 neighbors (0..8)
}

// Grid is a fixed rows×cols board of cells.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewGrid creates an empty grid with the given dimensions.
// All cells start hidden with their Row/Col set.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Cells[r*cols+c] = Cell{Row: r, Col: c}
		}
	}
	return g
}

// index converts a position to a flat array index.
func (g *Grid) index(row, col int) int {
	return row*g.Cols + col
}

// InBounds returns true if the position is within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns a pointer to the cell at the given position.
// Returns nil if out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.Cells[g.index(row, col)]
}

// EachNeighbor calls fn for every in-bounds cell sharing an edge or corner
// with (row, col). At most 8 cells are visited; border cells get fewer.
func (g *Grid) EachNeighbor(row, col int, fn func(*Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n := g.At(row+dr, col+dc); n != nil {
				fn(n)
			}
		}
	}
}

// ComputeAdjacency fills in AdjacentMines for every non-mine cell.
// Mine cells keep a zero count; the value is never displayed for them.
func (g *Grid) ComputeAdjacency() {
	for i := range g.Cells {
		cell := &g.Cells[i]
		if cell.Mine {
			cell.AdjacentMines = 0
			continue
		}
		count := 0
		g.EachNeighbor(cell.Row, cell.Col, func(n *Cell) {
			if n.Mine {
				count++
			}
		})
		cell.AdjacentMines = count
	}
}

// MineCount returns the number of mine cells.
func (g *Grid) MineCount() int {
	count := 0
	for i := range g.Cells {
		if g.Cells[i].Mine {
			count++
		}
	}
	return count
}

// TreasureCount returns the number of treasure cells.
func (g *Grid) TreasureCount() int {
	count := 0
	for i := range g.Cells {
		if g.Cells[i].Treasure {
			count++
		}
	}
	return count
}

// SafeCellCount returns the number of cells that are neither mines nor
// treasures. Revealing all of them wins the game.
func (g *Grid) SafeCellCount() int {
	return g.Rows*g.Cols - g.MineCount() - g.TreasureCount()
}

// FlagCount returns the number of flagged cells.
func (g *Grid) FlagCount() int {
	count := 0
	for i := range g.Cells {
		if g.Cells[i].Flagged {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}
