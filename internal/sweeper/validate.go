package sweeper

import "fmt"

// Layout entry values for externally supplied boards.
const (
	LayoutEmpty    = 0
	LayoutMine     = 1
	LayoutTreasure = 2
)

// Board-file rule constants. Testing mode only supports the 8x8 board.
const (
	BoardSize         = 8
	RequiredMines     = 10
	MinTreasures      = 1
	MaxTreasures      = 9
	RequiredDiagMines = 1
	RequiredAdjPairs  = 1
)

// ValidationError describes one violated board-file rule.
type ValidationError struct {
	Rule    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Rule, e.Message)
}

// Validate checks an externally supplied mine/treasure layout against the
// testing-mode rule set. Every rule runs over the full layout regardless of
// earlier failures, so a caller sees all violations at once. On success the
// built Grid has accurate adjacency counts and nothing revealed or flagged;
// on any failure no Grid is returned.
func Validate(layout [][]int) (*Grid, []ValidationError) {
	var errs []ValidationError

	if err := checkShape(layout); err != nil {
		errs = append(errs, *err)
	}
	if err := checkMineCount(layout); err != nil {
		errs = append(errs, *err)
	}
	errs = append(errs, checkCoverage(layout)...)
	if err := checkDiagonal(layout); err != nil {
		errs = append(errs, *err)
	}
	if err := checkAdjacentPairs(layout); err != nil {
		errs = append(errs, *err)
	}
	if err := checkTreasureCount(layout); err != nil {
		errs = append(errs, *err)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return buildGrid(layout), nil
}

// checkShape enforces rule 1: exactly 8x8, entries in {0,1,2}.
func checkShape(layout [][]int) *ValidationError {
	if len(layout) != BoardSize {
		return &ValidationError{
			Rule:    "shape",
			Message: fmt.Sprintf("board must have %d rows, got %d", BoardSize, len(layout)),
		}
	}
	for r, row := range layout {
		if len(row) != BoardSize {
			return &ValidationError{
				Rule:    "shape",
				Message: fmt.Sprintf("row %d must have %d columns, got %d", r+1, BoardSize, len(row)),
			}
		}
		for c, v := range row {
			if v != LayoutEmpty && v != LayoutMine && v != LayoutTreasure {
				return &ValidationError{
					Rule:    "shape",
					Message: fmt.Sprintf("cell (%d,%d) must be 0, 1 or 2, got %d", r+1, c+1, v),
				}
			}
		}
	}
	return nil
}

// checkMineCount enforces rule 2: exactly 10 mines.
func checkMineCount(layout [][]int) *ValidationError {
	mines := countValue(layout, LayoutMine)
	if mines != RequiredMines {
		return &ValidationError{
			Rule:    "mine-count",
			Message: fmt.Sprintf("board must contain exactly %d mines, got %d", RequiredMines, mines),
		}
	}
	return nil
}

// checkCoverage enforces rule 3: every row and every column has a mine.
// Rows and columns beyond the expected shape are ignored; the shape rule
// already reports those.
func checkCoverage(layout [][]int) []ValidationError {
	var errs []ValidationError

	for r := 0; r < BoardSize && r < len(layout); r++ {
		found := false
		for c := 0; c < BoardSize && c < len(layout[r]); c++ {
			if layout[r][c] == LayoutMine {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, ValidationError{
				Rule:    "row-coverage",
				Message: fmt.Sprintf("row %d contains no mine", r+1),
			})
		}
	}

	for c := 0; c < BoardSize; c++ {
		found := false
		for r := 0; r < BoardSize && r < len(layout); r++ {
			if c < len(layout[r]) && layout[r][c] == LayoutMine {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, ValidationError{
				Rule:    "column-coverage",
				Message: fmt.Sprintf("column %d contains no mine", c+1),
			})
		}
	}

	return errs
}

// checkDiagonal enforces rule 4: exactly one mine where row == col.
func checkDiagonal(layout [][]int) *ValidationError {
	mines := 0
	for i := 0; i < len(layout); i++ {
		if i < len(layout[i]) && layout[i][i] == LayoutMine {
			mines++
		}
	}
	if mines != RequiredDiagMines {
		return &ValidationError{
			Rule:    "diagonal",
			Message: fmt.Sprintf("main diagonal must contain exactly %d mine, got %d", RequiredDiagMines, mines),
		}
	}
	return nil
}

// checkAdjacentPairs enforces rule 5: exactly one horizontally or vertically
// adjacent mine pair across the whole board. Each unordered pair is counted
// once by only looking right and down, so a chain of three mines counts as
// two pairs and fails without special-casing.
func checkAdjacentPairs(layout [][]int) *ValidationError {
	pairs := 0
	for r := range layout {
		for c := range layout[r] {
			if layout[r][c] != LayoutMine {
				continue
			}
			if c+1 < len(layout[r]) && layout[r][c+1] == LayoutMine {
				pairs++
			}
			if r+1 < len(layout) && c < len(layout[r+1]) && layout[r+1][c] == LayoutMine {
				pairs++
			}
		}
	}
	if pairs != RequiredAdjPairs {
		return &ValidationError{
			Rule:    "adjacency",
			Message: fmt.Sprintf("board must contain exactly %d adjacent mine pair, got %d", RequiredAdjPairs, pairs),
		}
	}
	return nil
}

// checkTreasureCount enforces rule 6: between 1 and 9 treasures.
func checkTreasureCount(layout [][]int) *ValidationError {
	treasures := countValue(layout, LayoutTreasure)
	if treasures < MinTreasures || treasures > MaxTreasures {
		return &ValidationError{
			Rule:    "treasure-count",
			Message: fmt.Sprintf("board must contain %d..%d treasures, got %d", MinTreasures, MaxTreasures, treasures),
		}
	}
	return nil
}

func countValue(layout [][]int, value int) int {
	count := 0
	for _, row := range layout {
		for _, v := range row {
			if v == value {
				count++
			}
		}
	}
	return count
}

// buildGrid converts a validated layout into a playable grid.
func buildGrid(layout [][]int) *Grid {
	g := NewGrid(len(layout), len(layout[0]))
	for r, row := range layout {
		for c, v := range row {
			switch v {
			case LayoutMine:
				g.At(r, c).Mine = true
			case LayoutTreasure:
				g.At(r, c).Treasure = true
			}
		}
	}
	g.ComputeAdjacency()
	return g
}
