package sweeper

// RevealOutcome is the result of a reveal operation.
type RevealOutcome int

const (
	OutcomeContinue RevealOutcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns a human-readable name for the outcome.
func (o RevealOutcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// reveal uncovers the cell at (row, col) and runs the flood-fill cascade for
// zero-adjacency cells. revealedSafe is the session's count of uncovered safe
// cells going in; the updated count comes back with the outcome.
//
// The caller guarantees the target is in bounds, hidden, and unflagged.
func reveal(g *Grid, row, col int, revealedSafe int) (RevealOutcome, int) {
	target := g.At(row, col)
	target.Revealed = true

	if target.Mine {
		revealSecrets(g)
		return OutcomeLost, revealedSafe
	}
	if target.Treasure {
		return OutcomeWon, revealedSafe
	}

	revealedSafe++

	// Flood fill with an explicit worklist instead of recursion; the 30x16
	// board can chain deep enough to make call-stack depth a concern. A
	// cell's own Revealed flag doubles as the visited marker.
	if target.AdjacentMines == 0 {
		stack := []*Cell{target}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			won := false
			g.EachNeighbor(cur.Row, cur.Col, func(n *Cell) {
				if won || n.Revealed || n.Flagged || n.Mine {
					return
				}
				n.Revealed = true
				if n.Treasure {
					// A treasure reached by the cascade ends the whole
					// operation as a win.
					won = true
					return
				}
				revealedSafe++
				if n.AdjacentMines == 0 {
					stack = append(stack, n)
				}
			})
			if won {
				return OutcomeWon, revealedSafe
			}
		}
	}

	if revealedSafe == g.SafeCellCount() {
		return OutcomeWon, revealedSafe
	}
	return OutcomeContinue, revealedSafe
}

// revealSecrets uncovers every mine and treasure for the end-of-game display.
// Safe cells keep their visibility.
func revealSecrets(g *Grid) {
	for i := range g.Cells {
		if g.Cells[i].Mine || g.Cells[i].Treasure {
			g.Cells[i].Revealed = true
		}
	}
}
