package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

// Board glyphs.
const (
	glyphHidden   = '·'
	glyphFlag     = 'F'
	glyphMine     = '*'
	glyphTreasure = '$'
)

// numberColors maps adjacency counts to the classic minesweeper palette.
var numberColors = [9]core.Color{
	core.ColorDefault, // 0 is drawn blank, never colored
	core.ColorBlue,
	core.ColorGreen,
	core.ColorRed,
	core.ColorDarkBlue,
	core.ColorDarkRed,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorGray,
}

// cellGlyph picks the rune and color for one cell view.
func cellGlyph(v sweeper.CellView) (rune, core.Color) {
	if !v.Revealed {
		// Terminal states expose mines and treasures on hidden cells too.
		if v.Mine {
			return glyphMine, core.ColorRed
		}
		if v.Treasure {
			return glyphTreasure, core.ColorGreen
		}
		if v.Flagged {
			return glyphFlag, core.ColorBrightYellow
		}
		return glyphHidden, core.ColorGray
	}

	if v.Mine {
		return glyphMine, core.ColorBrightRed
	}
	if v.Treasure {
		return glyphTreasure, core.ColorBrightGreen
	}
	if v.AdjacentMines == 0 {
		return ' ', core.ColorDefault
	}
	return rune('0' + v.AdjacentMines), numberColors[v.AdjacentMines]
}

// drawBoard renders a board snapshot with cursor, status line and key help
// onto the screen buffer.
func drawBoard(s *core.Screen, snap *sweeper.Snapshot, cursorRow, cursorCol int, title string) {
	s.Clear()

	boardW := snap.Cols*2 + 3
	boardH := snap.Rows + 2
	x0 := core.Max(0, (s.Width()-boardW)/2)
	y0 := 2

	s.DrawTextCentered(0, title)

	s.DrawBox(x0, y0, boardW, boardH)

	for row := 0; row < snap.Rows; row++ {
		for col := 0; col < snap.Cols; col++ {
			r, c := cellGlyph(snap.Cell(row, col))
			s.SetColored(x0+2+col*2, y0+1+row, r, c)
		}
	}

	// Cursor brackets around the focused cell
	if snap.Status == sweeper.StatusInProgress {
		cx := x0 + 2 + cursorCol*2
		cy := y0 + 1 + cursorRow
		s.SetColored(cx-1, cy, '[', core.ColorWhite)
		s.SetColored(cx+1, cy, ']', core.ColorWhite)
	}

	status := fmt.Sprintf("Mines: %d  Flags: %d  Time: %d:%02d",
		snap.Mines, snap.Flags, snap.ElapsedSecs/60, snap.ElapsedSecs%60)
	s.DrawTextCentered(y0+boardH+1, status)

	switch snap.Status {
	case sweeper.StatusWon:
		s.DrawTextCentered(y0+boardH+2, "YOU WIN!")
		s.DrawTextCentered(y0+boardH+4, "R: New game  |  B: Menu  |  Q: Quit")
	case sweeper.StatusLost:
		s.DrawTextCentered(y0+boardH+2, "BOOM! You hit a mine.")
		s.DrawTextCentered(y0+boardH+4, "R: New game  |  B: Menu  |  Q: Quit")
	default:
		s.DrawTextCentered(y0+boardH+3, "Arrows: Move  |  Space: Reveal  |  F: Flag  |  Q: Quit")
	}
}
