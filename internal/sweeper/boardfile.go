package sweeper

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseBoard reads a board-definition in the testing-mode text format:
// one line per row, comma-separated integer entries, surrounding whitespace
// tolerated. Only syntax is checked here; rule violations (shape included)
// are the validator's job, so the parsed matrix is returned as-is.
func ParseBoard(r io.Reader) ([][]int, error) {
	var layout [][]int

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var row []int
		for _, field := range strings.Split(line, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("sweeper: line %d: %q is not an integer", lineNo, strings.TrimSpace(field))
			}
			row = append(row, v)
		}
		layout = append(layout, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sweeper: reading board: %w", err)
	}
	if len(layout) == 0 {
		return nil, fmt.Errorf("sweeper: board file is empty")
	}

	return layout, nil
}

// LoadBoardFile parses the board file at path and validates it.
// I/O and syntax problems come back as a plain error; rule violations come
// back as the full ValidationError list with a nil Grid.
func LoadBoardFile(path string) (*Grid, []ValidationError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sweeper: cannot open board file: %w", err)
	}
	defer f.Close()

	layout, err := ParseBoard(f)
	if err != nil {
		return nil, nil, err
	}

	grid, violations := Validate(layout)
	return grid, violations, nil
}

// FormatBoard renders a grid back to the board-file text format.
// Used by the gen command to author testing-mode boards.
func FormatBoard(g *Grid) string {
	var sb strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			cell := g.At(r, c)
			switch {
			case cell.Mine:
				sb.WriteByte('1')
			case cell.Treasure:
				sb.WriteByte('2')
			default:
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
