package sweeper

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a game session.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// OpError reports a reveal or flag call that violated its preconditions:
// out of bounds, already revealed, flagged, or after the game ended. These
// are caller bugs, distinct from the won/lost game outcomes.
type OpError struct {
	Op      string
	Row     int
	Col     int
	Message string
}

func (e OpError) Error() string {
	return fmt.Sprintf("sweeper: %s (%d,%d): %s", e.Op, e.Row, e.Col, e.Message)
}

// Session owns one grid and the per-game state around it. It is the single
// mutation point for a game: views and controllers call Reveal and ToggleFlag
// and redraw from Snapshot. A session is not safe for concurrent use; the
// event loop driving it serializes access naturally.
type Session struct {
	grid         *Grid
	status       Status
	revealedSafe int

	startedAt time.Time     // Zero until the first reveal
	finished  time.Duration // Frozen elapsed time once terminal
}

// NewSession wraps a freshly generated or validated grid.
func NewSession(g *Grid) *Session {
	return &Session{grid: g}
}

// Status returns the session outcome so far.
func (s *Session) Status() Status {
	return s.status
}

// Grid exposes the underlying grid for the engine's own tests and trusted
// callers. Views should use Snapshot instead.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Elapsed returns how long the session has been played. The clock starts at
// the first reveal and freezes when the game ends. Purely informational;
// nothing in the engine is timer-driven.
func (s *Session) Elapsed() time.Duration {
	if s.status != StatusInProgress {
		return s.finished
	}
	if s.startedAt.IsZero() {
		return 0
	}
	return time.Since(s.startedAt)
}

// Reveal uncovers the cell at (row, col), cascading through zero-adjacency
// regions. Returns the resulting outcome, or an OpError when called out of
// bounds, on a revealed or flagged cell, or after the game already ended.
func (s *Session) Reveal(row, col int) (RevealOutcome, error) {
	if err := s.checkMutable("reveal", row, col); err != nil {
		return OutcomeContinue, err
	}
	cell := s.grid.At(row, col)
	if cell.Revealed {
		return OutcomeContinue, OpError{Op: "reveal", Row: row, Col: col, Message: "cell already revealed"}
	}
	if cell.Flagged {
		return OutcomeContinue, OpError{Op: "reveal", Row: row, Col: col, Message: "cell is flagged"}
	}

	if s.startedAt.IsZero() {
		s.startedAt = time.Now()
	}

	outcome, revealed := reveal(s.grid, row, col, s.revealedSafe)
	s.revealedSafe = revealed

	switch outcome {
	case OutcomeWon:
		s.finish(StatusWon)
	case OutcomeLost:
		s.finish(StatusLost)
	}
	return outcome, nil
}

// ToggleFlag flips the flag on an unrevealed cell. Flags have no effect on
// the win or loss conditions; they only guard cells from reveal.
func (s *Session) ToggleFlag(row, col int) error {
	if err := s.checkMutable("flag", row, col); err != nil {
		return err
	}
	cell := s.grid.At(row, col)
	if cell.Revealed {
		return OpError{Op: "flag", Row: row, Col: col, Message: "cell already revealed"}
	}
	cell.Flagged = !cell.Flagged
	return nil
}

// checkMutable rejects operations on terminal sessions and out-of-bounds
// positions.
func (s *Session) checkMutable(op string, row, col int) error {
	if s.status != StatusInProgress {
		return OpError{Op: op, Row: row, Col: col, Message: fmt.Sprintf("game already %s", s.status)}
	}
	if !s.grid.InBounds(row, col) {
		return OpError{Op: op, Row: row, Col: col, Message: fmt.Sprintf("outside %dx%d board", s.grid.Rows, s.grid.Cols)}
	}
	return nil
}

// finish freezes the session in a terminal state.
func (s *Session) finish(st Status) {
	s.status = st
	if s.startedAt.IsZero() {
		s.finished = 0
	} else {
		s.finished = time.Since(s.startedAt)
	}
}
