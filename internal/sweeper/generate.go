package sweeper

import (
	"fmt"
	"math/rand"
	"time"
)

// GenParams configures random board generation.
type GenParams struct {
	Rows      int
	Cols      int
	Mines     int
	Treasures int
	Seed      int64 // 0 means seed from the current time
}

// ConfigError reports invalid generator parameters. It is fatal to the
// Generate call and never auto-corrected.
type ConfigError struct {
	Field   string
	Message string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("sweeper: invalid %s: %s", e.Field, e.Message)
}

// checkParams validates generator preconditions.
func checkParams(p GenParams) error {
	total := p.Rows * p.Cols
	if p.Rows <= 0 || p.Cols <= 0 {
		return ConfigError{Field: "size", Message: fmt.Sprintf("board must have positive dimensions, got %dx%d", p.Rows, p.Cols)}
	}
	if p.Mines <= 0 || p.Mines >= total {
		return ConfigError{Field: "mines", Message: fmt.Sprintf("mine count must be in 1..%d, got %d", total-1, p.Mines)}
	}
	if p.Treasures <= 0 {
		return ConfigError{Field: "treasures", Message: fmt.Sprintf("treasure count must be positive, got %d", p.Treasures)}
	}
	if p.Mines+p.Treasures >= total {
		return ConfigError{Field: "treasures", Message: fmt.Sprintf("%d mines + %d treasures leave no safe cell on a %dx%d board", p.Mines, p.Treasures, p.Rows, p.Cols)}
	}
	return nil
}

// Generate creates a random board: mines placed uniformly without
// replacement, treasures placed on the remaining cells, adjacency counts
// computed. The same seed always yields the same board.
func Generate(p GenParams) (*Grid, error) {
	if err := checkParams(p); err != nil {
		return nil, err
	}

	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := NewGrid(p.Rows, p.Cols)

	// A single shuffle gives both draws without replacement: the first
	// Mines positions become mines, the next Treasures positions treasures.
	order := rng.Perm(p.Rows * p.Cols)
	for _, idx := range order[:p.Mines] {
		g.Cells[idx].Mine = true
	}
	for _, idx := range order[p.Mines : p.Mines+p.Treasures] {
		g.Cells[idx].Treasure = true
	}

	g.ComputeAdjacency()
	return g, nil
}
