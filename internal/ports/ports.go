package ports

import (
	"context"
	"time"

	"svw.info/sudoku-solver/internal/domain"
)

// Stats captures the cost of a solve.
type Stats struct {
	Guesses  int // search branches explored
	Cycles   int // full elimination cycles run to fixpoint
	Duration time.Duration
}

// Solver turns given digits into a solution. A contradiction Grid result
// with a nil error means the puzzle has no solution.
type Solver interface {
	Solve(ctx context.Context, g domain.Givens) (domain.Solution, Stats, error)
}

// Validator performs the final row/column/block permutation check on a
// claimed solution.
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// PuzzleSource loads ordered puzzle and expected-solution collections.
type PuzzleSource interface {
	LoadPuzzles(ctx context.Context, path string) ([]domain.Puzzle, error)
	LoadSolutions(ctx context.Context, path string) ([]domain.Puzzle, error)
}
