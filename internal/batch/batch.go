package batch

import (
	"context"
	"sync"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// Result is one puzzle's outcome within a batch.
type Result struct {
	Name     string
	Solution domain.Solution
	Stats    ports.Stats
	Err      error
}

// SolveAll fans out one task per puzzle, each running the full solve
// pipeline on its own snapshot, and joins them with a count-down barrier.
// Results keep the input order regardless of completion order. Faults are
// carried as per-task errors; the first one observed (in input order) is
// returned, and sibling tasks still run to completion since nothing here
// cancels them.
func SolveAll(ctx context.Context, s ports.Solver, puzzles []domain.Puzzle) ([]Result, error) {
	results := make([]Result, len(puzzles))
	var wg sync.WaitGroup
	for i, p := range puzzles {
		wg.Add(1)
		go func(i int, p domain.Puzzle) {
			defer wg.Done()
			sol, st, err := s.Solve(ctx, p.Givens)
			results[i] = Result{Name: p.Name, Solution: sol, Stats: st, Err: err}
		}(i, p)
	}
	wg.Wait()
	for i := range results {
		if results[i].Err != nil {
			return results, results[i].Err
		}
	}
	return results, nil
}
