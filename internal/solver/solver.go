package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/validator"
)

// Engine solves puzzles by constraint propagation plus most-constrained-
// cell backtracking. It is stateless apart from its wiring and safe for
// concurrent use; per-solve stats live on the call stack.
type Engine struct {
	rows  rowPass
	check ports.Validator
}

// NewEngine returns the sequential engine.
func NewEngine() *Engine {
	return &Engine{rows: refineRows, check: validator.New()}
}

// NewParallelEngine returns an engine that parallelizes the row
// eliminations inside each propagation pass. Search stays sequential.
func NewParallelEngine() *Engine {
	return &Engine{rows: refineRowsParallel, check: validator.New()}
}

// InvalidSolutionError reports that search produced a grid the final
// validation rejected. The input was assumed solvable, so this means the
// engine itself is broken; batch coordinators treat it as fatal.
type InvalidSolutionError struct {
	Grid      domain.Grid
	Conflicts []domain.CellCoord
}

func (e *InvalidSolutionError) Error() string {
	return fmt.Sprintf("engine produced an invalid solution: %d conflicting cells", len(e.Conflicts))
}

func (e *Engine) refine(g domain.Grid, st *ports.Stats) domain.Grid {
	out, n := fixpoint(g, e.rows)
	st.Cycles += n
	return out
}

// Solve refines the givens to a fixpoint, searches if propagation alone
// does not decide the grid, and validates the result. A contradiction
// Grid with nil error means "no solution".
func (e *Engine) Solve(ctx context.Context, gv domain.Givens) (domain.Solution, ports.Stats, error) {
	start := time.Now()
	var st ports.Stats
	g := e.refine(Fill(gv), &st)
	sol, err := e.solveRefined(ctx, g, &st)
	st.Duration = time.Since(start)
	if err != nil {
		return domain.Grid{}, st, err
	}
	if sol.Contradiction() {
		// normalize every unsatisfiable outcome to the zero Grid
		return domain.Grid{}, st, nil
	}
	if ok, conf, _ := e.check.Validate(ctx, sol); !ok {
		return domain.Grid{}, st, &InvalidSolutionError{Grid: sol, Conflicts: conf}
	}
	return sol, st, nil
}
