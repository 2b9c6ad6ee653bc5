package solver

import (
	"context"
	"sort"

	"svw.info/sudoku-solver/internal/domain"
	"svw.info/sudoku-solver/internal/ports"
)

// chooseCell picks the undecided cell with the fewest candidates, ties
// broken by smallest row index then smallest column index. The tie-break
// is load-bearing: branch ordering, and with it search reproducibility,
// depends on it. Callers must not invoke it on a decided grid.
func chooseCell(g domain.Grid) (int, int, domain.Cell) {
	best, bi, bj := 10, -1, -1
	for i := range g {
		for j, c := range g[i] {
			if n := c.Count(); n > 1 && n < best {
				best, bi, bj = n, i, j
			}
		}
	}
	return bi, bj, g[bi][bj]
}

// guesses branches the grid over every candidate of the chosen cell,
// re-propagates each branch, discards contradicted ones and orders the
// survivors easiest-first by hardness score.
func (e *Engine) guesses(g domain.Grid, st *ports.Stats) []domain.Grid {
	i, j, cands := chooseCell(g)
	children := make([]domain.Grid, 0, cands.Count())
	for d := uint8(1); d <= 9; d++ {
		if !cands.Has(d) {
			continue
		}
		child := e.refine(domain.ReplaceCell(g, i, j, domain.CellOf(d)), st)
		if !child.Contradiction() {
			children = append(children, child)
		}
	}
	sort.SliceStable(children, func(a, b int) bool {
		return children[a].Hardness() < children[b].Hardness()
	})
	return children
}

// solveRefined runs depth-first search on an already-refined grid. The
// search itself is strictly sequential: each branch's viability depends
// on its own propagated state, and a contradicted branch must
// short-circuit its more expensive siblings.
func (e *Engine) solveRefined(ctx context.Context, g domain.Grid, st *ports.Stats) (domain.Grid, error) {
	if err := ctx.Err(); err != nil {
		return domain.Grid{}, err
	}
	if g.Decided() {
		return g, nil
	}
	for _, child := range e.guesses(g, st) {
		st.Guesses++
		sol, err := e.solveRefined(ctx, child, st)
		if err != nil {
			return domain.Grid{}, err
		}
		if !sol.Contradiction() {
			return sol, nil
		}
	}
	return domain.Grid{}, nil
}
