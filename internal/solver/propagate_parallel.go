package solver

import (
	"svw.info/sudoku-solver/internal/domain"
)

// rowResult carries one row task's output back to the joining pass.
type rowResult struct {
	idx int
	row domain.Row
}

// refineRowsParallel runs the nine row eliminations of one pass as
// concurrent tasks over immutable row snapshots. Rows are independent
// within a pass, so no ordering between tasks matters; the join matches
// results by index, not by arrival order, and waits for all nine.
func refineRowsParallel(g domain.Grid) domain.Grid {
	results := make(chan rowResult, 9)
	for i := range g {
		go func(i int, r domain.Row) {
			results <- rowResult{idx: i, row: refineRow(r)}
		}(i, g[i])
	}
	var out domain.Grid
	for n := 0; n < 9; n++ {
		res := <-results
		out[res.idx] = res.row
	}
	return out
}
