package solver

import (
	"svw.info/sudoku-solver/internal/domain"
)

// Fill expands a puzzle's givens into a constraint grid: given digits
// become fixed cells, unknowns start with the full candidate set.
func Fill(gv domain.Givens) domain.Grid {
	var g domain.Grid
	for i := range gv {
		for j, d := range gv[i] {
			if d == 0 {
				g[i][j] = domain.AllDigits
			} else {
				g[i][j] = domain.CellOf(d)
			}
		}
	}
	return g
}

// refineRow removes the row's fixed digits from every open candidate set.
// A cell driven empty, or a digit fixed twice, makes the whole row
// unsatisfiable and the zero Row is returned.
func refineRow(r domain.Row) domain.Row {
	var entries domain.Cell
	for _, c := range r {
		if c.Fixed() {
			entries |= c
		}
	}
	out := r
	for i, c := range r {
		if c.Fixed() {
			continue
		}
		s := c &^ entries
		if s == 0 {
			return domain.Row{}
		}
		out[i] = s
	}
	// narrowing may fix new singletons; a repeated fixed digit is a dead row
	var seen domain.Cell
	for _, c := range out {
		if !c.Fixed() {
			continue
		}
		if seen&c != 0 {
			return domain.Row{}
		}
		seen |= c
	}
	return out
}

// rowPass applies refineRow to every row of a grid.
type rowPass func(domain.Grid) domain.Grid

func refineRows(g domain.Grid) domain.Grid {
	for i := range g {
		g[i] = refineRow(g[i]) // g is a copy
	}
	return g
}

// cycle runs one row -> column -> block elimination cycle, bailing out as
// soon as any view turns up a contradiction.
func cycle(g domain.Grid, rows rowPass) domain.Grid {
	g = rows(g)
	if g.Contradiction() {
		return g
	}
	g = domain.Transpose(rows(domain.Transpose(g)))
	if g.Contradiction() {
		return g
	}
	return domain.Unblocks(rows(domain.Blocks(g)))
}

// fixpoint repeats elimination cycles until a full cycle leaves the grid
// unchanged or the grid is contradicted. It also reports how many cycles
// ran.
func fixpoint(g domain.Grid, rows rowPass) (domain.Grid, int) {
	n := 0
	for {
		next := cycle(g, rows)
		n++
		if next == g || next.Contradiction() {
			return next, n
		}
		g = next
	}
}

// Refine narrows a grid by row, column and block elimination until
// nothing changes. It never adds candidates: cells only lose digits, get
// fixed, or escalate to contradiction.
func Refine(g domain.Grid) domain.Grid {
	out, _ := fixpoint(g, refineRows)
	return out
}

// RefineParallel is Refine with the nine row eliminations of each pass
// scheduled concurrently. Output is identical to Refine for any input.
func RefineParallel(g domain.Grid) domain.Grid {
	out, _ := fixpoint(g, refineRowsParallel)
	return out
}
