package domain

// Transpose swaps rows and columns. It is its own inverse, which lets the
// row elimination primitive cover column constraints.
func Transpose(g Grid) Grid {
	var out Grid
	for i := range g {
		for j, c := range g[i] {
			out[j][i] = c
		}
	}
	return out
}

// Blocks rearranges a grid so that each 3x3 sub-square becomes one row,
// read in row-major order. The mapping is an involution: applying it
// twice restores the original grid, so the same function converts to and
// from the block view.
func Blocks(g Grid) Grid {
	var out Grid
	for b := 0; b < 9; b++ {
		for k := 0; k < 9; k++ {
			out[b][k] = g[(b/3)*3+k/3][(b%3)*3+k%3]
		}
	}
	return out
}

// Unblocks inverts Blocks. It exists so call sites read as view/unview
// pairs even though the transform inverts itself.
func Unblocks(g Grid) Grid { return Blocks(g) }

// ReplaceCell returns a copy of g with cell (i,j) set to c. Indices are
// 0-based; out-of-range indices are a programming error and panic.
func ReplaceCell(g Grid, i, j int, c Cell) Grid {
	g[i][j] = c // g is already a copy
	return g
}
