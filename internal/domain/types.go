package domain

import "strings"

// Row is one line of nine cells. The zero Row (all cells empty) is the
// contradiction sentinel a failed elimination pass leaves behind.
type Row [9]Cell

// Grid is a full 9x9 position. Grids are plain value types: assignment
// copies, so refinement passes and search branches operate on snapshots
// and never share mutable state. The zero Grid means "no solution".
type Grid [9]Row

// Givens holds a puzzle as supplied externally: digits 1..9, 0 = unknown.
type Givens [9][9]uint8

// Puzzle pairs a named puzzle with its given digits.
type Puzzle struct {
	Name   string `json:"name" yaml:"name"`
	Givens Givens `json:"givens" yaml:"givens"`
}

// Solution is either a fully fixed Grid or the contradiction Grid.
type Solution = Grid

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Contradiction reports whether any cell of the row was driven empty.
func (r Row) Contradiction() bool {
	for _, c := range r {
		if c == 0 {
			return true
		}
	}
	return false
}

// Contradiction reports whether the grid holds an unsatisfiable row.
func (g Grid) Contradiction() bool {
	for i := range g {
		if g[i].Contradiction() {
			return true
		}
	}
	return false
}

// Decided reports whether the grid needs no further search: it is either
// contradicted or every cell is fixed.
func (g Grid) Decided() bool {
	if g.Contradiction() {
		return true
	}
	for i := range g {
		for _, c := range g[i] {
			if !c.Decided() {
				return false
			}
		}
	}
	return true
}

// Hardness sums candidate-set sizes over undecided cells, a cheap proxy
// for remaining search difficulty. Fixed cells contribute nothing.
func (g Grid) Hardness() int {
	h := 0
	for i := range g {
		for _, c := range g[i] {
			if n := c.Count(); n > 1 {
				h += n
			}
		}
	}
	return h
}

// Digits extracts the fixed digits of a grid; unfixed cells read 0.
func (g Grid) Digits() Givens {
	var out Givens
	for i := range g {
		for j, c := range g[i] {
			out[i][j] = c.Digit()
		}
	}
	return out
}

// String renders fixed digits, '.' for undecided cells and 'x' for
// contradicted ones, nine characters per line.
func (g Grid) String() string {
	var b strings.Builder
	for i := range g {
		for _, c := range g[i] {
			switch {
			case c == 0:
				b.WriteByte('x')
			case c.Fixed():
				b.WriteByte('0' + c.Digit())
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
