package domain

import (
	"math/rand"
	"testing"
)

func randomGrid(rng *rand.Rand) Grid {
	var g Grid
	for i := range g {
		for j := range g[i] {
			g[i][j] = Cell(rng.Intn(int(AllDigits))) + 1 // never empty
		}
	}
	return g
}

func TestTransposeIsItsOwnInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 50; n++ {
		g := randomGrid(rng)
		if Transpose(Transpose(g)) != g {
			t.Fatalf("transpose round-trip changed the grid (iteration %d)", n)
		}
	}
}

func TestBlocksRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for n := 0; n < 50; n++ {
		g := randomGrid(rng)
		if Unblocks(Blocks(g)) != g {
			t.Fatalf("block view round-trip changed the grid (iteration %d)", n)
		}
	}
}

func TestBlocksGroupsSubSquares(t *testing.T) {
	// number cells by their 3x3 sub-square; each block row must then be uniform
	var g Grid
	for i := range g {
		for j := range g[i] {
			g[i][j] = CellOf(uint8((i/3)*3 + j/3 + 1))
		}
	}
	b := Blocks(g)
	for i := range b {
		for j, c := range b[i] {
			if c != CellOf(uint8(i+1)) {
				t.Fatalf("block %d cell %d = %v, want digit %d", i, j, c, i+1)
			}
		}
	}
}

func TestReplaceCellWithSameValueIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	g := randomGrid(rng)
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if ReplaceCell(g, i, j, g[i][j]) != g {
				t.Fatalf("replacing (%d,%d) with its own value changed the grid", i, j)
			}
		}
	}
}

func TestReplaceCellLeavesOriginalUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	g := randomGrid(rng)
	before := g
	out := ReplaceCell(g, 4, 4, CellOf(7))
	if g != before {
		t.Fatal("input grid mutated")
	}
	if out[4][4] != CellOf(7) {
		t.Fatalf("cell not replaced: %v", out[4][4])
	}
}

func TestCellBasics(t *testing.T) {
	cases := []struct {
		name    string
		cell    Cell
		count   int
		fixed   bool
		decided bool
		digit   uint8
	}{
		{"empty", 0, 0, false, true, 0},
		{"fixed five", CellOf(5), 1, true, true, 5},
		{"two candidates", CellOf(1) | CellOf(9), 2, false, false, 0},
		{"all digits", AllDigits, 9, false, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cell.Count(); got != tc.count {
				t.Errorf("Count() = %d, want %d", got, tc.count)
			}
			if got := tc.cell.Fixed(); got != tc.fixed {
				t.Errorf("Fixed() = %v, want %v", got, tc.fixed)
			}
			if got := tc.cell.Decided(); got != tc.decided {
				t.Errorf("Decided() = %v, want %v", got, tc.decided)
			}
			if got := tc.cell.Digit(); got != tc.digit {
				t.Errorf("Digit() = %d, want %d", got, tc.digit)
			}
		})
	}
}

func TestHardnessCountsOnlyOpenCells(t *testing.T) {
	var g Grid
	for i := range g {
		for j := range g[i] {
			g[i][j] = CellOf(1)
		}
	}
	if got := g.Hardness(); got != 0 {
		t.Fatalf("fully fixed grid hardness = %d, want 0", got)
	}
	g[0][0] = CellOf(1) | CellOf(2) | CellOf(3)
	g[8][8] = CellOf(4) | CellOf(5)
	if got := g.Hardness(); got != 5 {
		t.Fatalf("hardness = %d, want 5", got)
	}
}
