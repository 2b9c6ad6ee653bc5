package validator

import (
	"context"
	"testing"

	"svw.info/sudoku-solver/internal/domain"
)

func gridOf(digits [9][9]uint8) domain.Grid {
	var g domain.Grid
	for i := range digits {
		for j, d := range digits[i] {
			if d == 0 {
				g[i][j] = domain.AllDigits
			} else {
				g[i][j] = domain.CellOf(d)
			}
		}
	}
	return g
}

var solved = [9][9]uint8{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateAcceptsTrueSolution(t *testing.T) {
	ok, conf, err := New().Validate(context.Background(), gridOf(solved))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok {
		t.Fatalf("true solution rejected, conflicts=%v", conf)
	}
}

func TestValidateRejectsDuplicates(t *testing.T) {
	bad := solved
	bad[0][0] = bad[0][1] // duplicate in row 0, col 0-1, box 0
	ok, conf, err := New().Validate(context.Background(), gridOf(bad))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("grid with a duplicated digit accepted")
	}
	if len(conf) == 0 {
		t.Fatal("no conflicting cells reported")
	}
}

func TestValidateRejectsOpenCells(t *testing.T) {
	incomplete := solved
	incomplete[4][4] = 0
	ok, _, err := New().Validate(context.Background(), gridOf(incomplete))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok {
		t.Fatal("grid with an undecided cell accepted")
	}
}

func TestValidateContradictionIsVacuouslyValid(t *testing.T) {
	// "no solution" is a legitimate outcome, not a broken grid
	ok, conf, err := New().Validate(context.Background(), domain.Grid{})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok {
		t.Fatalf("contradiction Grid rejected, conflicts=%v", conf)
	}
}
