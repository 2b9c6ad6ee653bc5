package validator

import (
	"context"

	"svw.info/sudoku-solver/internal/domain"
)

// FastValidator checks a claimed solution with bitmask sweeps over every
// row, column and box. Each unit must be a permutation of 1..9: nine
// fixed cells, no digit repeated.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// Validate reports whether g is a true solution and lists the offending
// cells when it is not. The contradiction Grid is vacuously valid: it is
// the legitimate "no solution" outcome, not a broken one.
func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.CellCoord, error) {
	if g.Contradiction() {
		return true, nil, nil
	}
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := domain.Cell(0)
		for c := 0; c < 9; c++ {
			cell := g[r][c]
			if !cell.Fixed() || m&cell != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			m |= cell
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := domain.Cell(0)
		for r := 0; r < 9; r++ {
			cell := g[r][c]
			if !cell.Fixed() || m&cell != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			m |= cell
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := domain.Cell(0)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					cell := g[r][c]
					if !cell.Fixed() || m&cell != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
						continue
					}
					m |= cell
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
