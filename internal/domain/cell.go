package domain

import "math/bits"

// Cell is a bitmask of the digits 1..9 a cell may still hold.
// Bit d-1 set means digit d is a candidate. Exactly one bit set means the
// cell is fixed; the zero mask means the cell cannot be completed.
type Cell uint16

// AllDigits is the candidate set of an unknown cell.
const AllDigits Cell = 0x1ff

// CellOf returns the fixed cell holding digit d, d in 1..9.
func CellOf(d uint8) Cell { return 1 << (d - 1) }

// Count reports how many candidate digits remain.
func (c Cell) Count() int { return bits.OnesCount16(uint16(c)) }

// Fixed reports whether the cell is determined.
func (c Cell) Fixed() bool { return c.Count() == 1 }

// Decided reports whether the cell needs no further search. A contradicted
// cell counts as decided so search termination and contradiction detection
// share one predicate.
func (c Cell) Decided() bool { return c.Count() <= 1 }

// Has reports whether digit d is still a candidate.
func (c Cell) Has(d uint8) bool { return c&CellOf(d) != 0 }

// Digit returns the fixed digit, or 0 if the cell is not fixed.
func (c Cell) Digit() uint8 {
	if !c.Fixed() {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(c))) + 1
}
