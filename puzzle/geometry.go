// Package puzzle solves 9x9 diagonal ("X") Sudoku puzzles.  A
// puzzle arrives as an 81-character string of givens; the engine
// deduces what it can by constraint propagation and falls back to
// a depth-first search over the remaining candidates.  Failure to
// find a solution is an ordinary return value, never a panic.
//
// The package also records an assignment trace, a sequence of
// grid snapshots taken each time a cell's value becomes fixed,
// which external tools can replay to visualize the deduction.
package puzzle

/*

Puzzle geometry

The board is the standard 9x9 grid, but the constraint list is
the "X" (diagonal) variant: in addition to the usual rows,
columns, and 3x3 boxes, both main diagonals must contain each
digit exactly once.  The geometry never varies, so the unit list
and the peer relation are computed once at startup and shared
read-only by every solve.

*/

// A Cell names one of the 81 board positions: a row letter
// 'A'-'I' followed by a column digit '1'-'9', in English reading
// order (A1 is the top-left corner, I9 the bottom-right).
type Cell string

// A GroupType classifies a constraint unit.
type GroupType int

const (
	GtypeRow GroupType = iota
	GtypeCol
	GtypeBox
	GtypeDiag
)

var groupTypeNames = []string{"row", "column", "box", "diagonal"}

func (t GroupType) String() string {
	if t < 0 || int(t) >= len(groupTypeNames) {
		return "unknown"
	}
	return groupTypeNames[t]
}

// A GroupID identifies a unit by type and 1-based position within
// its type (rows top to bottom, columns left to right, boxes in
// reading order, diagonal 1 from A1, diagonal 2 from A9).
type GroupID struct {
	Gtype GroupType
	Index int
}

// A Unit is an ordered collection of 9 distinct cells that must
// contain each digit 1-9 exactly once in a solved grid.
type Unit struct {
	ID    GroupID
	Cells []Cell
}

const (
	rowNames = "ABCDEFGHI"
	colNames = "123456789"
	digits   = "123456789"
)

// A boardMapping holds the precomputed structure of the board:
// the cell list, the unit list, and the per-cell unit and peer
// relations.
type boardMapping struct {
	cells   []Cell
	units   []Unit
	unitsOf map[Cell][]Unit
	peersOf map[Cell][]Cell
}

// geometry is the one shared mapping.  Nothing mutates it after
// construction.
var geometry = computeGeometry()

// cross builds the cells named by pairing each letter in rows
// with each digit in cols.
func cross(rows, cols string) []Cell {
	cs := make([]Cell, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			cs = append(cs, Cell(string(r)+string(c)))
		}
	}
	return cs
}

func computeGeometry() *boardMapping {
	m := &boardMapping{cells: cross(rowNames, colNames)}

	// rows, then columns, then boxes, then the two diagonals
	for i, r := range rowNames {
		m.units = append(m.units,
			Unit{GroupID{GtypeRow, i + 1}, cross(string(r), colNames)})
	}
	for i, c := range colNames {
		m.units = append(m.units,
			Unit{GroupID{GtypeCol, i + 1}, cross(rowNames, string(c))})
	}
	boxIndex := 1
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			m.units = append(m.units, Unit{GroupID{GtypeBox, boxIndex}, cross(rs, cs)})
			boxIndex++
		}
	}
	down, up := make([]Cell, 9), make([]Cell, 9)
	for i := 0; i < 9; i++ {
		down[i] = Cell(string(rowNames[i]) + string(colNames[i]))
		up[i] = Cell(string(rowNames[i]) + string(colNames[8-i]))
	}
	m.units = append(m.units, Unit{GroupID{GtypeDiag, 1}, down})
	m.units = append(m.units, Unit{GroupID{GtypeDiag, 2}, up})

	// derive the per-cell relations from the unit list
	m.unitsOf = make(map[Cell][]Unit, len(m.cells))
	m.peersOf = make(map[Cell][]Cell, len(m.cells))
	for _, c := range m.cells {
		var us []Unit
		seen := make(map[Cell]bool)
		for _, u := range m.units {
			for _, uc := range u.Cells {
				if uc == c {
					us = append(us, u)
					for _, p := range u.Cells {
						seen[p] = true
					}
					break
				}
			}
		}
		m.unitsOf[c] = us
		// peers in reading order, for deterministic iteration
		peers := make([]Cell, 0, len(seen)-1)
		for _, p := range m.cells {
			if p != c && seen[p] {
				peers = append(peers, p)
			}
		}
		m.peersOf[c] = peers
	}
	return m
}

/*

Accessors.  All of these return the shared precomputed structures;
callers must treat them as read-only.

*/

// Cells returns all 81 cell identifiers in reading order.
func Cells() []Cell {
	return geometry.cells
}

// Units returns the fixed list of 29 constraint units: 9 rows, 9
// columns, 9 boxes, and the 2 diagonals.
func Units() []Unit {
	return geometry.units
}

// UnitsOf returns the units that contain the given cell.
func UnitsOf(c Cell) []Unit {
	return geometry.unitsOf[c]
}

// PeersOf returns every cell that shares at least one unit with
// the given cell, excluding the cell itself, in reading order.
func PeersOf(c Cell) []Cell {
	return geometry.peersOf[c]
}
