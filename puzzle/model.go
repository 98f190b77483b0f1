package puzzle

/*

Grid representation

A grid maps every cell to the string of candidate digits still
possible for it.  A cell with a single candidate is fixed; a cell
whose candidates have emptied is the proof of a contradiction.
Grids are cheap to copy, and every algorithm here that needs to
keep a caller's grid intact copies before mutating.

*/

import "strings"

// A Grid maps every cell identifier to its candidate digits,
// kept as a substring of "123456789".  Candidate strings are
// compared as sets: order never carries meaning.
type Grid map[Cell]string

// Copy returns a grid that shares no storage with the original.
func (g Grid) Copy() Grid {
	c := make(Grid, len(g))
	for cell, domain := range g {
		c[cell] = domain
	}
	return c
}

// assign is the single sanctioned mutation path for grids.  It
// sets the cell's candidates and, when the cell becomes fixed,
// records a snapshot of the whole grid in the trace.  Every
// inference rule and every search branch routes its writes
// through here so the trace stays complete.
func (g Grid) assign(cell Cell, domain string, tr *Trace) {
	g[cell] = domain
	if len(domain) == 1 {
		tr.record(g)
	}
}

// fixedCount returns the number of fixed cells.  The propagation
// loop iterates until this stops growing.
func (g Grid) fixedCount() (count int) {
	for _, domain := range g {
		if len(domain) == 1 {
			count++
		}
	}
	return
}

// emptyCell scans for a cell whose candidates have emptied,
// returning the first such cell in reading order.
func (g Grid) emptyCell() (Cell, bool) {
	for _, cell := range geometry.cells {
		if len(g[cell]) == 0 {
			return cell, true
		}
	}
	return "", false
}

// Solved reports whether the grid is completely solved: every
// cell fixed, and every unit's nine values a permutation of 1-9.
func (g Grid) Solved() bool {
	for _, domain := range g {
		if len(domain) != 1 {
			return false
		}
	}
	for _, u := range geometry.units {
		var seen strings.Builder
		for _, cell := range u.Cells {
			if strings.Contains(seen.String(), g[cell]) {
				return false
			}
			seen.WriteString(g[cell])
		}
	}
	return true
}

/*

Assignment traces

The trace is write-only observability state: a snapshot of the
grid is appended each time a cell becomes fixed, so an external
visualizer can replay the deduction afterwards.  Nothing in the
solving algorithms reads it.  It is owned by one solve invocation
and grows monotonically for its lifetime; snapshots taken along
search branches that later fail are kept.

*/

// A Trace is the ordered sequence of grid snapshots recorded by
// assignments.  A nil Trace is valid and records nothing.
type Trace struct {
	steps []Grid
}

// record appends a snapshot of the grid.
func (t *Trace) record(g Grid) {
	if t != nil {
		t.steps = append(t.steps, g.Copy())
	}
}

// Len returns the number of recorded snapshots.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.steps)
}

// Steps returns the recorded snapshots in order.  The snapshots
// are the trace's own copies; callers must not modify them.
func (t *Trace) Steps() []Grid {
	if t == nil {
		return nil
	}
	return t.steps
}
