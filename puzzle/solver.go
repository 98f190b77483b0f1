package puzzle

/*

Depth-first search

Propagation alone solves easy grids.  When it stalls, the solver
guesses: it picks the unsolved cell with the fewest candidates,
tries each candidate in turn on an independent copy of the grid,
and runs propagation again.  A contradiction abandons the branch;
the first branch to reach a full assignment wins.  Depth is
bounded by 81 cells and branching by 9 digits, and propagation
only ever fixes cells, so the search always terminates.

*/

// A reducer drives a grid to a propagation fixed point, or
// reports a contradiction.  Reduce and ReduceWithTwins both
// qualify.
type reducer func(Grid, *Trace) (Grid, error)

// Solve parses an 81-character grid and solves it with the
// default pipeline (eliminate and onlyChoice under search).  On
// success it returns the solved grid; on failure it returns
// ErrUnsolvable.  The trace of assignments is returned in either
// case, including snapshots from abandoned search branches.
func Solve(input string) (Grid, *Trace, error) {
	return solve(input, Reduce)
}

// SolveWithTwins is Solve with the naked-twins strategy spliced
// into the propagation fixed point at every search node.
func SolveWithTwins(input string) (Grid, *Trace, error) {
	return solve(input, ReduceWithTwins)
}

func solve(input string, reduce reducer) (Grid, *Trace, error) {
	g, err := Parse(input)
	if err != nil {
		return nil, nil, err
	}
	tr := &Trace{}
	solved, err := search(g, tr, reduce)
	if err != nil {
		return nil, tr, ErrUnsolvable
	}
	return solved, tr, nil
}

// search runs one node of the depth-first search: propagate,
// stop on a solved or contradictory grid, otherwise branch on the
// most constrained unsolved cell.  Each branch gets its own copy
// of the grid, so a failed branch's assignments are invisible to
// its siblings.  The incoming grid is not modified.
func search(g Grid, tr *Trace, reduce reducer) (Grid, error) {
	g, err := reduce(g, tr)
	if err != nil {
		return nil, err
	}

	// pick the unsolved cell with the fewest candidates; ties go
	// to the first such cell in reading order, which keeps the
	// trace reproducible
	var pick Cell
	fewest := len(digits) + 1
	for _, cell := range geometry.cells {
		if n := len(g[cell]); n > 1 && n < fewest {
			pick, fewest = cell, n
		}
	}
	if pick == "" {
		return g, nil
	}

	for _, d := range g[pick] {
		branch := g.Copy()
		branch.assign(pick, string(d), tr)
		if solved, err := search(branch, tr, reduce); err == nil {
			return solved, nil
		}
	}
	return nil, &Contradiction{Cell: pick}
}
