package puzzle

/*

Constraint propagation

Two local inference rules, applied repeatedly until neither can
fix another cell:

- eliminate: a fixed cell's digit can't appear in any of its
  peers, so strike it from their candidates.

- only choice: if a unit has exactly one cell that can still take
  some digit, that cell must take it.

The fixed point is detected on the count of fixed cells, which is
non-decreasing and bounded by 81, so the loop always terminates.

*/

import "strings"

// eliminate makes one pass over all cells in reading order; for
// each fixed cell it removes the fixed digit from every peer's
// candidates.  It operates on a copy and does not itself iterate
// to a fixed point.  A peer's candidates may empty here; the
// caller checks for that after the pass.
func eliminate(g Grid, tr *Trace) Grid {
	g = g.Copy()
	for _, cell := range geometry.cells {
		domain := g[cell]
		if len(domain) != 1 {
			continue
		}
		for _, peer := range geometry.peersOf[cell] {
			if strings.Contains(g[peer], domain) {
				g.assign(peer, strings.Replace(g[peer], domain, "", 1), tr)
			}
		}
	}
	return g
}

// onlyChoice fixes, for every unit and digit, the unit's sole
// remaining candidate cell for that digit, if there is exactly
// one.  The candidate scan reads the incoming grid while the
// fixes land on a copy, so fixes made during the pass don't feed
// back into it.
func onlyChoice(g Grid, tr *Trace) Grid {
	out := g.Copy()
	for _, u := range geometry.units {
		for _, d := range digits {
			var only Cell
			count := 0
			for _, cell := range u.Cells {
				if strings.ContainsRune(g[cell], d) {
					only = cell
					if count++; count > 1 {
						break
					}
				}
			}
			if count == 1 {
				out.assign(only, string(d), tr)
			}
		}
	}
	return out
}

// Reduce applies eliminate then onlyChoice repeatedly until the
// count of fixed cells stops increasing.  If any cell's
// candidates empty along the way the grid is unsolvable and a
// Contradiction is returned in place of a grid.  Reduce operates
// on copies; the caller's grid is never modified.
func Reduce(g Grid, tr *Trace) (Grid, error) {
	for {
		before := g.fixedCount()
		g = eliminate(g, tr)
		g = onlyChoice(g, tr)
		if cell, empty := g.emptyCell(); empty {
			return nil, &Contradiction{Cell: cell}
		}
		if g.fixedCount() == before {
			return g, nil
		}
	}
}

// ReduceWithTwins is Reduce with the naked-twins strategy spliced
// into the fixed point after the two basic rules.  It prunes
// harder at the cost of more work per pass.
func ReduceWithTwins(g Grid, tr *Trace) (Grid, error) {
	for {
		before := g.fixedCount()
		g = eliminate(g, tr)
		g = onlyChoice(g, tr)
		if cell, empty := g.emptyCell(); empty {
			return nil, &Contradiction{Cell: cell}
		}
		reduced, err := NakedTwins(g, tr)
		if err != nil {
			return nil, err
		}
		g = reduced
		if g.fixedCount() == before {
			return g, nil
		}
	}
}
