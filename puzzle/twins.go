package puzzle

/*

Naked twins

When two cells of a unit are both restricted to the same pair of
candidates, the pair is spoken for: between them the twins will
consume both digits, so no other cell of the unit can take
either.  Three or more cells restricted to the same pair is an
outright contradiction.

This rule is strictly stronger than eliminate/onlyChoice alone.
It is a standalone strategy: the default solve pipeline does not
apply it, and callers that want the extra pruning splice it in
via ReduceWithTwins or SolveWithTwins.

*/

import (
	"sort"
	"strings"
)

// canonical returns the order-independent form of a candidate
// string, for use as a grouping key.
func canonical(domain string) string {
	ds := strings.Split(domain, "")
	sort.Strings(ds)
	return strings.Join(ds, "")
}

// NakedTwins applies the naked-twins strategy once across every
// unit, operating on a copy of the grid.  Within each unit,
// cells are grouped by the canonical form of their 2-candidate
// domains; each group of exactly two strikes both digits from the
// rest of the unit.  A group of three or more, or a cell emptied
// by the strike, is a Contradiction and short-circuits the pass.
func NakedTwins(g Grid, tr *Trace) (Grid, error) {
	g = g.Copy()
	for _, u := range geometry.units {
		// group the unit's 2-candidate cells by pair, keeping
		// pairs in discovery order so elimination is deterministic
		groups := make(map[string][]Cell)
		var pairs []string
		for _, cell := range u.Cells {
			if len(g[cell]) != 2 {
				continue
			}
			pair := canonical(g[cell])
			if len(groups[pair]) == 0 {
				pairs = append(pairs, pair)
			}
			groups[pair] = append(groups[pair], cell)
		}

		for _, pair := range pairs {
			twins := groups[pair]
			if len(twins) < 2 {
				continue
			}
			if len(twins) > 2 {
				// the pair can't cover three cells
				return nil, &Contradiction{Unit: u.ID, Pair: pair}
			}
			for _, cell := range u.Cells {
				if cell == twins[0] || cell == twins[1] {
					continue
				}
				reduced := strike(g[cell], pair)
				if reduced == g[cell] {
					continue
				}
				if reduced == "" {
					return nil, &Contradiction{Cell: cell, Unit: u.ID}
				}
				g.assign(cell, reduced, tr)
			}
		}
	}
	return g, nil
}

// strike removes every digit of cut from domain, preserving the
// order of the remaining candidates.
func strike(domain, cut string) string {
	var b strings.Builder
	for _, d := range domain {
		if !strings.ContainsRune(cut, d) {
			b.WriteRune(d)
		}
	}
	return b.String()
}
