package puzzle

/*

Errors

The engine has a single failure kind: a contradiction, meaning
some deduction proved the grid unsolvable.  Contradictions are
ordinary values, never panics.  The search recovers from them by
backtracking; at the top level they surface as ErrUnsolvable.

*/

import (
	"errors"
	"fmt"
)

// ErrUnsolvable is returned by the solve entry points when no
// complete, consistent assignment exists for the input, including
// when the givens themselves conflict.
var ErrUnsolvable = errors.New("puzzle has no solution")

// A Contradiction records the first point at which a grid was
// proven unsolvable: a cell whose candidates emptied, or a unit
// in which three or more cells were restricted to the same
// candidate pair.
type Contradiction struct {
	Cell Cell    // the emptied cell, if that was the proof
	Unit GroupID // the unit involved, when known
	Pair string  // the overflowing twin pair, "" otherwise
}

func (c *Contradiction) Error() string {
	switch {
	case c.Pair != "":
		return fmt.Sprintf("contradiction: three or more cells restricted to %q in %v %d",
			c.Pair, c.Unit.Gtype, c.Unit.Index)
	case c.Cell != "":
		return fmt.Sprintf("contradiction: no candidates left for cell %s", c.Cell)
	}
	return "contradiction: all candidates exhausted"
}
