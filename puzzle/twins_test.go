package puzzle

import (
	"errors"
	"testing"
)

// twinsGridString reduces to a fixed point in which column 8
// holds naked twins A8=78, C8=78.  The strategy then strikes 7
// and 8 from the rest of the column: F8 loses the 7 and G8
// collapses from 17 to 1.
func TestNakedTwins(t *testing.T) {
	g, err := Parse(twinsGridString)
	if err != nil {
		t.Fatalf("TestNakedTwins: failed to parse: %v", err)
	}
	reduced, err := Reduce(g, nil)
	if err != nil {
		t.Fatalf("TestNakedTwins: reduce failed: %v", err)
	}
	if reduced["A8"] != "78" || reduced["C8"] != "78" {
		t.Fatalf("TestNakedTwins: fixed point lost its twins: A8=%q C8=%q",
			reduced["A8"], reduced["C8"])
	}

	tr := &Trace{}
	after, err := NakedTwins(reduced, tr)
	if err != nil {
		t.Fatalf("TestNakedTwins: strategy failed: %v", err)
	}
	if after["F8"] != "123" {
		t.Errorf("TestNakedTwins: F8 is %q, expected \"123\"", after["F8"])
	}
	if after["G8"] != "1" {
		t.Errorf("TestNakedTwins: G8 is %q, expected \"1\"", after["G8"])
	}
	// G8 collapsed to a single candidate, so the trace grew
	if tr.Len() == 0 {
		t.Errorf("TestNakedTwins: fixing a cell left no trace")
	}
	// the twins themselves keep their pair
	if after["A8"] != "78" || after["C8"] != "78" {
		t.Errorf("TestNakedTwins: twins were modified: A8=%q C8=%q",
			after["A8"], after["C8"])
	}
	// everything else is untouched
	changed := 0
	for _, cell := range Cells() {
		if after[cell] != reduced[cell] {
			changed++
		}
	}
	if changed != 2 {
		t.Errorf("TestNakedTwins: %d cells changed, expected 2 (F8 and G8)", changed)
	}
	// the input grid is never modified
	if reduced["G8"] != "17" {
		t.Errorf("TestNakedTwins: strategy modified the caller's grid")
	}
}

func TestNakedTwinsNoTwins(t *testing.T) {
	g, err := Parse(diagSolutionString)
	if err != nil {
		t.Fatalf("TestNakedTwinsNoTwins: failed to parse: %v", err)
	}
	after, err := NakedTwins(g, nil)
	if err != nil {
		t.Fatalf("TestNakedTwinsNoTwins: strategy failed on a solved grid: %v", err)
	}
	for _, cell := range Cells() {
		if after[cell] != g[cell] {
			t.Errorf("TestNakedTwinsNoTwins: cell %s changed from %q to %q",
				cell, g[cell], after[cell])
		}
	}
}

// three cells of one unit restricted to the same pair can't all
// be satisfied
func TestNakedTwinsTriple(t *testing.T) {
	g, err := Parse(dots(81))
	if err != nil {
		t.Fatalf("TestNakedTwinsTriple: failed to parse: %v", err)
	}
	g["A1"], g["A2"], g["A3"] = "23", "23", "23"
	_, err = NakedTwins(g, nil)
	var c *Contradiction
	if !errors.As(err, &c) {
		t.Fatalf("TestNakedTwinsTriple: error is %v, expected *Contradiction", err)
	}
	if c.Pair != "23" {
		t.Errorf("TestNakedTwinsTriple: contradiction pair is %q, expected \"23\"", c.Pair)
	}
	if c.Unit.Gtype != GtypeRow || c.Unit.Index != 1 {
		t.Errorf("TestNakedTwinsTriple: contradiction unit is %v %d, expected row 1",
			c.Unit.Gtype, c.Unit.Index)
	}
}

// a strike that empties a fixed peer is a contradiction
func TestNakedTwinsEmptiesPeer(t *testing.T) {
	g, err := Parse(dots(81))
	if err != nil {
		t.Fatalf("TestNakedTwinsEmptiesPeer: failed to parse: %v", err)
	}
	g["A1"], g["A2"], g["A3"] = "23", "23", "2"
	_, err = NakedTwins(g, nil)
	var c *Contradiction
	if !errors.As(err, &c) {
		t.Fatalf("TestNakedTwinsEmptiesPeer: error is %v, expected *Contradiction", err)
	}
	if c.Cell != "A3" {
		t.Errorf("TestNakedTwinsEmptiesPeer: contradiction cell is %s, expected A3", c.Cell)
	}
}

func TestCanonical(t *testing.T) {
	tcs := []struct{ in, want string }{
		{"23", "23"},
		{"32", "23"},
		{"917", "179"},
		{"123456789", "123456789"},
		{"", ""},
	}
	for i, tc := range tcs {
		if got := canonical(tc.in); got != tc.want {
			t.Errorf("TestCanonical case %d: canonical(%q) = %q, expected %q",
				i+1, tc.in, got, tc.want)
		}
	}
}

// dots builds an all-unknown input string of the given length.
func dots(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '.'
	}
	return string(b)
}
