package puzzle

import (
	"testing"
)

func TestUnitList(t *testing.T) {
	us := Units()
	if len(us) != 29 {
		t.Fatalf("TestUnitList: got %d units, expected 29", len(us))
	}
	counts := make(map[GroupType]int)
	for i, u := range us {
		counts[u.ID.Gtype]++
		if len(u.Cells) != 9 {
			t.Errorf("TestUnitList: unit %d has %d cells, expected 9", i, len(u.Cells))
		}
		seen := make(map[Cell]bool)
		for _, c := range u.Cells {
			if seen[c] {
				t.Errorf("TestUnitList: unit %d repeats cell %s", i, c)
			}
			seen[c] = true
		}
	}
	expected := map[GroupType]int{GtypeRow: 9, GtypeCol: 9, GtypeBox: 9, GtypeDiag: 2}
	for gt, want := range expected {
		if counts[gt] != want {
			t.Errorf("TestUnitList: %d %v units, expected %d", counts[gt], gt, want)
		}
	}
}

func TestDiagonalUnits(t *testing.T) {
	down := []Cell{"A1", "B2", "C3", "D4", "E5", "F6", "G7", "H8", "I9"}
	up := []Cell{"A9", "B8", "C7", "D6", "E5", "F4", "G3", "H2", "I1"}
	var got [][]Cell
	for _, u := range Units() {
		if u.ID.Gtype == GtypeDiag {
			got = append(got, u.Cells)
		}
	}
	if len(got) != 2 {
		t.Fatalf("TestDiagonalUnits: found %d diagonal units, expected 2", len(got))
	}
	for i, want := range [][]Cell{down, up} {
		for j := range want {
			if got[i][j] != want[j] {
				t.Errorf("TestDiagonalUnits: diagonal %d cell %d is %s, expected %s",
					i+1, j+1, got[i][j], want[j])
			}
		}
	}
}

type membershipTestcase struct {
	cell  Cell
	units int
	peers int
}

func TestUnitMembership(t *testing.T) {
	// off-diagonal cells sit in 3 units, diagonal cells in 4, and
	// the center cell sits on both diagonals, so in 5
	tcs := []membershipTestcase{
		{"A2", 3, 20},
		{"C6", 3, 20},
		{"A1", 4, 26},
		{"B2", 4, 26},
		{"A9", 4, 26},
		{"I1", 4, 26},
		{"E5", 5, 32},
	}
	for i, tc := range tcs {
		if got := len(UnitsOf(tc.cell)); got != tc.units {
			t.Errorf("TestUnitMembership case %d: %s in %d units, expected %d",
				i+1, tc.cell, got, tc.units)
		}
		if got := len(PeersOf(tc.cell)); got != tc.peers {
			t.Errorf("TestUnitMembership case %d: %s has %d peers, expected %d",
				i+1, tc.cell, got, tc.peers)
		}
	}

	// full distribution over the board
	dist := make(map[int]int)
	for _, c := range Cells() {
		dist[len(UnitsOf(c))]++
	}
	if dist[3] != 64 || dist[4] != 16 || dist[5] != 1 {
		t.Errorf("TestUnitMembership: distribution %v, expected 64/16/1 for 3/4/5 units", dist)
	}
}

func TestPeerSymmetry(t *testing.T) {
	peerSet := make(map[Cell]map[Cell]bool)
	for _, c := range Cells() {
		peerSet[c] = make(map[Cell]bool)
		for _, p := range PeersOf(c) {
			if p == c {
				t.Errorf("TestPeerSymmetry: %s is its own peer", c)
			}
			peerSet[c][p] = true
		}
	}
	for _, a := range Cells() {
		for b := range peerSet[a] {
			if !peerSet[b][a] {
				t.Errorf("TestPeerSymmetry: %s peers %s but not vice versa", a, b)
			}
		}
	}
}
