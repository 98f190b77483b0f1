package puzzle

/*

Reading and printing grids

The interchange form of a puzzle is an 81-character string over
'1'-'9' and '.', in reading order, '.' marking an unknown cell.
The same form comes back out of Signature, so a solved grid
round-trips as 81 digits.

*/

import (
	"fmt"
	"strings"
)

// Parse converts an 81-character string into the initial grid:
// a given digit becomes that cell's single candidate, '.' leaves
// the cell with the full 1-9 domain.  Inputs of the wrong length
// or alphabet are rejected here, before any solving starts.
func Parse(input string) (Grid, error) {
	if len(input) != len(geometry.cells) {
		return nil, fmt.Errorf("grid must be %d characters, got %d",
			len(geometry.cells), len(input))
	}
	g := make(Grid, len(geometry.cells))
	for i, cell := range geometry.cells {
		switch ch := input[i]; {
		case ch == '.':
			g[cell] = digits
		case ch >= '1' && ch <= '9':
			g[cell] = string(ch)
		default:
			return nil, fmt.Errorf("grid character %d is %q, want '1'-'9' or '.'",
				i+1, string(ch))
		}
	}
	return g, nil
}

// Signature renders a grid back into the 81-character interchange
// form.  Cells that aren't fixed come out as '.'.
func (g Grid) Signature() string {
	var b strings.Builder
	b.Grow(len(geometry.cells))
	for _, cell := range geometry.cells {
		if domain := g[cell]; len(domain) == 1 {
			b.WriteString(domain)
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}

// String gives a pretty-printed view of a grid, candidates and
// all, with box separators.  Meant for terminals and debugging.
func (g Grid) String() string {
	width := 1
	for _, domain := range g {
		if len(domain)+1 > width {
			width = len(domain) + 1
		}
	}
	bar := strings.Repeat("-", width*3)
	line := bar + "+" + bar + "+" + bar
	var b strings.Builder
	for ri, r := range rowNames {
		for ci, c := range colNames {
			cell := Cell(string(r) + string(c))
			b.WriteString(center(g[cell], width))
			if ci == 2 || ci == 5 {
				b.WriteByte('|')
			}
		}
		b.WriteByte('\n')
		if ri == 2 || ri == 5 {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// center pads s with spaces to the given width, content centered.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
