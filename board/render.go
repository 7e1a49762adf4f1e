package board

import (
	"fmt"
	"strings"
)

// Render draws the board for the analyzer shell. PlayerA checkers render
// as 'a', PlayerB as 'b'; the top row runs 13..24 (A's direction of
// travel), the bottom row 12..1.
func (p Position) Render() string {
	var sb strings.Builder

	sb.WriteString("  13 14 15 16 17 18 | 19 20 21 22 23 24\n")
	for row := 0; row < 5; row++ {
		sb.WriteString("  ")
		for pt := 13; pt <= 24; pt++ {
			sb.WriteString(p.cell(pt, row))
			if pt == 18 {
				sb.WriteString("| ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ------------------+------------------\n")
	for row := 4; row >= 0; row-- {
		sb.WriteString("  ")
		for pt := 12; pt >= 1; pt-- {
			sb.WriteString(p.cell(pt, row))
			if pt == 7 {
				sb.WriteString("| ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  12 11 10  9  8  7 |  6  5  4  3  2  1\n")

	fmt.Fprintf(&sb, "bar A:%d B:%d  off A:%d B:%d  pips A:%d B:%d  %v to move\n",
		p.Bar[0], p.Bar[1], p.Off[0], p.Off[1],
		p.PipCount(PlayerA), p.PipCount(PlayerB), p.Mover)
	return sb.String()
}

// cell renders row r (0 = nearest the frame edge) of a point's stack.
func (p Position) cell(pt, r int) string {
	pip := p.Points[pt]
	n := int(pip.Count)
	switch {
	case n <= r:
		return " . "
	case r == 4 && n > 5:
		return fmt.Sprintf("%2d ", n)
	default:
		return " " + strings.ToLower(pip.Owner.String()) + " "
	}
}
