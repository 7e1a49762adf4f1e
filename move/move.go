// Package move defines the value types the engine trades in: a single
// die-move and an ordered sequence of them making up one turn.
package move

import (
	"fmt"
	"strings"
)

// Sentinels for the non-point endpoints of a move. Points are numbered
// 1 through 24, so 0 and 25 are free for the bar and the bear-off tray.
const (
	BarSource int8 = 0
	OffTarget int8 = 25
)

// Move is a single checker move consuming one die. From is a point index
// or BarSource; To is a point index or OffTarget.
type Move struct {
	From int8
	To   int8
	Die  uint8
}

func (m Move) IsBarEntry() bool {
	return m.From == BarSource
}

func (m Move) IsBearOff() bool {
	return m.To == OffTarget
}

// String renders the move in slash notation, e.g. "bar/20", "13/7", "4/off".
func (m Move) String() string {
	from := "bar"
	if m.From != BarSource {
		from = fmt.Sprintf("%d", m.From)
	}
	to := "off"
	if m.To != OffTarget {
		to = fmt.Sprintf("%d", m.To)
	}
	return from + "/" + to
}

// Sequence is an ordered list of moves for one turn, length 0 to 4. Each
// move is legal with respect to the position as it stood after the moves
// before it. The empty sequence is the forced pass.
type Sequence []Move

func (s Sequence) String() string {
	if len(s) == 0 {
		return "(no play)"
	}
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func (s Sequence) Equal(o Sequence) bool {
	if len(s) != len(o) {
		return false
	}
	for i := range s {
		if s[i] != o[i] {
			return false
		}
	}
	return true
}

// Copy returns a sequence that does not share backing storage with s.
func (s Sequence) Copy() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}
