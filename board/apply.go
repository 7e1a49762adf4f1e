package board

import (
	"github.com/bgkit/gammon/move"
)

// Apply plays a single move for the current mover and returns the
// resulting position. It assumes the move is legal (the oracle in the
// movegen package decides legality) and only implements the side effects:
// hits send the lone opposing checker to the bar, bear-offs increment the
// tray. The receiver is untouched.
func (p Position) Apply(m move.Move) Position {
	next := p
	mover := p.Mover
	opp := mover.Opponent()

	if m.IsBarEntry() {
		next.Bar[side(mover)]--
	} else {
		from := int(m.From)
		next.Points[from].Count--
		if next.Points[from].Count == 0 {
			next.Points[from].Owner = NoPlayer
		}
	}

	if m.IsBearOff() {
		next.Off[side(mover)]++
		return next
	}

	to := int(m.To)
	if next.Points[to].Owner == opp {
		// Lone checker by construction; it goes to the opponent's bar.
		next.Bar[side(opp)]++
		next.Points[to] = Point{Owner: mover, Count: 1}
		return next
	}
	next.Points[to].Owner = mover
	next.Points[to].Count++
	return next
}

// ApplySequence plays each move of seq in order and returns the final
// position.
func (p Position) ApplySequence(seq move.Sequence) Position {
	cur := p
	for _, m := range seq {
		cur = cur.Apply(m)
	}
	return cur
}
