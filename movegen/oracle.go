// Package movegen enumerates legal play for a turn: a single-move legality
// oracle and a recursive generator producing every maximal sequence for a
// dice pool.
package movegen

import (
	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/move"
)

// LegalMove is the single-move oracle. Given a snapshot, a source (a point
// index or move.BarSource) and one die, it returns the concrete move and
// whether it is legal for the snapshot's mover. It is a pure function of
// its inputs.
func LegalMove(pos board.Position, from int8, die uint8) (move.Move, bool) {
	mover := pos.Mover

	// A checker on the bar freezes every other source.
	if pos.BarCount(mover) > 0 {
		if from != move.BarSource {
			return move.Move{}, false
		}
		to := entryPoint(mover, die)
		if !open(pos, mover, to) {
			return move.Move{}, false
		}
		return move.Move{From: move.BarSource, To: int8(to), Die: die}, true
	}
	if from == move.BarSource {
		return move.Move{}, false
	}

	pt := int(from)
	if pt < 1 || pt > board.NumPoints || pos.Points[pt].Owner != mover {
		return move.Move{}, false
	}

	to := pt + int(die)
	if mover == board.PlayerB {
		to = pt - int(die)
	}

	if to >= 1 && to <= board.NumPoints {
		if !open(pos, mover, to) {
			return move.Move{}, false
		}
		return move.Move{From: from, To: int8(to), Die: die}, true
	}

	// Off the end of the board: a bear-off candidate.
	if !pos.AllHome(mover) {
		return move.Move{}, false
	}
	exact := to == board.NumPoints+1 || to == 0
	if !exact {
		// Overshoot is only legal from the most backward checker.
		back := pos.Backmost(mover)
		if mover == board.PlayerA && back < pt {
			return move.Move{}, false
		}
		if mover == board.PlayerB && back > pt {
			return move.Move{}, false
		}
	}
	return move.Move{From: from, To: move.OffTarget, Die: die}, true
}

// entryPoint is where a bar checker re-enters: mirrored home-board
// numbering per side.
func entryPoint(pl board.Player, die uint8) int {
	if pl == board.PlayerA {
		return int(die)
	}
	return board.BarDistance - int(die)
}

// open reports whether pl may land on pt: empty, own, or a lone opposing
// checker (a hit).
func open(pos board.Position, pl board.Player, pt int) bool {
	pip := pos.Points[pt]
	return pip.Owner != pl.Opponent() || pip.Count <= 1
}
