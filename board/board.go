// Package board models a backgammon position as an immutable value. Every
// simulated move produces a new Position; nothing in this package mutates
// shared state, which keeps the search tree free of aliasing hazards.
package board

import (
	"errors"
	"fmt"
)

// Player identifies a side. PlayerA moves from point 1 toward point 24 and
// bears off past 24; PlayerB moves the opposite way and bears off past 1.
type Player uint8

const (
	NoPlayer Player = iota
	PlayerA
	PlayerB
)

func (p Player) Opponent() Player {
	switch p {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return "-"
}

const (
	NumPoints   = 24
	NumCheckers = 15
	// BarDistance is the pip distance charged for a checker on the bar;
	// it must re-enter from the farthest edge of the board.
	BarDistance = 25
)

var (
	ErrConservation = errors.New("checker conservation violated")
	ErrBadPoint     = errors.New("point owner/count invariant violated")
	ErrBadMover     = errors.New("position has no mover")
	ErrBadDie       = errors.New("die value out of range")
)

// Point is one of the 24 board points. Owner is NoPlayer exactly when
// Count is zero; a count of 1 is a blot, 2 or more a made point.
type Point struct {
	Owner Player
	Count uint8
}

// Position is a full snapshot of the board: point occupancy, per-player
// bar and borne-off counts, and the side to move. It is a plain value;
// copying it copies the whole board.
type Position struct {
	Points [NumPoints + 1]Point // indexed 1..24, index 0 unused
	Bar    [2]uint8
	Off    [2]uint8
	Mover  Player
}

// side maps a player to its index into the Bar and Off arrays.
func side(p Player) int {
	return int(p) - 1
}

// StartingPosition returns the standard backgammon start with the given
// side to move.
func StartingPosition(mover Player) Position {
	pos := Position{Mover: mover}
	place := func(pl Player, pt int, n uint8) {
		pos.Points[pt] = Point{Owner: pl, Count: n}
	}
	place(PlayerA, 1, 2)
	place(PlayerA, 12, 5)
	place(PlayerA, 17, 3)
	place(PlayerA, 19, 5)
	place(PlayerB, 24, 2)
	place(PlayerB, 13, 5)
	place(PlayerB, 8, 3)
	place(PlayerB, 6, 5)
	return pos
}

// Validate checks the caller-contract invariants: point owner/count
// consistency, a designated mover, and 15 checkers per side across board,
// bar and tray.
func (p Position) Validate() error {
	if p.Mover != PlayerA && p.Mover != PlayerB {
		return ErrBadMover
	}
	for pt := 1; pt <= NumPoints; pt++ {
		pip := p.Points[pt]
		if (pip.Owner == NoPlayer) != (pip.Count == 0) {
			return fmt.Errorf("%w: point %d owner %v count %d", ErrBadPoint, pt, pip.Owner, pip.Count)
		}
	}
	for _, pl := range []Player{PlayerA, PlayerB} {
		total := p.CheckersOn(pl) + int(p.Bar[side(pl)]) + int(p.Off[side(pl)])
		if total != NumCheckers {
			return fmt.Errorf("%w: player %v has %d", ErrConservation, pl, total)
		}
	}
	return nil
}

// CheckersOn returns the number of pl's checkers on the 24 points.
func (p Position) CheckersOn(pl Player) int {
	n := 0
	for pt := 1; pt <= NumPoints; pt++ {
		if p.Points[pt].Owner == pl {
			n += int(p.Points[pt].Count)
		}
	}
	return n
}

func (p Position) BarCount(pl Player) int {
	return int(p.Bar[side(pl)])
}

func (p Position) OffCount(pl Player) int {
	return int(p.Off[side(pl)])
}

// PipCount is the total distance pl's checkers still have to travel,
// counting 25 per checker on the bar.
func (p Position) PipCount(pl Player) int {
	pips := int(p.Bar[side(pl)]) * BarDistance
	for pt := 1; pt <= NumPoints; pt++ {
		if p.Points[pt].Owner != pl {
			continue
		}
		n := int(p.Points[pt].Count)
		if pl == PlayerA {
			pips += n * (BarDistance - pt)
		} else {
			pips += n * pt
		}
	}
	return pips
}

// HomeRange returns the inclusive bounds of pl's home board.
func HomeRange(pl Player) (lo, hi int) {
	if pl == PlayerA {
		return 19, 24
	}
	return 1, 6
}

// InHome reports whether point pt lies inside pl's home board.
func InHome(pl Player, pt int) bool {
	lo, hi := HomeRange(pl)
	return pt >= lo && pt <= hi
}

// AllHome reports whether every one of pl's checkers still in play sits
// inside pl's home board with none on the bar. This is the bear-off gate.
func (p Position) AllHome(pl Player) bool {
	if p.Bar[side(pl)] > 0 {
		return false
	}
	lo, hi := HomeRange(pl)
	for pt := 1; pt <= NumPoints; pt++ {
		if p.Points[pt].Owner == pl && (pt < lo || pt > hi) {
			return false
		}
	}
	return true
}

// HomeCount returns how many of pl's checkers occupy pl's home board.
func (p Position) HomeCount(pl Player) int {
	lo, hi := HomeRange(pl)
	n := 0
	for pt := lo; pt <= hi; pt++ {
		if p.Points[pt].Owner == pl {
			n += int(p.Points[pt].Count)
		}
	}
	return n
}

// Backmost returns the point of pl's checker farthest from bear-off, or 0
// if pl has no checkers on the board.
func (p Position) Backmost(pl Player) int {
	if pl == PlayerA {
		for pt := 1; pt <= NumPoints; pt++ {
			if p.Points[pt].Owner == pl {
				return pt
			}
		}
	} else {
		for pt := NumPoints; pt >= 1; pt-- {
			if p.Points[pt].Owner == pl {
				return pt
			}
		}
	}
	return 0
}

// Distance is the number of pips from pt to pl's bear-off edge.
func Distance(pl Player, pt int) int {
	if pl == PlayerA {
		return BarDistance - pt
	}
	return pt
}

// EncodedSize is the length of the canonical byte encoding of a Position.
const EncodedSize = NumPoints + 5

// Encode packs the snapshot into a canonical byte string: one byte per
// point (owner in the high bits, count in the low), then bar and tray
// counts and the mover. Two positions encode equal iff they are equal.
func (p Position) Encode() [EncodedSize]byte {
	var enc [EncodedSize]byte
	for pt := 1; pt <= NumPoints; pt++ {
		enc[pt-1] = byte(p.Points[pt].Owner)<<5 | p.Points[pt].Count
	}
	enc[NumPoints] = p.Bar[0]
	enc[NumPoints+1] = p.Bar[1]
	enc[NumPoints+2] = p.Off[0]
	enc[NumPoints+3] = p.Off[1]
	enc[NumPoints+4] = byte(p.Mover)
	return enc
}
