// Package equity scores positions. The evaluator classifies a position
// into a game phase, extracts weighted features for both sides, and
// returns a single mover-relative number. Results are memoized in a
// bounded cache.
package equity

import (
	"github.com/bgkit/gammon/board"
)

// Phase is the detected character of a position. The evaluator selects a
// weight vector per phase.
type Phase uint8

const (
	PhaseContact Phase = iota
	PhaseRace
	PhaseBackgame
	PhasePriming
	PhaseBlitz
)

func (p Phase) String() string {
	switch p {
	case PhaseRace:
		return "race"
	case PhaseBackgame:
		return "backgame"
	case PhasePriming:
		return "priming"
	case PhaseBlitz:
		return "blitz"
	}
	return "contact"
}

// backgamePipDeficit is the pip deficit beyond which the evaluating side
// plays a backgame.
const backgamePipDeficit = 30

// DetectPhase classifies the position from pov's perspective. Priority
// order: race pre-empts everything, then backgame, priming, blitz,
// contact.
func DetectPhase(pos board.Position, pov board.Player) Phase {
	opp := pov.Opponent()

	if pos.AllHome(pov) && pos.AllHome(opp) {
		return PhaseRace
	}
	if pos.PipCount(pov)-pos.PipCount(opp) > backgamePipDeficit {
		return PhaseBackgame
	}
	ownLongest, _ := PrimeStats(pos, pov)
	oppLongest, _ := PrimeStats(pos, opp)
	if ownLongest >= 3 && oppLongest >= 3 {
		return PhasePriming
	}
	if pos.BarCount(opp) > 0 && ownLongest >= 2 && blotCount(pos, pov) <= 2 {
		return PhaseBlitz
	}
	return PhaseContact
}

// PrimeStats returns the length of pl's longest run of consecutive made
// points and the number of separate runs of length two or more.
func PrimeStats(pos board.Position, pl board.Player) (longest, runs int) {
	cur := 0
	for pt := 1; pt <= board.NumPoints+1; pt++ {
		made := pt <= board.NumPoints &&
			pos.Points[pt].Owner == pl && pos.Points[pt].Count >= 2
		if made {
			cur++
			continue
		}
		if cur > longest {
			longest = cur
		}
		if cur >= 2 {
			runs++
		}
		cur = 0
	}
	return longest, runs
}

func blotCount(pos board.Position, pl board.Player) int {
	n := 0
	for pt := 1; pt <= board.NumPoints; pt++ {
		if pos.Points[pt].Owner == pl && pos.Points[pt].Count == 1 {
			n++
		}
	}
	return n
}
