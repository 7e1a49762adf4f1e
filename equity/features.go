package equity

import (
	"github.com/bgkit/gammon/board"
)

// features holds the raw per-side feature values before weighting.
type features struct {
	Pip          float64
	Off          float64
	Bar          float64
	Home         float64
	Blot         float64
	Prime        float64
	Anchor       float64
	Distribution float64
	Crunch       float64
}

func extract(pos board.Position, pl board.Player) features {
	longest, runs := PrimeStats(pos, pl)
	return features{
		Pip:          float64(pos.PipCount(pl)),
		Off:          float64(pos.OffCount(pl)),
		Bar:          float64(pos.BarCount(pl)),
		Home:         homeStructure(pos, pl),
		Blot:         blotExposure(pos, pl),
		Prime:        primeQuality(longest, runs),
		Anchor:       anchorQuality(pos, pl),
		Distribution: distribution(pos, pl),
		Crunch:       crunchPenalty(pos, pl),
	}
}

// homeStructure scores made points inside pl's home board, weighted toward
// the bear-off edge, minus a penalty per gap between them.
func homeStructure(pos board.Position, pl board.Player) float64 {
	lo, hi := board.HomeRange(pl)
	score := 0.0
	gaps := 0
	sawMade := false
	pendingGap := 0
	for pt := lo; pt <= hi; pt++ {
		made := pos.Points[pt].Owner == pl && pos.Points[pt].Count >= 2
		if made {
			score += float64(7 - board.Distance(pl, pt))
			if sawMade {
				gaps += pendingGap
			}
			sawMade = true
			pendingGap = 0
		} else if sawMade {
			pendingGap++
		}
	}
	return score - 0.5*float64(gaps)
}

// primeQuality rewards the longest run quadratically: a six prime is far
// more than twice two three-runs.
func primeQuality(longest, runs int) float64 {
	q := 0.6 * float64(longest*longest)
	q += 1.0 * float64(runs)
	if runs > 1 {
		q -= 0.8 * float64(runs-1)
	}
	return q
}

// anchorQuality scores pl's made points inside the opponent's home board,
// weighted higher the closer to the opponent's bear-off edge, plus a
// per-checker bonus.
func anchorQuality(pos board.Position, pl board.Player) float64 {
	opp := pl.Opponent()
	lo, hi := board.HomeRange(opp)
	score := 0.0
	for pt := lo; pt <= hi; pt++ {
		pip := pos.Points[pt]
		if pip.Owner != pl || pip.Count < 2 {
			continue
		}
		score += float64(7 - board.Distance(opp, pt))
		score += 0.5 * float64(pip.Count)
	}
	return score
}

// blotExposure totals a penalty over pl's single-checker points. A blot an
// opponent checker can reach within one die (pip distance 1..6, counting
// the opponent's bar as a source) is vulnerable; vulnerable blots deep in
// pl's own home are worst, safe blots cost a token amount.
func blotExposure(pos board.Position, pl board.Player) float64 {
	opp := pl.Opponent()
	exposure := 0.0
	for pt := 1; pt <= board.NumPoints; pt++ {
		if pos.Points[pt].Owner != pl || pos.Points[pt].Count != 1 {
			continue
		}
		switch {
		case !reachable(pos, opp, pt):
			exposure += 0.3
		case board.InHome(pl, pt):
			exposure += 3.0
		default:
			exposure += 1.5
		}
	}
	return exposure
}

// reachable reports whether any of attacker's checkers sits a single die
// away from pt in its direction of travel. The bar counts as a source at
// the attacker's entry edge.
func reachable(pos board.Position, attacker board.Player, pt int) bool {
	for die := 1; die <= 6; die++ {
		var src int
		if attacker == board.PlayerA {
			src = pt - die
		} else {
			src = pt + die
		}
		if src >= 1 && src <= board.NumPoints &&
			pos.Points[src].Owner == attacker {
			return true
		}
	}
	if pos.BarCount(attacker) > 0 {
		// Entry squares are die pips from the attacker's edge.
		d := board.Distance(attacker, pt)
		if d >= board.BarDistance-6 {
			return true
		}
	}
	return false
}

// distribution rewards spreading checkers over many points and penalizes
// tall stacks.
func distribution(pos board.Position, pl board.Player) float64 {
	occupied := 0
	excess := 0
	for pt := 1; pt <= board.NumPoints; pt++ {
		pip := pos.Points[pt]
		if pip.Owner != pl {
			continue
		}
		occupied++
		if pip.Count > 4 {
			excess += int(pip.Count) - 4
		}
	}
	return float64(occupied) - 0.5*float64(excess)
}

// crunchPenalty models the risk of being forced to break structure during
// bear-off: high average stacking per occupied home point, any very tall
// stack, and heavy concentration on too few points. Computed everywhere
// but only fully biased once pl is entirely home.
func crunchPenalty(pos board.Position, pl board.Player) float64 {
	lo, hi := board.HomeRange(pl)
	occupied := 0
	checkers := 0
	tall := 0
	for pt := lo; pt <= hi; pt++ {
		pip := pos.Points[pt]
		if pip.Owner != pl {
			continue
		}
		occupied++
		checkers += int(pip.Count)
		if pip.Count > 5 {
			tall += int(pip.Count) - 5
		}
	}
	if occupied == 0 {
		return 0
	}
	avg := float64(checkers) / float64(occupied)
	raw := 0.0
	if avg > 2.5 {
		raw += 2.0 * (avg - 2.5)
	}
	raw += float64(tall)
	if checkers >= 10 && occupied <= 3 {
		raw += 4.0
	}
	if !pos.AllHome(pl) {
		raw *= 0.25
	}
	return raw
}

// keyPointBonus is the one-sided constant bonus for holding named
// strategic points, scaled per point by its priority. It is not mirrored
// for the opponent.
func keyPointBonus(pos board.Position, pl board.Player) float64 {
	bonus := 0.0
	for pt, pri := range keyPointPriority {
		if pl == board.PlayerB {
			pt = board.BarDistance - pt
		}
		pip := pos.Points[pt]
		if pip.Owner == pl && pip.Count >= 2 {
			bonus += pri
		}
	}
	return bonus * keyPointWeight
}

// NoContactAhead reports whether no opposing checker can ever again block
// or hit pl: every opponent checker is behind all of pl's checkers and the
// opponent has none on the bar.
func NoContactAhead(pos board.Position, pl board.Player) bool {
	opp := pl.Opponent()
	if pos.BarCount(opp) > 0 {
		return false
	}
	ownBack := pos.Backmost(pl)
	oppFront := pos.Backmost(opp)
	if ownBack == 0 || oppFront == 0 {
		return true
	}
	if pl == board.PlayerA {
		return oppFront < ownBack
	}
	return oppFront > ownBack
}

// homeRushBonus encourages racing home once contact is broken, scaling
// with checkers already home.
func homeRushBonus(pos board.Position, pl board.Player) float64 {
	if !NoContactAhead(pos, pl) {
		return 0
	}
	return homeRushWeight * float64(pos.HomeCount(pl))
}
