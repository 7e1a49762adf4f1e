package search

import (
	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/equity"
	"github.com/bgkit/gammon/move"
)

const (
	escapeBonus        = 3.0
	homeRunPipBonus    = 0.5
	bearOffBonus       = 8.0
	attackingHitBonus  = 10.0
	blitzHitBonus      = 6.0
	blitzHomeBonus     = 4.0
	primingLengthBonus = 5.0
	primingRunBonus    = 2.0
	fullPrimeBonus     = 25.0
	fullPrimeLength    = 6
)

// bonuses computes the additive ordering/selection bonus for a sequence:
// hand-authored play-style rewards folded into the candidate's score
// alongside the raw evaluation.
func bonuses(pos board.Position, seq move.Sequence, result board.Position, pov board.Player) float64 {
	opp := pov.Opponent()
	phase := equity.DetectPhase(pos, pov)
	noContact := equity.NoContactAhead(pos, pov)
	hits := 0
	attackingHits := 0

	total := 0.0
	cur := pos
	for _, m := range seq {
		// Escaping the farthest quadrant.
		if !m.IsBarEntry() && board.Distance(pov, int(m.From)) >= 19 {
			total += escapeBonus
		}
		// Bringing a checker home once nothing contests the approach.
		if noContact && !m.IsBearOff() && board.InHome(pov, int(m.To)) &&
			(m.IsBarEntry() || !board.InHome(pov, int(m.From))) {
			total += homeRunPipBonus * float64(m.Die)
		}
		if m.IsBearOff() {
			total += bearOffBonus
		}
		if !m.IsBearOff() {
			target := cur.Points[int(m.To)]
			if target.Owner == opp && target.Count == 1 {
				hits++
				if !board.InHome(opp, int(m.To)) {
					attackingHits++
				}
			}
		}
		cur = cur.Apply(m)
	}

	total += attackingHitBonus * float64(attackingHits)

	switch phase {
	case equity.PhaseBlitz:
		total += blitzHitBonus * float64(hits)
		if gained := madeHomePoints(result, pov) - madeHomePoints(pos, pov); gained > 0 {
			total += blitzHomeBonus * float64(gained)
		}
	case equity.PhasePriming:
		beforeLongest, beforeRuns := equity.PrimeStats(pos, pov)
		afterLongest, afterRuns := equity.PrimeStats(result, pov)
		if afterLongest > beforeLongest {
			total += primingLengthBonus * float64(afterLongest-beforeLongest)
		}
		if afterRuns > beforeRuns {
			total += primingRunBonus * float64(afterRuns-beforeRuns)
		}
		if afterLongest >= fullPrimeLength && beforeLongest < fullPrimeLength {
			total += fullPrimeBonus
		}
	}
	return total
}
