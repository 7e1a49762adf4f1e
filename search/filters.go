// Package search selects the best full move sequence for a turn. It runs a
// single-shot pipeline: generate, order by shallow evaluation, apply
// strategic filters, deepen the survivors, select.
package search

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/move"
)

const (
	// Stack caps: the two home points nearest the bear-off edge are capped
	// always; every point is capped at a higher limit once home-bound.
	maxDeepStack      = 5
	maxHomeboundStack = 7
	// Once more than this many home points are made, sequences should
	// keep using checkers from outside the home board.
	madeHomeMobilityThreshold = 3
)

// candidate pairs a generated sequence with the position it produces and
// the scores attached to it along the pipeline.
type candidate struct {
	seq     move.Sequence
	result  board.Position
	shallow float64
	bonus   float64
	value   float64
}

// sequenceFilter drops candidates violating a hand-authored constraint.
// Filters are advisory: if one would eliminate every candidate it is
// waived for the turn.
type sequenceFilter struct {
	name string
	keep func(pos board.Position, c *candidate) bool
}

var sequenceFilters = []sequenceFilter{
	{name: "no-blot-in-opponent-home", keep: keepNoBlotInOpponentHome},
	{name: "stack-caps", keep: keepStackCaps},
	{name: "kept-mobility", keep: keepMobility},
}

// applyFilters runs every filter in order with waive-if-empty semantics.
func applyFilters(pos board.Position, cands []*candidate) []*candidate {
	for _, f := range sequenceFilters {
		kept := lo.Filter(cands, func(c *candidate, _ int) bool {
			return f.keep(pos, c)
		})
		if len(kept) == 0 {
			log.Debug().Str("filter", f.name).Msg("filter-waived")
			continue
		}
		if len(kept) < len(cands) {
			log.Debug().Str("filter", f.name).
				Int("dropped", len(cands)-len(kept)).Msg("filter-applied")
		}
		cands = kept
	}
	return cands
}

// keepNoBlotInOpponentHome rejects sequences that leave a lone mover
// checker inside the opponent's home board.
func keepNoBlotInOpponentHome(pos board.Position, c *candidate) bool {
	mover := pos.Mover
	lo_, hi := board.HomeRange(mover.Opponent())
	for pt := lo_; pt <= hi; pt++ {
		pip := c.result.Points[pt]
		if pip.Owner == mover && pip.Count == 1 {
			return false
		}
	}
	return true
}

// keepStackCaps rejects over-stacked results: the two deepest home points
// are capped everywhere, and once the mover is fully home every point is
// capped at a higher limit.
func keepStackCaps(pos board.Position, c *candidate) bool {
	mover := pos.Mover
	homebound := c.result.AllHome(mover)
	for pt := 1; pt <= board.NumPoints; pt++ {
		pip := c.result.Points[pt]
		if pip.Owner != mover {
			continue
		}
		if board.InHome(mover, pt) && board.Distance(mover, pt) <= 2 &&
			int(pip.Count) > maxDeepStack {
			return false
		}
		if homebound && int(pip.Count) > maxHomeboundStack {
			return false
		}
	}
	return true
}

// keepMobility asks sequences to use at least one checker from outside the
// home board once enough home points are already made, to keep builders
// flowing instead of crunching.
func keepMobility(pos board.Position, c *candidate) bool {
	mover := pos.Mover
	if madeHomePoints(pos, mover) <= madeHomeMobilityThreshold {
		return true
	}
	for _, m := range c.seq {
		if m.IsBarEntry() || !board.InHome(mover, int(m.From)) {
			return true
		}
	}
	return len(c.seq) == 0
}

func madeHomePoints(pos board.Position, pl board.Player) int {
	lo_, hi := board.HomeRange(pl)
	n := 0
	for pt := lo_; pt <= hi; pt++ {
		if pos.Points[pt].Owner == pl && pos.Points[pt].Count >= 2 {
			n++
		}
	}
	return n
}
