package movegen

import (
	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/move"
)

// Generator enumerates every maximal legal sequence for a snapshot and its
// dice pool. It is exhaustive by contract: capping work is the search
// controller's concern, not the generator's. The generator owns the
// returned slice until the next GenAll call.
type Generator struct {
	seqs []move.Sequence
	cur  move.Sequence
}

func NewGenerator() *Generator {
	return &Generator{cur: make(move.Sequence, 0, 4)}
}

// GenAll returns every maximal sequence: each assigns zero or more dice to
// legal moves such that no remaining die could be played from the
// resulting position. If no die is playable at all, the result is a single
// empty sequence (the forced pass). Duplicate sequences reachable via
// different exploration orders are not deduplicated here.
func (g *Generator) GenAll(pos board.Position, pool board.Dice) []move.Sequence {
	g.seqs = g.seqs[:0]
	g.cur = g.cur[:0]
	g.recurse(pos, pool)
	return g.seqs
}

func (g *Generator) recurse(pos board.Position, pool board.Dice) {
	played := false
	for _, die := range pool.Distinct() {
		for _, from := range g.sources(pos) {
			m, ok := LegalMove(pos, from, die)
			if !ok {
				continue
			}
			played = true
			g.cur = append(g.cur, m)
			g.recurse(pos.Apply(m), pool.Remove(die))
			g.cur = g.cur[:len(g.cur)-1]
		}
	}
	if !played {
		// Leaf: either the pool is exhausted or every remaining die is
		// dead. Unplayable dice are forfeited implicitly.
		g.seqs = append(g.seqs, g.cur.Copy())
	}
}

// sources lists the eligible source squares for the mover: the bar alone
// while any checker waits there, otherwise every mover-owned point.
func (g *Generator) sources(pos board.Position) []int8 {
	if pos.BarCount(pos.Mover) > 0 {
		return []int8{move.BarSource}
	}
	out := make([]int8, 0, board.NumPoints)
	for pt := 1; pt <= board.NumPoints; pt++ {
		if pos.Points[pt].Owner == pos.Mover {
			out = append(out, int8(pt))
		}
	}
	return out
}

// HasAnyMove reports whether at least one die in the pool has a legal
// placement. It short-circuits without building sequences.
func HasAnyMove(pos board.Position, pool board.Dice) bool {
	g := Generator{}
	for _, die := range pool.Distinct() {
		for _, from := range g.sources(pos) {
			if _, ok := LegalMove(pos, from, die); ok {
				return true
			}
		}
	}
	return false
}
