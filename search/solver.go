package search

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/config"
	"github.com/bgkit/gammon/equity"
	"github.com/bgkit/gammon/move"
	"github.com/bgkit/gammon/movegen"
	"github.com/bgkit/gammon/openings"
)

const hugeScore = math.MaxFloat64

// continuationPool is the representative pool used below the root: the
// deep search models only the mover's own follow-up plies, with an average
// roll standing in for dice that are never actually rolled.
var continuationPool = board.Dice{3, 4}

// Solver runs the full per-turn pipeline and returns the best sequence.
// Each invocation is a single-shot synchronous computation; the evaluation
// cache is the only state carried between calls.
type Solver struct {
	cfg       *config.Config
	gen       *movegen.Generator
	evaluator *equity.Evaluator
	book      *openings.Book

	bookOptim       bool
	deepSearchOptim bool
	nodes           uint64
}

// NewSolver wires a solver. A nil cfg uses defaults; a nil book disables
// the opening-book override.
func NewSolver(cfg *config.Config, ev *equity.Evaluator, book *openings.Book) *Solver {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Solver{
		cfg:             cfg,
		gen:             movegen.NewGenerator(),
		evaluator:       ev,
		book:            book,
		bookOptim:       book != nil,
		deepSearchOptim: cfg.SearchDepth > 0,
	}
}

func (s *Solver) SetDeepSearchOptim(on bool) {
	s.deepSearchOptim = on
}

func (s *Solver) SetBookOptim(on bool) {
	s.bookOptim = on && s.book != nil
}

// Nodes returns how many deep-search nodes the solver has visited.
func (s *Solver) Nodes() uint64 {
	return s.nodes
}

// Solve returns the best full sequence for the snapshot and its dice pool,
// with the score it was selected on. The sequence is advisory: the caller
// replays it move by move through its own validated executor. A malformed
// snapshot or pool is a caller contract failure and comes back as an
// error.
func (s *Solver) Solve(ctx context.Context, pos board.Position, pool board.Dice) (float64, move.Sequence, error) {
	if err := pos.Validate(); err != nil {
		return 0, nil, err
	}
	if err := pool.Validate(); err != nil {
		return 0, nil, err
	}
	tstart := time.Now()
	pov := pos.Mover

	if s.bookOptim {
		if seq, ok := s.book.Lookup(pos, pool); ok {
			log.Debug().Str("seq", seq.String()).Msg("opening-book-hit")
			return 0, seq, nil
		}
	}

	// GENERATE
	seqs := s.gen.GenAll(pos, pool)
	if len(seqs) == 1 && len(seqs[0]) == 0 {
		log.Debug().Msg("forced-pass")
		return s.evaluator.Evaluate(pos, pov), move.Sequence{}, nil
	}

	// ORDER: shallow evaluation plus bonuses, descending; ties keep
	// generation order.
	cands := make([]*candidate, len(seqs))
	for i, seq := range seqs {
		c := &candidate{seq: seq, result: pos.ApplySequence(seq)}
		c.shallow = s.evaluator.Evaluate(c.result, pov)
		c.bonus = bonuses(pos, seq, c.result, pov)
		cands[i] = c
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].shallow+cands[i].bonus > cands[j].shallow+cands[j].bonus
	})
	generated := len(cands)
	if len(cands) > s.cfg.MaxCandidates {
		cands = cands[:s.cfg.MaxCandidates]
	}

	// FILTER
	cands = applyFilters(pos, cands)

	// SEARCH + SELECT. Skipping the deep search over the candidate-count
	// threshold is deliberate degradation to the shallow score, not a
	// failure.
	deep := s.deepSearchOptim && s.cfg.SearchDepth > 0 &&
		len(cands) < s.cfg.DeepSearchLimit
	var best *candidate
	for _, c := range cands {
		if err := ctx.Err(); err != nil {
			return 0, nil, err
		}
		score := c.shallow
		if deep {
			v, err := s.searchDeep(ctx, c.result, s.cfg.SearchDepth, -hugeScore, hugeScore, pov)
			if err != nil {
				return 0, nil, err
			}
			score = v
		}
		c.value = score + c.bonus
		if best == nil || c.value > best.value {
			best = c
		}
		if c.value > s.cfg.WinningScoreCutoff {
			// Clearly winning; no need to examine the rest.
			break
		}
	}

	log.Debug().
		Int("generated", generated).
		Int("survivors", len(cands)).
		Bool("deep", deep).
		Uint64("nodes", s.nodes).
		Float64("value", best.value).
		Str("seq", best.seq.String()).
		Float64("time-elapsed-sec", time.Since(tstart).Seconds()).
		Msg("solve-returning")
	return best.value, best.seq, nil
}

// searchDeep is the bounded-depth continuation search. The mover never
// alternates for real: each ply below the root re-plays the same side with
// the representative pool, so the value is the mover's best multi-ply
// consequence, not a two-player minimax over opponent rolls.
func (s *Solver) searchDeep(ctx context.Context, pos board.Position, depth int, alpha, beta float64, pov board.Player) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.nodes++
	if depth == 0 ||
		pos.OffCount(pov) == board.NumCheckers ||
		pos.OffCount(pov.Opponent()) == board.NumCheckers {
		return s.evaluator.Evaluate(pos, pov), nil
	}

	seqs := s.gen.GenAll(pos, continuationPool)
	results := make([]board.Position, len(seqs))
	values := make([]float64, len(seqs))
	for i, seq := range seqs {
		results[i] = pos.ApplySequence(seq)
		values[i] = s.evaluator.Evaluate(results[i], pov)
	}
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return values[order[i]] > values[order[j]]
	})
	if len(order) > s.cfg.DeepSearchLimit {
		order = order[:s.cfg.DeepSearchLimit]
	}

	best := -hugeScore
	for _, idx := range order {
		v, err := s.searchDeep(ctx, results[idx], depth-1, alpha, beta, pov)
		if err != nil {
			return 0, err
		}
		if v > best {
			best = v
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best, nil
}
