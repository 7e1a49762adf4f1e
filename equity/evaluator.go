package equity

import (
	"github.com/bgkit/gammon/board"
	"github.com/bgkit/gammon/config"
)

// WinScore is the terminal score for a side that has borne off all 15
// checkers. Feature sums stay orders of magnitude below it.
const WinScore = 1_000_000.0

// Evaluator is the phase-aware position scorer. It is a pure function of
// the position and the point of view; the cache is an optimization only
// and never changes a returned value.
type Evaluator struct {
	cache *Cache
}

// NewEvaluator builds an evaluator with a cache sized per cfg. A nil cfg
// uses defaults.
func NewEvaluator(cfg *config.Config) *Evaluator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Evaluator{cache: NewCache(cfg.EvalCacheCapacity)}
}

// SetCacheOptim toggles memoization. Disabling it must never change a
// computed score, only the cost of computing it.
func (e *Evaluator) SetCacheOptim(on bool) {
	if on && e.cache == nil {
		e.cache = NewCache(0)
	} else if !on {
		e.cache = nil
	}
}

// Evaluate scores the position from pov's perspective: higher is better
// for pov. The score is phase-weighted (own - opponent) feature sums plus
// the one-sided key-point and home-rush bonuses.
func (e *Evaluator) Evaluate(pos board.Position, pov board.Player) float64 {
	opp := pov.Opponent()

	// Terminal shortcut: a full tray decides the position outright.
	if pos.OffCount(pov) == board.NumCheckers {
		return WinScore
	}
	if pos.OffCount(opp) == board.NumCheckers {
		return -WinScore
	}

	var key uint64
	if e.cache != nil {
		key = cacheKey(pos, pov)
		if score, ok := e.cache.lookup(key); ok {
			return score
		}
	}

	score := e.compute(pos, pov)

	if e.cache != nil {
		e.cache.store(key, score)
	}
	return score
}

func (e *Evaluator) compute(pos board.Position, pov board.Player) float64 {
	opp := pov.Opponent()
	phase := DetectPhase(pos, pov)
	w := phaseWeights[phase]
	own := extract(pos, pov)
	their := extract(pos, opp)

	score := w.Pip*(own.Pip-their.Pip) +
		w.Off*(own.Off-their.Off) +
		w.Bar*(own.Bar-their.Bar) +
		w.Home*(own.Home-their.Home) +
		w.Blot*(own.Blot-their.Blot) +
		w.Prime*(own.Prime-their.Prime) +
		w.Anchor*(own.Anchor-their.Anchor) +
		w.Distribution*(own.Distribution-their.Distribution) +
		w.Crunch*(own.Crunch-their.Crunch)

	score += keyPointBonus(pos, pov)
	score += homeRushBonus(pos, pov)
	return score
}

// Term is one line of an evaluation breakdown.
type Term struct {
	Name   string
	Own    float64
	Opp    float64
	Weight float64
}

func (t Term) Value() float64 {
	return t.Weight * (t.Own - t.Opp)
}

// Breakdown is a per-feature view of an evaluation, for the analyzer
// shell.
type Breakdown struct {
	Phase    Phase
	Terms    []Term
	KeyPoint float64
	HomeRush float64
	Total    float64
}

// Explain recomputes the evaluation term by term. It bypasses the cache.
func (e *Evaluator) Explain(pos board.Position, pov board.Player) Breakdown {
	opp := pov.Opponent()
	phase := DetectPhase(pos, pov)
	w := phaseWeights[phase]
	own := extract(pos, pov)
	their := extract(pos, opp)

	bd := Breakdown{
		Phase: phase,
		Terms: []Term{
			{"pip", own.Pip, their.Pip, w.Pip},
			{"off", own.Off, their.Off, w.Off},
			{"bar", own.Bar, their.Bar, w.Bar},
			{"home", own.Home, their.Home, w.Home},
			{"blot", own.Blot, their.Blot, w.Blot},
			{"prime", own.Prime, their.Prime, w.Prime},
			{"anchor", own.Anchor, their.Anchor, w.Anchor},
			{"distribution", own.Distribution, their.Distribution, w.Distribution},
			{"crunch", own.Crunch, their.Crunch, w.Crunch},
		},
		KeyPoint: keyPointBonus(pos, pov),
		HomeRush: homeRushBonus(pos, pov),
	}
	for _, t := range bd.Terms {
		bd.Total += t.Value()
	}
	bd.Total += bd.KeyPoint + bd.HomeRush
	return bd
}
