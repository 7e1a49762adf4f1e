package equity

// Weights is the per-phase feature weight vector. Each feature is computed
// for both sides and combined as (own - opponent) * weight, so a negative
// weight marks a feature where more is worse.
type Weights struct {
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

// Hand-tuned weight tables. The race table is dominated by the pip count
// and bear-off progress; contact and priming lean on structure; the blitz
// table punishes bar checkers hard; the backgame table values anchors
// above nearly everything else.
var phaseWeights = map[Phase]Weights{
	PhaseRace: {
		Pip: -4.0, Off: 12.0, Bar: -30.0, Home: 1.0, Blot: -2.0,
		Prime: 0.5, Anchor: 0.0, Distribution: 1.5, Crunch: -3.0,
	},
	PhaseContact: {
		Pip: -2.0, Off: 8.0, Bar: -12.0, Home: 4.0, Blot: -5.0,
		Prime: 5.0, Anchor: 4.0, Distribution: 2.0, Crunch: -1.5,
	},
	PhasePriming: {
		Pip: -1.5, Off: 6.0, Bar: -10.0, Home: 4.5, Blot: -4.0,
		Prime: 8.0, Anchor: 3.5, Distribution: 2.5, Crunch: -1.5,
	},
	PhaseBlitz: {
		Pip: -1.0, Off: 8.0, Bar: -16.0, Home: 6.0, Blot: -3.0,
		Prime: 4.0, Anchor: 2.0, Distribution: 1.5, Crunch: -1.0,
	},
	PhaseBackgame: {
		Pip: -0.5, Off: 4.0, Bar: -6.0, Home: 3.0, Blot: -2.5,
		Prime: 4.5, Anchor: 8.0, Distribution: 1.5, Crunch: -2.0,
	},
}

// keyPointPriority maps named strategic points to a fixed priority, given
// in PlayerA's frame (home 19..24): the golden point 20, the bar point 18,
// the four point 21, and the advanced anchor on the opponent's golden
// point 5. PlayerB's key points mirror at 25-n.
var keyPointPriority = map[int]float64{20: 4.0, 18: 3.0, 21: 2.0, 5: 2.5}

// keyPointWeight scales the one-sided key-point bonus.
const keyPointWeight = 1.0

// homeRushWeight scales the per-checker bonus for racing home once no
// contact remains ahead.
const homeRushWeight = 2.0
