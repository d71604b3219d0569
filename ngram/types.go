package ngram

// Order is the transition arity of a model: how many consecutive characters
// form one window.
type Order int

const (
	// Bigram models transitions between adjacent character pairs.
	// Count table: alphaSize × alphaSize.
	Bigram Order = 2

	// Trigram models transitions over adjacent character triples.
	// Count table: alphaSize layers of alphaSize × alphaSize cells; each
	// layer carries a scalar total used as the normalization denominator.
	Trigram Order = 3
)

// String returns a human-readable engine name.
func (o Order) String() string {
	switch o {
	case Bigram:
		return "bigram"
	case Trigram:
		return "trigram"
	default:
		return "unknown"
	}
}

// CutoffScore is the calibrated decision triple. A text whose score falls
// strictly below a cutoff is classified gibberish at that level.
//
// Under normal calibration input (good samples scoring above bad samples)
// the triple is ordered Strict ≤ Avg ≤ Loose: Strict sits halfway between
// Avg and the bad-sample average, Loose halfway between Avg and the
// good-sample average. Inverted samples (goodAvg < badAvg) produce a
// reversed triple; see Model.Recalibrate.
type CutoffScore struct {
	Strict float64
	Avg    float64
	Loose  float64
}

// Strictness selects which calibrated cutoff gates classification.
type Strictness int

const (
	// StrictnessStrict gates on the Strict cutoff, the threshold nearest
	// the bad-sample average.
	StrictnessStrict Strictness = iota

	// StrictnessAvg gates on the midpoint cutoff. The default.
	StrictnessAvg

	// StrictnessLoose gates on the Loose cutoff, the threshold nearest the
	// good-sample average. It flags the most text.
	StrictnessLoose
)

// Cutoff returns the cutoff value s selects from c.
func (s Strictness) Cutoff(c CutoffScore) float64 {
	switch s {
	case StrictnessStrict:
		return c.Strict
	case StrictnessLoose:
		return c.Loose
	default:
		return c.Avg
	}
}

// String returns the level name.
func (s Strictness) String() string {
	switch s {
	case StrictnessStrict:
		return "strict"
	case StrictnessLoose:
		return "loose"
	default:
		return "avg"
	}
}

// WordScore is one entry of a word-by-word analysis: a token, its score and
// its verdict at the requested strictness.
type WordScore struct {
	Word      string
	Score     float64
	Gibberish bool
}
