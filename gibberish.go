package gibberish

import (
	"github.com/troyfeng116/gibberish-scorer/corpus"
	"github.com/troyfeng116/gibberish-scorer/ngram"
	"github.com/troyfeng116/gibberish-scorer/snapshot"
)

// Scorer is the single-object facade over one n-gram model: training,
// scoring, calibration, classification and word analysis behind one handle.
//
// Like the model it wraps, a Scorer is not safe for concurrent use while
// training; serialize access externally if needed.
type Scorer struct {
	model *ngram.Model
}

// NewScorer builds a scorer of the given order with explicit options.
// Without WithCorpus/WithSamples the scorer starts untrained: every score
// is 0 and nothing classifies as gibberish until Train and Recalibrate run.
func NewScorer(order ngram.Order, opts ...ngram.Option) (*Scorer, error) {
	m, err := ngram.New(order, opts...)
	if err != nil {
		return nil, err
	}

	return &Scorer{model: m}, nil
}

// NewDefaultScorer builds a ready-to-use scorer: trained on the embedded
// English corpus and calibrated against the embedded good/bad sample sets.
func NewDefaultScorer(order ngram.Order) (*Scorer, error) {
	return NewScorer(order,
		ngram.WithCorpus(corpus.English()),
		ngram.WithSamples(corpus.GoodSamples(), corpus.BadSamples()),
	)
}

// FromSnapshot restores a scorer from a model snapshot file, skipping
// training entirely.
func FromSnapshot(path string) (*Scorer, error) {
	m, err := snapshot.Load(path)
	if err != nil {
		return nil, err
	}

	return &Scorer{model: m}, nil
}

// Save persists the scorer's model to a snapshot file.
func (s *Scorer) Save(path string) error {
	return snapshot.Save(path, s.model)
}

// TrainWithText accumulates text onto the model and recalibrates the
// cutoffs against the saved sample sets.
func (s *Scorer) TrainWithText(text string) {
	s.model.Train(text)
}

// Score returns the mean transition probability of text, in [0,1].
func (s *Scorer) Score(text string) float64 {
	return s.model.Score(text)
}

// CutoffScores returns the current calibrated cutoff triple.
func (s *Scorer) CutoffScores() ngram.CutoffScore {
	return s.model.CutoffScores()
}

// Recalibrate re-derives the cutoff triple from the given sample sets and
// saves them for automatic recalibration on later training.
func (s *Scorer) Recalibrate(good, bad []string) (ngram.CutoffScore, error) {
	return s.model.Recalibrate(good, bad)
}

// IsGibberish classifies text at the given strictness.
func (s *Scorer) IsGibberish(text string, strictness ngram.Strictness) bool {
	return s.model.IsGibberish(text, strictness)
}

// WordAnalysis scores text word by word, flagging gibberish tokens at the
// given strictness.
func (s *Scorer) WordAnalysis(text string, strictness ngram.Strictness) []ngram.WordScore {
	return s.model.WordAnalysis(text, strictness)
}

// Model exposes the underlying n-gram model for advanced callers (state
// export, direct snapshot writing).
func (s *Scorer) Model() *ngram.Model { return s.model }
