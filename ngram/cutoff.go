package ngram

// Recalibrate scores every sample of both sets and derives the cutoff
// triple:
//
//	avg    = (goodAvg + badAvg) / 2
//	strict = (avg + badAvg) / 2
//	loose  = (avg + goodAvg) / 2
//
// The sample sets are saved; later Train calls recalibrate against them
// automatically. Recalibration with unchanged sets and table is idempotent.
//
// If either set is empty the previous cutoffs are retained and ErrNoSamples
// is returned; an empty-set average must never divide by zero.
//
// Known degenerate case, reproduced unguarded: when the bad samples outscore
// the good ones (goodAvg < badAvg) the triple comes out reversed,
// Loose ≤ Avg ≤ Strict. Callers own the quality of their samples.
func (m *Model) Recalibrate(good, bad []string) (CutoffScore, error) {
	if len(good) == 0 || len(bad) == 0 {
		return m.cutoffs, ErrNoSamples
	}

	m.good = cloneStrings(good)
	m.bad = cloneStrings(bad)

	goodAvg := m.meanScore(good)
	badAvg := m.meanScore(bad)
	avg := (goodAvg + badAvg) / 2

	m.cutoffs = CutoffScore{
		Strict: (avg + badAvg) / 2,
		Avg:    avg,
		Loose:  (avg + goodAvg) / 2,
	}

	return m.cutoffs, nil
}

// CutoffScores returns the current cutoff triple. A never-calibrated model
// reports all-zero cutoffs, under which nothing classifies as gibberish.
func (m *Model) CutoffScores() CutoffScore { return m.cutoffs }

// IsGibberish classifies text at the given strictness: true when the score
// is strictly below the selected cutoff. A score exactly equal to the
// cutoff is legitimate text.
func (m *Model) IsGibberish(text string, s Strictness) bool {
	return m.Score(text) < s.Cutoff(m.cutoffs)
}

func (m *Model) meanScore(samples []string) float64 {
	var sum float64
	for _, s := range samples {
		sum += m.Score(s)
	}

	return sum / float64(len(samples))
}
