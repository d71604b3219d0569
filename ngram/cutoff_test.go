package ngram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/troyfeng116/gibberish-scorer/corpus"
	"github.com/troyfeng116/gibberish-scorer/ngram"
)

// scoringFixture builds a bigram model with hand-set counts chosen so that
// score("ab") = 1/20 = 0.05 and score("ba") = 1/100 = 0.01.
func scoringFixture(t *testing.T) *ngram.Model {
	t.Helper()

	counts := make([]uint64, 9)
	counts[0*3+0] = 19 // a→a
	counts[0*3+1] = 1  // a→b
	counts[1*3+0] = 1  // b→a
	counts[1*3+1] = 99 // b→b

	m, err := ngram.FromState(ngram.State{
		Order:    ngram.Bigram,
		Alphabet: "ab ",
		Counts:   counts,
		Totals:   []uint64{20, 100, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 0.05, m.Score("ab"))
	require.Equal(t, 0.01, m.Score("ba"))

	return m
}

// TestRecalibrate_ExactTriple reproduces the calibration arithmetic:
// goodAvg 0.05 and badAvg 0.01 give avg 0.03 with strict below and loose
// above.
func TestRecalibrate_ExactTriple(t *testing.T) {
	m := scoringFixture(t)

	c, err := m.Recalibrate([]string{"ab"}, []string{"ba"})
	require.NoError(t, err)

	assert.InDelta(t, 0.03, c.Avg, 1e-15, "midpoint of the sample averages")
	assert.InDelta(t, 0.02, c.Strict, 1e-15, "halfway from avg toward badAvg")
	assert.InDelta(t, 0.04, c.Loose, 1e-15, "halfway from avg toward goodAvg")
	assert.Less(t, c.Strict, c.Avg)
	assert.Less(t, c.Avg, c.Loose)
	assert.Equal(t, c, m.CutoffScores())
}

// TestRecalibrate_Idempotent verifies same samples + same table produce
// identical cutoffs on every run.
func TestRecalibrate_Idempotent(t *testing.T) {
	m := scoringFixture(t)
	good := []string{"ab", "aba"}
	bad := []string{"ba", "aa"}

	first, err := m.Recalibrate(good, bad)
	require.NoError(t, err)
	second, err := m.Recalibrate(good, bad)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestRecalibrate_EmptySets verifies the fallback: an empty set keeps the
// previous cutoffs and reports ErrNoSamples.
func TestRecalibrate_EmptySets(t *testing.T) {
	m := scoringFixture(t)

	prev, err := m.Recalibrate([]string{"ab"}, []string{"ba"})
	require.NoError(t, err)

	for name, sets := range map[string][2][]string{
		"empty good": {{}, {"ba"}},
		"empty bad":  {{"ab"}, {}},
		"both empty": {{}, {}},
		"nil good":   {nil, {"ba"}},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := m.Recalibrate(sets[0], sets[1])
			assert.ErrorIs(t, err, ngram.ErrNoSamples)
			assert.Equal(t, prev, got, "previous cutoffs must be retained")
			assert.Equal(t, prev, m.CutoffScores())
		})
	}
}

// TestRecalibrate_InvertedSamples documents the unguarded degenerate case:
// bad samples outscoring good ones reverse the triple.
func TestRecalibrate_InvertedSamples(t *testing.T) {
	m := scoringFixture(t)

	// Swap the labels: "good" now scores 0.01, "bad" scores 0.05.
	c, err := m.Recalibrate([]string{"ba"}, []string{"ab"})
	require.NoError(t, err)

	assert.InDelta(t, 0.03, c.Avg, 1e-15)
	assert.Greater(t, c.Strict, c.Avg, "inverted input reverses the triple")
	assert.Less(t, c.Loose, c.Avg)
}

// TestIsGibberish_StrictComparison verifies the strictly-less-than rule: a
// score exactly equal to its cutoff is legitimate text.
func TestIsGibberish_StrictComparison(t *testing.T) {
	t.Run("untrained model", func(t *testing.T) {
		m, err := ngram.New(ngram.Bigram)
		require.NoError(t, err)

		// Score 0 against all-zero cutoffs: 0 < 0 is false.
		for _, s := range []ngram.Strictness{ngram.StrictnessStrict, ngram.StrictnessAvg, ngram.StrictnessLoose} {
			assert.False(t, m.IsGibberish("anything at all", s))
		}
	})

	t.Run("score equals cutoff", func(t *testing.T) {
		st := scoringFixture(t).State()
		st.Cutoffs = ngram.CutoffScore{Strict: 0.05, Avg: 0.05, Loose: 0.05}
		m, err := ngram.FromState(st)
		require.NoError(t, err)

		// score("ab") == 0.05 == every cutoff.
		for _, s := range []ngram.Strictness{ngram.StrictnessStrict, ngram.StrictnessAvg, ngram.StrictnessLoose} {
			assert.False(t, m.IsGibberish("ab", s), "boundary score must classify as legitimate")
		}
		assert.True(t, m.IsGibberish("ba", ngram.StrictnessAvg), "0.01 < 0.05")
	})
}

// TestIsGibberish_ThresholdMonotonicity verifies classification agrees with
// the cutoff ordering Strict ≤ Avg ≤ Loose: text clean at the Loose (highest)
// threshold is clean at every threshold, and text flagged at the Strict
// (lowest) threshold is flagged at every threshold.
func TestIsGibberish_ThresholdMonotonicity(t *testing.T) {
	m, err := ngram.New(ngram.Bigram,
		ngram.WithCorpus(corpus.English()),
		ngram.WithSamples(corpus.GoodSamples(), corpus.BadSamples()),
	)
	require.NoError(t, err)

	c := m.CutoffScores()
	require.LessOrEqual(t, c.Strict, c.Avg)
	require.LessOrEqual(t, c.Avg, c.Loose)

	texts := append(corpus.GoodSamples(), corpus.BadSamples()...)
	texts = append(texts, "half decent wqkjx text", "")
	for _, text := range texts {
		if !m.IsGibberish(text, ngram.StrictnessLoose) {
			assert.False(t, m.IsGibberish(text, ngram.StrictnessAvg), "clean at loose ⇒ clean at avg: %q", text)
			assert.False(t, m.IsGibberish(text, ngram.StrictnessStrict), "clean at loose ⇒ clean at strict: %q", text)
		}
		if m.IsGibberish(text, ngram.StrictnessStrict) {
			assert.True(t, m.IsGibberish(text, ngram.StrictnessAvg), "flagged at strict ⇒ flagged at avg: %q", text)
			assert.True(t, m.IsGibberish(text, ngram.StrictnessLoose), "flagged at strict ⇒ flagged at loose: %q", text)
		}
	}
}
