package gibberish_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gibberish "github.com/troyfeng116/gibberish-scorer"
	"github.com/troyfeng116/gibberish-scorer/ngram"
)

// TestNewDefaultScorer verifies the one-call construction path: trained,
// calibrated and classifying sensibly in both directions.
func TestNewDefaultScorer(t *testing.T) {
	for _, order := range []ngram.Order{ngram.Bigram, ngram.Trigram} {
		t.Run(order.String(), func(t *testing.T) {
			s, err := gibberish.NewDefaultScorer(order)
			require.NoError(t, err)

			c := s.CutoffScores()
			assert.Greater(t, c.Avg, 0.0, "default scorer must come calibrated")
			assert.LessOrEqual(t, c.Strict, c.Avg)
			assert.LessOrEqual(t, c.Avg, c.Loose)

			assert.False(t, s.IsGibberish("the train leaves at half past nine", ngram.StrictnessStrict))
			assert.True(t, s.IsGibberish("qpwoeiruty zxmncbv", ngram.StrictnessLoose))
			assert.Greater(t,
				s.Score("the quick fox jumps over the lazy dog"),
				s.Score("oqbwifsiehf osdfbw sjkdoo thehwei"))
		})
	}
}

// TestNewScorer_Untrained verifies the blank-slate path: zero scores, zero
// cutoffs, nothing flagged.
func TestNewScorer_Untrained(t *testing.T) {
	s, err := gibberish.NewScorer(ngram.Bigram)
	require.NoError(t, err)

	assert.Zero(t, s.Score("anything"))
	assert.Zero(t, s.CutoffScores())
	assert.False(t, s.IsGibberish("anything", ngram.StrictnessAvg), "0 < 0 is false")
}

// TestNewScorer_BadOrder verifies construction errors pass through.
func TestNewScorer_BadOrder(t *testing.T) {
	_, err := gibberish.NewScorer(ngram.Order(9))
	assert.ErrorIs(t, err, ngram.ErrBadOrder)
}

// TestScorer_TrainAndRecalibrate verifies the facade forwards training and
// calibration to the model.
func TestScorer_TrainAndRecalibrate(t *testing.T) {
	s, err := gibberish.NewScorer(ngram.Bigram)
	require.NoError(t, err)

	s.TrainWithText("the quick brown fox jumps over the lazy dog")
	assert.Greater(t, s.Score("the fox"), 0.0)

	c, err := s.Recalibrate([]string{"the fox"}, []string{"zzqqxx"})
	require.NoError(t, err)
	assert.Equal(t, c, s.CutoffScores())

	_, err = s.Recalibrate(nil, nil)
	assert.ErrorIs(t, err, ngram.ErrNoSamples)
}

// TestScorer_WordAnalysis verifies the word-level forwarding path.
func TestScorer_WordAnalysis(t *testing.T) {
	s, err := gibberish.NewDefaultScorer(ngram.Bigram)
	require.NoError(t, err)

	out := s.WordAnalysis("dinner xqzkjvvw tonight", ngram.StrictnessLoose)
	require.Len(t, out, 3)
	assert.True(t, out[1].Gibberish)
	assert.Greater(t, out[0].Score, out[1].Score, "a common word must outscore the mash")
}

// TestScorer_SnapshotRoundTrip verifies Save/FromSnapshot preserve behavior.
func TestScorer_SnapshotRoundTrip(t *testing.T) {
	s, err := gibberish.NewDefaultScorer(ngram.Bigram)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "english.snap")
	require.NoError(t, s.Save(path))

	restored, err := gibberish.FromSnapshot(path)
	require.NoError(t, err)

	assert.Equal(t, s.CutoffScores(), restored.CutoffScores())
	for _, text := range []string{"hello world", "zzqx wvbk", ""} {
		assert.Equal(t, s.Score(text), restored.Score(text))
	}
}
