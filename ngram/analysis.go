package ngram

import "github.com/troyfeng116/gibberish-scorer/textutil"

// WordAnalysis tokenizes free text into words and scores each token
// independently, flagging the ones that classify as gibberish at the given
// strictness. Tokens are produced by textutil.Words, so punctuation and
// whitespace boundaries are already stripped before scoring.
//
// Word tokens are short, so individual scores are noisier than whole-text
// scores; prefer Score/IsGibberish on the full text when a single verdict
// is enough.
func (m *Model) WordAnalysis(text string, s Strictness) []WordScore {
	words := textutil.Words(text)
	if len(words) == 0 {
		return nil
	}

	cut := s.Cutoff(m.cutoffs)
	out := make([]WordScore, 0, len(words))
	for _, w := range words {
		sc := m.Score(w)
		out = append(out, WordScore{
			Word:      w,
			Score:     sc,
			Gibberish: sc < cut,
		})
	}

	return out
}
