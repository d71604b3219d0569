// Package ngram models English as a Markov process over character bigrams
// or trigrams and scores arbitrary text by its average transition
// probability.
//
// 🚀 How does it work?
//
//	A Model owns a dense transition-count table keyed by a fixed alphabet.
//	Training slides a window over a corpus and increments one cell per
//	observed character pair (or triple). Scoring slides the same window over
//	a query string and averages count/contextTotal per window, yielding a
//	bounded score in [0,1]. Calibration scores labeled good/bad samples and
//	derives three decision thresholds; classification compares a score
//	against the threshold picked by a Strictness level.
//
// ✨ Key features:
//   - two engines behind one type: Bigram (2-D table) and Trigram
//     (layered 3-D table), sharing the sliding-window core
//   - additive, incremental training; probabilities normalized lazily at
//     scoring time
//   - unmapped runes skip their window instead of failing; malformed input
//     always degrades to a defined numeric result
//   - empty-sample calibration keeps the previous cutoffs instead of
//     dividing by zero
//
// ⚙️ Usage:
//
//	m, err := ngram.New(ngram.Bigram,
//	  ngram.WithCorpus(trainingText),
//	  ngram.WithSamples(goodSamples, badSamples),
//	)
//	if err != nil { ... }
//
//	score := m.Score("the quick fox")          // in [0,1]
//	bad := m.IsGibberish("zqxwv kjhfd", ngram.StrictnessAvg)
//
// Design note: the score is the arithmetic mean of per-window transition
// probabilities, not a joint log-likelihood. The mean keeps scores in a
// bounded, human-interpretable range (≈1/alphaSize for bigrams under a
// uniform null) and cannot underflow on long inputs.
//
// Concurrency: a Model is single-threaded. Train and Recalibrate mutate the
// count table in place; callers needing concurrent training/scoring must
// serialize access externally.
//
// Complexity: Train/Score O(len(text)); Recalibrate O(total sample length);
// memory O(alphaSize²) for Bigram, O(alphaSize³) for Trigram.
package ngram
