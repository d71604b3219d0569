// Package gibberish scores arbitrary text for "gibberishness" by modeling
// English as a Markov process over character bigrams or trigrams.
//
// 🚀 What is gibberish-scorer?
//
//	A small, pure-Go library that answers one question: does this string
//	look like language, or like someone fell on a keyboard? It brings
//	together:
//		• Alphabet indexing: dense codes over a fixed rune set
//		• N-gram engines: bigram and trigram transition-count matrices
//		• Scoring: bounded mean transition probability in [0,1]
//		• Calibration: three decision thresholds (strict/avg/loose) derived
//		  from labeled good/bad samples
//		• Word analysis: per-token verdicts over free text
//		• Snapshots: msgpack persistence of trained models
//
// ✨ Why choose it?
//
//   - Defined results everywhere – unknown characters, empty input and
//     unobserved contexts all degrade to numbers, never to errors
//   - Bounded scores – mean probability, not log-likelihood; no underflow,
//     no unbounded magnitudes
//   - Batteries included – an embedded English corpus and sample sets build
//     a working scorer in one call
//
// Everything is organized under five subpackages plus this facade:
//
//	alphabet/ - rune → dense code indexing
//	ngram/    - count matrices, training, scoring, calibration (the core)
//	textutil/ - case folding and word tokenization
//	corpus/   - embedded default corpus and calibration samples
//	snapshot/ - msgpack model persistence
//
// Quick example:
//
//	s, err := gibberish.NewDefaultScorer(ngram.Bigram)
//	if err != nil { ... }
//	s.IsGibberish("the quick brown fox", ngram.StrictnessAvg) // false
//	s.IsGibberish("wkjre qoiuv zxnm", ngram.StrictnessAvg)    // true
//
//	go get github.com/troyfeng116/gibberish-scorer
package gibberish
