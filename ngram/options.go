// Functional configuration for model construction.
//
// Defaults (single source of truth):
//   - alphabet: alphabet.Default(), lowercase a–z plus space
//   - ignore case: true (input is case-folded before indexing)
//   - no corpus, no samples: a fresh model scores everything 0 until trained
//
// Options are applied once in New; the resulting scoring context (alphabet
// and ignore-case flag) is frozen for the lifetime of the model. Training
// mutates counts only, never the alphabet.
package ngram

import "github.com/troyfeng116/gibberish-scorer/alphabet"

// DefaultIgnoreCase is the default case handling: fold before indexing.
const DefaultIgnoreCase = true

// Option configures model construction.
type Option func(*config)

type config struct {
	alpha      alphabet.Alphabet
	alphaSet   bool
	ignoreCase bool
	corpus     string
	good, bad  []string
}

func defaultConfig() config {
	return config{ignoreCase: DefaultIgnoreCase}
}

// WithAlphabet replaces the default alphabet. The alphabet is frozen at
// construction; retraining never alters it.
func WithAlphabet(a alphabet.Alphabet) Option {
	return func(c *config) {
		c.alpha = a
		c.alphaSet = true
	}
}

// WithCaseSensitive disables case folding. Unless WithAlphabet overrides it,
// the default alphabet is extended with uppercase letters so that both cases
// index distinct codes.
func WithCaseSensitive() Option {
	return func(c *config) { c.ignoreCase = false }
}

// WithCorpus trains the model on text during construction.
func WithCorpus(text string) Option {
	return func(c *config) { c.corpus = text }
}

// WithSamples supplies labeled calibration sets. They are scored once at
// construction (after any corpus training) and saved: every later Train call
// recalibrates against them so the cutoffs track the learned distribution.
func WithSamples(good, bad []string) Option {
	return func(c *config) {
		c.good = good
		c.bad = bad
	}
}
