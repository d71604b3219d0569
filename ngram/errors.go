package ngram

import "errors"

var (
	// ErrBadOrder indicates an Order other than Bigram or Trigram.
	ErrBadOrder = errors.New("ngram: order must be Bigram or Trigram")

	// ErrNoSamples indicates calibration was invoked with an empty good or
	// bad sample set; the previous cutoffs are retained.
	ErrNoSamples = errors.New("ngram: calibration requires non-empty good and bad sample sets")

	// ErrBadState indicates a restored State whose table dimensions do not
	// match its order and alphabet.
	ErrBadState = errors.New("ngram: state dimensions do not match order and alphabet")
)
