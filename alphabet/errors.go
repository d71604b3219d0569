package alphabet

import "errors"

var (
	// ErrEmptyAlphabet indicates the inclusion string contained no runes.
	ErrEmptyAlphabet = errors.New("alphabet: inclusion set must contain at least one rune")
)
