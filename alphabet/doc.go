// Package alphabet maps a fixed inclusion set of runes to dense zero-based
// codes, the index space every n-gram count table is keyed by.
//
// An Alphabet is built once, from the first-occurrence order of its inclusion
// string, and is immutable afterwards. Codes are stable for the lifetime of
// the value but are NOT portable across Alphabets built from different
// inclusion sets.
//
// Lookups for runes outside the set return -1 rather than an error: callers
// (the n-gram trainer and scorer) treat an unmapped rune as a signal to skip
// the surrounding window, never as a failure.
//
// Complexity: construction O(len(include)); Index O(1); Codes O(len(text)).
package alphabet
