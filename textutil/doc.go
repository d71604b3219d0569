// Package textutil holds the pure text-preparation helpers consumed by the
// n-gram core and the facade: Unicode case folding for ignore-case models
// and word tokenization for word-by-word analysis.
//
// Both helpers are stateless pure functions; they never fail and never
// allocate shared state, so they are safe for concurrent use.
package textutil
