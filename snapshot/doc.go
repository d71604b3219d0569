// Package snapshot persists and restores trained models.
//
// The wire format is msgpack over ngram.State: a schema version, the frozen
// scoring context (order, alphabet runes, ignore-case flag), the dense count
// and total arrays, the three-field cutoff record and the saved calibration
// samples. The payload mirrors the in-memory layout exactly, so loading is a
// decode plus one dimension check, with no transformation pass.
//
// Save writes through a temp file and renames into place, so a crashed
// writer never leaves a truncated snapshot behind.
package snapshot
