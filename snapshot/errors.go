package snapshot

import "errors"

var (
	// ErrSchema indicates a payload written by an incompatible snapshot
	// version.
	ErrSchema = errors.New("snapshot: unsupported schema version")

	// ErrCorrupt indicates a payload that decodes but does not describe a
	// valid model.
	ErrCorrupt = errors.New("snapshot: corrupt payload")
)
