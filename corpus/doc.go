// Package corpus supplies the default training text and labeled calibration
// samples used to build a scorer without caller-provided data.
//
// The training text is a small embedded English corpus; the sample sets are
// short strings hand-labeled as well-formed (good) or keyboard-mash (bad).
// The core treats all of them as opaque character sequences.
package corpus
