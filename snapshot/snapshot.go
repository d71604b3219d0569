package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/troyfeng116/gibberish-scorer/ngram"
)

// SchemaVersion identifies the payload layout. Increment on any change to
// the payload struct.
const SchemaVersion uint16 = 1

// payload is the on-wire shape. It embeds ngram.State verbatim so the
// serialized schema stays in lockstep with the data model.
type payload struct {
	Schema uint16
	State  ngram.State
}

// Write encodes m to w.
func Write(w io.Writer, m *ngram.Model) error {
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(payload{Schema: SchemaVersion, State: m.State()}); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}

	return nil
}

// Read decodes a model from r. Returns ErrSchema for payloads written by an
// incompatible version and ErrCorrupt when the decoded state does not
// describe a valid model.
func Read(r io.Reader) (*ngram.Model, error) {
	var p payload
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSchema, p.Schema, SchemaVersion)
	}

	m, err := ngram.FromState(p.State)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return m, nil
}

// Save writes m to path atomically: encode to a temp file in the target
// directory, then rename into place.
func Save(path string, m *ngram.Model) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}

	f, err := os.CreateTemp(dir, "snapshot-*")
	if err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if err = Write(f, m); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}

	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("snapshot: save: %w", err)
	}

	return nil
}

// Load reads a model from path.
func Load(path string) (*ngram.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load: %w", err)
	}
	defer f.Close()

	return Read(f)
}
