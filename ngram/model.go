package ngram

import (
	"github.com/troyfeng116/gibberish-scorer/alphabet"
	"github.com/troyfeng116/gibberish-scorer/textutil"
)

// Model is a character n-gram transition-frequency matrix plus its
// calibrated cutoffs. One struct serves both engines; Order tags which
// table layout is in use.
//
// Counts are raw integers; probabilities are normalized lazily at scoring
// time, so training stays O(1) per window with no normalization pass.
//
// Not safe for concurrent use: Train and Recalibrate write the same table
// Score reads.
type Model struct {
	order      Order
	alpha      alphabet.Alphabet
	ignoreCase bool

	// counts is the dense table, row-major. Bigram: k² cells, cell (i,j)
	// at i*k+j. Trigram: k layers of k² cells, cell (c1,c2,c3) at
	// ((c1*k)+c2)*k+c3.
	counts []uint64

	// totals holds one denominator per leading context: row totals for
	// Bigram, layer totals for Trigram. Invariant: totals[ctx] equals the
	// sum of the cells sharing that context after every training step.
	totals []uint64

	cutoffs CutoffScore

	// Most recently supplied calibration sets; Train recalibrates against
	// them after every counts update.
	good, bad []string
}

// New creates a model of the given order. A corpus supplied via WithCorpus
// is trained immediately; samples supplied via WithSamples calibrate the
// cutoffs against the freshly trained table.
func New(order Order, opts ...Option) (*Model, error) {
	if order != Bigram && order != Trigram {
		return nil, ErrBadOrder
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if !cfg.alphaSet {
		if cfg.ignoreCase {
			cfg.alpha = alphabet.Default()
		} else {
			cfg.alpha = alphabet.Default(alphabet.WithUppercase())
		}
	}

	k := cfg.alpha.Size()
	cells := k * k
	if order == Trigram {
		cells *= k
	}

	m := &Model{
		order:      order,
		alpha:      cfg.alpha,
		ignoreCase: cfg.ignoreCase,
		counts:     make([]uint64, cells),
		totals:     make([]uint64, k),
	}

	m.good = cloneStrings(cfg.good)
	m.bad = cloneStrings(cfg.bad)

	if cfg.corpus != "" {
		m.Train(cfg.corpus)
	} else if len(m.good) > 0 && len(m.bad) > 0 {
		_, _ = m.Recalibrate(m.good, m.bad)
	}

	return m, nil
}

// Order returns the model's transition arity.
func (m *Model) Order() Order { return m.order }

// Alphabet returns the frozen alphabet the table is keyed by.
func (m *Model) Alphabet() alphabet.Alphabet { return m.alpha }

// IgnoreCase reports whether input is case-folded before indexing.
func (m *Model) IgnoreCase() bool { return m.ignoreCase }

// walk runs the shared sliding window over text and invokes visit once per
// valid window with the window's context index (row for Bigram, layer for
// Trigram) and flat cell index. Windows containing an unmapped rune are
// skipped; the scan keeps sliding one rune at a time.
func (m *Model) walk(text string, visit func(ctx, cell int)) {
	if m.ignoreCase {
		text = textutil.Fold(text)
	}

	codes := m.alpha.Codes(text)
	n := int(m.order)
	k := m.alpha.Size()

window:
	for i := 0; i+n <= len(codes); i++ {
		cell := codes[i]
		if cell < 0 {
			continue
		}
		for j := 1; j < n; j++ {
			c := codes[i+j]
			if c < 0 {
				continue window
			}
			cell = cell*k + c
		}
		visit(codes[i], cell)
	}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)

	return out
}
