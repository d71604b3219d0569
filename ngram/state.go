package ngram

import "github.com/troyfeng116/gibberish-scorer/alphabet"

// State is a plain-data snapshot of a model: the frozen scoring context,
// the dense count arrays and the cutoff triple. It mirrors the in-memory
// layout exactly so serializers can persist it without transformation.
type State struct {
	Order      Order
	Alphabet   string // runes in code order; alphabet.New rebuilds the codes
	IgnoreCase bool
	Counts     []uint64
	Totals     []uint64
	Cutoffs    CutoffScore
	Good       []string
	Bad        []string
}

// State returns a deep copy of the model's current state.
func (m *Model) State() State {
	counts := make([]uint64, len(m.counts))
	copy(counts, m.counts)
	totals := make([]uint64, len(m.totals))
	copy(totals, m.totals)

	return State{
		Order:      m.order,
		Alphabet:   m.alpha.String(),
		IgnoreCase: m.ignoreCase,
		Counts:     counts,
		Totals:     totals,
		Cutoffs:    m.cutoffs,
		Good:       cloneStrings(m.good),
		Bad:        cloneStrings(m.bad),
	}
}

// FromState reconstructs a model from a snapshot. The count arrays are
// validated against the order and alphabet once, here at the boundary:
// mismatched dimensions return ErrBadState (wrapped alphabet errors surface
// as-is).
func FromState(st State) (*Model, error) {
	if st.Order != Bigram && st.Order != Trigram {
		return nil, ErrBadOrder
	}

	alpha, err := alphabet.New(st.Alphabet)
	if err != nil {
		return nil, err
	}

	k := alpha.Size()
	cells := k * k
	if st.Order == Trigram {
		cells *= k
	}
	if len(st.Counts) != cells || len(st.Totals) != k {
		return nil, ErrBadState
	}

	counts := make([]uint64, len(st.Counts))
	copy(counts, st.Counts)
	totals := make([]uint64, len(st.Totals))
	copy(totals, st.Totals)

	return &Model{
		order:      st.Order,
		alpha:      alpha,
		ignoreCase: st.IgnoreCase,
		counts:     counts,
		totals:     totals,
		cutoffs:    st.Cutoffs,
		good:       cloneStrings(st.Good),
		bad:        cloneStrings(st.Bad),
	}, nil
}
