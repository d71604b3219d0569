package ngram

// Score returns the arithmetic mean transition probability of text,
// always in [0, 1].
//
// Each valid window contributes count/contextTotal, where contextTotal is
// the denominator of the window's leading context (matrix row for Bigram,
// layer total for Trigram). Degenerate inputs follow the defined-result
// policy:
//   - a context never observed in training contributes 0 (no division
//     fault on a zero total);
//   - zero valid windows (empty text, or every window touching an unmapped
//     rune) score 0.
func (m *Model) Score(text string) float64 {
	var sum float64
	var windows int

	m.walk(text, func(ctx, cell int) {
		if t := m.totals[ctx]; t > 0 {
			sum += float64(m.counts[cell]) / float64(t)
		}
		windows++
	})

	if windows == 0 {
		return 0
	}

	return sum / float64(windows)
}
