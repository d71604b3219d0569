package ngram

// Train accumulates text's transition counts onto the table. Updates are
// additive and incremental: repeated calls stack, nothing is reset. Each
// call is an independent scan; no window spans the seam between two calls.
//
// After the counts update the cutoffs are recalibrated against the most
// recently supplied sample sets, so thresholds stay consistent with the
// learned distribution. Without saved samples the cutoffs are left as-is.
func (m *Model) Train(text string) {
	m.walk(text, func(ctx, cell int) {
		m.counts[cell]++
		m.totals[ctx]++
	})

	if len(m.good) > 0 && len(m.bad) > 0 {
		// Saved sets are never empty here, so the error path is
		// unreachable.
		_, _ = m.Recalibrate(m.good, m.bad)
	}
}
