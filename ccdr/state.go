package ccdr

// Stats reports solver-scoped diagnostic counters for a single SolveSingle
// call. These replace the process-wide debug counters
// (ccdinit_calls/ccd_calls/ccs_calls/spu_calls) the reference implementation
// kept behind a build flag: here they are scoped to one solve and always
// available, never global mutable state.
type Stats struct {
	// FullSweeps counts calls to fullSweep (concaveCDInit).
	FullSweeps int

	// RefinementSweeps counts calls to refinementSweep (concaveCD).
	RefinementSweeps int

	// CycleChecks counts calls to the cycle checker's HasCycle.
	CycleChecks int

	// SPUCalls counts single-parameter-update evaluations.
	SPUCalls int

	// Sweeps is the final value of the outer sweep counter.
	Sweeps int
}

// tracker is the per-solve progress tracker described in spec.md §4.4: an
// error accumulator, sweep counter, active-set-changed flag, and the
// α·p edge threshold, plus the Stats diagnostics above.
type tracker struct {
	maxAbsError   float64
	activeChanged bool
	sweeps        int
	edgeThreshold float64
	stats         Stats
}

// newTracker builds a tracker for a solve over p nodes with the given α.
func newTracker(alpha float64, p int) *tracker {
	return &tracker{edgeThreshold: alpha * float64(p)}
}

// resetError zeroes the per-sweep accumulated error.
func (t *tracker) resetError() { t.maxAbsError = 0 }

// updateError folds an element-wise absolute change into the accumulator,
// keeping the maximum observed so far.
func (t *tracker) updateError(delta float64) {
	if delta > t.maxAbsError {
		t.maxAbsError = delta
	}
}

// resetFlags clears the active-set-changed flag at the start of an outer
// iteration.
func (t *tracker) resetFlags() { t.activeChanged = false }

// markActiveSetChanged records that an edge was added, removed, or flipped
// during the current full sweep.
func (t *tracker) markActiveSetChanged() { t.activeChanged = true }

// withinEdgeBudget reports whether activeSize still respects the α·p
// budget.
func (t *tracker) withinEdgeBudget(activeSize int) bool {
	return float64(activeSize) <= t.edgeThreshold
}
