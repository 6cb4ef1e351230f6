package ccdr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ccdr/block"
	"github.com/katalvlaran/ccdr/cycle"
	"github.com/katalvlaran/ccdr/penalty"
)

// SolveSingle is singleCCDr (spec.md §4.9): it drives one λ to convergence,
// alternating a full sweep (which may add, remove, or redirect an edge) with
// refinement sweeps (which only re-solve already-active edges) until the
// active set stabilizes, the sweep budget is exhausted, or the edge budget
// is exceeded.
//
// initial is treated as a warm-start value, not mutated: SolveSingle clones
// it internally and returns a new *block.Matrix, leaving the caller's
// initial untouched. n is the sample size backing corr. Returns
// ErrInvalidParameters / ErrNonFiniteInput from params.Validate,
// ErrDimensionMismatch if initial and corr disagree on p, or
// ErrGraphTooLarge if p exceeds the cycle checker's capacity.
func SolveSingle(corr CorrVector, n int, initial *block.Matrix, lambda float64, params Params) (*block.Matrix, Stats, error) {
	if err := params.Validate(); err != nil {
		return nil, Stats{}, err
	}

	if math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, Stats{}, fmt.Errorf("%w: lambda must be finite, got %v", ErrNonFiniteInput, lambda)
	}

	p := initial.Dim()
	if want := p * (p + 1) / 2; len(corr) != want {
		return nil, Stats{}, fmt.Errorf("%w: corr has length %d, want %d for p=%d", ErrDimensionMismatch, len(corr), want, p)
	}

	chk, err := cycle.NewChecker(p)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%w: %v", ErrGraphTooLarge, err)
	}

	pen := penalty.NewMCP(params.Gamma)
	m := initial.Clone()
	tr := newTracker(params.Alpha, p)
	tr.activeChanged = true // guarantees the loop runs at least one full sweep

	for tr.activeChanged && tr.sweeps < params.MaxIters && tr.withinEdgeBudget(m.ActiveSetSize()) {
		tr.resetFlags()
		fullSweep(m, corr, n, lambda, pen, chk, tr)

		if tr.activeChanged && tr.sweeps < params.MaxIters {
			for iters := 0; iters < params.MaxIters; iters++ {
				refinementSweep(m, corr, n, lambda, pen, tr)
				if tr.maxAbsError < params.Eps {
					break
				}
			}
		}

		tr.sweeps++
	}

	tr.stats.Sweeps = tr.sweeps

	return m, tr.stats, nil
}
