package ccdr

import (
	"math"

	"github.com/katalvlaran/ccdr/block"
	"github.com/katalvlaran/ccdr/cycle"
	"github.com/katalvlaran/ccdr/penalty"
)

// fullSweep is concaveCDInit (spec.md §4.4): an O(p²) pass over every
// unordered pair (i,j) that may add, remove, or swap the direction of an
// edge. It is the only pass that calls the cycle checker.
//
// Edge discovery order (i from 0 to p-1, j from i+1 to p-1) is part of the
// observable behavior and must not be reordered or randomized.
func fullSweep(m *block.Matrix, corr CorrVector, n int, lambda float64, pen penalty.Penalty, chk *cycle.Checker, tr *tracker) {
	tr.resetError()
	updateSigma(m, corr, n)

	p := m.Dim()
	for i := 0; i < p; i++ {
		for j := i + 1; j < p; j++ {
			betaIJ := singleParamUpdate(m, corr, i, j, lambda, pen)
			betaJI := singleParamUpdate(m, corr, j, i, lambda, pen)
			tr.stats.SPUCalls += 2

			var cIJ, cJI bool
			if math.Abs(betaIJ) > block.Tau {
				tr.stats.CycleChecks++
				cIJ = chk.HasCycle(m, i, j)
			}
			if math.Abs(betaJI) > block.Tau && !cIJ {
				tr.stats.CycleChecks++
				cJI = chk.HasCycle(m, j, i)
			}

			switch {
			case cIJ:
				betaIJ = 0
			case cJI:
				betaJI = 0
			default:
				s1JI, s2JI := computeEdgeLoss(m, corr, n, j, i, lambda, pen, betaJI)
				s1IJ, s2IJ := computeEdgeLoss(m, corr, n, i, j, lambda, pen, betaIJ)
				if s1JI+s1IJ <= s2JI+s2IJ {
					betaJI = 0 // prefer i→j
				} else {
					betaIJ = 0 // prefer j→i
				}
			}

			applyBlock(m, tr, i, j, betaIJ, betaJI)

			if !tr.withinEdgeBudget(m.ActiveSetSize()) {
				tr.stats.FullSweeps++
				return
			}
		}
	}

	tr.stats.FullSweeps++
}

// applyBlock writes the decided (betaIJ, betaJI) pair into m, creating the
// block if neither side yet exists and at least one side is nonzero, or
// updating it in place otherwise. It marks tr's active-set-changed flag when
// it creates a block, or when an update turns either side of an existing
// block on or off, and folds the element-wise absolute deltas into tr's error
// accumulator.
func applyBlock(m *block.Matrix, tr *tracker, i, j int, betaIJ, betaJI float64) {
	idx := m.Find(i, j)
	if idx >= 0 {
		oldIJ := m.Value(j, idx)
		oldJI := m.GetSiblingValue(j, idx)

		dIJ, dJI := m.UpdateBlock(j, idx, betaIJ, betaJI)

		tr.updateError(dIJ)
		tr.updateError(dJI)

		wasActiveIJ, wasActiveJI := math.Abs(oldIJ) > block.Tau, math.Abs(oldJI) > block.Tau
		isActiveIJ, isActiveJI := math.Abs(betaIJ) > block.Tau, math.Abs(betaJI) > block.Tau
		if wasActiveIJ != isActiveIJ || wasActiveJI != isActiveJI {
			tr.markActiveSetChanged()
		}

		return
	}

	if math.Abs(betaIJ) > block.Tau || math.Abs(betaJI) > block.Tau {
		// AddBlock cannot fail here: i != j and no existing block was found.
		_, _, _ = m.AddBlock(i, j, betaIJ, betaJI)
		tr.updateError(math.Abs(betaIJ))
		tr.updateError(math.Abs(betaJI))
		tr.markActiveSetChanged()
	}
}
