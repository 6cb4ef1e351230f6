package ccdr

import (
	"math"

	"github.com/katalvlaran/ccdr/block"
	"github.com/katalvlaran/ccdr/penalty"
)

// refinementSweep is concaveCD (spec.md §4.5): a cheap O(|active|) pass over
// the blocks already present in m. It never adds a block, never calls the
// cycle checker, and never swaps an edge's direction — it only re-solves
// the already-active side of each existing block.
func refinementSweep(m *block.Matrix, corr CorrVector, n int, lambda float64, pen penalty.Penalty, tr *tracker) {
	tr.resetError()
	updateSigma(m, corr, n)

	p := m.Dim()
	for j := 0; j < p; j++ {
		for k := 0; k < m.RowSize(j); k++ {
			i := m.Row(j, k)
			if i >= j {
				continue // each block visited once, via the canonical i < j side
			}

			betaKJ := m.Value(j, k)
			betaJK := m.GetSiblingValue(j, k)

			var betaIJ, betaJI float64
			switch {
			case math.Abs(betaKJ) > block.Tau:
				betaIJ = singleParamUpdate(m, corr, i, j, lambda, pen)
				betaJI = 0
				tr.stats.SPUCalls++
			case math.Abs(betaJK) > block.Tau:
				betaJI = singleParamUpdate(m, corr, j, i, lambda, pen)
				betaIJ = 0
				tr.stats.SPUCalls++
			default:
				// block is defunct: both sides already at or below tau, leave as is.
			}

			dIJ, dJI := m.UpdateBlock(j, k, betaIJ, betaJI)
			tr.updateError(dIJ)
			tr.updateError(dJI)
		}
	}

	tr.stats.RefinementSweeps++
}
