package ccdr

import (
	"math"

	"github.com/katalvlaran/ccdr/block"
	"github.com/katalvlaran/ccdr/penalty"
)

// singleParamUpdate computes the single-parameter update (SPU) for the
// candidate edge a→b (spec.md §4.7): the residual
//
//	res = ρ_b·⟨x_a,x_b⟩ - Σ_{i ∈ rows[b], i≠a} Φ[i,b]·⟨x_i,x_a⟩
//
// thresholded by the penalty function's proximal operator.
func singleParamUpdate(m *block.Matrix, corr CorrVector, a, b int, lambda float64, pen penalty.Penalty) float64 {
	res := m.Sigma(b) * corr.At(a, b)

	for k := 0; k < m.RowSize(b); k++ {
		i := m.Row(b, k)
		if i == a {
			continue // self term excluded from the subtraction
		}
		res -= corr.At(i, a) * m.Value(b, k)
	}

	return pen.Threshold(res, lambda)
}

// computeEdgeLoss evaluates the closed-form penalized-likelihood
// decomposition for column b (spec.md §4.8), returning:
//
//	sZero:   the value assuming Φ[a,b] = 0
//	sUpdate: sZero plus the incremental contribution of Φ[a,b] = betaUpdate
//
// Φ is temporarily zeroed (if the edge a→b already exists) to compute the
// base terms, then restored to its original value before returning; no
// caller-visible state change survives this call.
func computeEdgeLoss(m *block.Matrix, corr CorrVector, n int, a, b int, lambda float64, pen penalty.Penalty, betaUpdate float64) (sZero, sUpdate float64) {
	idx := m.Find(a, b)
	var old float64
	if idx >= 0 {
		old = m.Value(b, idx)
		m.SetValue(b, idx, 0)
	}

	sigmaB := m.Sigma(b)

	loss := sigmaB * sigmaB
	for mi := 0; mi < m.RowSize(b); mi++ {
		rowM := m.Row(b, mi)
		valM := m.Value(b, mi)

		for ni := 0; ni < m.RowSize(b); ni++ {
			rowN := m.Row(b, ni)
			valN := m.Value(b, ni)
			loss += corr.At(rowM, rowN) * valM * valN
		}

		loss -= 2.0 * sigmaB * corr.At(rowM, b) * valM
	}

	penaltyBase := 0.0
	for i := 0; i < m.RowSize(b); i++ {
		penaltyBase += pen.P(math.Abs(m.Value(b, i)), lambda)
	}

	sZero = -float64(n)*math.Log(sigmaB) + 0.5*loss + penaltyBase
	sUpdate = sZero

	if math.Abs(betaUpdate) > block.Tau {
		for i := 0; i < m.RowSize(b); i++ {
			row := m.Row(b, i)
			if row == a {
				continue
			}
			sUpdate += 2.0 * corr.At(row, a) * m.Value(b, i) * betaUpdate
		}
		sUpdate += corr.At(a, a) * betaUpdate * betaUpdate
		sUpdate -= 2.0 * sigmaB * corr.At(a, b) * betaUpdate
		sUpdate += pen.P(math.Abs(betaUpdate), lambda) - pen.P(0, lambda)
	}

	if idx >= 0 {
		m.SetValue(b, idx, old)
	}

	return sZero, sUpdate
}
