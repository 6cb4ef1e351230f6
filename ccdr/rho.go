package ccdr

import (
	"math"

	"github.com/katalvlaran/ccdr/block"
)

// updateSigma recomputes ρ_j for every column j in closed form (spec.md
// §4.6): with c = Σ_{i ∈ rows[j]} Φ[i,j]·⟨x_j,x_i⟩, ρ_j is the positive root
// of ρ² - c·ρ - n = 0, i.e. ρ_j = ½(c + √(c² + 4n)).
//
// Must run before the edge updates in both fullSweep and refinementSweep —
// ρ-before-Φ within a sweep is load-bearing (spec.md §9).
func updateSigma(m *block.Matrix, corr CorrVector, n int) {
	p := m.Dim()
	for j := 0; j < p; j++ {
		c := 0.0
		for k := 0; k < m.RowSize(j); k++ {
			i := m.Row(j, k)
			c += m.Value(j, k) * corr.At(j, i)
		}

		s := 0.5 * (c + math.Sqrt(c*c+4*float64(n)))
		m.SetSigma(j, s)
	}
}
