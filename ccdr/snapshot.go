package ccdr

import "github.com/katalvlaran/ccdr/block"

// Entry is one (row, weight) pair within a Snapshot column: Φ[Row, column] =
// Weight.
type Entry struct {
	Row    int
	Weight float64
}

// Snapshot is the caller-facing, read-only view of a solved Φ at one λ:
// Columns[j] lists every tracked (row, weight) entry for column j, and
// Sigma[j] is ρ_j. Interpretation (which entries denote a real edge i→j) and
// any post-processing are the caller's responsibility.
type Snapshot struct {
	Lambda  float64
	Columns [][]Entry
	Sigma   []float64
}

// toSnapshot copies m's externally relevant state into a Snapshot, leaving m
// itself untouched. The copy is intentional: a Snapshot must remain valid
// after its source Matrix is further mutated or discarded by the grid
// driver.
func toSnapshot(m *block.Matrix, lambda float64) Snapshot {
	p := m.Dim()
	snap := Snapshot{
		Lambda:  lambda,
		Columns: make([][]Entry, p),
		Sigma:   append([]float64(nil), sigmaSlice(m, p)...),
	}

	for j := 0; j < p; j++ {
		col := make([]Entry, 0, m.RowSize(j))
		for k := 0; k < m.RowSize(j); k++ {
			col = append(col, Entry{Row: m.Row(j, k), Weight: m.Value(j, k)})
		}
		snap.Columns[j] = col
	}

	return snap
}

func sigmaSlice(m *block.Matrix, p int) []float64 {
	s := make([]float64, p)
	for j := 0; j < p; j++ {
		s[j] = m.Sigma(j)
	}

	return s
}
