package block

import "math"

// Pair names an unordered pair {I, J} with I < J for which a block (the pair
// (Φ[I,J], Φ[J,I])) has been inserted into the matrix.
type Pair struct {
	I, J int
}

// Matrix is SparseBlockMatrix: mirrored per-column sparse storage for a p×p
// directed weight matrix Φ and its companion variance vector ρ.
type Matrix struct {
	p       int
	rows    [][]int
	vals    [][]float64
	sibling [][]int
	sigma   []float64
	blocks  []Pair
}

// New constructs an empty p×p Matrix: no edges, ρ initialized to zero.
func New(p int) *Matrix {
	m := &Matrix{
		p:       p,
		rows:    make([][]int, p),
		vals:    make([][]float64, p),
		sibling: make([][]int, p),
		sigma:   make([]float64, p),
	}

	return m
}

// Dim returns p, the matrix dimension.
func (m *Matrix) Dim() int { return m.p }

// RowSize returns the number of nonzero-or-tracked entries in column j.
func (m *Matrix) RowSize(j int) int { return len(m.rows[j]) }

// Row returns the row index stored at position k of column j.
func (m *Matrix) Row(j, k int) int { return m.rows[j][k] }

// Value returns Φ[row(j,k), j], the weight stored at position k of column j.
func (m *Matrix) Value(j, k int) float64 { return m.vals[j][k] }

// SetValue overwrites the weight stored at position k of column j, without
// touching the mirrored sibling entry. This is a low-level primitive used by
// computeEdgeLoss to temporarily zero an edge; callers that mean to update a
// whole block should use UpdateBlock instead, which keeps both sides and the
// error accounting consistent.
func (m *Matrix) SetValue(j, k int, v float64) { m.vals[j][k] = v }

// Sigma returns ρ_j.
func (m *Matrix) Sigma(j int) float64 { return m.sigma[j] }

// SetSigma overwrites ρ_j.
func (m *Matrix) SetSigma(j int, s float64) { m.sigma[j] = s }

// GetSiblingValue returns Φ[j, rows[j][k]] in O(1), using the precomputed
// sibling index rather than a search.
func (m *Matrix) GetSiblingValue(j, k int) float64 {
	i := m.rows[j][k]
	sk := m.sibling[j][k]

	return m.vals[i][sk]
}

// Find locates the position k such that rows[j][k] == i, or -1 if no such
// position exists. This is an O(|rows[j]|) scan and is a documented hot
// path; callers on the inner update loop should prefer the sibling index
// instead wherever possible.
func (m *Matrix) Find(i, j int) int {
	for k, row := range m.rows[j] {
		if row == i {
			return k
		}
	}

	return -1
}

// AddBlock inserts a new mirrored pair for the unordered {i,j}: Φ[i,j] = vij
// stored in column j, Φ[j,i] = vji stored in column i, with sibling indices
// cross-referencing one another. It fails with ErrIndexOutOfRange if i or j
// lies outside [0, p), with ErrBlockExists if a block for {i,j} is already
// present, and with ErrSelfLoop if i == j.
//
// Returns the two element-wise absolute changes (|vij - 0|, |vji - 0|), for
// accumulation into a sweep's error tracker.
func (m *Matrix) AddBlock(i, j int, vij, vji float64) (float64, float64, error) {
	if i < 0 || i >= m.p || j < 0 || j >= m.p {
		return 0, 0, ErrIndexOutOfRange
	}
	if i == j {
		return 0, 0, ErrSelfLoop
	}
	if m.Find(i, j) >= 0 {
		return 0, 0, ErrBlockExists
	}

	posInJ := len(m.rows[j])
	posInI := len(m.rows[i])

	m.rows[j] = append(m.rows[j], i)
	m.vals[j] = append(m.vals[j], vij)
	m.sibling[j] = append(m.sibling[j], posInI)

	m.rows[i] = append(m.rows[i], j)
	m.vals[i] = append(m.vals[i], vji)
	m.sibling[i] = append(m.sibling[i], posInJ)

	lo, hi := i, j
	if lo > hi {
		lo, hi = hi, lo
	}
	m.blocks = append(m.blocks, Pair{I: lo, J: hi})

	return math.Abs(vij), math.Abs(vji), nil
}

// UpdateBlock overwrites both mirror entries of the block at column j,
// position k, in O(1) using the precomputed sibling index. Returns the two
// element-wise absolute changes (|newIJ - old|, |newJI - old|).
//
// If both new values fall at or below Tau the block is logically zero but
// its slots are left in place; they are garbage-collected lazily by nothing
// in particular — the design deliberately tolerates dead slots rather than
// paying for compaction on every update.
func (m *Matrix) UpdateBlock(j, k int, newIJ, newJI float64) (float64, float64) {
	i := m.rows[j][k]
	sk := m.sibling[j][k]

	oldIJ := m.vals[j][k]
	oldJI := m.vals[i][sk]

	m.vals[j][k] = newIJ
	m.vals[i][sk] = newJI

	return math.Abs(newIJ - oldIJ), math.Abs(newJI - oldJI)
}

// ActiveSetSize returns the number of edges with |Φ[i,j]| > Tau, computed by
// a linear scan over every column. Because the block invariant guarantees at
// most one direction of any pair is nonzero, each active edge is counted
// exactly once across all columns.
func (m *Matrix) ActiveSetSize() int {
	count := 0
	for j := 0; j < m.p; j++ {
		for _, v := range m.vals[j] {
			if math.Abs(v) > Tau {
				count++
			}
		}
	}

	return count
}

// Blocks returns the flat list of unordered pairs for which AddBlock has
// inserted a block since the last ClearBlocks, including blocks whose two
// values are zero, maintained incrementally for fast iteration. The returned
// slice must not be mutated by the caller.
func (m *Matrix) Blocks() []Pair { return m.blocks }

// ClearBlocks discards the incrementally maintained blocks list to save
// memory once a λ's solve has been stored; it does not affect rows, vals,
// sibling, or sigma.
func (m *Matrix) ClearBlocks() { m.blocks = nil }

// Clone deep-copies the matrix, including rows, vals, sibling, sigma, and
// the blocks list. Because Go slices are reference types, this is what gives
// the solver the value-copy warm-start semantics spec.md describes: a
// caller-supplied Φ is never mutated by a solve unless the caller explicitly
// reassigns the returned Matrix.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		p:     m.p,
		sigma: append([]float64(nil), m.sigma...),
	}

	c.rows = make([][]int, m.p)
	c.vals = make([][]float64, m.p)
	c.sibling = make([][]int, m.p)
	for j := 0; j < m.p; j++ {
		c.rows[j] = append([]int(nil), m.rows[j]...)
		c.vals[j] = append([]float64(nil), m.vals[j]...)
		c.sibling[j] = append([]int(nil), m.sibling[j]...)
	}
	c.blocks = append([]Pair(nil), m.blocks...)

	return c
}

// RecomputeActiveSetSize is a diagnostic full recount intended for tests and
// assertions. It recomputes ActiveSetSize from scratch and, when
// verifyBlocks is true, additionally checks that every sibling index
// round-trips (following sibling twice returns to the original position); it
// returns ErrSiblingInvariant on the first violation found. The blocks list
// is not examined.
func (m *Matrix) RecomputeActiveSetSize(verifyBlocks bool) (int, error) {
	count := 0
	for j := 0; j < m.p; j++ {
		for k, v := range m.vals[j] {
			if math.Abs(v) > Tau {
				count++
			}

			if !verifyBlocks {
				continue
			}

			i := m.rows[j][k]
			sk := m.sibling[j][k]
			if sk < 0 || sk >= len(m.rows[i]) || m.rows[i][sk] != j {
				return count, ErrSiblingInvariant
			}

			// Following sibling twice must land back on (j, k).
			back := m.sibling[i][sk]
			if back != k {
				return count, ErrSiblingInvariant
			}
		}
	}

	return count, nil
}
