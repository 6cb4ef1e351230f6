// Package block implements SparseBlockMatrix, the symmetric-sparsity block
// storage used by the ccdr solver for the weighted adjacency matrix Φ and
// the per-node variance vector ρ.
//
// Storage shape (per column j):
//
//	rows[j]    — row indices i with Φ[i,j] ≠ 0, in insertion order
//	vals[j]    — parallel weights Φ[i,j]
//	sibling[j] — parallel indices: sibling[j][k] is the position within
//	             rows[i] (i = rows[j][k]) of the mirror entry Φ[j,i]
//	sigma[j]   — ρ_j
//
// Because Φ and Φ's transpose share the same "block" — at most one of
// Φ[i,j], Φ[j,i] is nonzero under the acyclicity invariant — every block is
// inserted into both columns at once, and the sibling indices give O(1)
// access to the mirror entry without a search. A flat blocks list is kept
// alongside for cheap iteration during a sweep and is discarded with
// ClearBlocks once a λ has been solved.
//
// Values with absolute value at or below Tau are treated as exactly zero by
// every consumer, but a slot may still hold a stale near-zero value until
// the next block update touches it; this laziness is intentional (§4.2).
//
// Matrix is not safe for concurrent mutation: the ccdr solver owns one
// Matrix per λ solve and never shares it across goroutines mid-solve.
package block

// Tau is the zero threshold: any weight with absolute value at or below Tau
// is treated as exactly zero by the solver, even if the underlying slot
// still holds a stale nonzero float until the next update.
const Tau = 1e-12
