// Package ccdr implements a regularized block coordinate-descent solver that
// estimates a sparse directed acyclic graph from observational data.
//
// Given sufficient statistics (pairwise correlations of p variables over n
// observations, as a CorrVector) and a decreasing grid of regularization
// parameters λ₁ > λ₂ > … > λ_L, SolveGrid produces, for each λ, a weighted
// adjacency matrix Φ(λ) and variance vector ρ(λ) that jointly locally
// minimize a penalized Gaussian log-likelihood subject to acyclicity.
//
// The algorithm alternates between a full sweep (fullSweep, which may add,
// remove, or swap the direction of any edge) and a restricted refinement
// sweep (refinementSweep, which only updates already-active edges) until the
// active set stops changing; the λ-grid driver (SolveGrid) warm-starts each
// solve from the previous λ's result.
//
// Package ccdr builds on block.Matrix for the sparse weight storage,
// cycle.Checker for the incremental acyclicity test, and penalty.MCP for the
// penalty function; none of data loading, correlation precomputation, or
// λ-grid construction are this package's concern.
//
// Errors:
//
//	ErrInvalidParameters  - γ, ε, maxIters, or α fail their documented bounds.
//	ErrDimensionMismatch  - the correlation vector or initial Φ has the wrong size.
//	ErrGraphTooLarge      - p exceeds the configured cycle-check capacity.
//	ErrNonFiniteInput     - a NaN or ±Inf value appears in the correlation vector or params.
package ccdr
