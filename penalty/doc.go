// Package penalty defines the PenaltyFunction contract consumed by the ccdr
// block coordinate-descent solver, and provides the minimum concave penalty
// (MCP) as its canonical instance.
//
// A PenaltyFunction is a pure, thread-safe, allocation-free function object:
// it evaluates the penalty P(u, λ) for u ≥ 0 and the proximal threshold
// operator Threshold(z, λ) = argmin_β ½(z-β)² + P(|β|, λ). Neither method
// touches any shared state, so a single Penalty value may be reused freely
// across sweeps, goroutines, or λ values.
//
// MCP requires γ > 1; this package does not itself enforce that (callers in
// package ccdr validate γ as part of InvalidParameters before constructing
// an MCP), so MCP stays a pure, panic-free numeric helper.
package penalty
