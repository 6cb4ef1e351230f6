package ccdr

import "errors"

// Sentinel errors for the ccdr solver's entry points. All four are detected
// during input validation, before any mutation of the caller's matrix;
// callers should use errors.Is to branch on these.
var (
	// ErrInvalidParameters indicates params.Gamma, Eps, MaxIters, or Alpha
	// falls outside its documented bounds (γ > 1, ε > 0, maxIters > 0,
	// 0 < α ≤ 1).
	ErrInvalidParameters = errors.New("ccdr: invalid parameters")

	// ErrDimensionMismatch indicates the correlation vector's length does
	// not match p(p+1)/2, or the initial Φ's dimension does not match p.
	ErrDimensionMismatch = errors.New("ccdr: dimension mismatch")

	// ErrGraphTooLarge indicates p exceeds the cycle checker's configured
	// scratch capacity.
	ErrGraphTooLarge = errors.New("ccdr: graph exceeds cycle-check capacity")

	// ErrNonFiniteInput indicates a NaN or ±Inf value was found in the
	// correlation vector, in λ, or in params.
	ErrNonFiniteInput = errors.New("ccdr: non-finite input")
)
