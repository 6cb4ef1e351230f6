package block

import "errors"

// Sentinel errors returned by Matrix's public operations. Callers should use
// errors.Is to branch on these rather than comparing strings.
var (
	// ErrBlockExists is returned by AddBlock when a block for the requested
	// unordered pair {i,j} has already been inserted.
	ErrBlockExists = errors.New("block: block already exists for this pair")

	// ErrSelfLoop is returned by AddBlock when a caller attempts to add a
	// block on the diagonal (i == j); the diagonal of Φ is always zero.
	ErrSelfLoop = errors.New("block: self-loop is not a valid block")

	// ErrIndexOutOfRange is returned by AddBlock when a column index falls
	// outside the matrix's dimension.
	ErrIndexOutOfRange = errors.New("block: index out of range")

	// ErrSiblingInvariant is returned by RecomputeActiveSetSize when a
	// sibling index fails to round-trip: following sibling twice must
	// return to the original (column, position).
	ErrSiblingInvariant = errors.New("block: sibling invariant violated")
)
