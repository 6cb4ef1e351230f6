package ccdr

import (
	"fmt"
	"io"
)

// writeProgress emits one verbose progress line in the contractual format
// "lambda = <x> [l/L] | <activeSize> || <recomputedSize>" (spec.md §6). It
// is write-only and serialized: the grid driver calls it once per λ, never
// concurrently. A nil w is a no-op, matching a disabled verbose channel.
func writeProgress(w io.Writer, lambda float64, l, total, activeSize, recomputedSize int) {
	if w == nil {
		return
	}

	fmt.Fprintf(w, "lambda = %v [%d/%d] | %d || %d\n", lambda, l, total, activeSize, recomputedSize)
}
