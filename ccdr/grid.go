package ccdr

import (
	"io"

	"github.com/katalvlaran/ccdr/block"
)

// SolveGrid is gridCCDr (spec.md §4.10): it runs SolveSingle once per λ in
// lambdas, in order, warm-starting each call from the previous call's Φ. A
// Snapshot is pushed after every solve and that solve's blocks list is
// dropped before the next λ begins. The grid terminates early — returning
// the snapshots collected so far, with no error — the first time a solve's
// active set reaches or exceeds α·p.
//
// verbose, if non-nil, receives one progress line per λ in the format
// "lambda = <x> [l/L] | <activeSize> || <recomputedSize>"; a nil verbose is
// silent.
func SolveGrid(corr CorrVector, n int, initial *block.Matrix, lambdas []float64, params Params, verbose io.Writer) ([]Snapshot, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	snapshots := make([]Snapshot, 0, len(lambdas))
	phi := initial
	total := len(lambdas)

	for l, lambda := range lambdas {
		solved, _, err := SolveSingle(corr, n, phi, lambda, params)
		if err != nil {
			return nil, err
		}

		activeSize := solved.ActiveSetSize()
		recomputed, _ := solved.RecomputeActiveSetSize(false)
		writeProgress(verbose, lambda, l+1, total, activeSize, recomputed)

		snapshots = append(snapshots, toSnapshot(solved, lambda))
		solved.ClearBlocks()
		phi = solved

		edgeThreshold := params.Alpha * float64(phi.Dim())
		if float64(activeSize) >= edgeThreshold {
			break
		}
	}

	return snapshots, nil
}
