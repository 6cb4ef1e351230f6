package ccdr_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ccdr/ccdr"
)

func TestNewCorrVector_WrongLength(t *testing.T) {
	t.Parallel()

	_, err := ccdr.NewCorrVector(3, []float64{1, 2, 3})
	require.Error(t, err)
	require.True(t, errors.Is(err, ccdr.ErrDimensionMismatch))
}

func TestNewCorrVector_NonFinite(t *testing.T) {
	t.Parallel()

	_, err := ccdr.NewCorrVector(2, []float64{1, math.NaN(), 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, ccdr.ErrNonFiniteInput))
}

func TestCorrVector_At_Symmetric(t *testing.T) {
	t.Parallel()

	// p=3 lower-triangular layout: index(r,s) = r + s*(s+1)/2, r<=s.
	// (0,0) (0,1) (1,1) (0,2) (1,2) (2,2)
	c, err := ccdr.NewCorrVector(3, []float64{10, 20, 30, 40, 50, 60})
	require.NoError(t, err)

	require.Equal(t, 20.0, c.At(0, 1))
	require.Equal(t, 20.0, c.At(1, 0))
	require.Equal(t, 40.0, c.At(0, 2))
	require.Equal(t, 40.0, c.At(2, 0))
	require.Equal(t, 30.0, c.At(1, 1))
}
