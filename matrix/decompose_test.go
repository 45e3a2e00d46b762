package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hopfield/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLU_Reconstructs(t *testing.T) {
	a := mustDense(t, [][]float64{{4, 3, 2}, {6, 3, 1}, {2, 5, 7}})

	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	// L is unit lower triangular, U is upper triangular.
	for i := 0; i < 3; i++ {
		d, _ := L.At(i, i)
		assert.Equal(t, 1.0, d)
		for j := i + 1; j < 3; j++ {
			l, _ := L.At(i, j)
			assert.Equal(t, 0.0, l)
			u, _ := U.At(j, i)
			assert.Equal(t, 0.0, u)
		}
	}

	prod, err := matrix.Mul(L, U)
	require.NoError(t, err)
	allClose(t, a, prod, 1e-12)
}

func TestInverse_TimesOriginalIsIdentity(t *testing.T) {
	a := mustDense(t, [][]float64{{9, 1}, {1, 9}})
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(t, err)
	allClose(t, mustDense(t, [][]float64{{1, 0}, {0, 1}}), prod, 1e-12)

	// Fallback input produces the same inverse.
	inv2, err := matrix.Inverse(hide{a})
	require.NoError(t, err)
	allClose(t, inv, inv2, 0)
}

func TestInverse_Singular(t *testing.T) {
	// Gram matrix of two identical bipolar vectors of length 9.
	g := mustDense(t, [][]float64{{9, 9}, {9, 9}})
	_, err := matrix.Inverse(g)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_PivotTolerance(t *testing.T) {
	g := mustDense(t, [][]float64{{1, 1}, {1, 1 + 1e-12}})

	_, err := matrix.Inverse(g)
	require.NoError(t, err, "exact-zero policy accepts a tiny pivot")

	_, err = matrix.Inverse(g, matrix.WithPivotTolerance(1e-9))
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInverse_NonSquare(t *testing.T) {
	_, err := matrix.Inverse(mustDense(t, [][]float64{{1, 2}}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestWithPivotTolerance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { matrix.WithPivotTolerance(-1) })
}
