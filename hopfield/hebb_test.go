package hopfield_test

import (
	"testing"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/hopfield"
	"github.com/katalvlaran/hopfield/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHebb_ReferenceScenario checks the n=9 checkerboard weights.
func TestHebb_ReferenceScenario(t *testing.T) {
	w := mustHebb(t, p1)

	assert.Equal(t, 9, w.N())
	assert.Equal(t, hopfield.RuleHebb, w.Rule())
	assert.Equal(t, -1.0, at(t, w, 0, 1), "p1[0]*p1[1]")
	assert.Equal(t, 1.0, at(t, w, 0, 2), "p1[0]*p1[2]")
	assert.Equal(t, 0.0, at(t, w, 0, 0))
}

// TestHebb_SymmetricZeroDiagonal holds for arbitrary pattern sets.
func TestHebb_SymmetricZeroDiagonal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		set := randomPatterns(seed, int(seed)+1, 12)
		w, err := hopfield.Hebb(set)
		require.NoError(t, err)
		assert.True(t, w.IsSymmetric(), "seed %d", seed)
		requireZeroDiagonal(t, w)
	}
}

// TestHebb_RawSums verifies no normalization: p and its complement add up.
func TestHebb_RawSums(t *testing.T) {
	w := mustHebb(t, p1, bipolar.Complement(p1))
	assert.Equal(t, -2.0, at(t, w, 0, 1))
	assert.Equal(t, 2.0, at(t, w, 0, 8))
}

// TestHebb_FreshMatrixPerCall guards against accumulation across calls.
func TestHebb_FreshMatrixPerCall(t *testing.T) {
	first := mustHebb(t, p1)
	second := mustHebb(t, p1)
	assert.Equal(t, first.Matrix().Data(), second.Matrix().Data())
	assert.Equal(t, -1.0, at(t, second, 0, 1))
}

func TestHebb_InvalidInput(t *testing.T) {
	_, err := hopfield.Hebb(nil)
	assert.ErrorIs(t, err, hopfield.ErrEmptySet)

	_, err = hopfield.Hebb([]bipolar.Pattern{p1, {1, -1}})
	assert.ErrorIs(t, err, hopfield.ErrLengthMismatch)

	_, err = hopfield.Hebb([]bipolar.Pattern{{1, 0, -1}})
	assert.ErrorIs(t, err, hopfield.ErrDomainViolation)
}

func TestWeights_AccessorsAreReadOnly(t *testing.T) {
	w := mustHebb(t, p1)

	m := w.Matrix()
	require.NoError(t, m.Set(0, 1, 42))
	assert.Equal(t, -1.0, at(t, w, 0, 1), "Matrix must return a copy")

	row, err := w.Row(0)
	require.NoError(t, err)
	row[1] = 42
	assert.Equal(t, -1.0, at(t, w, 0, 1), "Row must return a copy")

	_, err = w.At(9, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = w.Row(-1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestWeights_Energy(t *testing.T) {
	w := mustHebb(t, p1)

	// Stored pattern: E = -1/2 * Σ_{i≠j} 1 = -n(n-1)/2.
	e, err := w.Energy(p1)
	require.NoError(t, err)
	assert.Equal(t, -36.0, e)

	damaged, _ := bipolar.Flip(p1, 4)
	e2, err := w.Energy(damaged)
	require.NoError(t, err)
	assert.Greater(t, e2, e, "a damaged probe sits higher on the energy surface")

	_, err = w.Energy(p1[:3])
	assert.ErrorIs(t, err, hopfield.ErrLengthMismatch)
}
