package hopfield_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/hopfield"
	"github.com/stretchr/testify/require"
)

// p1 is the 3×3 checkerboard from the reference scenario (n = 9).
var p1 = bipolar.Pattern{1, -1, 1, -1, 1, -1, 1, -1, 1}

// Two mutually orthogonal patterns of length 8.
var (
	orthoA = bipolar.Pattern{1, 1, 1, 1, -1, -1, -1, -1}
	orthoB = bipolar.Pattern{1, 1, -1, -1, 1, 1, -1, -1}
)

// randomPatterns draws q deterministic bipolar patterns of length n.
func randomPatterns(seed int64, q, n int) []bipolar.Pattern {
	rng := rand.New(rand.NewSource(seed))
	out := make([]bipolar.Pattern, q)
	for k := range out {
		p := make(bipolar.Pattern, n)
		for i := range p {
			if rng.Intn(2) == 0 {
				p[i] = -1
			} else {
				p[i] = 1
			}
		}
		out[k] = p
	}

	return out
}

// mustHebb trains Hebbian weights or fails the test.
func mustHebb(t *testing.T, patterns ...bipolar.Pattern) *hopfield.Weights {
	t.Helper()
	w, err := hopfield.Hebb(patterns)
	require.NoError(t, err)

	return w
}

// at reads w[i][j] or fails the test.
func at(t *testing.T, w *hopfield.Weights, i, j int) float64 {
	t.Helper()
	v, err := w.At(i, j)
	require.NoError(t, err)

	return v
}

// requireZeroDiagonal asserts w[i][i] == 0 for every i.
func requireZeroDiagonal(t *testing.T, w *hopfield.Weights) {
	t.Helper()
	for i := 0; i < w.N(); i++ {
		require.Equal(t, 0.0, at(t, w, i, i), "diagonal %d", i)
	}
}
