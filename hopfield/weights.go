// SPDX-License-Identifier: MIT

package hopfield

import (
	"fmt"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/matrix"
)

// Weights is an immutable n×n synaptic matrix with a zero diagonal.
// Entries are stored row-major; Matrix returns an independent *matrix.Dense.
type Weights struct {
	n    int
	rule Rule
	data []float64 // len n*n, row-major; never mutated after construction
}

// newWeights takes ownership of data and forces the diagonal to zero.
func newWeights(n int, rule Rule, data []float64) *Weights {
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return &Weights{n: n, rule: rule, data: data}
}

// N returns the number of neurons.
func (w *Weights) N() int { return w.n }

// Rule returns the rule that produced the weights.
func (w *Weights) Rule() Rule { return w.rule }

// At returns w[i][j], or matrix.ErrOutOfRange for invalid indices.
func (w *Weights) At(i, j int) (float64, error) {
	if i < 0 || i >= w.n || j < 0 || j >= w.n {
		return 0, fmt.Errorf("Weights.At(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}

	return w.data[i*w.n+j], nil
}

// Row returns a copy of row i.
func (w *Weights) Row(i int) ([]float64, error) {
	if i < 0 || i >= w.n {
		return nil, fmt.Errorf("Weights.Row(%d): %w", i, matrix.ErrOutOfRange)
	}
	out := make([]float64, w.n)
	copy(out, w.data[i*w.n:(i+1)*w.n])

	return out, nil
}

// Matrix returns a copy of the weights as a dense matrix.
func (w *Weights) Matrix() *matrix.Dense {
	d, _ := matrix.NewDenseData(w.n, w.n, w.data) // shape and values valid by construction

	return d
}

// IsSymmetric reports whether w[i][j] == w[j][i] for all pairs.
// Hebbian weights are always symmetric; pseudoinverse weights usually are.
func (w *Weights) IsSymmetric() bool {
	ok, _ := matrix.IsSymmetric(w.Matrix(), 0)

	return ok
}

// Energy returns E(s) = −½ Σ_i Σ_j w[i][j]·s[i]·s[j].
// With symmetric zero-diagonal weights a single asynchronous flip never
// increases E.
func (w *Weights) Energy(s bipolar.Pattern) (float64, error) {
	if err := w.checkState(s); err != nil {
		return 0, err
	}
	h, err := matrix.MatVec(w.Matrix(), s.Floats())
	if err != nil {
		return 0, err
	}
	e := 0.0
	for i, hi := range h {
		e += float64(s[i]) * hi
	}

	return -0.5 * e, nil
}

// checkState validates a probe against the network size and domain.
func (w *Weights) checkState(s bipolar.Pattern) error {
	if len(s) != w.n {
		return fmt.Errorf("pattern length %d, network size %d: %w", len(s), w.n, ErrLengthMismatch)
	}

	return s.Validate()
}

// field computes the local field h_i = Σ_j w[i][j]·s[j].
func (w *Weights) field(s bipolar.Pattern, i int) float64 {
	row := w.data[i*w.n : (i+1)*w.n]
	h := 0.0
	for j, wij := range row {
		h += wij * float64(s[j])
	}

	return h
}

// activation is the recall threshold: ties at zero resolve to +1.
func activation(h float64) int {
	if h >= 0 {
		return 1
	}

	return -1
}
