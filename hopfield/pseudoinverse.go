// SPDX-License-Identifier: MIT

package hopfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/matrix"
)

// TernaryEpsilon is the dead zone used to ternarize pseudoinverse weights:
// v > ε → +1, v < −ε → −1, otherwise 0. Rounding to the nearest integer
// would turn numerical noise around ±0.5 into spurious connections.
const TernaryEpsilon = 0.01

// gramPivotScale scales the Gram-matrix pivot tolerance by n. Gram entries
// are integers bounded by n, so anything below n·1e-9 is drift, not signal.
const gramPivotScale = 1e-9

// LinearAlgebra is the capability the pseudoinverse rule needs over real
// matrices. Implementations report a singular input to Inverse with an
// error matching matrix.ErrSingular.
type LinearAlgebra interface {
	Mul(a, b matrix.Matrix) (matrix.Matrix, error)
	Transpose(m matrix.Matrix) (matrix.Matrix, error)
	Inverse(m matrix.Matrix) (matrix.Matrix, error)
}

// DenseAlgebra implements LinearAlgebra with package matrix.
// PivotTolerance is forwarded to matrix.WithPivotTolerance (0 = exact zero).
// PseudoinverseWith checks the Gram matrix rank itself, so a small or zero
// tolerance never lets dependent patterns through. A negative, NaN or Inf
// tolerance makes Inverse fail with ErrOptionViolation.
type DenseAlgebra struct {
	PivotTolerance float64
}

var _ LinearAlgebra = DenseAlgebra{}

// Mul delegates to matrix.Mul.
func (DenseAlgebra) Mul(a, b matrix.Matrix) (matrix.Matrix, error) { return matrix.Mul(a, b) }

// Transpose delegates to matrix.Transpose.
func (DenseAlgebra) Transpose(m matrix.Matrix) (matrix.Matrix, error) { return matrix.Transpose(m) }

// Inverse delegates to matrix.Inverse with the configured pivot tolerance.
func (a DenseAlgebra) Inverse(m matrix.Matrix) (matrix.Matrix, error) {
	tol := a.PivotTolerance
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		return nil, fmt.Errorf("%w: pivot tolerance %g", ErrOptionViolation, tol)
	}

	return matrix.Inverse(m, matrix.WithPivotTolerance(tol))
}

// checkGramRank fails with ErrLinearDependence unless the q×q Gram matrix
// of patterns of length n has full rank. G is positive definite exactly when
// the patterns are independent, so unpivoted LU pivots stay above n·1e-9;
// a dependent set leaves a pivot at rounding level.
func checkGramRank(gram matrix.Matrix, n int) error {
	_, _, err := matrix.LU(gram, matrix.WithPivotTolerance(gramPivotScale*float64(n)))
	if err == nil {
		return nil
	}
	if errors.Is(err, matrix.ErrSingular) {
		return fmt.Errorf("%w: %w", ErrLinearDependence, err)
	}

	return err
}

// Pseudoinverse builds weights with the default DenseAlgebra.
// See PseudoinverseWith.
func Pseudoinverse(patterns []bipolar.Pattern) (*Weights, error) {
	return PseudoinverseWith(nil, patterns)
}

// PseudoinverseWith builds weights with the Moore-Penrose projection rule
// using la (nil selects DenseAlgebra sized to the pattern length).
//
// Implementation:
//   - Stage 1: validate the set; q < 2 falls back to Hebb (no advantage
//     over the Hebbian rule for a single memory).
//   - Stage 2: U is n×q with the patterns as columns; G = Uᵀ·U.
//   - Stage 3: a rank check on G (tolerance n·1e-9, independent of la)
//     rejects dependent patterns; then U† = G⁻¹·Uᵀ.
//   - Stage 4: W = U·U†, diagonal zeroed, entries ternarized at TernaryEpsilon.
//
// Errors:
//   - ErrEmptySet, ErrLengthMismatch, ErrDomainViolation.
//   - ErrLinearDependence when q > n or G is singular. No weights are returned.
//
// Complexity:
//   - Time O(n²·q + q³), Space O(n²).
func PseudoinverseWith(la LinearAlgebra, patterns []bipolar.Pattern) (*Weights, error) {
	n, err := bipolar.ValidateSet(patterns)
	if err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}
	q := len(patterns)
	if q < 2 {
		return Hebb(patterns)
	}
	if q > n {
		return nil, hopfieldErrorf(opPinv, fmt.Errorf("%d patterns exceed rank bound %d: %w", q, n, ErrLinearDependence))
	}
	if la == nil {
		la = DenseAlgebra{PivotTolerance: gramPivotScale * float64(n)}
	}

	// U: column k is pattern k.
	u, err := matrix.NewDense(n, q)
	if err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}
	for k, p := range patterns {
		for i, v := range p {
			if err = u.Set(i, k, float64(v)); err != nil {
				return nil, hopfieldErrorf(opPinv, err)
			}
		}
	}

	ut, err := la.Transpose(u)
	if err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}
	gram, err := la.Mul(ut, u)
	if err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}
	if err = checkGramRank(gram, n); err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}
	gramInv, err := la.Inverse(gram)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, hopfieldErrorf(opPinv, fmt.Errorf("%w: %w", ErrLinearDependence, err))
		}
		return nil, hopfieldErrorf(opPinv, err)
	}
	pinv, err := la.Mul(gramInv, ut) // q×n
	if err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}
	proj, err := la.Mul(u, pinv) // n×n
	if err != nil {
		return nil, hopfieldErrorf(opPinv, err)
	}

	data := make([]float64, n*n)
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			if v, err = proj.At(i, j); err != nil {
				return nil, hopfieldErrorf(opPinv, err)
			}
			data[i*n+j] = ternarize(v)
		}
	}

	return newWeights(n, RulePseudoinverse, data), nil
}

// ternarize maps v to {-1, 0, +1} with a ±TernaryEpsilon dead zone.
func ternarize(v float64) float64 {
	switch {
	case v > TernaryEpsilon:
		return 1
	case v < -TernaryEpsilon:
		return -1
	default:
		return 0
	}
}
