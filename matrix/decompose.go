// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// LU computes the Doolittle factorization A = L·U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: validate m (not nil, square); allocate L, U; set diag(L)=1.
//   - Stage 2: for i=0..n-1 build row i of U, check the pivot, then build
//     column i of L.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrSingular when |U[i,i]| <= pivot tolerance (see WithPivotTolerance).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Without pivoting the kernel is only safe on matrices whose leading
//     minors are non-singular; symmetric positive-definite inputs such as
//     Gram matrices of independent vectors always qualify.
func LU(m Matrix, opts ...Option) (Matrix, Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	a, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	L, _ := NewDense(n, n) // shape already validated
	U, _ := NewDense(n, n)
	for i := 0; i < n; i++ {
		L.data[i*n+i] = 1.0
	}

	var sum, pivot float64
	for i := 0; i < n; i++ {
		// Row i of U.
		for j := i; j < n; j++ {
			sum = zeroSum
			for k := 0; k < i; k++ {
				sum += L.data[i*n+k] * U.data[k*n+j]
			}
			U.data[i*n+j] = a.data[i*n+j] - sum
		}

		pivot = U.data[i*n+i]
		if math.Abs(pivot) <= o.pivotTol {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("pivot %d = %g: %w", i, pivot, ErrSingular))
		}

		// Column i of L.
		for j := i + 1; j < n; j++ {
			sum = zeroSum
			for k := 0; k < i; k++ {
				sum += L.data[j*n+k] * U.data[k*n+i]
			}
			L.data[j*n+i] = (a.data[j*n+i] - sum) / pivot
		}
	}

	return L, U, nil
}

// Inverse returns A⁻¹ via LU and per-column forward/backward substitution.
//
// Implementation:
//   - Stage 1: LU(m, opts...) — singularity is detected here.
//   - Stage 2: for each identity column e_col solve L·y = e_col, then U·x = y.
//   - Stage 3: write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	Lm, Um, err := LU(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	L, U := Lm.(*Dense), Um.(*Dense)

	n := L.r
	inv, _ := NewDense(n, n)
	y := make([]float64, n)
	x := make([]float64, n)
	var sum float64
	for col := 0; col < n; col++ {
		// Forward substitution (unit lower triangular).
		for i := 0; i < n; i++ {
			sum = zeroSum
			for k := 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if i == col {
				y[i] = 1.0 - sum
			} else {
				y[i] = zeroSum - sum // avoids -0 in printed results
			}
		}
		// Backward substitution; pivots were checked by LU.
		for i := n - 1; i >= 0; i-- {
			sum = zeroSum
			for k := i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i]
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// denseCopy materializes any Matrix as a *Dense so kernels can use flat indexing.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}
