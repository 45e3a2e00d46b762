// SPDX-License-Identifier: MIT
// Package matrix provides products and transposition on any Matrix
// implementation. Every kernel validates its operands first, allocates a
// fresh *Dense result and never mutates its inputs.

package matrix

import "fmt"

// zeroSum is the initial accumulator for dot products and substitutions.
const zeroSum = 0.0

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: validate non-nil operands and A.Cols == B.Rows.
//   - Stage 2: *Dense × *Dense runs i→k→j over the flat buffers, skipping
//     zero A[i,k]; anything else falls back to i→j→k over At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var av float64
		for i := 0; i < rows; i++ {
			outRow := out.data[i*cols : (i+1)*cols]
			for k := 0; k < inner; k++ {
				av = da.data[i*inner+k]
				if av == 0 {
					continue
				}
				bRow := db.data[k*cols : (k+1)*cols]
				for j := range outRow {
					outRow[j] += av * bRow[j]
				}
			}
		}

		return out, nil
	}

	// Fallback: generic interface loop (i-j-k).
	var av, bv, acc float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			acc = zeroSum
			for k := 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			out.data[i*cols+j] = acc
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				out.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return out, nil
	}

	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out.data[j*rows+i] = v
		}
	}

	return out, nil
}

// MatVec computes y = m·x.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != m.Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, rows)

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			acc := zeroSum
			row := dm.data[i*cols : (i+1)*cols]
			for j, w := range row {
				acc += w * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	for i := 0; i < rows; i++ {
		acc := zeroSum
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}
