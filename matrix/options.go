// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the factorization kernels.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: constructors panic only on nonsensical values
//     (programmer error), never on data.
package matrix

import "math"

// DefaultPivotTolerance is the magnitude at or below which an LU pivot is
// treated as zero. Exact zero keeps the kernel's historical behavior.
const DefaultPivotTolerance = 0.0

const panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	pivotTol float64 // >= 0; DefaultPivotTolerance
}

// WithPivotTolerance sets the singularity threshold for LU and Inverse:
// a pivot p with |p| <= tol yields ErrSingular.
// Panics if tol is negative, NaN or Inf.
func WithPivotTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// gatherOptions resolves defaults and then applies opts left to right.
func gatherOptions(opts ...Option) Options {
	o := Options{pivotTol: DefaultPivotTolerance}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
