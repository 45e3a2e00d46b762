package hopfield

import "github.com/katalvlaran/hopfield/bipolar"

// Hebb builds weights with the Hebbian outer-product rule:
//
//	w[i][j] = Σ_p p[i]·p[j]   for i ≠ j,   w[i][i] = 0.
//
// No normalization by q or n is applied. Each call returns a fresh matrix;
// nothing accumulates between calls, so training twice on the same set
// yields the same weights rather than doubled ones.
//
// Errors:
//   - ErrEmptySet, ErrLengthMismatch, ErrDomainViolation.
//
// Complexity:
//   - Time O(q·n²), Space O(n²).
func Hebb(patterns []bipolar.Pattern) (*Weights, error) {
	n, err := bipolar.ValidateSet(patterns)
	if err != nil {
		return nil, hopfieldErrorf(opHebb, err)
	}

	data := make([]float64, n*n)
	for _, p := range patterns {
		for i := 0; i < n; i++ {
			pi := float64(p[i])
			row := data[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				if i != j {
					row[j] += pi * float64(p[j])
				}
			}
		}
	}

	return newWeights(n, RuleHebb, data), nil
}
