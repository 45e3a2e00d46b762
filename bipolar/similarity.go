package bipolar

import (
	"fmt"
	"math"
)

// Orthogonality is the outcome of comparing two stored memories.
type Orthogonality struct {
	// Score is the normalized dot product in [-1, 1].
	Score float64

	// Warn is set when |Score| exceeds the threshold: the two memories are
	// correlated enough to risk spurious or confused recall states.
	Warn bool
}

// Pair identifies two patterns of a set by index, with their check result.
type Pair struct {
	I, J int
	Orthogonality
}

// Similarity returns Σ p1[i]·p2[i] / n.
//
// Errors:
//   - ErrLengthMismatch when lengths differ.
//   - ErrEmptySet when both are empty.
//   - ErrDomainViolation when either holds an element outside {-1,+1}.
//
// Complexity: O(n).
func Similarity(p1, p2 Pattern) (float64, error) {
	if len(p1) != len(p2) {
		return 0, fmt.Errorf("similarity: %d vs %d: %w", len(p1), len(p2), ErrLengthMismatch)
	}
	if err := p1.Validate(); err != nil {
		return 0, fmt.Errorf("similarity: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return 0, fmt.Errorf("similarity: %w", err)
	}
	dot := 0
	for i := range p1 {
		dot += p1[i] * p2[i]
	}

	return float64(dot) / float64(len(p1)), nil
}

// CheckOrthogonality scores p1 against p2 and flags the pair when
// |similarity| > threshold. The flag is advisory.
func CheckOrthogonality(p1, p2 Pattern, threshold float64) (Orthogonality, error) {
	s, err := Similarity(p1, p2)
	if err != nil {
		return Orthogonality{}, err
	}

	return Orthogonality{Score: s, Warn: math.Abs(s) > threshold}, nil
}

// CrossTalk runs CheckOrthogonality over every unordered pair (i<j) of the
// set and returns the pairs that were flagged, in (i, j) order.
//
// Complexity: O(q²·n) for q patterns of length n.
func CrossTalk(patterns []Pattern, threshold float64) ([]Pair, error) {
	if _, err := ValidateSet(patterns); err != nil {
		return nil, err
	}
	var flagged []Pair
	for i := 0; i < len(patterns); i++ {
		for j := i + 1; j < len(patterns); j++ {
			o, err := CheckOrthogonality(patterns[i], patterns[j], threshold)
			if err != nil {
				return nil, err
			}
			if o.Warn {
				flagged = append(flagged, Pair{I: i, J: j, Orthogonality: o})
			}
		}
	}

	return flagged, nil
}

// SimilarityTable returns the full q×q similarity table of a pattern set.
// The diagonal is 1 by construction.
func SimilarityTable(patterns []Pattern) ([][]float64, error) {
	if _, err := ValidateSet(patterns); err != nil {
		return nil, err
	}
	q := len(patterns)
	out := make([][]float64, q)
	for i := range out {
		out[i] = make([]float64, q)
	}
	for i := 0; i < q; i++ {
		out[i][i] = 1
		for j := i + 1; j < q; j++ {
			s, err := Similarity(patterns[i], patterns[j])
			if err != nil {
				return nil, err
			}
			out[i][j], out[j][i] = s, s
		}
	}

	return out, nil
}
