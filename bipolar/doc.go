// Package bipolar defines the Pattern type stored by Hopfield networks and
// the advisory similarity checks run over pattern sets.
//
// A Pattern is a fixed-length vector whose every element is −1 or +1.
// Every exported operation validates its inputs and reports problems with
// sentinel errors:
//
//   - ErrEmptySet        — no patterns (or an empty pattern) supplied.
//   - ErrLengthMismatch  — patterns of different lengths compared or mixed.
//   - ErrDomainViolation — an element outside {−1, +1}.
//
// Similarity is the normalized dot product Σ p1[i]·p2[i] / n ∈ [−1, 1].
// CheckOrthogonality and CrossTalk flag pairs whose |similarity| exceeds a
// threshold; such pairs are likely to produce spurious or confused recall
// states, but the check never blocks training.
package bipolar
