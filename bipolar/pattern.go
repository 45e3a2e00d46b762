// SPDX-License-Identifier: MIT

package bipolar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for pattern validation.
var (
	// ErrEmptySet is returned when no patterns, or a zero-length pattern, are supplied.
	ErrEmptySet = errors.New("bipolar: empty pattern set")

	// ErrLengthMismatch is returned when patterns of unequal length are combined.
	ErrLengthMismatch = errors.New("bipolar: pattern length mismatch")

	// ErrDomainViolation is returned when an element is neither -1 nor +1.
	ErrDomainViolation = errors.New("bipolar: element outside {-1, +1}")
)

// Glyphs accepted by Parse and produced by Pattern.String.
const (
	On  = '+'
	Off = '-'
)

// Pattern is a bipolar vector. Elements must be -1 or +1.
type Pattern []int

// Validate reports ErrEmptySet for a zero-length pattern and
// ErrDomainViolation (with the offending index) for any element outside {-1,+1}.
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return ErrEmptySet
	}
	for i, v := range p {
		if v != 1 && v != -1 {
			return fmt.Errorf("index %d = %d: %w", i, v, ErrDomainViolation)
		}
	}

	return nil
}

// Len returns the number of neurons the pattern spans.
func (p Pattern) Len() int { return len(p) }

// Clone returns an independent copy.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	out := make(Pattern, len(p))
	copy(out, p)

	return out
}

// Equal reports whether p and q have the same length and elements.
func (p Pattern) Equal(q Pattern) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Floats converts the pattern to a float64 vector for the matrix kernels.
func (p Pattern) Floats() []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = float64(v)
	}

	return out
}

// String renders the pattern as a run of '+' and '-' glyphs.
func (p Pattern) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, v := range p {
		if v == 1 {
			sb.WriteByte(On)
		} else {
			sb.WriteByte(Off)
		}
	}

	return sb.String()
}

// Parse builds a Pattern from '+'/'-' glyphs. Whitespace and '|' are ignored
// so rows can be written as "+-+ | -+- | +-+".
func Parse(s string) (Pattern, error) {
	out := make(Pattern, 0, len(s))
	for i, r := range s {
		switch r {
		case On:
			out = append(out, 1)
		case Off:
			out = append(out, -1)
		case ' ', '\t', '\n', '|':
		default:
			return nil, fmt.Errorf("parse: rune %q at byte %d: %w", r, i, ErrDomainViolation)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("parse: %w", ErrEmptySet)
	}

	return out, nil
}

// ValidateSet checks a non-empty set of valid patterns sharing one length
// and returns that length.
func ValidateSet(patterns []Pattern) (int, error) {
	if len(patterns) == 0 {
		return 0, ErrEmptySet
	}
	n := len(patterns[0])
	for k, p := range patterns {
		if len(p) != n {
			return 0, fmt.Errorf("pattern %d has length %d, want %d: %w", k, len(p), n, ErrLengthMismatch)
		}
		if err := p.Validate(); err != nil {
			return 0, fmt.Errorf("pattern %d: %w", k, err)
		}
	}

	return n, nil
}

// Complement returns a copy with every element negated.
func Complement(p Pattern) Pattern {
	out := make(Pattern, len(p))
	for i, v := range p {
		out[i] = -v
	}

	return out
}

// Flip returns a copy of p with the elements at idx negated; it models a
// damaged or noisy probe. Indices outside p are reported as an error.
func Flip(p Pattern, idx ...int) (Pattern, error) {
	out := p.Clone()
	for _, i := range idx {
		if i < 0 || i >= len(out) {
			return nil, fmt.Errorf("flip: index %d outside [0,%d)", i, len(out))
		}
		out[i] = -out[i]
	}

	return out, nil
}

// Hamming counts positions where p and q differ.
func Hamming(p, q Pattern) (int, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("hamming: %d vs %d: %w", len(p), len(q), ErrLengthMismatch)
	}
	d := 0
	for i := range p {
		if p[i] != q[i] {
			d++
		}
	}

	return d, nil
}
