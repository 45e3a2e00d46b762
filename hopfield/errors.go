package hopfield

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hopfield/bipolar"
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrLinearDependence is returned by the pseudoinverse rule when the
	// patterns are linearly dependent (UᵀU singular). Recoverable: retry
	// with Hebb or a different pattern set.
	ErrLinearDependence = errors.New("hopfield: patterns are linearly dependent")

	// ErrUntrained is returned when recalling on a network without weights.
	ErrUntrained = errors.New("hopfield: network is not trained")

	// ErrInvalidSize is returned when a network is created with n <= 0.
	ErrInvalidSize = errors.New("hopfield: network size must be > 0")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hopfield: invalid option supplied")

	// ErrNilWeights is returned when Recall receives nil weights.
	ErrNilWeights = errors.New("hopfield: nil weights")
)

// Input errors are shared with package bipolar so one errors.Is check
// covers both layers.
var (
	ErrLengthMismatch  = bipolar.ErrLengthMismatch
	ErrDomainViolation = bipolar.ErrDomainViolation
	ErrEmptySet        = bipolar.ErrEmptySet
)

// Operation tags used in error wrapping.
const (
	opHebb   = "Hebb"
	opPinv   = "Pseudoinverse"
	opRecall = "Recall"
	opTrain  = "Train"
)

// hopfieldErrorf wraps err with an operation tag. Call only with a non-nil err.
func hopfieldErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
