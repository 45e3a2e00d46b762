package hopfield

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/katalvlaran/hopfield/bipolar"
)

// DefaultCrossTalkThreshold is the |similarity| above which Train logs a
// warning about a pair of stored patterns.
const DefaultCrossTalkThreshold = 0.5

// Network is a Hopfield network of fixed size n. It owns its Weights
// exclusively; recall borrows them read-only.
type Network struct {
	mu       sync.RWMutex
	n        int
	weights  *Weights          // nil until the first successful Train
	patterns []bipolar.Pattern // copies of the last trained set

	logger    *slog.Logger
	algebra   LinearAlgebra
	crossTalk float64
}

// NetworkOption configures a Network at construction.
type NetworkOption func(*Network)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) NetworkOption {
	return func(nw *Network) {
		if l != nil {
			nw.logger = l
		}
	}
}

// WithLinearAlgebra replaces the matrix capability used by the pseudoinverse rule.
func WithLinearAlgebra(la LinearAlgebra) NetworkOption {
	return func(nw *Network) {
		if la != nil {
			nw.algebra = la
		}
	}
}

// WithCrossTalkThreshold sets the similarity threshold for training warnings.
// Values outside [0, 1] are ignored.
func WithCrossTalkThreshold(th float64) NetworkOption {
	return func(nw *Network) {
		if th >= 0 && th <= 1 {
			nw.crossTalk = th
		}
	}
}

// New creates an untrained network of n neurons.
func New(n int, opts ...NetworkOption) (*Network, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	nw := &Network{
		n:         n,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		crossTalk: DefaultCrossTalkThreshold,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(nw)
		}
	}

	return nw, nil
}

// Size returns n.
func (nw *Network) Size() int { return nw.n }

// Trained reports whether the network holds weights.
func (nw *Network) Trained() bool {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.weights != nil
}

// Weights returns the current weights, or nil if untrained. Weights are
// immutable, so the pointer stays valid after a later Train.
func (nw *Network) Weights() *Weights {
	nw.mu.RLock()
	defer nw.mu.RUnlock()

	return nw.weights
}

// Patterns returns copies of the last trained pattern set.
func (nw *Network) Patterns() []bipolar.Pattern {
	nw.mu.RLock()
	defer nw.mu.RUnlock()
	out := make([]bipolar.Pattern, len(nw.patterns))
	for i, p := range nw.patterns {
		out[i] = p.Clone()
	}

	return out
}

// Train replaces the network's weights with ones built from patterns under
// rule. On error the previous weights (possibly none) are kept untouched.
// Correlated pattern pairs are logged as warnings and never block training.
//
// Errors:
//   - ErrLengthMismatch when the pattern length differs from Size().
//   - ErrEmptySet, ErrDomainViolation, ErrLinearDependence, ErrOptionViolation.
func (nw *Network) Train(rule Rule, patterns []bipolar.Pattern) error {
	n, err := bipolar.ValidateSet(patterns)
	if err != nil {
		return hopfieldErrorf(opTrain, err)
	}
	if n != nw.n {
		return hopfieldErrorf(opTrain, fmt.Errorf("pattern length %d, network size %d: %w", n, nw.n, ErrLengthMismatch))
	}

	var w *Weights
	switch rule {
	case RuleHebb:
		w, err = Hebb(patterns)
	case RulePseudoinverse:
		if len(patterns) < 2 {
			nw.logger.Debug("pseudoinverse needs two or more patterns, using hebb", "patterns", len(patterns))
		}
		w, err = PseudoinverseWith(nw.algebra, patterns)
	default:
		err = fmt.Errorf("%w: unknown rule %d", ErrOptionViolation, int(rule))
	}
	if err != nil {
		nw.logger.Warn("training failed", "rule", rule.String(), "patterns", len(patterns), "err", err)
		return hopfieldErrorf(opTrain, err)
	}

	pairs, _ := bipolar.CrossTalk(patterns, nw.crossTalk) // set already validated
	for _, p := range pairs {
		nw.logger.Warn("stored patterns are strongly correlated",
			"i", p.I, "j", p.J, "similarity", p.Score, "threshold", nw.crossTalk)
	}

	stored := make([]bipolar.Pattern, len(patterns))
	for i, p := range patterns {
		stored[i] = p.Clone()
	}

	nw.mu.Lock()
	nw.weights = w
	nw.patterns = stored
	nw.mu.Unlock()

	nw.logger.Debug("network trained", "rule", w.Rule().String(), "patterns", len(patterns), "n", n)

	return nil
}

// TrainHebb is Train(RuleHebb, patterns).
func (nw *Network) TrainHebb(patterns []bipolar.Pattern) error {
	return nw.Train(RuleHebb, patterns)
}

// TrainPseudoinverse is Train(RulePseudoinverse, patterns).
func (nw *Network) TrainPseudoinverse(patterns []bipolar.Pattern) error {
	return nw.Train(RulePseudoinverse, patterns)
}

// Recall runs Recall against the current weights.
// Returns ErrUntrained before the first successful Train.
func (nw *Network) Recall(initial bipolar.Pattern, opts ...Option) (Result, error) {
	w := nw.Weights()
	if w == nil {
		return Result{}, hopfieldErrorf(opRecall, ErrUntrained)
	}
	res, err := Recall(w, initial, opts...)
	if err != nil {
		return res, err
	}
	nw.logger.Debug("recall finished", "sweeps", res.Sweeps, "converged", res.Converged)

	return res, nil
}

// RecallSynchronous recalls with frozen-snapshot sweeps and returns the
// recovered pattern (best effort when the cap is hit).
func (nw *Network) RecallSynchronous(initial bipolar.Pattern, maxIterations int) (bipolar.Pattern, error) {
	res, err := nw.Recall(initial, WithMode(Synchronous), WithMaxIterations(maxIterations))
	if err != nil {
		return nil, err
	}

	return res.Pattern, nil
}

// RecallAsynchronous recalls with in-place sequential sweeps and returns
// the recovered pattern.
func (nw *Network) RecallAsynchronous(initial bipolar.Pattern, maxIterations int) (bipolar.Pattern, error) {
	res, err := nw.Recall(initial, WithMode(Asynchronous), WithMaxIterations(maxIterations))
	if err != nil {
		return nil, err
	}

	return res.Pattern, nil
}
