package hopfield

import (
	"fmt"

	"github.com/katalvlaran/hopfield/bipolar"
)

// DefaultMaxIterations caps recall sweeps when WithMaxIterations is not given.
const DefaultMaxIterations = 100

// SweepEvent is delivered once per completed sweep.
type SweepEvent struct {
	Sweep   int             // 1-based sweep number
	Changed int             // neurons whose value differs from the sweep's start
	State   bipolar.Pattern // configuration after the sweep (a copy)
}

// FlipEvent is delivered for every asynchronous neuron flip.
type FlipEvent struct {
	Sweep  int             // 1-based sweep number
	Neuron int             // index of the flipped neuron
	Before int             // value before the update
	After  int             // value after the update
	State  bipolar.Pattern // configuration right after the flip (a copy)
}

// Option configures Recall via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Recall runs.
type Option func(*Options)

// Options holds the recall parameters and observer hooks.
type Options struct {
	// Mode selects synchronous or asynchronous updates.
	Mode Mode

	// MaxIterations bounds the number of sweeps (> 0).
	MaxIterations int

	// Trace records intermediate configurations in Result.Trace: one per
	// sweep (synchronous) or one per neuron flip (asynchronous).
	Trace bool

	// Workers splits one synchronous sweep across goroutines (>= 1).
	// Ignored for asynchronous recall.
	Workers int

	// OnSweep, if set, is called after every sweep.
	OnSweep func(SweepEvent)

	// OnFlip, if set, is called after every asynchronous flip.
	OnFlip func(FlipEvent)

	err error
}

// DefaultOptions returns synchronous recall, DefaultMaxIterations sweeps,
// no trace, one worker and no hooks.
func DefaultOptions() Options {
	return Options{
		Mode:          Synchronous,
		MaxIterations: DefaultMaxIterations,
		Workers:       1,
	}
}

// WithMode selects the update discipline.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != Synchronous && m != Asynchronous {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithMaxIterations sets the sweep cap; k must be positive.
func WithMaxIterations(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxIterations = k
	}
}

// WithTrace toggles recording of intermediate configurations.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithWorkers parallelizes each synchronous sweep over k goroutines.
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithOnSweep registers a per-sweep observer.
func WithOnSweep(fn func(SweepEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}

// WithOnFlip registers a per-flip observer (asynchronous recall only).
func WithOnFlip(fn func(FlipEvent)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFlip = fn
		}
	}
}

// gatherOptions applies opts over DefaultOptions and reports the first violation.
func gatherOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn == nil {
			continue
		}
		fn(&o)
		if o.err != nil {
			return o, o.err
		}
	}

	return o, nil
}
