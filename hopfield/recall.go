// SPDX-License-Identifier: MIT

package hopfield

import (
	"github.com/katalvlaran/hopfield/bipolar"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of one recall.
type Result struct {
	// Pattern is the final configuration (a fixed point when Converged).
	Pattern bipolar.Pattern

	// Sweeps is the number of sweeps executed, including the one that
	// confirmed the fixed point.
	Sweeps int

	// Converged is false when the iteration cap stopped the run; Pattern
	// is then the last computed configuration.
	Converged bool

	// Trace holds intermediate configurations when WithTrace(true).
	Trace []bipolar.Pattern
}

// Recall relaxes initial under w until a fixed point or the sweep cap.
// initial is never mutated.
//
// Errors (input only; non-convergence is not an error):
//   - ErrNilWeights, ErrOptionViolation.
//   - ErrLengthMismatch when len(initial) != w.N().
//   - ErrDomainViolation / ErrEmptySet from pattern validation.
func Recall(w *Weights, initial bipolar.Pattern, opts ...Option) (Result, error) {
	if w == nil {
		return Result{}, hopfieldErrorf(opRecall, ErrNilWeights)
	}
	o, err := gatherOptions(opts...)
	if err != nil {
		return Result{}, hopfieldErrorf(opRecall, err)
	}
	if err = w.checkState(initial); err != nil {
		return Result{}, hopfieldErrorf(opRecall, err)
	}

	if o.Mode == Asynchronous {
		return recallAsync(w, initial, o), nil
	}

	return recallSync(w, initial, o), nil
}

// recallSync runs frozen-snapshot sweeps. Two buffers alternate roles: cur
// holds sweep k's input, next receives its output.
func recallSync(w *Weights, initial bipolar.Pattern, o Options) Result {
	cur := initial.Clone()
	next := make(bipolar.Pattern, w.n)
	var res Result

	for sweep := 1; sweep <= o.MaxIterations; sweep++ {
		changed := w.syncSweep(cur, next, o.Workers)
		if o.Trace {
			res.Trace = append(res.Trace, next.Clone())
		}
		if o.OnSweep != nil {
			o.OnSweep(SweepEvent{Sweep: sweep, Changed: changed, State: next.Clone()})
		}
		res.Sweeps = sweep
		if changed == 0 {
			res.Pattern = next
			res.Converged = true

			return res
		}
		cur, next = next, cur
	}
	// Cap reached: cur holds the last computed configuration after the swap.
	res.Pattern = cur

	return res
}

// syncSweep writes the update of every neuron of cur into next and returns
// how many neurons changed. With workers > 1 the index range is split into
// contiguous chunks; each goroutine reads only cur and writes only its
// chunk of next.
func (w *Weights) syncSweep(cur, next bipolar.Pattern, workers int) int {
	n := w.n
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return w.updateRange(cur, next, 0, n)
	}

	counts := make([]int, workers)
	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	for k := 0; k < workers; k++ {
		k := k
		lo := k * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			counts[k] = w.updateRange(cur, next, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	total := 0
	for _, c := range counts {
		total += c
	}

	return total
}

// updateRange computes next[i] from cur for i in [lo, hi).
func (w *Weights) updateRange(cur, next bipolar.Pattern, lo, hi int) int {
	changed := 0
	for i := lo; i < hi; i++ {
		next[i] = activation(w.field(cur, i))
		if next[i] != cur[i] {
			changed++
		}
	}

	return changed
}

// recallAsync runs in-place sweeps in index order 0..n-1; each update sees
// the values already written earlier in the same sweep.
func recallAsync(w *Weights, initial bipolar.Pattern, o Options) Result {
	state := initial.Clone()
	var res Result

	for sweep := 1; sweep <= o.MaxIterations; sweep++ {
		flips := 0
		for i := 0; i < w.n; i++ {
			v := activation(w.field(state, i))
			if v == state[i] {
				continue
			}
			before := state[i]
			state[i] = v
			flips++
			if o.Trace {
				res.Trace = append(res.Trace, state.Clone())
			}
			if o.OnFlip != nil {
				o.OnFlip(FlipEvent{Sweep: sweep, Neuron: i, Before: before, After: v, State: state.Clone()})
			}
		}
		if o.OnSweep != nil {
			o.OnSweep(SweepEvent{Sweep: sweep, Changed: flips, State: state.Clone()})
		}
		res.Sweeps = sweep
		if flips == 0 {
			res.Converged = true
			break
		}
	}
	res.Pattern = state

	return res
}
