// Package hopfield implements a Hopfield associative memory over bipolar
// patterns: weight-matrix training and recall by iterative relaxation.
//
// 🚀 What is a Hopfield network?
//
//	n fully connected binary neurons with symmetric weights and no
//	self-connections. Training shapes the weights so that stored patterns
//	become fixed points; recall starts from a damaged probe and repeatedly
//	updates neurons until the configuration stops changing.
//
// ✨ Training rules (pure functions; each call returns fresh Weights):
//   - Hebb:          w[i][j] = Σ_p p[i]·p[j], diagonal 0, raw integer sums.
//   - Pseudoinverse: W = U·(UᵀU)⁻¹·Uᵀ with zeroed diagonal, ternarized to
//     {−1, 0, +1} at ε = 0.01. Fails with ErrLinearDependence when UᵀU is
//     singular; falls back to Hebb for fewer than two patterns.
//
// ✨ Recall disciplines:
//   - Synchronous:  every neuron reads the previous frozen configuration;
//     s'[i] = +1 if Σ W[i][j]·s[j] ≥ 0 else −1. Stops at s' == s or after
//     MaxIterations sweeps. Period-2 oscillations are possible and are not
//     detected; the iteration cap is the correctness boundary.
//   - Asynchronous: neurons 0..n−1 in order, updated in place (each reads
//     the already-updated lower indices). Stops after a sweep with zero
//     flips or at the cap. Energy never increases across flips.
//
// Recall never fails for lack of convergence: it returns the last
// configuration with Converged=false. Observers (WithOnSweep, WithOnFlip)
// and WithTrace expose intermediate states; the package itself never prints.
//
// ⚙️ Usage:
//
//	nw, _ := hopfield.New(9)
//	if err := nw.Train(hopfield.RuleHebb, patterns); err != nil { ... }
//	res, err := nw.Recall(probe,
//	    hopfield.WithMode(hopfield.Asynchronous),
//	    hopfield.WithMaxIterations(9),
//	    hopfield.WithTrace(true))
//
// Concurrency:
//
//	Weights are immutable once built. A Network guards its current Weights
//	with an RWMutex, so Train and Recall may be called from different
//	goroutines. WithWorkers parallelizes the neurons of one synchronous sweep;
//	sweeps stay strictly ordered and asynchronous recall is always sequential.
package hopfield
