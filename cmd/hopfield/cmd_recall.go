package main

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/config"
	"github.com/katalvlaran/hopfield/hopfield"
	"github.com/katalvlaran/hopfield/logging"
	"github.com/spf13/cobra"
)

func newRecallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recall",
		Short: "Train on the stored patterns and recall every probe",
		Long: `Trains a network on the scenario's patterns, then relaxes each probe
until it reaches a fixed point or the sweep cap.

Flags override the scenario file. Extra probes may be given inline:
  hopfield recall --probe "+-+ | --- | +-+" --mode async`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			s, err := config.Load(path)
			if err != nil {
				return err
			}
			if err = applyRecallFlags(cmd, s); err != nil {
				return err
			}
			rc, err := newRunContext(cmd, s)
			if err != nil {
				return err
			}

			return runRecall(cmd.OutOrStdout(), rc)
		},
	}

	cmd.Flags().String("rule", "", "Training rule: hebb or pseudoinverse")
	cmd.Flags().String("mode", "", "Recall mode: synchronous or asynchronous")
	cmd.Flags().Int("max-iterations", 0, "Maximum number of sweeps")
	cmd.Flags().Bool("trace", false, "Print every intermediate configuration")
	cmd.Flags().Int("workers", 0, "Goroutines per synchronous sweep")
	cmd.Flags().StringArray("probe", nil, "Extra probe as '+'/'-' glyphs (repeatable)")
	cmd.Flags().Bool("cells", false, "Draw every cell in its own box")
	cmd.Flags().String("events", "", "Append recall events as JSONL (debug or trace level)")

	return cmd
}

// applyRecallFlags copies explicitly set flags into the scenario.
func applyRecallFlags(cmd *cobra.Command, s *config.Scenario) error {
	f := cmd.Flags()
	if lvl, _ := f.GetString("log-level"); lvl != "" {
		s.Logging.Level = lvl
	}
	if f.Changed("rule") {
		s.Network.Rule, _ = f.GetString("rule")
	}
	if f.Changed("mode") {
		s.Recall.Mode, _ = f.GetString("mode")
	}
	if f.Changed("max-iterations") {
		s.Recall.MaxIterations, _ = f.GetInt("max-iterations")
	}
	if f.Changed("trace") {
		s.Recall.Trace, _ = f.GetBool("trace")
	}
	if f.Changed("workers") {
		s.Recall.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("cells") {
		s.Display.Cells, _ = f.GetBool("cells")
	}
	if f.Changed("events") {
		s.Logging.Events, _ = f.GetString("events")
	}
	probes, err := f.GetStringArray("probe")
	if err != nil {
		return err
	}
	for i, p := range probes {
		s.Probes = append(s.Probes, config.Probe{Name: fmt.Sprintf("inline-%d", i+1), Value: p})
	}

	return nil
}

func runRecall(out io.Writer, rc *runContext) error {
	s := rc.scenario
	nw, err := rc.train()
	if err != nil {
		return err
	}
	probes, err := s.ResolveProbes()
	if err != nil {
		return err
	}
	if len(probes) == 0 {
		// Nothing to repair: recall every stored pattern as its own probe.
		for i, p := range rc.patterns {
			probes = append(probes, config.ResolvedProbe{Name: patternName(s, i), Pattern: p})
		}
	}

	events, err := logging.OpenEventLog(s.Logging.Events, s.Logging.Level)
	if err != nil {
		return err
	}
	defer events.Close()

	opts, err := s.RecallOptions()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Stored patterns (%s)", nw.Weights().Rule())))
	grids := make([]string, len(rc.patterns))
	for i, p := range rc.patterns {
		g, err := rc.grid(p)
		if err != nil {
			return err
		}
		grids[i] = labeled(patternName(s, i), g)
	}
	fmt.Fprintln(out, sideBySide(grids...))

	for _, pr := range probes {
		if err = recallProbe(out, rc, nw, pr, events, opts); err != nil {
			return err
		}
	}

	return nil
}

func recallProbe(out io.Writer, rc *runContext, nw *hopfield.Network, pr config.ResolvedProbe,
	events *logging.EventLog, opts []hopfield.Option) error {
	logger := rc.logger.With("probe", pr.Name)
	hooks := []hopfield.Option{
		hopfield.WithOnSweep(func(e hopfield.SweepEvent) {
			logger.Debug("sweep", "sweep", e.Sweep, "changed", e.Changed)
			events.Log(map[string]any{
				"run_id": rc.runID, "probe": pr.Name, "event": "sweep",
				"sweep": e.Sweep, "changed": e.Changed, "state": e.State.String(),
			})
		}),
		hopfield.WithOnFlip(func(e hopfield.FlipEvent) {
			logger.Log(context.Background(), logging.LevelTrace, "flip", "sweep", e.Sweep, "neuron", e.Neuron, "after", e.After)
			events.Log(map[string]any{
				"run_id": rc.runID, "probe": pr.Name, "event": "flip",
				"sweep": e.Sweep, "neuron": e.Neuron, "before": e.Before, "after": e.After,
			})
		}),
	}

	g, err := rc.grid(pr.Pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Probe "+pr.Name))
	fmt.Fprint(out, g)

	res, err := nw.Recall(pr.Pattern, append(append([]hopfield.Option{}, opts...), hooks...)...)
	if err != nil {
		return fmt.Errorf("recall %s: %w", pr.Name, err)
	}

	for i, st := range res.Trace {
		g, err = rc.grid(st)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("Step %d:", i+1)))
		fmt.Fprint(out, g)
	}

	if res.Converged {
		fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✓ stable pattern reached after %d sweeps", res.Sweeps)))
	} else {
		fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠ no fixed point within %d sweeps", res.Sweeps)))
	}

	g, err = rc.grid(res.Pattern)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, titleStyle.Render("Recovered")+" "+describeMatch(rc, res.Pattern))
	fmt.Fprint(out, g)
	logger.Info("recall finished", "sweeps", res.Sweeps, "converged", res.Converged)

	return nil
}

// describeMatch names the closest stored pattern by Hamming distance.
func describeMatch(rc *runContext, p bipolar.Pattern) string {
	best, bestD := -1, len(p)+1
	for i, q := range rc.patterns {
		if d, err := bipolar.Hamming(p, q); err == nil && d < bestD {
			best, bestD = i, d
		}
	}
	if best < 0 {
		return ""
	}
	name := patternName(rc.scenario, best)
	if bestD == 0 {
		return mutedStyle.Render(fmt.Sprintf("(matches %s)", name))
	}

	return mutedStyle.Render(fmt.Sprintf("(closest: %s, %d differing)", name, bestD))
}

// patternName returns the configured name of pattern i, or its 1-based index.
func patternName(s *config.Scenario, i int) string {
	if i < len(s.Patterns) && s.Patterns[i].Name != "" {
		return s.Patterns[i].Name
	}

	return fmt.Sprintf("pattern %d", i+1)
}
