package main

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/config"
	"github.com/katalvlaran/hopfield/hopfield"
	"github.com/katalvlaran/hopfield/logging"
	"github.com/katalvlaran/hopfield/render"
	"github.com/spf13/cobra"
)

// runContext is what every command needs after flag and config handling.
type runContext struct {
	scenario *config.Scenario
	patterns []bipolar.Pattern
	logger   *slog.Logger
	runID    string
}

// loadScenario reads --config, applies --log-level, validates, and builds
// a logger tagged with a fresh run_id.
func loadScenario(cmd *cobra.Command) (*runContext, error) {
	path, _ := cmd.Flags().GetString("config")
	s, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		s.Logging.Level = lvl
	}

	return newRunContext(cmd, s)
}

// newRunContext validates s and resolves its patterns. Call it again after
// a command's own flags have modified the scenario.
func newRunContext(cmd *cobra.Command, s *config.Scenario) (*runContext, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	patterns, err := s.ResolvePatterns()
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	logger := logging.NewLogger(s.Logging.Level, cmd.ErrOrStderr()).With("run_id", runID)

	return &runContext{scenario: s, patterns: patterns, logger: logger, runID: runID}, nil
}

// train builds a network of the scenario's size with its rule.
func (rc *runContext) train() (*hopfield.Network, error) {
	rule, err := rc.scenario.Rule()
	if err != nil {
		return nil, err
	}
	nw, err := hopfield.New(len(rc.patterns[0]),
		hopfield.WithLogger(rc.logger),
		hopfield.WithCrossTalkThreshold(rc.scenario.Similarity.Threshold))
	if err != nil {
		return nil, err
	}
	if err = nw.Train(rule, rc.patterns); err != nil {
		return nil, fmt.Errorf("training with %s: %w", rule, err)
	}
	rc.logger.Info("network trained", "rule", nw.Weights().Rule().String(), "patterns", len(rc.patterns), "n", nw.Size())

	return nw, nil
}

// grid renders p with the scenario's display settings.
func (rc *runContext) grid(p bipolar.Pattern) (string, error) {
	d := rc.scenario.Display

	return render.Grid(p, d.Width, render.WithGlyphs(d.On, d.Off), render.WithCellBorders(d.Cells))
}
