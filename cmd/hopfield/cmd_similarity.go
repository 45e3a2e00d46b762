package main

import (
	"fmt"

	"github.com/katalvlaran/hopfield/bipolar"
	"github.com/katalvlaran/hopfield/matrix"
	"github.com/katalvlaran/hopfield/render"
	"github.com/spf13/cobra"
)

func newSimilarityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "similarity",
		Short: "Show pairwise similarity of the stored patterns",
		Long: `Prints Σ p1[i]·p2[i] / n for every pair of stored patterns and flags
pairs whose absolute similarity exceeds the threshold. Correlated memories
tend to produce spurious or confused recall states.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			th := rc.scenario.Similarity.Threshold
			if cmd.Flags().Changed("threshold") {
				th, _ = cmd.Flags().GetFloat64("threshold")
				if th < 0 || th > 1 {
					return fmt.Errorf("threshold must be between 0 and 1, got %g", th)
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Similarity (threshold %g)", th)))
			flagged := 0
			for i := 0; i < len(rc.patterns); i++ {
				for j := i + 1; j < len(rc.patterns); j++ {
					o, err := bipolar.CheckOrthogonality(rc.patterns[i], rc.patterns[j], th)
					if err != nil {
						return err
					}
					line := fmt.Sprintf("%s ~ %s: %+.3f", patternName(rc.scenario, i), patternName(rc.scenario, j), o.Score)
					if o.Warn {
						flagged++
						line = warningStyle.Render(line + "  ⚠ correlated")
					}
					fmt.Fprintln(out, line)
				}
			}
			if flagged == 0 {
				fmt.Fprintln(out, successStyle.Render("✓ no correlated pairs"))
			}

			if full, _ := cmd.Flags().GetBool("table"); full {
				table, err := bipolar.SimilarityTable(rc.patterns)
				if err != nil {
					return err
				}
				m, err := matrix.NewDenseFrom(table)
				if err != nil {
					return err
				}
				text, err := render.Matrix(m)
				if err != nil {
					return err
				}
				fmt.Fprint(out, text)
			}

			return nil
		},
	}
	cmd.Flags().Float64("threshold", 0, "Override the similarity threshold (0..1)")
	cmd.Flags().Bool("table", false, "Also print the full q×q similarity table")

	return cmd
}
