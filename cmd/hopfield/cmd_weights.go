package main

import (
	"fmt"

	"github.com/katalvlaran/hopfield/render"
	"github.com/spf13/cobra"
)

func newWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print the weight matrix trained from the stored patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rule") {
				rc.scenario.Network.Rule, _ = cmd.Flags().GetString("rule")
				if rc, err = newRunContext(cmd, rc.scenario); err != nil {
					return err
				}
			}

			nw, err := rc.train()
			if err != nil {
				return err
			}
			w := nw.Weights()
			table, err := render.Matrix(w.Matrix())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Weights %d×%d (%s)", w.N(), w.N(), w.Rule())))
			fmt.Fprint(out, table)
			if !w.IsSymmetric() {
				fmt.Fprintln(out, warningStyle.Render("⚠ matrix is not symmetric; asynchronous energy descent is not guaranteed"))
			}
			for i, p := range rc.patterns {
				e, err := w.Energy(p)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("E(%s) = %g", patternName(rc.scenario, i), e)))
			}

			return nil
		},
	}
	cmd.Flags().String("rule", "", "Training rule: hebb or pseudoinverse")

	return cmd
}
