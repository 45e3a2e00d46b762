package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective scenario as YAML",
		Long: `Prints the scenario a run would use after applying defaults, the .env
file, --config and HOPFIELD_* environment variables. The output is a valid
--config file.

Examples:
  hopfield config > demo.yaml
  HOPFIELD_MODE=async hopfield config --config demo.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadScenario(cmd)
			if err != nil {
				return err
			}
			data, err := rc.scenario.Marshal()
			if err != nil {
				return fmt.Errorf("encoding scenario: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}
}
