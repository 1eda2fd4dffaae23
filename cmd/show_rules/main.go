package show_rules

import (
	"fmt"

	"github.com/mediaroulette/resmanifest/rules"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "show-rules",
	Short: "Print the inclusion, category and required file rules",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(rules.Current())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s", out)
		return nil
	},
}
