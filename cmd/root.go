package cmd

import (
	"os"

	"github.com/mediaroulette/resmanifest/cmd/build"
	"github.com/mediaroulette/resmanifest/cmd/show_rules"

	"github.com/spf13/cobra"
)

// RootCmd represents the root command
var RootCmd = &cobra.Command{
	Use:           "resmanifest",
	Short:         "Build integrity manifests for resource directories",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	RootCmd.AddCommand(build.Cmd)
	RootCmd.AddCommand(show_rules.Cmd)
	RootCmd.AddCommand(genBashCompletionCmd)
}

var genBashCompletionCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completions file",
	Run: func(cmd *cobra.Command, args []string) {
		RootCmd.GenBashCompletion(os.Stdout)
	},
}
