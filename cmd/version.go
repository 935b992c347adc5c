package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorebar",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Rebar cutting length and weight calculator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
