package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam bar cutting lengths and weights",
	Long: `Calculate cutting lengths, bend lengths and weights of beam bars.

Subcommands:
  top         - Top steel over 0, 1 or 2 end supports
  bottom      - Bottom steel over 0, 1 or 2 end supports
  cantilever  - Cantilever top steel

Bend lengths follow the configured bend length policy
(--bend-policy depth-limited|development).`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
