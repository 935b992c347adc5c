package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/prompt"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/spf13/cobra"
)

var sessionOutput outputOptions

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"interactive"},
	Short:   "Interactive calculation session",
	Long: `Start an interactive session that asks for each calculation's inputs
and keeps a running total. Choose Finish (or end the input) to print the
combined schedule.

Type 'back' at any prompt to discard the current calculation and return
to the menu.

Examples:
  gorebar session
  gorebar session -o site_schedule --formats pdf,xlsx`,
	RunE: runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	addOutputFlags(sessionCmd, &sessionOutput)
}

func runSession(cmd *cobra.Command, args []string) error {
	coll := result.NewCollection()
	logging.Info("session started", "session", coll.ID.String())

	coll, err := prompt.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), settings.Policy, coll).Run()
	if err != nil {
		return err
	}
	logging.Info("session finished", "session", coll.ID.String(), "records", coll.Len(), "weight_kg", coll.TotalWeight())

	if coll.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No calculations recorded.")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return emit(cmd, coll, sessionOutput, "Session Schedule")
}
