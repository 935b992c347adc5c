package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/beam"
	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/spf13/cobra"
)

var (
	cantiBeamNo    string
	cantiInnerSpan float64
	cantiSpan      float64
	cantiDeadEnd   bool
	cantiFullSpan  float64
	cantiBars      []string
	cantiOutput    outputOptions
)

var beamCantileverCmd = &cobra.Command{
	Use:   "cantilever",
	Short: "Cantilever top steel cutting lengths",
	Long: `Calculate the cutting length and weight of cantilever top bars.

Two detailing modes are available:
  proportional  - inner span / 3 + cantilever span + offset
                  (offset set by --cantilever-offset, default 150 mm)
  dead-end      - full span + dead-end allowance (default 300 mm)

Examples:
  gorebar beam cantilever --beam-no C1 --inner-span 3000 --cantilever-span 1500 --bar 16x2
  gorebar beam cantilever --beam-no C2 --dead-end --full-span 2000 --bar 16x2`,
	RunE: runBeamCantilever,
}

func init() {
	beamCmd.AddCommand(beamCantileverCmd)

	beamCantileverCmd.Flags().StringVar(&cantiBeamNo, "beam-no", "", "Beam number or mark [required]")

	// Proportional mode
	beamCantileverCmd.Flags().Float64Var(&cantiInnerSpan, "inner-span", 0, "Inner (back) span (mm)")
	beamCantileverCmd.Flags().Float64Var(&cantiSpan, "cantilever-span", 0, "Cantilever span (mm)")

	// Dead-end mode
	beamCantileverCmd.Flags().BoolVar(&cantiDeadEnd, "dead-end", false, "Use the dead-end extension mode")
	beamCantileverCmd.Flags().Float64Var(&cantiFullSpan, "full-span", 0, "Full span for the dead-end mode (mm)")

	beamCantileverCmd.Flags().StringArrayVarP(&cantiBars, "bar", "b", nil, "Bar as DIAxQTY, e.g. 16x2 (repeatable) [required]")
	addOutputFlags(beamCantileverCmd, &cantiOutput)

	beamCantileverCmd.MarkFlagRequired("beam-no")
	beamCantileverCmd.MarkFlagRequired("bar")
}

func runBeamCantilever(cmd *cobra.Command, args []string) error {
	bars, err := parseBars(cantiBars)
	if err != nil {
		return err
	}

	var mode beam.CantileverMode
	if cantiDeadEnd {
		if cmd.Flags().Changed("inner-span") || cmd.Flags().Changed("cantilever-span") {
			return errors.New("--dead-end cannot be combined with --inner-span or --cantilever-span")
		}
		mode = beam.DeadEndExtension{FullSpan: cantiFullSpan}
	} else {
		mode = beam.Proportional{InnerSpan: cantiInnerSpan, CantileverSpan: cantiSpan}
	}

	records, err := beam.NewCalculator(settings.Policy).Calculate(beam.Top, cantiBeamNo, beam.Cantilever{Mode: mode}, bars)
	if err != nil {
		return err
	}

	coll := result.NewCollection()
	coll.Append(records...)
	logging.Calculation("cantilever", cantiBeamNo, coll.Len(), coll.TotalWeight(), "dead_end", cantiDeadEnd)

	return emit(cmd, coll, cantiOutput, fmt.Sprintf("Cantilever Schedule, Beam %s", cantiBeamNo))
}
