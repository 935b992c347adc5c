package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/beam"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/diagram"
	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/spf13/cobra"
)

var (
	steelBeamNo    string
	steelClearSpan float64
	steelSupports  int
	steelSupport1  detailing.SupportGeometry
	steelSupport2  detailing.SupportGeometry
	steelBars      []string
	steelShape     bool
	steelOutput    outputOptions
)

var beamTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Top steel cutting lengths",
	Long: `Calculate the cutting length and weight of top bars.

With end supports the bar bends into each support; the bend length is
limited by the support width and beam depth. Without supports the bar
is extended by the development length (46d) at both ends.

Examples:
  # Beam B1, 4 m clear span, two supports, 3-12mm and 2-16mm bars
  gorebar beam top --beam-no B1 --clear-span 4000 --supports 2 \
    --support1-width 300 --support1-depth 450 \
    --support2-width 230 --support2-depth 300 \
    --bar 12x3 --bar 16x2

  # Export the schedule
  gorebar beam top --beam-no B2 --clear-span 3000 --bar 10x4 -o b2 --formats pdf,xlsx`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBeamSteel(cmd, beam.Top)
	},
}

var beamBottomCmd = &cobra.Command{
	Use:   "bottom",
	Short: "Bottom steel cutting lengths",
	Long: `Calculate the cutting length and weight of bottom bars.

Takes the same flags as 'gorebar beam top'.

Examples:
  gorebar beam bottom --beam-no B1 --clear-span 4000 --supports 1 \
    --support1-width 300 --support1-depth 450 --bar 16x3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBeamSteel(cmd, beam.Bottom)
	},
}

func init() {
	beamCmd.AddCommand(beamTopCmd)
	beamCmd.AddCommand(beamBottomCmd)

	for _, c := range []*cobra.Command{beamTopCmd, beamBottomCmd} {
		c.Flags().StringVar(&steelBeamNo, "beam-no", "", "Beam number or mark [required]")
		c.Flags().Float64VarP(&steelClearSpan, "clear-span", "L", 0, "Clear span (mm) [required]")
		c.Flags().IntVar(&steelSupports, "supports", 0, "Number of end supports the bar bends into (0, 1 or 2)")

		// Support geometry
		c.Flags().Float64Var(&steelSupport1.Width, "support1-width", 0, "Width of end support 1 (mm)")
		c.Flags().Float64Var(&steelSupport1.BeamDepth, "support1-depth", 0, "Beam depth at end support 1 (mm)")
		c.Flags().Float64Var(&steelSupport2.Width, "support2-width", 0, "Width of end support 2 (mm)")
		c.Flags().Float64Var(&steelSupport2.BeamDepth, "support2-depth", 0, "Beam depth at end support 2 (mm)")

		// Bars
		c.Flags().StringArrayVarP(&steelBars, "bar", "b", nil, "Bar as DIAxQTY, e.g. 12x3 (repeatable) [required]")
		c.Flags().BoolVar(&steelShape, "shape", false, "Sketch each bar with its bend legs")
		addOutputFlags(c, &steelOutput)

		c.MarkFlagRequired("beam-no")
		c.MarkFlagRequired("clear-span")
		c.MarkFlagRequired("bar")
	}
}

func runBeamSteel(cmd *cobra.Command, pos beam.Position) error {
	bars, err := parseBars(steelBars)
	if err != nil {
		return err
	}

	var cfg beam.Configuration
	switch steelSupports {
	case 0:
		cfg = beam.NoSupport{ClearSpan: steelClearSpan}
	case 1:
		cfg = beam.Continuous1Support{ClearSpan: steelClearSpan, Support: steelSupport1}
	case 2:
		cfg = beam.Continuous2Support{ClearSpan: steelClearSpan, Support1: steelSupport1, Support2: steelSupport2}
	default:
		return detailing.Unsupported("--supports=%d (supported: 0, 1, 2)", steelSupports)
	}

	records, err := beam.NewCalculator(settings.Policy).Calculate(pos, steelBeamNo, cfg, bars)
	if err != nil {
		return err
	}

	coll := result.NewCollection()
	coll.Append(records...)
	logging.Calculation(pos.String(), steelBeamNo, coll.Len(), coll.TotalWeight(), "supports", steelSupports)

	if err := emit(cmd, coll, steelOutput, fmt.Sprintf("%s Schedule, Beam %s", pos, steelBeamNo)); err != nil {
		return err
	}

	if steelShape {
		for _, r := range records {
			if bar, ok := r.(result.BeamBar); ok {
				fmt.Fprint(cmd.OutOrStdout(), diagram.DrawBarShape(bar))
			}
		}
	}
	return nil
}
