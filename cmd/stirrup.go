package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/alexiusacademia/gorebar/internal/stirrup"
	"github.com/spf13/cobra"
)

var (
	stirrupBeamNo    string
	stirrupLegs      int
	stirrupWidth     float64
	stirrupDepth     float64
	stirrupClearSpan float64
	stirrupSpacing   float64
	stirrupL4Spacing float64
	stirrupL2Spacing float64
	stirrupBars      []string
	stirrupOutput    outputOptions
)

var stirrupCmd = &cobra.Command{
	Use:   "stirrup",
	Short: "Stirrup cutting lengths and counts",
	Long: `Calculate the cutting length, count and weight of beam stirrups.

Stirrups may be 2, 4 or 6 legged. Spacing is either uniform over the
clear span (--spacing) or split into L/4 end zones and an L/2 middle
zone (--l4-spacing with --l2-spacing).

Each --bar gives one stirrup record. The count comes from the spacing,
so a quantity other than 1 (e.g. 8x3) is rejected.

Examples:
  # 2-legged 8mm stirrups at 150 mm
  gorebar stirrup --beam-no B1 --legs 2 --width 230 --depth 450 \
    --clear-span 4000 --spacing 150 --bar 8

  # 4-legged stirrups with zone spacing
  gorebar stirrup --beam-no B2 --legs 4 --width 300 --depth 600 \
    --clear-span 6000 --l4-spacing 100 --l2-spacing 200 --bar 10`,
	RunE: runStirrup,
}

func init() {
	rootCmd.AddCommand(stirrupCmd)

	stirrupCmd.Flags().StringVar(&stirrupBeamNo, "beam-no", "", "Beam number or mark [required]")
	stirrupCmd.Flags().IntVar(&stirrupLegs, "legs", 2, "Number of legs (2, 4 or 6)")

	// Beam geometry
	stirrupCmd.Flags().Float64VarP(&stirrupWidth, "width", "w", 0, "Beam width (mm) [required]")
	stirrupCmd.Flags().Float64VarP(&stirrupDepth, "depth", "d", 0, "Beam depth (mm) [required]")
	stirrupCmd.Flags().Float64VarP(&stirrupClearSpan, "clear-span", "L", 0, "Clear span (mm) [required]")

	// Spacing
	stirrupCmd.Flags().Float64Var(&stirrupSpacing, "spacing", 0, "Uniform spacing (mm)")
	stirrupCmd.Flags().Float64Var(&stirrupL4Spacing, "l4-spacing", 0, "Spacing in the L/4 end zones (mm)")
	stirrupCmd.Flags().Float64Var(&stirrupL2Spacing, "l2-spacing", 0, "Spacing in the L/2 middle zone (mm)")

	stirrupCmd.Flags().StringArrayVarP(&stirrupBars, "bar", "b", nil, "Stirrup bar diameter, e.g. 8 (repeatable) [required]")
	addOutputFlags(stirrupCmd, &stirrupOutput)

	stirrupCmd.MarkFlagRequired("beam-no")
	stirrupCmd.MarkFlagRequired("width")
	stirrupCmd.MarkFlagRequired("depth")
	stirrupCmd.MarkFlagRequired("clear-span")
	stirrupCmd.MarkFlagRequired("bar")
	stirrupCmd.MarkFlagsRequiredTogether("l4-spacing", "l2-spacing")
	stirrupCmd.MarkFlagsMutuallyExclusive("spacing", "l4-spacing")
	stirrupCmd.MarkFlagsMutuallyExclusive("spacing", "l2-spacing")
}

func runStirrup(cmd *cobra.Command, args []string) error {
	bars, err := parseBars(stirrupBars)
	if err != nil {
		return err
	}

	var spacing stirrup.Spacing
	switch {
	case cmd.Flags().Changed("spacing"):
		spacing = stirrup.Uniform{Spacing: stirrupSpacing}
	case cmd.Flags().Changed("l4-spacing"):
		spacing = stirrup.SplitZone{L4Spacing: stirrupL4Spacing, L2Spacing: stirrupL2Spacing}
	default:
		return errors.New("either --spacing or --l4-spacing with --l2-spacing is required")
	}

	cfg := stirrup.Configuration{
		Legs:      stirrupLegs,
		BeamWidth: stirrupWidth,
		BeamDepth: stirrupDepth,
		ClearSpan: stirrupClearSpan,
		Spacing:   spacing,
	}

	calc := stirrup.NewCalculator(settings.Policy)
	coll := result.NewCollection()
	for _, bar := range bars {
		rec, err := calc.Calculate(stirrupBeamNo, cfg, bar)
		if err != nil {
			return err
		}
		coll.Append(rec)
	}
	logging.Calculation("stirrup", stirrupBeamNo, coll.Len(), coll.TotalWeight(), "legs", stirrupLegs)

	return emit(cmd, coll, stirrupOutput, fmt.Sprintf("Stirrup Schedule, Beam %s", stirrupBeamNo))
}
