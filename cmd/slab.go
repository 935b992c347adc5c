package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/alexiusacademia/gorebar/internal/slab"
	"github.com/spf13/cobra"
)

var (
	slabType   string
	slabConfig slab.Configuration
	slabBars   []string
	slabOutput outputOptions
)

var slabCmd = &cobra.Command{
	Use:   "slab",
	Short: "Slab main and distribution bars",
	Long: `Calculate main and distribution bar counts, cutting lengths and
weights for a slab panel between two beams.

Only one-way slabs are currently supported.

Examples:
  gorebar slab --breadth 3000 --length 4000 --span-a 3000 --span-b 1000 \
    --beam-width1 230 --beam-width2 230 \
    --main-spacing 150 --dist-spacing 150 --bar 10x1`,
	RunE: runSlab,
}

func init() {
	rootCmd.AddCommand(slabCmd)

	slabCmd.Flags().StringVar(&slabType, "type", "one-way", "Slab type (one-way, two-way)")

	// Panel geometry
	slabCmd.Flags().Float64VarP(&slabConfig.Breadth, "breadth", "x", 0, "Shorter span x (mm) [required]")
	slabCmd.Flags().Float64VarP(&slabConfig.Length, "length", "y", 0, "Longer span y (mm) [required]")
	slabCmd.Flags().Float64Var(&slabConfig.AdjacentSpanA, "span-a", 0, "Adjacent span a, right of x (mm)")
	slabCmd.Flags().Float64Var(&slabConfig.AdjacentSpanB, "span-b", 0, "Adjacent span b, left of x (mm)")
	slabCmd.Flags().Float64Var(&slabConfig.BeamWidth1, "beam-width1", 0, "Width of beam 1 (mm)")
	slabCmd.Flags().Float64Var(&slabConfig.BeamWidth2, "beam-width2", 0, "Width of beam 2 (mm)")

	// Spacing
	slabCmd.Flags().Float64Var(&slabConfig.MainBarSpacing, "main-spacing", 0, "Main bar spacing (mm) [required]")
	slabCmd.Flags().Float64Var(&slabConfig.DistBarSpacing, "dist-spacing", 0, "Distribution bar spacing (mm) [required]")

	slabCmd.Flags().StringArrayVarP(&slabBars, "bar", "b", nil, "Bar as DIAxQTY, e.g. 10x1 (repeatable) [required]")
	addOutputFlags(slabCmd, &slabOutput)

	slabCmd.MarkFlagRequired("breadth")
	slabCmd.MarkFlagRequired("length")
	slabCmd.MarkFlagRequired("main-spacing")
	slabCmd.MarkFlagRequired("dist-spacing")
	slabCmd.MarkFlagRequired("bar")
}

func runSlab(cmd *cobra.Command, args []string) error {
	t, err := slab.ParseType(slabType)
	if err != nil {
		return err
	}
	cfg := slabConfig
	cfg.Type = t

	bars, err := parseBars(slabBars)
	if err != nil {
		return err
	}

	coll := result.NewCollection()
	for _, bar := range bars {
		rec, err := slab.Calculate(cfg, bar)
		if err != nil {
			return err
		}
		coll.Append(rec)
	}
	logging.Calculation("slab", "", coll.Len(), coll.TotalWeight(), "type", t.String())

	return emit(cmd, coll, slabOutput, fmt.Sprintf("%s Slab Schedule", t))
}
