package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorebar/internal/job"
	"github.com/spf13/cobra"
)

var (
	batchFile   string
	batchOutput outputOptions
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Run a schedule of calculations from a YAML or JSON file",
	Long: `Run every calculation listed in a job file and print one combined
schedule grouped by category and diameter.

The job file is YAML (.yaml, .yml) or JSON (.json). An optional 'policy'
block overrides the configured detailing policy for this job.

Example job file:
  name: Ground floor beams
  units:
    - kind: top
      beam_no: B1
      clear_span: 4000
      supports:
        - {width: 300, depth: 450}
        - {width: 230, depth: 300}
      bars:
        - {diameter: 12, quantity: 3}
        - {diameter: 16, quantity: 2}
    - kind: stirrup
      beam_no: B1
      legs: 2
      width: 230
      depth: 450
      clear_span: 4000
      spacing: 150
      bars:
        - {diameter: 8, quantity: 1}

Examples:
  gorebar batch -f schedule.yaml
  gorebar batch -f schedule.json -o ground_floor --formats pdf,csv,xlsx`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Job file (YAML or JSON) [required]")
	addOutputFlags(batchCmd, &batchOutput)

	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	j, err := job.LoadFromFile(batchFile)
	if err != nil {
		return err
	}

	coll, err := job.Run(j, settings.Policy)
	if err != nil {
		return err
	}

	title := j.Name
	if title == "" {
		title = fmt.Sprintf("Schedule from %s", batchFile)
	}
	return emit(cmd, coll, batchOutput, title)
}
