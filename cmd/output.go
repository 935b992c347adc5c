package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/diagram"
	"github.com/alexiusacademia/gorebar/internal/report"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/spf13/cobra"
)

// outputOptions are the report flags shared by every calculation command
type outputOptions struct {
	base    string
	formats string
	chart   string
	diagram bool
}

func addOutputFlags(cmd *cobra.Command, o *outputOptions) {
	cmd.Flags().StringVarP(&o.base, "output", "o", "", "Write the schedule to files with this base name")
	cmd.Flags().StringVar(&o.formats, "formats", "", "Export formats: pdf, csv, xlsx (default from config)")
	cmd.Flags().StringVar(&o.chart, "chart", "", "Export a weight-by-diameter chart (png, svg, pdf)")
	cmd.Flags().BoolVar(&o.diagram, "diagram", false, "Show ASCII weight chart")
}

func parseBars(values []string) ([]detailing.BarSpec, error) {
	if len(values) == 0 {
		return nil, errors.New("at least one --bar is required (e.g. --bar 12x3)")
	}
	bars := make([]detailing.BarSpec, 0, len(values))
	for _, v := range values {
		b, err := detailing.ParseBarSpec(v)
		if err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}
	return bars, nil
}

// emit prints the grouped schedule and writes any requested files
func emit(cmd *cobra.Command, coll *result.Collection, o outputOptions, title string) error {
	out := cmd.OutOrStdout()
	records := coll.Records()
	rep := aggregate.Group(records)
	header := report.Header{
		Title:     title,
		SessionID: coll.ID.String(),
		Generated: time.Now(),
	}

	if err := report.WriteText(out, rep, header); err != nil {
		return err
	}

	totals := aggregate.Totals(records)
	if o.diagram && len(totals) > 0 {
		fmt.Fprint(out, diagram.PlotWeights(totals))
		lines := make([]string, 0, len(totals)+1)
		for _, t := range totals {
			lines = append(lines, fmt.Sprintf("%5smm  %3d record(s)  %10.2f kg",
				detailing.FormatDiameter(t.Diameter), t.Records, t.Weight))
		}
		lines = append(lines, fmt.Sprintf("Total             %10.2f kg", rep.TotalWeight()))
		fmt.Fprintln(out)
		fmt.Fprint(out, diagram.DrawSummaryBox("STEEL BY DIAMETER", lines))
	}

	var outcome report.Outcome
	if o.base != "" || cmd.Flags().Changed("formats") {
		formatList := o.formats
		if !cmd.Flags().Changed("formats") {
			formatList = settings.Output.Formats
		}
		formats, err := report.ParseFormats(formatList)
		if err != nil {
			return err
		}
		base := o.base
		if base == "" {
			base = settings.Output.Base
		}
		outcome = report.Export(rep, report.Options{BasePath: base, Formats: formats, Header: header})
	}

	// The chart is reported as one more export target
	if o.chart != "" {
		path, err := diagram.ExportWeightChart(totals, o.chart)
		if path == "" {
			path = o.chart
		}
		outcome.Add(report.FormatChart, path, err)
	}

	if len(outcome.Results) == 0 {
		return nil
	}
	fmt.Fprintln(out)
	for _, r := range outcome.Results {
		if r.Err != nil {
			fmt.Fprintf(out, "  ✗ %s\n", r.Err)
			continue
		}
		fmt.Fprintf(out, "  ✓ %s written to: %s\n", formatName(r.Target), r.Path)
	}

	switch outcome.Status() {
	case report.Partial:
		fmt.Fprintln(out, "  Export partially succeeded; results above are still valid.")
		return nil
	case report.Failure:
		return outcome.Err()
	}
	return nil
}

func formatName(f report.Format) string {
	switch f {
	case report.FormatPDF:
		return "PDF"
	case report.FormatCSV:
		return "CSV"
	case report.FormatXLSX:
		return "XLSX"
	case report.FormatChart:
		return "Chart"
	}
	return string(f)
}
