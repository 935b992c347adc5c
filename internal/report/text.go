package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
)

const (
	doubleRule = "═══════════════════════════════════════════════════════════════"
	singleRule = "───────────────────────────────────────────────────────────────"
)

// WriteText prints the report as console tables, one per diameter group
func WriteText(out io.Writer, rep aggregate.Report, h Header) error {
	ew := &errWriter{w: out}

	ew.println()
	ew.println(doubleRule)
	ew.printf("     %s\n", strings.ToUpper(h.title()))
	ew.println(doubleRule)
	if h.SessionID != "" {
		ew.printf("  Session: %s\n", h.SessionID)
	}
	if !h.Generated.IsZero() {
		ew.printf("  Generated: %s\n", h.Generated.Format("2006-01-02 15:04"))
	}
	ew.println()

	if len(rep.Sections) == 0 {
		ew.println("  No results.")
		return ew.err
	}

	for _, s := range rep.Sections {
		ew.printf("%s:\n", strings.ToUpper(s.Title()))
		ew.println(singleRule)
		for _, g := range s.Groups {
			ew.printf("  Diameter: %smm\n", detailing.FormatDiameter(g.Diameter))

			w := tabwriter.NewWriter(ew, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "  %s\n", strings.Join(s.Columns, "\t"))
			fmt.Fprintf(w, "  %s\n", strings.Join(underlines(s.Columns), "\t"))
			for _, row := range g.Rows {
				cells := make([]string, len(row.Cells))
				for i, c := range row.Cells {
					cells[i] = Cell(c)
				}
				fmt.Fprintf(w, "  %s\n", strings.Join(cells, "\t"))
			}
			w.Flush()
			ew.printf("  Subtotal: %.2f kg\n\n", g.Weight())
		}
	}

	ew.println(doubleRule)
	ew.printf("  TOTAL STEEL WEIGHT: %.2f kg (%d records)\n", rep.TotalWeight(), rep.Len())
	ew.println(doubleRule)
	return ew.err
}

func underlines(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.Repeat("─", len([]rune(c)))
	}
	return out
}

// errWriter keeps the first write error so the table code can stay linear
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

func (e *errWriter) printf(format string, args ...any) {
	fmt.Fprintf(e, format, args...)
}

func (e *errWriter) println(args ...any) {
	fmt.Fprintln(e, args...)
}
