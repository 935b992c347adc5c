package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/xuri/excelize/v2"
)

// SummarySheet is the first sheet of an XLSX report
const SummarySheet = "Summary"

// WriteXLSX writes a summary sheet plus one sheet per category. Numeric
// cells stay numeric; not-applicable cells are written as "-".
func WriteXLSX(path string, rep aggregate.Report, h Header) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   h.title(),
		Creator: "gorebar",
	}); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeSummarySheet(f, rep, h, bold); err != nil {
		return err
	}

	for _, s := range rep.Sections {
		sheet := s.Title()
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("sheet %q: %w", sheet, err)
		}

		row := 1
		for _, g := range s.Groups {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetCellValue(sheet, cell, fmt.Sprintf("Diameter: %s mm", detailing.FormatDiameter(g.Diameter))); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheet, cell, cell, bold); err != nil {
				return err
			}
			row++

			cell, _ = excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(sheet, cell, &s.Columns); err != nil {
				return err
			}
			last, _ := excelize.CoordinatesToCellName(len(s.Columns), row)
			if err := f.SetCellStyle(sheet, cell, last, bold); err != nil {
				return err
			}
			row++

			for _, r := range g.Rows {
				values := make([]any, len(r.Cells))
				for i, c := range r.Cells {
					if c == nil {
						values[i] = NotApplicable
					} else {
						values[i] = c
					}
				}
				cell, _ = excelize.CoordinatesToCellName(1, row)
				if err := f.SetSheetRow(sheet, cell, &values); err != nil {
					return err
				}
				row++
			}

			cell, _ = excelize.CoordinatesToCellName(len(s.Columns)-1, row)
			total, _ := excelize.CoordinatesToCellName(len(s.Columns), row)
			if err := f.SetCellValue(sheet, cell, "Subtotal (kg)"); err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, total, g.Weight()); err != nil {
				return err
			}
			row += 2
		}

		lastCol, _ := excelize.ColumnNumberToName(len(s.Columns))
		if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeSummarySheet(f *excelize.File, rep aggregate.Report, h Header, bold int) error {
	rows := [][]any{
		{h.title()},
		{"Session", h.SessionID},
	}
	if !h.Generated.IsZero() {
		rows = append(rows, []any{"Generated", h.Generated.Format("2006-01-02 15:04")})
	}
	rows = append(rows, []any{}, []any{"Category", "Records", "Weight (kg)"})
	headerRow := len(rows)

	for _, s := range rep.Sections {
		n := 0
		var weight float64
		for _, g := range s.Groups {
			n += len(g.Rows)
			weight += g.Weight()
		}
		rows = append(rows, []any{s.Title(), n, weight})
	}
	rows = append(rows, []any{"Total", rep.Len(), rep.TotalWeight()})

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return err
		}
	}

	for _, n := range []int{1, headerRow, len(rows)} {
		first, _ := excelize.CoordinatesToCellName(1, n)
		last, _ := excelize.CoordinatesToCellName(3, n)
		if err := f.SetCellStyle(SummarySheet, first, last, bold); err != nil {
			return err
		}
	}
	return f.SetColWidth(SummarySheet, "A", "C", 22)
}
