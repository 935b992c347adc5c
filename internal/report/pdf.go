package report

import (
	"fmt"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
)

const (
	pdfRowHeight  = 7.0
	pdfFontFamily = "Helvetica"
)

// WritePDF writes the report to path as an A4 landscape document with one
// table per diameter group. Core fonts only cover Latin-1, so all text is
// kept ASCII.
func WritePDF(path string, rep aggregate.Report, h Header) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(h.title(), false)
	pdf.SetCreator("gorebar", false)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right

	pdf.SetFont(pdfFontFamily, "B", 16)
	pdf.CellFormat(usable, 10, h.title(), "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFontFamily, "", 9)
	if h.SessionID != "" {
		pdf.CellFormat(usable, 5, "Session: "+h.SessionID, "", 1, "C", false, 0, "")
	}
	if !h.Generated.IsZero() {
		pdf.CellFormat(usable, 5, "Generated: "+h.Generated.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	for _, s := range rep.Sections {
		pdf.SetFont(pdfFontFamily, "B", 13)
		pdf.CellFormat(usable, 9, s.Title(), "", 1, "L", false, 0, "")

		colW := usable / float64(len(s.Columns))
		for _, g := range s.Groups {
			pdf.SetFont(pdfFontFamily, "B", 10)
			pdf.CellFormat(usable, pdfRowHeight, fmt.Sprintf("Diameter: %s mm", detailing.FormatDiameter(g.Diameter)), "", 1, "L", false, 0, "")

			pdf.SetFont(pdfFontFamily, "B", 8)
			pdf.SetFillColor(220, 220, 220)
			for _, col := range s.Columns {
				pdf.CellFormat(colW, pdfRowHeight, col, "1", 0, "C", true, 0, "")
			}
			pdf.Ln(-1)

			pdf.SetFont(pdfFontFamily, "", 8)
			for _, row := range g.Rows {
				for _, c := range row.Cells {
					pdf.CellFormat(colW, pdfRowHeight, Cell(c), "1", 0, "C", false, 0, "")
				}
				pdf.Ln(-1)
			}

			pdf.SetFont(pdfFontFamily, "I", 8)
			pdf.CellFormat(usable, pdfRowHeight, fmt.Sprintf("Subtotal: %.2f kg", g.Weight()), "", 1, "R", false, 0, "")
			pdf.Ln(2)
		}
	}

	pdf.SetFont(pdfFontFamily, "B", 11)
	pdf.CellFormat(usable, 10, fmt.Sprintf("Total steel weight: %.2f kg", rep.TotalWeight()), "T", 1, "R", false, 0, "")

	return pdf.OutputFileAndClose(path)
}
