package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
)

const (
	categoryColumn = "Category"
	diameterColumn = "Diameter"
	quantityColumn = "Quantity"
)

// WriteCSV writes every diameter group as a title row, a header row and its
// data rows, followed by a blank line. Data rows start with the category key
// and the diameter; numbers are written at full precision.
func WriteCSV(out io.Writer, rep aggregate.Report) error {
	w := csv.NewWriter(out)

	for _, s := range rep.Sections {
		header := append([]string{categoryColumn, diameterColumn}, s.Columns...)
		for _, g := range s.Groups {
			if err := w.Write([]string{groupTitle(s, g)}); err != nil {
				return err
			}
			if err := w.Write(header); err != nil {
				return err
			}
			for _, row := range g.Rows {
				record := make([]string, 0, len(header))
				record = append(record, s.Category.Key(), detailing.FormatDiameter(g.Diameter))
				for _, c := range row.Cells {
					record = append(record, exactCell(c))
				}
				if err := w.Write(record); err != nil {
					return err
				}
			}
			if err := w.Write([]string{""}); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

// ParsedRow is one data row read back from a CSV report
type ParsedRow struct {
	Category result.Category
	Diameter float64
	Quantity int
	// Cells maps column header to the raw cell text
	Cells map[string]string
}

// ErrMalformedCSV is returned when a data row cannot be read back
var ErrMalformedCSV = errors.New("malformed report csv")

// ReadCSV parses a file written by WriteCSV. Title and blank rows are
// skipped; each header row sets the columns for the rows that follow.
func ReadCSV(in io.Reader) ([]ParsedRow, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	var (
		rows    []ParsedRow
		columns []string
		line    int
	)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		if len(record) == 0 || record[0] == "" {
			continue
		}
		if record[0] == categoryColumn {
			columns = slices.Clone(record)
			continue
		}
		cat, ok := result.ParseCategory(record[0])
		if !ok {
			continue
		}
		if columns == nil {
			return nil, fmt.Errorf("%w: line %d: data row before header", ErrMalformedCSV, line)
		}
		if len(record) != len(columns) {
			return nil, fmt.Errorf("%w: line %d: %d fields, header has %d", ErrMalformedCSV, line, len(record), len(columns))
		}

		row := ParsedRow{Category: cat, Cells: make(map[string]string, len(columns))}
		for i, col := range columns {
			row.Cells[col] = record[i]
		}
		if row.Diameter, err = strconv.ParseFloat(row.Cells[diameterColumn], 64); err != nil {
			return nil, fmt.Errorf("%w: line %d: diameter: %v", ErrMalformedCSV, line, err)
		}
		if row.Quantity, err = strconv.Atoi(row.Cells[quantityColumn]); err != nil {
			return nil, fmt.Errorf("%w: line %d: quantity: %v", ErrMalformedCSV, line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Float reads a numeric cell of a parsed row
func (p ParsedRow) Float(column string) (float64, error) {
	v, ok := p.Cells[column]
	if !ok {
		return 0, fmt.Errorf("%w: no column %q", ErrMalformedCSV, column)
	}
	return strconv.ParseFloat(v, 64)
}
