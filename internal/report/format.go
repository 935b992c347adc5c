// Package report renders grouped calculation records as console tables,
// CSV, PDF and XLSX files.
//
// Writers only read the aggregate.Report they are given; no numeric field is
// recomputed on the way out.
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
)

// NotApplicable is printed for cells a record does not carry
const NotApplicable = "-"

// Header identifies a report on its first page or sheet
type Header struct {
	Title     string
	SessionID string
	Generated time.Time
}

// DefaultTitle is used when Header.Title is empty
const DefaultTitle = "Rebar Cutting Schedule"

func (h Header) title() string {
	if h.Title == "" {
		return DefaultTitle
	}
	return h.Title
}

// Cell formats a projected cell for display, two decimals for lengths and
// weights
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return NotApplicable
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

// exactCell formats a cell at full precision so it parses back unchanged
func exactCell(v any) string {
	if x, ok := v.(float64); ok {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return Cell(v)
}

func groupTitle(s aggregate.Section, g aggregate.DiameterGroup) string {
	return fmt.Sprintf("%s, %smm diameter", s.Title(), detailing.FormatDiameter(g.Diameter))
}
