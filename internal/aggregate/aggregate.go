// Package aggregate groups calculation records for reporting.
//
// Records are partitioned by category in the fixed display order, then by bar
// diameter in ascending numeric order. Rows keep insertion order within a
// diameter group. Nothing here formats text; writers in package report render
// the grouped output.
package aggregate

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/alexiusacademia/gorebar/internal/result"
)

// Column sets per category. A nil cell renders as "-".
var (
	beamColumns = []string{
		"Beam Type", "Beam No.", "Bend len 1", "Bend len 2",
		"Quantity", "Cutting-length (per bar)", "Weight",
	}
	cantileverColumns = []string{
		"Beam Type", "Beam No.", "Mode",
		"Quantity", "Cutting-length (per bar)", "Weight",
	}
	stirrupColumns = []string{
		"Beam Type", "Beam No.", "Spacing Type", "Quantity",
		"No. of stirrups", "No. of L/4 stirrups", "No. of L/2 stirrups",
		"Cutting Len (mm)", "Weight per bar (g)", "Total Weight (kg)",
	}
	slabColumns = []string{
		"Type", "Quantity", "Main Bars", "Dist Bars",
		"Cutting Len (L1) m", "Cutting Len (L2) m",
		"Weight (L1) kg", "Weight (L2) kg", "Total Weight (kg)",
	}
)

// Columns returns the fixed column headers of a category
func Columns(c result.Category) []string {
	var cols []string
	switch c {
	case result.TopSteel, result.BottomSteel:
		cols = beamColumns
	case result.Cantilever:
		cols = cantileverColumns
	case result.Stirrup2, result.Stirrup4, result.Stirrup6:
		cols = stirrupColumns
	case result.Slab:
		cols = slabColumns
	}
	return slices.Clone(cols)
}

// Row is one record and its projected cells, aligned with the section columns
type Row struct {
	Record result.Record
	Cells  []any
}

// DiameterGroup holds the rows of one bar diameter
type DiameterGroup struct {
	Diameter float64 // mm
	Rows     []Row
}

// Weight sums the row weights of the group in kg
func (g DiameterGroup) Weight() float64 {
	var total float64
	for _, row := range g.Rows {
		total += row.Record.Weight()
	}
	return total
}

// Section is one category of the report
type Section struct {
	Category result.Category
	Columns  []string
	Groups   []DiameterGroup
}

// Title is the display name of the section
func (s Section) Title() string {
	return s.Category.String()
}

// Report is the grouped, ordered form of a record collection
type Report struct {
	Sections []Section
}

// Len returns the number of rows across all sections
func (r Report) Len() int {
	n := 0
	for _, s := range r.Sections {
		for _, g := range s.Groups {
			n += len(g.Rows)
		}
	}
	return n
}

// TotalWeight sums every row weight in kg
func (r Report) TotalWeight() float64 {
	var total float64
	for _, s := range r.Sections {
		for _, g := range s.Groups {
			total += g.Weight()
		}
	}
	return total
}

// Group partitions records by category then diameter. It does not modify
// the records and returns the same report for the same input.
func Group(records []result.Record) Report {
	byCategory := make(map[result.Category][]result.Record)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		byCategory[rec.Category()] = append(byCategory[rec.Category()], rec)
	}

	var rep Report
	for _, cat := range result.Categories {
		recs := byCategory[cat]
		if len(recs) == 0 {
			continue
		}
		rep.Sections = append(rep.Sections, Section{
			Category: cat,
			Columns:  Columns(cat),
			Groups:   groupByDiameter(recs),
		})
	}
	return rep
}

func groupByDiameter(recs []result.Record) []DiameterGroup {
	rows := make(map[float64][]Row)
	var diameters []float64
	for _, rec := range recs {
		d := rec.Bar().Diameter
		if _, seen := rows[d]; !seen {
			diameters = append(diameters, d)
		}
		rows[d] = append(rows[d], Row{Record: rec, Cells: Project(rec)})
	}
	slices.Sort(diameters)

	groups := make([]DiameterGroup, 0, len(diameters))
	for _, d := range diameters {
		groups = append(groups, DiameterGroup{Diameter: d, Rows: rows[d]})
	}
	return groups
}

// Project returns the cells of a record in its category's column order
func Project(rec result.Record) []any {
	switch r := rec.(type) {
	case result.BeamBar:
		return []any{
			r.Position.String(), r.BeamNo, r.BendLength1, r.BendLength2,
			r.Spec.Quantity, r.CuttingLength, r.TotalWeight,
		}
	case result.CantileverBar:
		return []any{
			result.Cantilever.String(), r.BeamNo, string(r.Mode),
			r.Spec.Quantity, r.CuttingLength, r.TotalWeight,
		}
	case result.Stirrup:
		cells := []any{
			r.Category().String(), r.BeamNo, string(r.Spacing), r.Spec.Quantity,
			nil, nil, nil,
			r.CuttingLength, r.WeightPerBar, r.TotalWeight,
		}
		if r.Spacing == result.SpacingSplitZone {
			cells[5], cells[6] = r.L4Count, r.L2Count
		} else {
			cells[4] = r.Count
		}
		return cells
	case result.SlabBars:
		return []any{
			r.Type, r.Spec.Quantity, r.MainBars, r.DistBars,
			r.CuttingLength1, r.CuttingLength2,
			r.Weight1, r.Weight2, r.TotalWeight,
		}
	default:
		panic(fmt.Sprintf("aggregate: unknown record type %T", rec))
	}
}

// DiameterTotal is the combined weight of one bar diameter across categories
type DiameterTotal struct {
	Diameter float64 // mm
	Records  int
	Weight   float64 // kg
}

// Totals sums record weights per diameter, ascending by diameter
func Totals(records []result.Record) []DiameterTotal {
	byDiameter := make(map[float64]*DiameterTotal)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		d := rec.Bar().Diameter
		t, ok := byDiameter[d]
		if !ok {
			t = &DiameterTotal{Diameter: d}
			byDiameter[d] = t
		}
		t.Records++
		t.Weight += rec.Weight()
	}

	totals := make([]DiameterTotal, 0, len(byDiameter))
	for _, t := range byDiameter {
		totals = append(totals, *t)
	}
	slices.SortFunc(totals, func(a, b DiameterTotal) int {
		return cmp.Compare(a.Diameter, b.Diameter)
	})
	return totals
}
