// Package result defines the records produced by the bar calculators.
//
// Record is a closed set: BeamBar, CantileverBar, Stirrup and SlabBars are
// the only implementations. Every accessor is explicit; nothing is looked up
// by key.
package result

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/detailing"
)

// Category is the report section a record belongs to
type Category int

const (
	TopSteel Category = iota
	BottomSteel
	Cantilever
	Stirrup2
	Stirrup4
	Stirrup6
	Slab
)

// Categories lists every category in report display order
var Categories = []Category{TopSteel, BottomSteel, Cantilever, Stirrup2, Stirrup4, Stirrup6, Slab}

var categoryInfo = map[Category]struct {
	key   string
	title string
}{
	TopSteel:    {"top_steel", "Top Steel"},
	BottomSteel: {"bottom_steel", "Bottom Steel"},
	Cantilever:  {"cantilever", "Cantilever"},
	Stirrup2:    {"stirrup_2", "Stirrups (2 legged)"},
	Stirrup4:    {"stirrup_4", "Stirrups (4 legged)"},
	Stirrup6:    {"stirrup_6", "Stirrups (6 legged)"},
	Slab:        {"slab", "Slab"},
}

// Key is the stable machine name used in CSV files
func (c Category) Key() string {
	if info, ok := categoryInfo[c]; ok {
		return info.key
	}
	return fmt.Sprintf("category_%d", int(c))
}

func (c Category) String() string {
	if info, ok := categoryInfo[c]; ok {
		return info.title
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory reverses Key
func ParseCategory(key string) (Category, bool) {
	key = strings.TrimSpace(key)
	for c, info := range categoryInfo {
		if info.key == key {
			return c, true
		}
	}
	return 0, false
}

// StirrupCategory returns the category for a leg count
func StirrupCategory(legs int) (Category, error) {
	switch legs {
	case 2:
		return Stirrup2, nil
	case 4:
		return Stirrup4, nil
	case 6:
		return Stirrup6, nil
	default:
		return 0, detailing.Unsupported("stirrup legs=%d (supported: 2, 4, 6)", legs)
	}
}

// Record is the output of one calculator call. Records are immutable values.
type Record interface {
	Category() Category
	Bar() detailing.BarSpec
	// Weight is the total steel weight of the record in kg
	Weight() float64
	// CutLength is the cutting length per bar in mm (metres for slabs)
	CutLength() float64

	sealed()
}

// BeamBar is a top or bottom beam bar
type BeamBar struct {
	Position      Category // TopSteel or BottomSteel
	BeamNo        string
	Spec          detailing.BarSpec
	ClearSpan     float64 // mm
	BendLength1   float64 // mm
	BendLength2   float64 // mm
	CuttingLength float64 // mm, per bar
	TotalWeight   float64 // kg
}

func (r BeamBar) Category() Category { return r.Position }
func (r BeamBar) Bar() detailing.BarSpec { return r.Spec }
func (r BeamBar) Weight() float64 { return r.TotalWeight }
func (r BeamBar) CutLength() float64 { return r.CuttingLength }
func (BeamBar) sealed() {}

// CantileverMode names how a cantilever bar was detailed
type CantileverMode string

const (
	CantileverProportional CantileverMode = "Proportional"
	CantileverDeadEnd      CantileverMode = "Dead-end"
)

// CantileverBar is a cantilever top bar
type CantileverBar struct {
	BeamNo        string
	Mode          CantileverMode
	Spec          detailing.BarSpec
	CuttingLength float64 // mm, per bar
	TotalWeight   float64 // kg
}

func (r CantileverBar) Category() Category { return Cantilever }
func (r CantileverBar) Bar() detailing.BarSpec { return r.Spec }
func (r CantileverBar) Weight() float64 { return r.TotalWeight }
func (r CantileverBar) CutLength() float64 { return r.CuttingLength }
func (CantileverBar) sealed() {}

// SpacingType distinguishes uniform from L/4 + L/2 stirrup spacing
type SpacingType string

const (
	SpacingUniform   SpacingType = "Uniform"
	SpacingSplitZone SpacingType = "L/4 & L/2"
)

// Stirrup is one stirrup schedule line. For uniform spacing only Count is
// set; for split-zone spacing L4Count and L2Count are kept separately.
type Stirrup struct {
	Legs          int
	BeamNo        string
	Spec          detailing.BarSpec
	Spacing       SpacingType
	Count         int
	L4Count       int
	L2Count       int
	CuttingLength float64 // mm, per stirrup
	WeightPerBar  float64 // g per stirrup, floor(d²/162 × L)
	TotalWeight   float64 // kg
}

// Category panics if Legs is not 2, 4 or 6. Records built by the stirrup
// calculator always carry a supported leg count.
func (r Stirrup) Category() Category {
	c, err := StirrupCategory(r.Legs)
	if err != nil {
		panic(err)
	}
	return c
}
func (r Stirrup) Bar() detailing.BarSpec { return r.Spec }
func (r Stirrup) Weight() float64 { return r.TotalWeight }
func (r Stirrup) CutLength() float64 { return r.CuttingLength }
func (Stirrup) sealed() {}

// SlabBars is a one-way slab bar schedule
type SlabBars struct {
	Type           string
	Spec           detailing.BarSpec
	MainBars       int
	DistBars       int
	CuttingLength1 float64 // m
	CuttingLength2 float64 // m
	Weight1        float64 // kg
	Weight2        float64 // kg
	TotalWeight    float64 // kg
}

func (r SlabBars) Category() Category { return Slab }
func (r SlabBars) Bar() detailing.BarSpec { return r.Spec }
func (r SlabBars) Weight() float64 { return r.TotalWeight }

// CutLength returns the longer of the two zone lengths, in metres
func (r SlabBars) CutLength() float64 {
	if r.CuttingLength2 > r.CuttingLength1 {
		return r.CuttingLength2
	}
	return r.CuttingLength1
}
func (SlabBars) sealed() {}
