// Package slab calculates main and distribution bars for one-way slabs.
package slab

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
)

// Type is the slab spanning type
type Type int

const (
	OneWay Type = iota
	TwoWay
)

func (t Type) String() string {
	switch t {
	case OneWay:
		return "One-way"
	case TwoWay:
		return "Two-way"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType accepts "one-way" or "two-way"
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-way", "oneway", "one", "":
		return OneWay, nil
	case "two-way", "twoway", "two":
		return TwoWay, nil
	default:
		return 0, detailing.Unsupported("slab type %q", s)
	}
}

// Configuration is one slab panel between two beams
type Configuration struct {
	Type           Type
	Breadth        float64 // x, shorter span (mm)
	Length         float64 // y, longer span (mm)
	AdjacentSpanA  float64 // adjacent span to x on the right (mm)
	AdjacentSpanB  float64 // adjacent span to x on the left (mm)
	BeamWidth1     float64 // mm
	BeamWidth2     float64 // mm
	MainBarSpacing float64 // mm
	DistBarSpacing float64 // mm
}

type dimension struct {
	field string
	value float64
}

// Validate checks the slab type and dimensions
func (c Configuration) Validate() error {
	if c.Type != OneWay {
		return detailing.Unsupported("%s slab calculation is not implemented", c.Type)
	}
	positive := []dimension{
		{"breadth", c.Breadth},
		{"length", c.Length},
		{"main bar spacing", c.MainBarSpacing},
		{"distribution bar spacing", c.DistBarSpacing},
	}
	for _, dim := range positive {
		if err := detailing.RequirePositive(dim.field, dim.value); err != nil {
			return err
		}
	}
	nonNegative := []dimension{
		{"adjacent span a", c.AdjacentSpanA},
		{"adjacent span b", c.AdjacentSpanB},
		{"beam width 1", c.BeamWidth1},
		{"beam width 2", c.BeamWidth2},
	}
	for _, dim := range nonNegative {
		if err := detailing.RequireNonNegative(dim.field, dim.value); err != nil {
			return err
		}
	}
	if c.Length < c.Breadth {
		return fmt.Errorf("%w: length %.2f must be greater than or equal to breadth %.2f",
			detailing.ErrInvalidGeometry, c.Length, c.Breadth)
	}
	return nil
}

// Calculate produces the bar schedule for one slab panel and bar size.
// Main bars are split evenly between the two cutting-length zones.
func Calculate(cfg Configuration, bar detailing.BarSpec) (result.SlabBars, error) {
	if err := cfg.Validate(); err != nil {
		return result.SlabBars{}, err
	}
	if err := bar.Validate(); err != nil {
		return result.SlabBars{}, err
	}

	x, y := cfg.Breadth, cfg.Length
	d := bar.Diameter
	q := bar.Quantity

	numMain := int(math.Floor(y/cfg.MainBarSpacing+1)) * q
	numDist := int(math.Floor(x/cfg.DistBarSpacing+1)) * q

	// cutting lengths in metres
	l1 := (x + cfg.BeamWidth1 + cfg.BeamWidth2 + cfg.AdjacentSpanA/4) / 1000
	l2 := (x + cfg.BeamWidth1 + cfg.BeamWidth2 + cfg.AdjacentSpanB/4) / 1000

	n := float64(numMain)
	weight1 := math.Floor(n / 2 * l1 * (d * d) / detailing.SteelWeightDivisor)
	weight2 := math.Floor((n - n/2) * l2 * (d * d) / detailing.SteelWeightDivisor)

	return result.SlabBars{
		Type:           cfg.Type.String(),
		Spec:           bar,
		MainBars:       numMain,
		DistBars:       numDist,
		CuttingLength1: l1,
		CuttingLength2: l2,
		Weight1:        weight1,
		Weight2:        weight2,
		TotalWeight:    weight1 + weight2,
	}, nil
}
