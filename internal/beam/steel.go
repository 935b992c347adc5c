package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
)

// Position is the face of the beam a bar is placed on
type Position int

const (
	Top Position = iota
	Bottom
)

func (p Position) category() result.Category {
	if p == Bottom {
		return result.BottomSteel
	}
	return result.TopSteel
}

func (p Position) String() string {
	return p.category().String()
}

// Calculator computes beam bar cutting lengths and weights under a detailing policy
type Calculator struct {
	Policy detailing.Policy
}

// NewCalculator creates a calculator with the given policy
func NewCalculator(policy detailing.Policy) *Calculator {
	return &Calculator{Policy: policy}
}

// Calculate returns one record per bar for a single beam. Cantilever
// configurations produce Cantilever records regardless of pos. Either every
// bar succeeds or an error is returned with no records.
func (c *Calculator) Calculate(pos Position, beamNo string, cfg Configuration, bars []detailing.BarSpec) ([]result.Record, error) {
	if cfg == nil {
		return nil, detailing.Unsupported("missing beam configuration")
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: at least one bar is required", detailing.ErrInvalidGeometry)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	for _, bar := range bars {
		if err := bar.Validate(); err != nil {
			return nil, err
		}
	}

	records := make([]result.Record, 0, len(bars))
	for _, bar := range bars {
		rec, err := c.bar(pos, beamNo, cfg, bar)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (c *Calculator) bar(pos Position, beamNo string, cfg Configuration, bar detailing.BarSpec) (result.Record, error) {
	d := bar.Diameter

	var clearSpan, bl1, bl2, length float64
	switch cfg := cfg.(type) {
	case Continuous2Support:
		clearSpan = cfg.ClearSpan
		bl1 = c.Policy.BendLengthAt(d, cfg.Support1)
		bl2 = c.Policy.BendLengthAt(d, cfg.Support2)
		length = detailing.CuttingLengthTwoSupports(d, clearSpan, cfg.Support1.Width, cfg.Support2.Width, bl1, bl2)

	case Continuous1Support:
		clearSpan = cfg.ClearSpan
		bl1 = c.Policy.BendLengthAt(d, cfg.Support)
		length = detailing.CuttingLengthOneSupport(d, clearSpan, cfg.Support.Width, cfg.Support.BeamDepth, bl1)

	case NoSupport:
		clearSpan = cfg.ClearSpan
		length = detailing.CuttingLengthNoSupport(d, clearSpan)

	case Cantilever:
		return c.cantilever(beamNo, cfg.Mode, bar)

	default:
		return nil, detailing.Unsupported("beam configuration %T", cfg)
	}

	length = math.Max(0, length)
	return result.BeamBar{
		Position:      pos.category(),
		BeamNo:        beamNo,
		Spec:          bar,
		ClearSpan:     clearSpan,
		BendLength1:   bl1,
		BendLength2:   bl2,
		CuttingLength: length,
		TotalWeight:   detailing.Weight(d, length, bar.Quantity),
	}, nil
}

func (c *Calculator) cantilever(beamNo string, mode CantileverMode, bar detailing.BarSpec) (result.Record, error) {
	var length float64
	var name result.CantileverMode

	switch m := mode.(type) {
	case Proportional:
		length = c.Policy.CuttingLengthCantileverProportional(m.InnerSpan, m.CantileverSpan)
		name = result.CantileverProportional
	case DeadEndExtension:
		length = c.Policy.CuttingLengthDeadEnd(m.FullSpan)
		name = result.CantileverDeadEnd
	default:
		return nil, detailing.Unsupported("cantilever mode %T", mode)
	}

	length = math.Max(0, length)
	return result.CantileverBar{
		BeamNo:        beamNo,
		Mode:          name,
		Spec:          bar,
		CuttingLength: length,
		TotalWeight:   detailing.Weight(bar.Diameter, length, bar.Quantity),
	}, nil
}
