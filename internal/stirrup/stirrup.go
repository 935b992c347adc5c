// Package stirrup calculates stirrup cutting lengths, counts and weights
// for 2, 4 and 6 legged stirrups.
package stirrup

import (
	"math"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
)

// Spacing is Uniform or SplitZone
type Spacing interface {
	validate() error
}

// Uniform spaces stirrups evenly over the clear span
type Uniform struct {
	Spacing float64 // mm
}

func (s Uniform) validate() error {
	return detailing.RequirePositive("spacing", s.Spacing)
}

// SplitZone uses a closer spacing over L/4 at each end and a wider one over
// the middle L/2
type SplitZone struct {
	L4Spacing float64 // mm
	L2Spacing float64 // mm
}

func (s SplitZone) validate() error {
	if err := detailing.RequirePositive("L/4 spacing", s.L4Spacing); err != nil {
		return err
	}
	return detailing.RequirePositive("L/2 spacing", s.L2Spacing)
}

// Configuration is the beam a stirrup schedule is drawn for
type Configuration struct {
	Legs      int
	BeamWidth float64 // mm
	BeamDepth float64 // mm
	ClearSpan float64 // mm
	Spacing   Spacing
}

// Validate checks the configuration before any calculation
func (c Configuration) Validate() error {
	if _, err := result.StirrupCategory(c.Legs); err != nil {
		return err
	}
	if err := detailing.RequirePositive("beam width", c.BeamWidth); err != nil {
		return err
	}
	if err := detailing.RequirePositive("beam depth", c.BeamDepth); err != nil {
		return err
	}
	if err := detailing.RequirePositive("clear span", c.ClearSpan); err != nil {
		return err
	}
	if c.Spacing == nil {
		return detailing.Invalid("spacing", 0)
	}
	return c.Spacing.validate()
}

// CuttingLength calculates the cutting length of one stirrup. cover is the
// total cover deducted from the perimeter, applied once.
//
//	2 legs: 2a + 2b + 20d - 12d - cover          (a = width, b = depth)
//	4 legs: floor(4a + 2b + 2b/3 + 16d - cover)  (a = depth, b = width)
//	6 legs: floor(6a + 2b + 4b/5 + 24d - cover)
func CuttingLength(legs int, beamWidth, beamDepth, d, cover float64) (float64, error) {
	var length float64
	switch legs {
	case 2:
		a, b := beamWidth, beamDepth
		length = 2*a + 2*b + 20*d - 12*d - cover
	case 4:
		a, b := beamDepth, beamWidth
		length = math.Floor(4*a + 2*b + (2.0/3.0)*b + 16*d - cover)
	case 6:
		a, b := beamDepth, beamWidth
		length = math.Floor(6*a + 2*b + (4.0/5.0)*b + 24*d - cover)
	default:
		return 0, detailing.Unsupported("stirrup legs=%d (supported: 2, 4, 6)", legs)
	}
	return math.Max(0, length), nil
}

// WeightPerBar returns floor(d²/162 × L), the weight of one stirrup in g
func WeightPerBar(d, cuttingLength float64) float64 {
	return math.Floor(d * d / detailing.SteelWeightDivisor * cuttingLength)
}

// UniformResult is the outcome of DistributeUniform
type UniformResult struct {
	Count       int
	TotalWeight float64 // kg
}

// DistributeUniform counts stirrups at a single spacing over the clear span
func DistributeUniform(clearSpan, spacing, weightPerBar float64) (UniformResult, error) {
	if err := detailing.RequirePositive("clear span", clearSpan); err != nil {
		return UniformResult{}, err
	}
	if err := detailing.RequirePositive("spacing", spacing); err != nil {
		return UniformResult{}, err
	}

	count := int(math.Floor(clearSpan / spacing))
	return UniformResult{
		Count:       count,
		TotalWeight: math.Floor(float64(count) * weightPerBar / 1000),
	}, nil
}

// SplitZoneResult is the outcome of DistributeSplitZone. The two zone
// counts are never summed.
type SplitZoneResult struct {
	L4Count     int // per end zone
	L2Count     int
	Subtotal1   float64 // g, both end zones
	Subtotal2   float64 // g
	TotalWeight float64 // kg
}

// DistributeSplitZone counts stirrups in the two L/4 end zones and the
// middle L/2 zone
func DistributeSplitZone(l4Spacing, l2Spacing, clearSpan, weightPerBar float64) (SplitZoneResult, error) {
	if err := detailing.RequirePositive("clear span", clearSpan); err != nil {
		return SplitZoneResult{}, err
	}
	if err := (SplitZone{L4Spacing: l4Spacing, L2Spacing: l2Spacing}).validate(); err != nil {
		return SplitZoneResult{}, err
	}

	count1 := math.Floor((clearSpan/4)/l4Spacing + 1)
	subtotal1 := weightPerBar * count1 * 2

	count2 := math.Floor((clearSpan/2)/l2Spacing + 1)
	subtotal2 := weightPerBar * count2

	return SplitZoneResult{
		L4Count:     int(count1),
		L2Count:     int(count2),
		Subtotal1:   subtotal1,
		Subtotal2:   subtotal2,
		TotalWeight: math.Floor((subtotal1 + subtotal2) / 1000),
	}, nil
}

// Calculator produces stirrup records under a detailing policy
type Calculator struct {
	Policy detailing.Policy
}

// NewCalculator creates a calculator with the given policy
func NewCalculator(policy detailing.Policy) *Calculator {
	return &Calculator{Policy: policy}
}

// Calculate produces the stirrup schedule for one beam and bar size
func (c *Calculator) Calculate(beamNo string, cfg Configuration, bar detailing.BarSpec) (result.Stirrup, error) {
	if err := cfg.Validate(); err != nil {
		return result.Stirrup{}, err
	}
	if err := bar.Validate(); err != nil {
		return result.Stirrup{}, err
	}
	// the count comes from the spacing, one record per bar size
	if bar.Quantity != 1 {
		return result.Stirrup{}, detailing.Invalid("stirrup bar quantity", float64(bar.Quantity))
	}

	length, err := CuttingLength(cfg.Legs, cfg.BeamWidth, cfg.BeamDepth, bar.Diameter, c.Policy.StirrupCoverDeduction)
	if err != nil {
		return result.Stirrup{}, err
	}
	wpb := WeightPerBar(bar.Diameter, length)

	rec := result.Stirrup{
		Legs:          cfg.Legs,
		BeamNo:        beamNo,
		Spec:          bar,
		CuttingLength: length,
		WeightPerBar:  wpb,
	}

	switch s := cfg.Spacing.(type) {
	case Uniform:
		u, err := DistributeUniform(cfg.ClearSpan, s.Spacing, wpb)
		if err != nil {
			return result.Stirrup{}, err
		}
		rec.Spacing = result.SpacingUniform
		rec.Count = u.Count
		rec.TotalWeight = u.TotalWeight
	case SplitZone:
		z, err := DistributeSplitZone(s.L4Spacing, s.L2Spacing, cfg.ClearSpan, wpb)
		if err != nil {
			return result.Stirrup{}, err
		}
		rec.Spacing = result.SpacingSplitZone
		rec.L4Count = z.L4Count
		rec.L2Count = z.L2Count
		rec.TotalWeight = z.TotalWeight
	default:
		return result.Stirrup{}, detailing.Unsupported("stirrup spacing %T", cfg.Spacing)
	}

	return rec, nil
}
