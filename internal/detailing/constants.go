package detailing

import "math"

// Detailing constants used by every bar calculation. All lengths are in mm.

const (
	// DevelopmentFactor is the bar-diameter multiplier for the development
	// length Ld, taken from the code-of-practice tables for the assumed
	// steel and concrete grade.
	DevelopmentFactor = 46.0

	// SteelWeightDivisor converts d² (mm²) into kg per metre run of bar.
	// Derived from a steel density of 7850 kg/m³ (π/4 × 7850 / 10⁶ ≈ 1/162).
	SteelWeightDivisor = 162.0

	// BendClearance is deducted from the development length at each support
	// face before the bar turns down.
	BendClearance = 20.0

	// DefaultCantileverOffset is the constructional allowance added to a
	// proportional cantilever bar.
	DefaultCantileverOffset = 150.0

	// DefaultDeadEndAllowance is the anchorage allowance for a cantilever bar
	// that terminates at a discontinuous end.
	DefaultDeadEndAllowance = 300.0

	// DefaultStirrupCoverDeduction is the total cover deducted from a stirrup
	// perimeter (40 mm per face).
	DefaultStirrupCoverDeduction = 80.0
)

// DevelopmentLength calculates Ld = 46d
func DevelopmentLength(d float64) float64 {
	return DevelopmentFactor * d
}

// UnitWeight returns the bar weight in kg per metre run for diameter d (mm)
func UnitWeight(d float64) float64 {
	return d * d / SteelWeightDivisor
}

// Weight calculates the total steel weight (kg) of quantity bars of
// diameter d cut to cuttingLength (mm). No rounding is applied.
func Weight(d, cuttingLength float64, quantity int) float64 {
	return (d * d / SteelWeightDivisor) * float64(quantity) * cuttingLength / 1000
}

// clamp returns x, or zero when x is negative
func clamp(x float64) float64 {
	return math.Max(0, x)
}
