package detailing

// Policy holds the detailing choices that differ between drawing offices.
// The zero value is not useful; start from DefaultPolicy.
type Policy struct {
	BendLength            BendLengthPolicy `yaml:"bend_length_policy" json:"bend_length_policy"`
	CantileverOffset      float64          `yaml:"cantilever_offset" json:"cantilever_offset"`             // mm
	DeadEndAllowance      float64          `yaml:"dead_end_allowance" json:"dead_end_allowance"`           // mm
	StirrupCoverDeduction float64          `yaml:"stirrup_cover_deduction" json:"stirrup_cover_deduction"` // mm
}

// DefaultPolicy returns the depth-limited bend policy with the standard allowances
func DefaultPolicy() Policy {
	return Policy{
		BendLength:            BendLengthDepthLimited,
		CantileverOffset:      DefaultCantileverOffset,
		DeadEndAllowance:      DefaultDeadEndAllowance,
		StirrupCoverDeduction: DefaultStirrupCoverDeduction,
	}
}

// Validate rejects negative allowances
func (p Policy) Validate() error {
	if p.BendLength != BendLengthDepthLimited && p.BendLength != BendLengthDevelopment {
		return Unsupported("bend length policy %d", int(p.BendLength))
	}
	if err := RequireNonNegative("cantilever offset", p.CantileverOffset); err != nil {
		return err
	}
	if err := RequireNonNegative("dead-end allowance", p.DeadEndAllowance); err != nil {
		return err
	}
	return RequireNonNegative("stirrup cover deduction", p.StirrupCoverDeduction)
}

// BendLengthAt applies the configured bend length policy to a support
func (p Policy) BendLengthAt(d float64, s SupportGeometry) float64 {
	return p.BendLength.BendLength(d, s.Width, s.BeamDepth)
}

// CuttingLengthCantileverProportional calculates a cantilever bar that runs
// a third of the inner span back from the support.
func (p Policy) CuttingLengthCantileverProportional(innerSpan, cantileverSpan float64) float64 {
	return innerSpan/3 + cantileverSpan + p.CantileverOffset
}

// CuttingLengthDeadEnd calculates a cantilever bar that extends to a dead end
func (p Policy) CuttingLengthDeadEnd(fullSpan float64) float64 {
	return fullSpan + p.DeadEndAllowance
}
