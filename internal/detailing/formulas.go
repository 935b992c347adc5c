package detailing

import (
	"fmt"
	"strings"
)

// BendLengthPolicy selects how the anchorage length into a support is
// limited when the development length cannot fit in the support.
type BendLengthPolicy int

const (
	// BendLengthDepthLimited falls back to w + h - 40 once Ld exceeds
	// safeLen + h - 20.
	BendLengthDepthLimited BendLengthPolicy = iota

	// BendLengthDevelopment falls back to the full Ld once Ld exceeds
	// w - 20 + h - 25.
	BendLengthDevelopment
)

func (p BendLengthPolicy) String() string {
	switch p {
	case BendLengthDepthLimited:
		return "depth-limited"
	case BendLengthDevelopment:
		return "development"
	default:
		return fmt.Sprintf("BendLengthPolicy(%d)", int(p))
	}
}

// ParseBendLengthPolicy accepts the names printed by String
func ParseBendLengthPolicy(s string) (BendLengthPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "depth-limited", "depth":
		return BendLengthDepthLimited, nil
	case "development", "ld":
		return BendLengthDevelopment, nil
	default:
		return 0, Unsupported("bend length policy %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p BendLengthPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *BendLengthPolicy) UnmarshalText(text []byte) error {
	v, err := ParseBendLengthPolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// BendLength calculates the anchorage length a bar of diameter d extends
// into a support of width w on a beam of depth h. Never negative.
func (p BendLengthPolicy) BendLength(d, w, h float64) float64 {
	ld := DevelopmentLength(d)
	safeLen := ld - w - BendClearance - 2*d

	switch p {
	case BendLengthDevelopment:
		if ld > w-20+h-25 {
			return clamp(ld)
		}
	default:
		if ld > safeLen+h-20 {
			return clamp(w + h - 40)
		}
	}
	return clamp(safeLen)
}

// CuttingLengthTwoSupports is used when a bar anchors into supports at both ends
func CuttingLengthTwoSupports(d, clearSpan, w1, w2, bl1, bl2 float64) float64 {
	return clearSpan + w1 + bl1 + w2 + bl2
}

// CuttingLengthOneSupport is used when the far end continues into an
// adjacent span and so consumes a full development length.
func CuttingLengthOneSupport(d, clearSpan, w, beamDepth, bl1 float64) float64 {
	return clearSpan + bl1 + DevelopmentLength(d) + w
}

// CuttingLengthNoSupport extends a full development length past both ends
func CuttingLengthNoSupport(d, clearSpan float64) float64 {
	return clearSpan + 2*DevelopmentLength(d)
}
