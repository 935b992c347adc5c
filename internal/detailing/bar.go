package detailing

import (
	"fmt"
	"strconv"
	"strings"
)

// BarSpec is one bar size and how many bars of it are placed
type BarSpec struct {
	Diameter float64 `json:"diameter" yaml:"diameter"` // mm
	Quantity int     `json:"quantity" yaml:"quantity"`
}

// Validate checks diameter is finite and > 0, and quantity >= 1
func (b BarSpec) Validate() error {
	if err := RequirePositive("diameter", b.Diameter); err != nil {
		return err
	}
	if b.Quantity < 1 {
		return Invalid("quantity", float64(b.Quantity))
	}
	return nil
}

func (b BarSpec) String() string {
	return fmt.Sprintf("%d-%smm", b.Quantity, FormatDiameter(b.Diameter))
}

// ParseBarSpec parses "DIAxQTY" (e.g. "12x3") or a bare "DIA" meaning one bar
func ParseBarSpec(s string) (BarSpec, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	diaStr, qtyStr, hasQty := strings.Cut(s, "x")

	dia, err := strconv.ParseFloat(strings.TrimSpace(diaStr), 64)
	if err != nil {
		return BarSpec{}, fmt.Errorf("invalid bar %q: diameter must be a number", s)
	}

	qty := 1
	if hasQty {
		qty, err = strconv.Atoi(strings.TrimSpace(qtyStr))
		if err != nil {
			return BarSpec{}, fmt.Errorf("invalid bar %q: quantity must be an integer", s)
		}
	}

	bar := BarSpec{Diameter: dia, Quantity: qty}
	if err := bar.Validate(); err != nil {
		return BarSpec{}, err
	}
	return bar, nil
}

// FormatDiameter prints a diameter without trailing zeros (8, 10, 12.5)
func FormatDiameter(d float64) string {
	return strconv.FormatFloat(d, 'f', -1, 64)
}

// SupportGeometry describes one end support a bar bends into
type SupportGeometry struct {
	Width     float64 `json:"width" yaml:"width"` // mm
	BeamDepth float64 `json:"depth" yaml:"depth"` // mm
}

// Validate checks that both dimensions are non-negative
func (s SupportGeometry) Validate() error {
	if err := RequireNonNegative("support width", s.Width); err != nil {
		return err
	}
	return RequireNonNegative("support depth", s.BeamDepth)
}
