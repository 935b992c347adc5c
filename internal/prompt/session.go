package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexiusacademia/gorebar/internal/beam"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/alexiusacademia/gorebar/internal/slab"
	"github.com/alexiusacademia/gorebar/internal/stirrup"
)

// Menu entries, in display order
var menu = []string{
	"Top Steel",
	"Bottom Steel",
	"Cantilever Top Steel",
	"Stirrups",
	"Slab",
	"Finish",
}

const finish = 5

// Session walks the user through one calculation at a time and commits
// each result to the collection only when its whole flow is complete.
type Session struct {
	p        *Prompter
	beams    *beam.Calculator
	stirrups *stirrup.Calculator
	coll     *result.Collection
}

// NewSession creates a session that appends to coll
func NewSession(in io.Reader, out io.Writer, policy detailing.Policy, coll *result.Collection) *Session {
	return &Session{
		p:        New(in, out),
		beams:    beam.NewCalculator(policy),
		stirrups: stirrup.NewCalculator(policy),
		coll:     coll,
	}
}

// Run shows the menu until Finish is chosen or the input ends
func (s *Session) Run() (*result.Collection, error) {
	flows := []func() ([]result.Record, error){
		func() ([]result.Record, error) { return s.beamFlow(beam.Top) },
		func() ([]result.Record, error) { return s.beamFlow(beam.Bottom) },
		s.cantileverFlow,
		s.stirrupFlow,
		s.slabFlow,
	}

	s.p.Printf("Type %q at any prompt to return to this menu.\n", BackKeyword)
	for {
		choice, err := s.p.Choice("What do you want to calculate?", menu)
		switch {
		case errors.Is(err, ErrBack):
			continue
		case errors.Is(err, io.EOF):
			return s.coll, nil
		case err != nil:
			return s.coll, err
		}
		if choice == finish {
			return s.coll, nil
		}

		recs, err := flows[choice]()
		switch {
		case errors.Is(err, ErrBack):
			s.p.Printf("Discarded. Back to menu.\n")
			continue
		case errors.Is(err, io.EOF):
			return s.coll, nil
		case err != nil:
			s.p.Printf("Error: %v\n", err)
			continue
		}

		s.coll.Append(recs...)
		var weight float64
		for _, r := range recs {
			weight += r.Weight()
		}
		logging.Calculation(menu[choice], "", len(recs), weight)
		s.p.Printf("Added %d record(s), %.2f kg. Session total: %d record(s), %.2f kg.\n",
			len(recs), weight, s.coll.Len(), s.coll.TotalWeight())
	}
}

func (s *Session) bars(single bool) ([]detailing.BarSpec, error) {
	n := 1
	if !single {
		var err error
		if n, err = s.p.PositiveInt("Enter number of bar diameters: "); err != nil {
			return nil, err
		}
	}
	bars := make([]detailing.BarSpec, 0, n)
	for i := 0; i < n; i++ {
		d, err := s.p.Positive(fmt.Sprintf("Enter diameter of bar %d (mm): ", i+1))
		if err != nil {
			return nil, err
		}
		qty := 1
		if !single {
			if qty, err = s.p.PositiveInt(fmt.Sprintf("Enter number of %smm bars: ", detailing.FormatDiameter(d))); err != nil {
				return nil, err
			}
		}
		bars = append(bars, detailing.BarSpec{Diameter: d, Quantity: qty})
	}
	return bars, nil
}

func (s *Session) support(label string) (detailing.SupportGeometry, error) {
	w, err := s.p.Positive(fmt.Sprintf("Enter width of %s (mm): ", label))
	if err != nil {
		return detailing.SupportGeometry{}, err
	}
	h, err := s.p.Positive(fmt.Sprintf("Enter depth of the beam at %s (mm): ", label))
	if err != nil {
		return detailing.SupportGeometry{}, err
	}
	return detailing.SupportGeometry{Width: w, BeamDepth: h}, nil
}

func (s *Session) beamFlow(pos beam.Position) ([]result.Record, error) {
	beamNo, err := s.p.Text("Enter the beam number: ")
	if err != nil {
		return nil, err
	}
	clearSpan, err := s.p.Positive("Enter clear span of beam (mm): ")
	if err != nil {
		return nil, err
	}
	supports, err := s.p.OneOf("How many end supports are present (0, 1 or 2)? ", 0, 1, 2)
	if err != nil {
		return nil, err
	}

	var cfg beam.Configuration
	switch supports {
	case 0:
		cfg = beam.NoSupport{ClearSpan: clearSpan}
	case 1:
		sup, err := s.support("end support")
		if err != nil {
			return nil, err
		}
		cfg = beam.Continuous1Support{ClearSpan: clearSpan, Support: sup}
	case 2:
		sup1, err := s.support("end support 1")
		if err != nil {
			return nil, err
		}
		sup2, err := s.support("end support 2")
		if err != nil {
			return nil, err
		}
		cfg = beam.Continuous2Support{ClearSpan: clearSpan, Support1: sup1, Support2: sup2}
	}

	bars, err := s.bars(false)
	if err != nil {
		return nil, err
	}
	return s.beams.Calculate(pos, beamNo, cfg, bars)
}

func (s *Session) cantileverFlow() ([]result.Record, error) {
	beamNo, err := s.p.Text("Enter the beam number of this cantilever: ")
	if err != nil {
		return nil, err
	}
	mode, err := s.p.Choice("Cantilever bar type", []string{
		"Proportional (inner span / 3 + cantilever span)",
		"Dead-end extension",
	})
	if err != nil {
		return nil, err
	}

	var m beam.CantileverMode
	if mode == 0 {
		inner, err := s.p.Positive("Enter the inner span (mm): ")
		if err != nil {
			return nil, err
		}
		canti, err := s.p.Positive("Enter the cantilever span (mm): ")
		if err != nil {
			return nil, err
		}
		m = beam.Proportional{InnerSpan: inner, CantileverSpan: canti}
	} else {
		full, err := s.p.Positive("Enter the full span (mm): ")
		if err != nil {
			return nil, err
		}
		m = beam.DeadEndExtension{FullSpan: full}
	}

	bars, err := s.bars(false)
	if err != nil {
		return nil, err
	}
	return s.beams.Calculate(beam.Top, beamNo, beam.Cantilever{Mode: m}, bars)
}

func (s *Session) stirrupFlow() ([]result.Record, error) {
	beamNo, err := s.p.Text("Enter the beam number: ")
	if err != nil {
		return nil, err
	}
	legs, err := s.p.OneOf("Enter number of legs (2, 4 or 6): ", 2, 4, 6)
	if err != nil {
		return nil, err
	}
	width, err := s.p.Positive("Enter beam width (mm): ")
	if err != nil {
		return nil, err
	}
	depth, err := s.p.Positive("Enter beam depth (mm): ")
	if err != nil {
		return nil, err
	}
	clearSpan, err := s.p.Positive("Enter clear span (mm): ")
	if err != nil {
		return nil, err
	}
	kind, err := s.p.Choice("Spacing type", []string{"Uniform", "L/4 & L/2 zones"})
	if err != nil {
		return nil, err
	}

	var spacing stirrup.Spacing
	if kind == 0 {
		sv, err := s.p.Positive("Enter spacing (mm): ")
		if err != nil {
			return nil, err
		}
		spacing = stirrup.Uniform{Spacing: sv}
	} else {
		l4, err := s.p.Positive("Enter spacing in the L/4 end zones (mm): ")
		if err != nil {
			return nil, err
		}
		l2, err := s.p.Positive("Enter spacing in the L/2 middle zone (mm): ")
		if err != nil {
			return nil, err
		}
		spacing = stirrup.SplitZone{L4Spacing: l4, L2Spacing: l2}
	}

	bars, err := s.bars(true)
	if err != nil {
		return nil, err
	}
	rec, err := s.stirrups.Calculate(beamNo, stirrup.Configuration{
		Legs:      legs,
		BeamWidth: width,
		BeamDepth: depth,
		ClearSpan: clearSpan,
		Spacing:   spacing,
	}, bars[0])
	if err != nil {
		return nil, err
	}
	return []result.Record{rec}, nil
}

func (s *Session) slabFlow() ([]result.Record, error) {
	kind, err := s.p.Choice("Slab type", []string{slab.OneWay.String(), slab.TwoWay.String()})
	if err != nil {
		return nil, err
	}
	cfg := slab.Configuration{Type: slab.Type(kind)}
	if cfg.Type != slab.OneWay {
		return nil, cfg.Validate()
	}

	if cfg.Breadth, err = s.p.Positive("Enter shorter span x (mm): "); err != nil {
		return nil, err
	}
	// only the longer span is asked again when it is shorter than x
	for {
		if cfg.Length, err = s.p.Positive("Enter longer span y (mm): "); err != nil {
			return nil, err
		}
		if cfg.Length >= cfg.Breadth {
			break
		}
		s.p.Printf("Span y must be at least span x (%s mm).\n", detailing.FormatDiameter(cfg.Breadth))
	}

	fields := []struct {
		prompt   string
		dst      *float64
		positive bool
	}{
		{"Enter adjacent span a (mm): ", &cfg.AdjacentSpanA, false},
		{"Enter adjacent span b (mm): ", &cfg.AdjacentSpanB, false},
		{"Enter width of beam 1 (mm): ", &cfg.BeamWidth1, false},
		{"Enter width of beam 2 (mm): ", &cfg.BeamWidth2, false},
		{"Enter main bar spacing (mm): ", &cfg.MainBarSpacing, true},
		{"Enter distribution bar spacing (mm): ", &cfg.DistBarSpacing, true},
	}
	for _, f := range fields {
		var v float64
		if f.positive {
			v, err = s.p.Positive(f.prompt)
		} else {
			v, err = s.p.NonNegative(f.prompt)
		}
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	bars, err := s.bars(false)
	if err != nil {
		return nil, err
	}
	recs := make([]result.Record, 0, len(bars))
	for _, bar := range bars {
		rec, err := slab.Calculate(cfg, bar)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
