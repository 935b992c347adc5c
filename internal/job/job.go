// Package job runs batch files that describe many beams, stirrups and slabs.
package job

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/beam"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/logging"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/alexiusacademia/gorebar/internal/slab"
	"github.com/alexiusacademia/gorebar/internal/stirrup"
	"gopkg.in/yaml.v3"
)

// Kind names the calculator a unit runs through
type Kind string

const (
	KindTop        Kind = "top"
	KindBottom     Kind = "bottom"
	KindCantilever Kind = "cantilever"
	KindStirrup    Kind = "stirrup"
	KindSlab       Kind = "slab"
)

// Cantilever modes accepted in job files
const (
	ModeProportional = "proportional"
	ModeDeadEnd      = "dead-end"
)

// Job is a batch file
type Job struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Policy overrides fields of the caller's policy when set
	Policy *PolicyOverride `json:"policy,omitempty" yaml:"policy,omitempty"`
	Units  []Unit            `json:"units" yaml:"units"`
}

// PolicyOverride holds the policy fields a job file sets. Fields left out
// keep the value of the policy the job runs with.
type PolicyOverride struct {
	BendLength            *detailing.BendLengthPolicy `json:"bend_length_policy,omitempty" yaml:"bend_length_policy,omitempty"`
	CantileverOffset      *float64                    `json:"cantilever_offset,omitempty" yaml:"cantilever_offset,omitempty"`             // mm
	DeadEndAllowance      *float64                    `json:"dead_end_allowance,omitempty" yaml:"dead_end_allowance,omitempty"`           // mm
	StirrupCoverDeduction *float64                    `json:"stirrup_cover_deduction,omitempty" yaml:"stirrup_cover_deduction,omitempty"` // mm
}

// Apply returns base with the set fields replaced
func (o *PolicyOverride) Apply(base detailing.Policy) detailing.Policy {
	if o == nil {
		return base
	}
	if o.BendLength != nil {
		base.BendLength = *o.BendLength
	}
	if o.CantileverOffset != nil {
		base.CantileverOffset = *o.CantileverOffset
	}
	if o.DeadEndAllowance != nil {
		base.DeadEndAllowance = *o.DeadEndAllowance
	}
	if o.StirrupCoverDeduction != nil {
		base.StirrupCoverDeduction = *o.StirrupCoverDeduction
	}
	return base
}

// Unit is one beam, stirrup schedule or slab panel. Only the fields of its
// kind are read.
type Unit struct {
	Kind   Kind                `json:"kind" yaml:"kind"`
	BeamNo string              `json:"beam_no,omitempty" yaml:"beam_no,omitempty"`
	Bars   []detailing.BarSpec `json:"bars" yaml:"bars"`

	// top, bottom, stirrup
	ClearSpan float64                     `json:"clear_span,omitempty" yaml:"clear_span,omitempty"` // mm
	Supports  []detailing.SupportGeometry `json:"supports,omitempty" yaml:"supports,omitempty"`

	// cantilever
	Mode           string  `json:"mode,omitempty" yaml:"mode,omitempty"`
	InnerSpan      float64 `json:"inner_span,omitempty" yaml:"inner_span,omitempty"`           // mm
	CantileverSpan float64 `json:"cantilever_span,omitempty" yaml:"cantilever_span,omitempty"` // mm
	FullSpan       float64 `json:"full_span,omitempty" yaml:"full_span,omitempty"`             // mm

	// stirrup
	Legs      int     `json:"legs,omitempty" yaml:"legs,omitempty"`
	Width     float64 `json:"width,omitempty" yaml:"width,omitempty"` // mm
	Depth     float64 `json:"depth,omitempty" yaml:"depth,omitempty"` // mm
	Spacing   float64 `json:"spacing,omitempty" yaml:"spacing,omitempty"`
	L4Spacing float64 `json:"l4_spacing,omitempty" yaml:"l4_spacing,omitempty"`
	L2Spacing float64 `json:"l2_spacing,omitempty" yaml:"l2_spacing,omitempty"`

	// slab
	SlabType    string  `json:"slab_type,omitempty" yaml:"slab_type,omitempty"`
	Breadth     float64 `json:"breadth,omitempty" yaml:"breadth,omitempty"`
	Length      float64 `json:"length,omitempty" yaml:"length,omitempty"`
	SpanA       float64 `json:"span_a,omitempty" yaml:"span_a,omitempty"`
	SpanB       float64 `json:"span_b,omitempty" yaml:"span_b,omitempty"`
	BeamWidth1  float64 `json:"beam_width1,omitempty" yaml:"beam_width1,omitempty"`
	BeamWidth2  float64 `json:"beam_width2,omitempty" yaml:"beam_width2,omitempty"`
	MainSpacing float64 `json:"main_spacing,omitempty" yaml:"main_spacing,omitempty"`
	DistSpacing float64 `json:"dist_spacing,omitempty" yaml:"dist_spacing,omitempty"`
}

// UnitError reports the unit a batch stopped at
type UnitError struct {
	Index  int // zero based
	BeamNo string
	Err    error
}

func (e *UnitError) Error() string {
	if e.BeamNo == "" {
		return fmt.Sprintf("unit %d: %v", e.Index+1, e.Err)
	}
	return fmt.Sprintf("unit %d (%s): %v", e.Index+1, e.BeamNo, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// LoadFromFile loads a job from a YAML (.yaml, .yml) or JSON (.json) file
func LoadFromFile(path string) (*Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var j Job
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &j)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &j)
	default:
		return nil, fmt.Errorf("unsupported job file %s: use .yaml, .yml or .json", path)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := j.Validate(); err != nil {
		return nil, err
	}
	return &j, nil
}

// Validate checks the unit kinds. Geometry is checked by the calculators.
func (j *Job) Validate() error {
	if len(j.Units) == 0 {
		return fmt.Errorf("job has no units")
	}
	for i, u := range j.Units {
		switch u.Kind {
		case KindTop, KindBottom, KindCantilever, KindStirrup, KindSlab:
		default:
			return &UnitError{Index: i, BeamNo: u.BeamNo,
				Err: detailing.Unsupported("unit kind %q (supported: top, bottom, cantilever, stirrup, slab)", u.Kind)}
		}
	}
	return j.Policy.Apply(detailing.DefaultPolicy()).Validate()
}

// Run calculates every unit. A unit's records are committed only when the
// whole unit succeeds; the first failing unit stops the run and no
// collection is returned.
func Run(j *Job, policy detailing.Policy) (*result.Collection, error) {
	policy = j.Policy.Apply(policy)
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	beams := beam.NewCalculator(policy)
	stirrups := stirrup.NewCalculator(policy)

	coll := result.NewCollection()
	for i, u := range j.Units {
		recs, err := u.calculate(beams, stirrups)
		if err != nil {
			return nil, &UnitError{Index: i, BeamNo: u.BeamNo, Err: err}
		}
		coll.Append(recs...)

		var weight float64
		for _, r := range recs {
			weight += r.Weight()
		}
		logging.Calculation(string(u.Kind), u.BeamNo, len(recs), weight, "unit", i+1)
	}
	logging.Info("job finished", "name", j.Name, "units", len(j.Units), "records", coll.Len())
	return coll, nil
}

func (u Unit) calculate(beams *beam.Calculator, stirrups *stirrup.Calculator) ([]result.Record, error) {
	switch u.Kind {
	case KindTop, KindBottom:
		cfg, err := u.beamConfiguration()
		if err != nil {
			return nil, err
		}
		pos := beam.Top
		if u.Kind == KindBottom {
			pos = beam.Bottom
		}
		return beams.Calculate(pos, u.BeamNo, cfg, u.Bars)

	case KindCantilever:
		var mode beam.CantileverMode
		switch strings.ToLower(u.Mode) {
		case ModeProportional, "":
			mode = beam.Proportional{InnerSpan: u.InnerSpan, CantileverSpan: u.CantileverSpan}
		case ModeDeadEnd, "deadend":
			mode = beam.DeadEndExtension{FullSpan: u.FullSpan}
		default:
			return nil, detailing.Unsupported("cantilever mode %q", u.Mode)
		}
		return beams.Calculate(beam.Top, u.BeamNo, beam.Cantilever{Mode: mode}, u.Bars)

	case KindStirrup:
		cfg := stirrup.Configuration{
			Legs:      u.Legs,
			BeamWidth: u.Width,
			BeamDepth: u.Depth,
			ClearSpan: u.ClearSpan,
			Spacing:   stirrup.Uniform{Spacing: u.Spacing},
		}
		if u.Spacing == 0 && (u.L4Spacing != 0 || u.L2Spacing != 0) {
			cfg.Spacing = stirrup.SplitZone{L4Spacing: u.L4Spacing, L2Spacing: u.L2Spacing}
		}
		return eachBar(u.Bars, func(bar detailing.BarSpec) (result.Record, error) {
			return stirrups.Calculate(u.BeamNo, cfg, bar)
		})

	case KindSlab:
		typ, err := slab.ParseType(u.SlabType)
		if err != nil {
			return nil, err
		}
		cfg := slab.Configuration{
			Type:           typ,
			Breadth:        u.Breadth,
			Length:         u.Length,
			AdjacentSpanA:  u.SpanA,
			AdjacentSpanB:  u.SpanB,
			BeamWidth1:     u.BeamWidth1,
			BeamWidth2:     u.BeamWidth2,
			MainBarSpacing: u.MainSpacing,
			DistBarSpacing: u.DistSpacing,
		}
		return eachBar(u.Bars, func(bar detailing.BarSpec) (result.Record, error) {
			return slab.Calculate(cfg, bar)
		})
	}
	return nil, detailing.Unsupported("unit kind %q", u.Kind)
}

func (u Unit) beamConfiguration() (beam.Configuration, error) {
	switch len(u.Supports) {
	case 0:
		return beam.NoSupport{ClearSpan: u.ClearSpan}, nil
	case 1:
		return beam.Continuous1Support{ClearSpan: u.ClearSpan, Support: u.Supports[0]}, nil
	case 2:
		return beam.Continuous2Support{ClearSpan: u.ClearSpan, Support1: u.Supports[0], Support2: u.Supports[1]}, nil
	default:
		return nil, detailing.Unsupported("%d supports (supported: 0, 1, 2)", len(u.Supports))
	}
}

// eachBar runs calc for every bar and keeps nothing if any bar fails
func eachBar(bars []detailing.BarSpec, calc func(detailing.BarSpec) (result.Record, error)) ([]result.Record, error) {
	if len(bars) == 0 {
		return nil, detailing.Invalid("bars", 0)
	}
	recs := make([]result.Record, 0, len(bars))
	for _, bar := range bars {
		rec, err := calc(bar)
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", bar, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
