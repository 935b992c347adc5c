package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	j, err := LoadFromFile(filepath.Join("testdata", "schedule.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Ground floor", j.Name)
	require.Len(t, j.Units, 5)
	assert.Equal(t, KindTop, j.Units[0].Kind)
	assert.Equal(t, detailing.SupportGeometry{Width: 230, BeamDepth: 300}, j.Units[0].Supports[1])
	assert.Equal(t, []detailing.BarSpec{{Diameter: 12, Quantity: 3}, {Diameter: 16, Quantity: 2}}, j.Units[0].Bars)
}

func TestRun(t *testing.T) {
	j, err := LoadFromFile(filepath.Join("testdata", "schedule.yaml"))
	require.NoError(t, err)

	coll, err := Run(j, detailing.DefaultPolicy())
	require.NoError(t, err)
	require.Equal(t, 6, coll.Len())

	recs := coll.Records()
	assert.Equal(t, result.TopSteel, recs[0].Category())
	assert.Equal(t, result.BottomSteel, recs[2].Category())
	assert.Equal(t, 5104.0, recs[2].CutLength())
	assert.Equal(t, 2300.0, recs[3].CutLength())
	assert.Equal(t, result.Stirrup2, recs[4].Category())
	assert.Equal(t, 26, recs[4].(result.Stirrup).Count)
	assert.Equal(t, 27, recs[5].(result.SlabBars).MainBars)
}

func TestRun_YAMLAndJSONAgree(t *testing.T) {
	fromYAML, err := LoadFromFile(filepath.Join("testdata", "schedule.yaml"))
	require.NoError(t, err)
	fromJSON, err := LoadFromFile(filepath.Join("testdata", "schedule.json"))
	require.NoError(t, err)
	assert.Equal(t, fromYAML, fromJSON)

	a, err := Run(fromYAML, detailing.DefaultPolicy())
	require.NoError(t, err)
	b, err := Run(fromJSON, detailing.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, a.Records(), b.Records())
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRun_JobPolicyOverrides(t *testing.T) {
	allowance := 500.0
	j := &Job{
		Policy: &PolicyOverride{DeadEndAllowance: &allowance},
		Units: []Unit{{
			Kind: KindCantilever, BeamNo: "C1", Mode: ModeDeadEnd, FullSpan: 2000,
			Bars: []detailing.BarSpec{{Diameter: 16, Quantity: 2}},
		}},
	}
	coll, err := Run(j, detailing.DefaultPolicy())
	require.NoError(t, err)
	assert.Equal(t, 2500.0, coll.Records()[0].CutLength())
}

func TestLoadFromFile_PartialPolicyKeepsDefaults(t *testing.T) {
	tests := []struct {
		file string
		body string
	}{
		{"partial.yaml", `
policy:
  bend_length_policy: development
units:
  - kind: stirrup
    beam_no: B1
    legs: 2
    width: 230
    depth: 450
    clear_span: 4000
    spacing: 150
    bars: [{diameter: 8, quantity: 1}]
  - kind: cantilever
    beam_no: C1
    mode: dead-end
    full_span: 2000
    bars: [{diameter: 16, quantity: 2}]
`},
		{"partial.json", `{
  "policy": {"bend_length_policy": "development"},
  "units": [
    {"kind": "stirrup", "beam_no": "B1", "legs": 2, "width": 230, "depth": 450,
     "clear_span": 4000, "spacing": 150, "bars": [{"diameter": 8, "quantity": 1}]},
    {"kind": "cantilever", "beam_no": "C1", "mode": "dead-end", "full_span": 2000,
     "bars": [{"diameter": 16, "quantity": 2}]}
  ]
}`},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o644))

			j, err := LoadFromFile(path)
			require.NoError(t, err)
			require.NotNil(t, j.Policy)
			assert.Nil(t, j.Policy.CantileverOffset)

			base := detailing.DefaultPolicy()
			policy := j.Policy.Apply(base)
			assert.Equal(t, detailing.BendLengthDevelopment, policy.BendLength)
			assert.Equal(t, base.CantileverOffset, policy.CantileverOffset)
			assert.Equal(t, base.DeadEndAllowance, policy.DeadEndAllowance)
			assert.Equal(t, base.StirrupCoverDeduction, policy.StirrupCoverDeduction)

			coll, err := Run(j, base)
			require.NoError(t, err)
			recs := coll.Records()
			assert.Equal(t, 1344.0, recs[0].CutLength())
			assert.Equal(t, 2300.0, recs[1].CutLength())
		})
	}
}

func TestLoadFromFile_RejectsNegativePolicy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neg_policy.yaml")
	body := "policy:\n  dead_end_allowance: -10\nunits:\n  - kind: bottom\n    clear_span: 3000\n    bars: [{diameter: 10, quantity: 1}]\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := LoadFromFile(path)
	assert.ErrorIs(t, err, detailing.ErrInvalidGeometry)
}

func TestRun_StopsAtFailingUnit(t *testing.T) {
	j := &Job{Units: []Unit{
		{Kind: KindBottom, BeamNo: "B1", ClearSpan: 3000, Bars: []detailing.BarSpec{{Diameter: 10, Quantity: 2}}},
		{Kind: KindSlab, BeamNo: "S1", Breadth: 4000, Length: 3000, MainSpacing: 150, DistSpacing: 150,
			Bars: []detailing.BarSpec{{Diameter: 10, Quantity: 1}}},
	}}

	coll, err := Run(j, detailing.DefaultPolicy())
	assert.Nil(t, coll)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)

	var unitErr *UnitError
	require.ErrorAs(t, err, &unitErr)
	assert.Equal(t, 1, unitErr.Index)
	assert.Equal(t, "S1", unitErr.BeamNo)
	assert.Contains(t, err.Error(), "unit 2 (S1)")
}

func TestRun_Errors(t *testing.T) {
	bars := []detailing.BarSpec{{Diameter: 12, Quantity: 1}}
	tests := []struct {
		name string
		unit Unit
		want error
	}{
		{"three supports", Unit{Kind: KindTop, ClearSpan: 3000, Bars: bars,
			Supports: make([]detailing.SupportGeometry, 3)}, detailing.ErrUnsupportedConfiguration},
		{"unknown cantilever mode", Unit{Kind: KindCantilever, Mode: "hooked", Bars: bars}, detailing.ErrUnsupportedConfiguration},
		{"eight legs", Unit{Kind: KindStirrup, Legs: 8, Width: 230, Depth: 450, ClearSpan: 4000, Spacing: 150, Bars: bars},
			detailing.ErrUnsupportedConfiguration},
		{"stirrup without bars", Unit{Kind: KindStirrup, Legs: 2, Width: 230, Depth: 450, ClearSpan: 4000, Spacing: 150},
			detailing.ErrInvalidGeometry},
		{"two-way slab", Unit{Kind: KindSlab, SlabType: "two-way", Breadth: 3000, Length: 4000,
			MainSpacing: 150, DistSpacing: 150, Bars: bars}, detailing.ErrUnsupportedConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(&Job{Units: []Unit{tt.unit}}, detailing.DefaultPolicy())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	txt := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(txt, []byte("units: []"), 0644))
	_, err = LoadFromFile(txt)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\n"), 0644))
	_, err = LoadFromFile(empty)
	assert.Error(t, err)

	badKind := filepath.Join(dir, "kind.json")
	require.NoError(t, os.WriteFile(badKind, []byte(`{"units":[{"kind":"column","beam_no":"K1"}]}`), 0644))
	_, err = LoadFromFile(badKind)
	assert.ErrorIs(t, err, detailing.ErrUnsupportedConfiguration)
}
