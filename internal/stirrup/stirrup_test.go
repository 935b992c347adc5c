package stirrup_test

import (
	"testing"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/alexiusacademia/gorebar/internal/stirrup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuttingLength(t *testing.T) {
	tests := []struct {
		legs       int
		width, dep float64
		d          float64
		want       float64
	}{
		// 2*230 + 2*450 + 8*8 - 80
		{2, 230, 450, 8, 1344},
		// floor(4*450 + 2*230 + 460/3 + 128 - 80) = floor(2461.33)
		{4, 230, 450, 8, 2461},
		// floor(6*600 + 2*300 + 240 + 240 - 80)
		{6, 300, 600, 10, 4600},
	}
	for _, tt := range tests {
		got, err := stirrup.CuttingLength(tt.legs, tt.width, tt.dep, tt.d, detailing.DefaultStirrupCoverDeduction)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "legs=%d", tt.legs)
	}

	_, err := stirrup.CuttingLength(3, 230, 450, 8, 80)
	require.ErrorIs(t, err, detailing.ErrUnsupportedConfiguration)

	// tiny section clamps to zero
	got, err := stirrup.CuttingLength(2, 10, 10, 1, 80)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestWeightPerBar(t *testing.T) {
	// 64/162*1344 = 530.96
	assert.Equal(t, 530.0, stirrup.WeightPerBar(8, 1344))
}

func TestDistributeUniform(t *testing.T) {
	u, err := stirrup.DistributeUniform(1000, 150, 530)
	require.NoError(t, err)
	assert.Equal(t, 6, u.Count)
	assert.Equal(t, 3.0, u.TotalWeight) // floor(3180/1000)

	_, err = stirrup.DistributeUniform(1000, 0, 530)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)
	_, err = stirrup.DistributeUniform(-1, 150, 530)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)
}

func TestDistributeSplitZone(t *testing.T) {
	z, err := stirrup.DistributeSplitZone(100, 200, 2000, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, z.L4Count)
	assert.Equal(t, 60.0, z.Subtotal1)
	assert.Equal(t, 6, z.L2Count)
	assert.Equal(t, 30.0, z.Subtotal2)
	assert.Equal(t, 0.0, z.TotalWeight)

	_, err = stirrup.DistributeSplitZone(0, 200, 2000, 5)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)
	_, err = stirrup.DistributeSplitZone(100, 200, 0, 5)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)
}

func TestCalculate(t *testing.T) {
	calc := stirrup.NewCalculator(detailing.DefaultPolicy())
	bar := detailing.BarSpec{Diameter: 8, Quantity: 1}

	rec, err := calc.Calculate("B1", stirrup.Configuration{
		Legs: 2, BeamWidth: 230, BeamDepth: 450, ClearSpan: 4000,
		Spacing: stirrup.Uniform{Spacing: 150},
	}, bar)
	require.NoError(t, err)
	assert.Equal(t, result.Stirrup2, rec.Category())
	assert.Equal(t, result.SpacingUniform, rec.Spacing)
	assert.Equal(t, 1344.0, rec.CuttingLength)
	assert.Equal(t, 530.0, rec.WeightPerBar)
	assert.Equal(t, 26, rec.Count)
	assert.Equal(t, 13.0, rec.TotalWeight) // floor(26*530/1000)

	rec, err = calc.Calculate("B1", stirrup.Configuration{
		Legs: 4, BeamWidth: 230, BeamDepth: 450, ClearSpan: 4000,
		Spacing: stirrup.SplitZone{L4Spacing: 100, L2Spacing: 200},
	}, bar)
	require.NoError(t, err)
	assert.Equal(t, result.Stirrup4, rec.Category())
	assert.Equal(t, result.SpacingSplitZone, rec.Spacing)
	assert.Equal(t, 11, rec.L4Count)
	assert.Equal(t, 11, rec.L2Count)
	assert.Zero(t, rec.Count)
}

func TestCalculate_Errors(t *testing.T) {
	calc := stirrup.NewCalculator(detailing.DefaultPolicy())
	bar := detailing.BarSpec{Diameter: 8, Quantity: 1}
	base := stirrup.Configuration{Legs: 2, BeamWidth: 230, BeamDepth: 450, ClearSpan: 4000, Spacing: stirrup.Uniform{Spacing: 150}}

	cfg := base
	cfg.Legs = 8
	_, err := calc.Calculate("B1", cfg, bar)
	require.ErrorIs(t, err, detailing.ErrUnsupportedConfiguration)

	cfg = base
	cfg.ClearSpan = 0
	_, err = calc.Calculate("B1", cfg, bar)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)

	cfg = base
	cfg.Spacing = stirrup.Uniform{Spacing: -10}
	_, err = calc.Calculate("B1", cfg, bar)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)

	cfg = base
	cfg.Spacing = nil
	_, err = calc.Calculate("B1", cfg, bar)
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)

	_, err = calc.Calculate("B1", base, detailing.BarSpec{Diameter: 8})
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)

	// the count comes from the spacing, not the bar quantity
	_, err = calc.Calculate("B1", base, detailing.BarSpec{Diameter: 8, Quantity: 3})
	require.ErrorIs(t, err, detailing.ErrInvalidGeometry)
	assert.Contains(t, err.Error(), "stirrup bar quantity=3")
}
