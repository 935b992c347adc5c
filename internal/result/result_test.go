package result_test

import (
	"testing"

	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryKeys(t *testing.T) {
	for _, c := range result.Categories {
		parsed, ok := result.ParseCategory(c.Key())
		require.True(t, ok, c.Key())
		assert.Equal(t, c, parsed)
	}
	_, ok := result.ParseCategory("Top Steel")
	assert.False(t, ok)
	assert.Equal(t, "Stirrups (4 legged)", result.Stirrup4.String())
}

func TestStirrupCategory(t *testing.T) {
	c, err := result.StirrupCategory(6)
	require.NoError(t, err)
	assert.Equal(t, result.Stirrup6, c)

	_, err = result.StirrupCategory(3)
	require.ErrorIs(t, err, detailing.ErrUnsupportedConfiguration)
}

func TestStirrup_CategoryPanicsOnUnsupportedLegs(t *testing.T) {
	assert.Equal(t, result.Stirrup2, result.Stirrup{Legs: 2}.Category())
	assert.Panics(t, func() { _ = result.Stirrup{Legs: 3}.Category() })
	assert.Panics(t, func() { _ = result.Stirrup{}.Category() })
}

func TestRecordAccessors(t *testing.T) {
	bar := detailing.BarSpec{Diameter: 10, Quantity: 2}
	records := []result.Record{
		result.BeamBar{Position: result.BottomSteel, Spec: bar, CuttingLength: 4000, TotalWeight: 4.9},
		result.CantileverBar{Spec: bar, CuttingLength: 2650, TotalWeight: 3.2},
		result.Stirrup{Legs: 4, Spec: bar, CuttingLength: 1500, TotalWeight: 12},
		result.SlabBars{Spec: bar, CuttingLength1: 3.5, CuttingLength2: 3.75, TotalWeight: 40},
	}
	want := []result.Category{result.BottomSteel, result.Cantilever, result.Stirrup4, result.Slab}
	for i, r := range records {
		assert.Equal(t, want[i], r.Category())
		assert.Equal(t, bar, r.Bar())
	}
	assert.Equal(t, 3.75, records[3].CutLength())
}

func TestCollection(t *testing.T) {
	c := result.NewCollection()
	require.Zero(t, c.Len())

	c.Append(
		result.CantileverBar{TotalWeight: 1.5},
		result.CantileverBar{TotalWeight: 2.5},
	)
	assert.Equal(t, 2, c.Len())
	assert.InDelta(t, 4.0, c.TotalWeight(), 1e-9)

	// Records hands out a copy
	recs := c.Records()
	recs[0] = result.SlabBars{}
	assert.Equal(t, result.Cantilever, c.Records()[0].Category())

	other := result.NewCollection()
	assert.NotEqual(t, c.ID, other.ID)
}
