package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var totals = []aggregate.DiameterTotal{
	{Diameter: 8, Records: 3, Weight: 23},
	{Diameter: 12, Records: 2, Weight: 16},
	{Diameter: 12.5, Records: 1, Weight: 5},
}

func TestExportWeightChart(t *testing.T) {
	dir := t.TempDir()

	path, err := ExportWeightChart(totals, filepath.Join(dir, "charts", "weights.svg"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "charts", "weights.svg"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	path, err = ExportWeightChart(totals, filepath.Join(dir, "weights"))
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(path))
	assert.FileExists(t, path)

	_, err = ExportWeightChart(nil, filepath.Join(dir, "empty.png"))
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPlotWeights(t *testing.T) {
	out := PlotWeights(totals)
	assert.Contains(t, out, "weight (kg) by diameter: 8, 12, 12.5 mm")

	single := PlotWeights(totals[:1])
	assert.Contains(t, single, "WEIGHT BY DIAMETER")
	assert.Contains(t, single, "23.00 kg")
}

func TestDrawWeightBars(t *testing.T) {
	out := DrawWeightBars(totals)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, 40, strings.Count(lines[2], "█"))
	assert.Contains(t, lines[4], "12.5mm")

	assert.NotPanics(t, func() {
		DrawWeightBars([]aggregate.DiameterTotal{{Diameter: 10}})
	})
}

func TestDrawBarShape(t *testing.T) {
	out := DrawBarShape(result.BeamBar{
		Position:      result.TopSteel,
		BeamNo:        "B1",
		Spec:          detailing.BarSpec{Diameter: 12, Quantity: 3},
		BendLength1:   208,
		BendLength2:   278,
		CuttingLength: 5016,
	})
	assert.Contains(t, out, "Top Steel B1")
	assert.Contains(t, out, "5016 mm")
	assert.Contains(t, out, "208")
	assert.Contains(t, out, "278")

	lines := strings.Split(strings.Trim(out, "\n"), "\n")
	require.Len(t, lines, 4)
	width := utf8.RuneCountInString(lines[1])
	for _, l := range lines[1:] {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}

	straight := DrawBarShape(result.BeamBar{Position: result.BottomSteel, BeamNo: "B3", CuttingLength: 3920})
	assert.Len(t, strings.Split(strings.Trim(straight, "\n"), "\n"), 2)
	assert.NotContains(t, straight, "┌")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("TOTAL", []string{"Records: 3", "Weight: 44.00 kg"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	width := utf8.RuneCountInString(lines[0])
	for _, l := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(l), l)
	}
	assert.Contains(t, lines[1], "TOTAL")
}
