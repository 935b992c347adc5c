package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrNoData is returned when there is nothing to chart
var ErrNoData = errors.New("no weights to chart")

// ExportWeightChart draws a bar chart of steel weight per bar diameter and
// writes it to filename. The format follows the extension (png, svg, pdf);
// anything else is written as png.
func ExportWeightChart(totals []aggregate.DiameterTotal, filename string) (string, error) {
	if len(totals) == 0 {
		return "", ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Steel Weight by Bar Diameter"
	p.X.Label.Text = "Diameter (mm)"
	p.Y.Label.Text = "Weight (kg)"

	values := make(plotter.Values, len(totals))
	names := make([]string, len(totals))
	for i, t := range totals {
		values[i] = t.Weight
		names[i] = detailing.FormatDiameter(t.Diameter)
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return "", err
	}
	bars.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	// weight labels above each bar
	pts := make([]plotter.XY, len(totals))
	labels := make([]string, len(totals))
	for i, t := range totals {
		pts[i] = plotter.XY{X: float64(i), Y: t.Weight}
		labels[i] = fmt.Sprintf("%.1f", t.Weight)
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return "", err
	}
	p.Add(l)

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
