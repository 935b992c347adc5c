package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alexiusacademia/gorebar/internal/aggregate"
	"github.com/alexiusacademia/gorebar/internal/detailing"
	"github.com/alexiusacademia/gorebar/internal/result"
	"github.com/guptarohit/asciigraph"
)

// PlotWeights renders weight per diameter as an ASCII line graph. A single
// diameter has no line to draw and falls back to DrawWeightBars.
func PlotWeights(totals []aggregate.DiameterTotal) string {
	if len(totals) < 2 {
		return DrawWeightBars(totals)
	}

	data := make([]float64, len(totals))
	names := make([]string, len(totals))
	for i, t := range totals {
		data[i] = t.Weight
		names[i] = detailing.FormatDiameter(t.Diameter)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Precision(1),
		asciigraph.Caption("weight (kg) by diameter: "+strings.Join(names, ", ")+" mm"),
	)
	return graph + "\n"
}

// DrawWeightBars renders weight per diameter as horizontal bars
func DrawWeightBars(totals []aggregate.DiameterTotal) string {
	var sb strings.Builder
	barChars := 40

	var heaviest float64
	for _, t := range totals {
		heaviest = max(heaviest, t.Weight)
	}

	sb.WriteString("\n")
	sb.WriteString("  WEIGHT BY DIAMETER\n")
	sb.WriteString("  ──────────────────\n")
	for _, t := range totals {
		n := 0
		if heaviest > 0 {
			n = int(t.Weight / heaviest * float64(barChars))
		}
		sb.WriteString(fmt.Sprintf("  %6smm │%-*s %.2f kg\n",
			detailing.FormatDiameter(t.Diameter), barChars, strings.Repeat("█", n), t.Weight))
	}
	return sb.String()
}

// DrawBarShape sketches a beam bar with its bend legs
//
//	┌                               ┐
//	│ 208                       278 │
//	└──────────── 5016 mm ──────────┘
func DrawBarShape(bar result.BeamBar) string {
	var sb strings.Builder
	spanChars := 40

	label := fmt.Sprintf(" %.0f mm ", bar.CuttingLength)
	left := (spanChars - utf8.RuneCountInString(label)) / 2
	right := spanChars - utf8.RuneCountInString(label) - left
	if left < 0 {
		left, right = 0, 0
	}
	run := strings.Repeat("─", left) + label + strings.Repeat("─", right)

	hook1 := bar.BendLength1 > 0
	hook2 := bar.BendLength2 > 0

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %s %s\n", bar.Category(), bar.BeamNo))
	if hook1 || hook2 {
		sb.WriteString("  " + hookEnd(hook1, "┌") + strings.Repeat(" ", spanChars) + hookEnd(hook2, "┐") + "\n")

		bl1, bl2 := "", ""
		if hook1 {
			bl1 = fmt.Sprintf("%.0f", bar.BendLength1)
		}
		if hook2 {
			bl2 = fmt.Sprintf("%.0f", bar.BendLength2)
		}
		sb.WriteString(fmt.Sprintf("  %s %-*s%*s %s\n",
			hookEnd(hook1, "│"), (spanChars-2)/2, bl1, spanChars-2-(spanChars-2)/2, bl2, hookEnd(hook2, "│")))
	}
	sb.WriteString("  " + hookEnd(hook1, "└", "─") + run + hookEnd(hook2, "┘", "─") + "\n")
	return sb.String()
}

func hookEnd(hooked bool, glyph string, otherwise ...string) string {
	if hooked {
		return glyph
	}
	if len(otherwise) > 0 {
		return otherwise[0]
	}
	return " "
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	border := strings.Repeat("═", width+4)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", width, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
