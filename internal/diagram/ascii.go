package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// Point represents a 2D coordinate
type Point struct {
	X float64
	Y float64
}

// BarMark is one reinforcing bar to draw
type BarMark struct {
	X     float64 // cm from the left face
	Y     float64 // cm from the bottom face
	Layer int
}

// SectionData holds data for drawing a column section schematic
type SectionData struct {
	Name string

	// Column dimensions (cm)
	Width  float64
	Height float64
	Cover  float64

	BarDesignation string
	TieDesignation string

	Bars []BarMark
}

// LoadMark is a labelled demand point (X = Mu, Y = Pu)
type LoadMark struct {
	Name   string
	Point  Point
	Inside bool
}

// CurveData holds an interaction diagram in display units
// (X = moment in tf·m, Y = axial force in tf)
type CurveData struct {
	Title string

	// Closed curves, mirrored about X = 0
	Nominal []Point
	Design  []Point

	PhiPnMax float64
	Loads    []LoadMark
}

// DrawASCIISection creates an ASCII schematic of the column section with its
// bars, the compression face on top and layer numbers on the right
func DrawASCIISection(data SectionData) string {
	var sb strings.Builder

	// Scale so the longer side spans about 24 rows / 48 columns
	const maxRows = 24
	scale := float64(maxRows) / math.Max(data.Width, data.Height)
	rows := max(int(math.Round(data.Height*scale)), 4)
	cols := max(int(math.Round(data.Width*scale*2)), 8)

	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}

	layerRows := map[int]int{}
	for _, b := range data.Bars {
		r := rows - 1 - clampIndex(int(b.Y/data.Height*float64(rows)), rows)
		c := clampIndex(int(b.X/data.Width*float64(cols)), cols)
		grid[r][c] = '●'
		layerRows[r] = b.Layer
	}

	sb.WriteString("\n")
	if data.Name != "" {
		sb.WriteString(fmt.Sprintf("  COLUMN SECTION %s\n", data.Name))
	} else {
		sb.WriteString("  COLUMN SECTION\n")
	}
	sb.WriteString("  ──────────────\n")
	sb.WriteString("  compression face\n")
	sb.WriteString(fmt.Sprintf("  ┌%s┐\n", strings.Repeat("─", cols)))
	for r, line := range grid {
		sb.WriteString(fmt.Sprintf("  │%s│", string(line)))
		if layer, ok := layerRows[r]; ok {
			sb.WriteString(fmt.Sprintf(" ◄─ layer %d", layer))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("  └%s┘\n", strings.Repeat("─", cols)))

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  b = %.1f cm, h = %.1f cm, cover = %.1f cm\n", data.Width, data.Height, data.Cover))
	sb.WriteString(fmt.Sprintf("  %d bars %s, ties %s\n", len(data.Bars), data.BarDesignation, data.TieDesignation))

	return sb.String()
}

// DrawInteractionCurve plots moment capacity against axial load level.
// The X axis runs from the highest to the lowest axial force on the
// nominal curve; each series holds the largest moment at that level.
func DrawInteractionCurve(data CurveData, width, height int) string {
	if len(data.Nominal) < 3 {
		return ""
	}
	if width < 10 {
		width = 60
	}
	if height < 5 {
		height = 15
	}

	pMax, pMin := data.Nominal[0].Y, data.Nominal[0].Y
	for _, p := range data.Nominal {
		pMax = math.Max(pMax, p.Y)
		pMin = math.Min(pMin, p.Y)
	}

	nominal := make([]float64, width)
	design := make([]float64, width)
	for i := 0; i < width; i++ {
		level := pMax - (pMax-pMin)*float64(i)/float64(width-1)
		nominal[i] = MomentAtLevel(data.Nominal, level)
		design[i] = MomentAtLevel(data.Design, level)
	}

	caption := fmt.Sprintf("M (tf·m): nominal and design vs P from %.1f tf to %.1f tf", pMax, pMin)
	return asciigraph.PlotMany([][]float64{nominal, design},
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

// MomentAtLevel returns the largest X where the polyline crosses Y = level,
// or 0 when it does not reach that level
func MomentAtLevel(curve []Point, level float64) float64 {
	best := 0.0
	for i := 0; i+1 < len(curve); i++ {
		a, b := curve[i], curve[i+1]
		lo, hi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
		if level < lo || level > hi {
			continue
		}
		var x float64
		if hi == lo {
			x = math.Max(a.X, b.X)
		} else {
			x = a.X + (level-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		}
		best = math.Max(best, x)
	}
	return best
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
