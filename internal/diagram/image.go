package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	nominalColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	designColor  = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	steelColor   = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	passColor    = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	failColor    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
)

// ExportInteractionDiagram exports the P-M interaction diagram to an image file.
// The format follows the extension (png, svg, pdf); anything else gets .png.
func ExportInteractionDiagram(data CurveData, filename string) error {
	p := plot.New()
	p.Title.Text = "Interaction Diagram"
	if data.Title != "" {
		p.Title.Text = fmt.Sprintf("Interaction Diagram - %s", data.Title)
	}
	p.X.Label.Text = "M (tf·m)"
	p.Y.Label.Text = "P (tf)"
	p.Add(plotter.NewGrid())

	nominal, err := closedLine(data.Nominal)
	if err != nil {
		return err
	}
	nominal.LineStyle.Width = vg.Points(1.5)
	nominal.LineStyle.Color = nominalColor
	p.Add(nominal)
	p.Legend.Add("Pn-Mn", nominal)

	design, err := closedLine(data.Design)
	if err != nil {
		return err
	}
	design.LineStyle.Width = vg.Points(1.5)
	design.LineStyle.Color = designColor
	p.Add(design)
	p.Legend.Add("φPn-φMn", design)

	// Design axial cap
	xMin, xMax := extentX(data.Nominal)
	capLine, err := plotter.NewLine(plotter.XYs{
		{X: xMin, Y: data.PhiPnMax},
		{X: xMax, Y: data.PhiPnMax},
	})
	if err != nil {
		return err
	}
	capLine.LineStyle.Width = vg.Points(1)
	capLine.LineStyle.Color = color.Gray{Y: 128}
	capLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(capLine)
	p.Legend.Add("φPn,max", capLine)

	if len(data.Loads) > 0 {
		if err := addLoadMarks(p, data.Loads); err != nil {
			return err
		}
	}

	return save(p, 8*vg.Inch, 8*vg.Inch, filename)
}

func addLoadMarks(p *plot.Plot, loads []LoadMark) error {
	var pass, fail plotter.XYs
	labels := plotter.XYLabels{}
	for _, l := range loads {
		xy := plotter.XY{X: l.Point.X, Y: l.Point.Y}
		if l.Inside {
			pass = append(pass, xy)
		} else {
			fail = append(fail, xy)
		}
		labels.XYs = append(labels.XYs, xy)
		labels.Labels = append(labels.Labels, l.Name)
	}

	for _, set := range []struct {
		pts   plotter.XYs
		color color.Color
		name  string
	}{
		{pass, passColor, "load (inside)"},
		{fail, failColor, "load (outside)"},
	} {
		if len(set.pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(set.pts)
		if err != nil {
			return err
		}
		s.GlyphStyle.Color = set.color
		s.GlyphStyle.Radius = vg.Points(4)
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(s)
		p.Legend.Add(set.name, s)
	}

	l, err := plotter.NewLabels(labels)
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

// ExportSectionDiagram exports a column section schematic to an image file
func ExportSectionDiagram(data SectionData, filename string) error {
	p := plot.New()
	p.Title.Text = "Column Section"
	if data.Name != "" {
		p.Title.Text = fmt.Sprintf("Column Section - %s", data.Name)
	}
	p.X.Label.Text = "Width (cm)"
	p.Y.Label.Text = "Height (cm)"

	outline, err := plotter.NewLine(rectangle(0, 0, data.Width, data.Height))
	if err != nil {
		return err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	// Tie outline at the cover
	c := data.Cover
	tie, err := plotter.NewLine(rectangle(c, c, data.Width-c, data.Height-c))
	if err != nil {
		return err
	}
	tie.LineStyle.Width = vg.Points(1)
	tie.LineStyle.Color = color.Gray{Y: 100}
	tie.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
	p.Add(tie)

	if len(data.Bars) > 0 {
		pts := make(plotter.XYs, len(data.Bars))
		for i, b := range data.Bars {
			pts[i] = plotter.XY{X: b.X, Y: b.Y}
		}
		bars, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		bars.GlyphStyle.Color = steelColor
		bars.GlyphStyle.Radius = vg.Points(5)
		bars.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(bars)

		// One label per layer on the right face
		seen := map[int]bool{}
		labels := plotter.XYLabels{}
		for _, b := range data.Bars {
			if seen[b.Layer] {
				continue
			}
			seen[b.Layer] = true
			labels.XYs = append(labels.XYs, plotter.XY{X: data.Width + 1, Y: b.Y})
			labels.Labels = append(labels.Labels, fmt.Sprintf("L%d", b.Layer))
		}
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return err
		}
		p.Add(l)
	}

	p.X.Min, p.X.Max = -2, data.Width+6
	p.Y.Min, p.Y.Max = -2, data.Height+2

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func closedLine(pts []Point) (*plotter.Line, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("empty curve")
	}
	xys := make(plotter.XYs, 0, len(pts)+1)
	for _, pt := range pts {
		xys = append(xys, plotter.XY{X: pt.X, Y: pt.Y})
	}
	xys = append(xys, xys[0])
	return plotter.NewLine(xys)
}

func rectangle(x0, y0, x1, y1 float64) plotter.XYs {
	return plotter.XYs{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
		{X: x0, Y: y0},
	}
}

func extentX(pts []Point) (float64, float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	lo, hi := pts[0].X, pts[0].X
	for _, pt := range pts {
		lo = min(lo, pt.X)
		hi = max(hi, pt.X)
	}
	return lo, hi
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
