package section

import (
	"math"

	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/rebar"
)

// layerTolerance is the largest elevation difference (cm) accepted between
// bars of the same layer
const layerTolerance = 1e-9

// New validates the layout, places the perimeter bars and returns the section.
// Bar and tie designations are resolved against catalog.
func New(layout Layout, catalog *rebar.Catalog) (*Section, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = rebar.Default
	}

	bar, err := catalog.Size(layout.Bar)
	if err != nil {
		return nil, rcerrors.Wrap(rcerrors.ErrCodeUnknownRebarSize, "bar", err, "longitudinal bar")
	}
	tie, err := catalog.Size(layout.Tie)
	if err != nil {
		return nil, rcerrors.Wrap(rcerrors.ErrCodeUnknownRebarSize, "tie", err, "tie bar")
	}

	s := &Section{
		Width:          layout.Width,
		Height:         layout.Height,
		Cover:          layout.Cover,
		TieDiameter:    tie.Diameter,
		BarDiameter:    bar.Diameter,
		BarDesignation: bar.Designation,
		TieDesignation: tie.Designation,
	}

	if err := s.checkClearance(layout); err != nil {
		return nil, err
	}

	s.bars = generateBars(s, bar, layout.VerticalBars, layout.HorizontalBars)
	s.EffectiveDepth = s.Height - s.edgeDistance()

	layers, err := groupLayers(s.bars, layout.VerticalBars)
	if err != nil {
		return nil, err
	}
	s.layers = layers

	return s, nil
}

// Validate checks the parametric inputs that do not depend on the catalog
func (l Layout) Validate() error {
	if l.VerticalBars < 2 {
		return rcerrors.New(rcerrors.ErrCodeInvalidReinforcementLayout, "vertical_bars",
			"at least 2 bars per side face are required, got %d", l.VerticalBars)
	}
	if l.HorizontalBars < 2 {
		return rcerrors.New(rcerrors.ErrCodeInvalidReinforcementLayout, "horizontal_bars",
			"at least 2 bars per top/bottom face are required, got %d", l.HorizontalBars)
	}
	if l.Width <= 0 {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "b", "width must be positive, got %.2f", l.Width)
	}
	if l.Height <= 0 {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "h", "height must be positive, got %.2f", l.Height)
	}
	if l.Cover <= 0 {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "cover", "cover must be positive, got %.2f", l.Cover)
	}
	if l.Cover >= math.Min(l.Width, l.Height)/2 {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "cover",
			"cover %.2f leaves no core in a %.2f x %.2f section", l.Cover, l.Width, l.Height)
	}
	return nil
}

// edgeDistance is the distance from a face to the centroid of the bars on it
func (s *Section) edgeDistance() float64 {
	return s.Cover + s.TieDiameter + s.BarDiameter/2
}

// checkClearance rejects layouts whose bars would not fit inside the ties
func (s *Section) checkClearance(l Layout) error {
	spanX := s.Width - 2*s.Cover - 2*s.TieDiameter - s.BarDiameter
	spanY := s.Height - 2*s.Cover - 2*s.TieDiameter - s.BarDiameter

	if spanX <= 0 {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "b",
			"no room for bars across the width (clear span %.3f cm)", spanX)
	}
	if spanY <= 0 {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "h",
			"no room for bars along the depth (clear span %.3f cm)", spanY)
	}
	if pitch := spanX / float64(l.HorizontalBars-1); pitch < s.BarDiameter {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "horizontal_bars",
			"%d bars overlap across the width (pitch %.3f cm < bar diameter %.3f cm)",
			l.HorizontalBars, pitch, s.BarDiameter)
	}
	if pitch := spanY / float64(l.VerticalBars-1); pitch < s.BarDiameter {
		return rcerrors.New(rcerrors.ErrCodeDegenerateGeometry, "vertical_bars",
			"%d bars overlap along the depth (pitch %.3f cm < bar diameter %.3f cm)",
			l.VerticalBars, pitch, s.BarDiameter)
	}
	return nil
}

// generateBars places two side columns of nv bars and nh-2 intermediate bars
// on each of the top and bottom faces.
//
// Intermediate bars are assigned to the extreme layers: top-face bars join
// layer nv and bottom-face bars join layer 1.
func generateBars(s *Section, size rebar.Size, nv, nh int) []Bar {
	edge := s.edgeDistance()
	left, right := edge, s.Width-edge
	bottom, top := edge, s.Height-edge

	spacingY := (s.Height - 2*s.Cover - 2*s.TieDiameter - size.Diameter) / float64(nv-1)
	spacingX := (s.Width - 2*s.Cover - 2*s.TieDiameter - size.Diameter) / float64(nh-1)

	newBar := func(x, y float64, layer int) Bar {
		return Bar{
			Designation: size.Designation,
			Diameter:    size.Diameter,
			Area:        size.Area,
			X:           x,
			Y:           y,
			Layer:       layer,
		}
	}

	bars := make([]Bar, 0, 2*nv+2*(nh-2))

	// Side faces
	for i := 0; i < nv; i++ {
		y := bottom + float64(i)*spacingY
		if i == nv-1 {
			y = top
		}
		bars = append(bars, newBar(left, y, i+1), newBar(right, y, i+1))
	}

	// Top and bottom faces, corners excluded
	for j := 1; j <= nh-2; j++ {
		x := left + float64(j)*spacingX
		bars = append(bars, newBar(x, top, nv), newBar(x, bottom, 1))
	}

	return bars
}

// groupLayers collects per-layer area and elevation
func groupLayers(bars []Bar, n int) ([]Layer, error) {
	layers := make([]Layer, n)
	for i := range layers {
		layers[i].ID = i + 1
	}
	for _, b := range bars {
		if b.Layer < 1 || b.Layer > n {
			return nil, rcerrors.New(rcerrors.ErrCodeUnknownLayer, "layer",
				"bar at (%.2f, %.2f) has layer %d outside 1..%d", b.X, b.Y, b.Layer, n)
		}
		l := &layers[b.Layer-1]
		if l.Count > 0 && math.Abs(l.Y-b.Y) > layerTolerance {
			return nil, rcerrors.New(rcerrors.ErrCodeAmbiguousLayer, "layer",
				"layer %d holds bars at y=%.4f and y=%.4f", l.ID, l.Y, b.Y)
		}
		l.Y = b.Y
		l.Area += b.Area
		l.Count++
	}
	return layers, nil
}
