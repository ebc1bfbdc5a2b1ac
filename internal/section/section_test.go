package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/rebar"
)

const tol = 1e-9

func sampleLayout() Layout {
	return Layout{
		Width:          30,
		Height:         60,
		Cover:          4,
		Bar:            "#5",
		Tie:            "#3",
		VerticalBars:   5,
		HorizontalBars: 3,
	}
}

func TestNewSampleSection(t *testing.T) {
	sec, err := New(sampleLayout(), rebar.Default)
	require.NoError(t, err)

	// 5 bars on each side face plus one intermediate on top and bottom
	assert.Len(t, sec.Bars(), 12)
	assert.InDelta(t, 24.0, sec.TotalSteelArea(), tol)
	assert.InDelta(t, 1800.0, sec.GrossArea(), tol)
	assert.InDelta(t, 24.0/1800.0, sec.SteelRatio(), tol)
	assert.Equal(t, 5, sec.LayerCount())

	edge := 4 + 0.9525 + 1.5875/2
	assert.InDelta(t, 60-edge, sec.EffectiveDepth, tol)

	layers := sec.Layers()
	wantCounts := []int{3, 2, 2, 2, 3}
	pitch := (60 - 8 - 2*0.9525 - 1.5875) / 4
	for i, l := range layers {
		assert.Equal(t, i+1, l.ID)
		assert.Equal(t, wantCounts[i], l.Count, "layer %d", l.ID)
		assert.InDelta(t, float64(wantCounts[i])*2.0, l.Area, tol, "layer %d", l.ID)
		assert.InDelta(t, edge+float64(i)*pitch, l.Y, 1e-9, "layer %d", l.ID)
	}
	assert.InDelta(t, 60-edge, layers[4].Y, tol)
}

func TestBarPositions(t *testing.T) {
	sec, err := New(sampleLayout(), nil)
	require.NoError(t, err)

	edge := 4 + 0.9525 + 1.5875/2
	for _, b := range sec.Bars() {
		assert.Equal(t, "#5", b.Designation)
		assert.GreaterOrEqual(t, b.X, edge-tol)
		assert.LessOrEqual(t, b.X, 30-edge+tol)
		assert.GreaterOrEqual(t, b.Y, edge-tol)
		assert.LessOrEqual(t, b.Y, 60-edge+tol)
	}

	// Intermediates sit at mid-width on the top and bottom faces
	var mid []Bar
	for _, b := range sec.Bars() {
		if b.X > edge+tol && b.X < 30-edge-tol {
			mid = append(mid, b)
		}
	}
	require.Len(t, mid, 2)
	assert.InDelta(t, 15.0, mid[0].X, tol)
	assert.Equal(t, 5, mid[0].Layer)
	assert.InDelta(t, 60-edge, mid[0].Y, tol)
	assert.Equal(t, 1, mid[1].Layer)
	assert.InDelta(t, edge, mid[1].Y, tol)
}

func TestIntermediateBarsEvenlySpaced(t *testing.T) {
	l := sampleLayout()
	l.HorizontalBars = 5
	sec, err := New(l, rebar.Default)
	require.NoError(t, err)

	edge := 4 + 0.9525 + 1.5875/2
	spacing := (30 - 2*edge) / 4

	var xs []float64
	for _, b := range sec.Bars() {
		if b.Layer == 5 {
			xs = append(xs, b.X)
		}
	}
	require.Len(t, xs, 5)
	assert.InDelta(t, edge, xs[0], tol)
	assert.InDelta(t, 30-edge, xs[1], tol)
	for j := 1; j <= 3; j++ {
		assert.InDelta(t, edge+float64(j)*spacing, xs[1+j], tol)
	}
}

func TestCornerOnlyFaces(t *testing.T) {
	l := sampleLayout()
	l.HorizontalBars = 2
	sec, err := New(l, rebar.Default)
	require.NoError(t, err)

	assert.Len(t, sec.Bars(), 10)
	for _, layer := range sec.Layers() {
		assert.Equal(t, 2, layer.Count)
	}
}

func TestLayerQueries(t *testing.T) {
	sec, err := New(sampleLayout(), rebar.Default)
	require.NoError(t, err)

	area, err := sec.LayerArea(1)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, area, tol)

	dt, err := sec.DepthFromTop(1)
	require.NoError(t, err)
	assert.InDelta(t, sec.EffectiveDepth, dt, tol)

	y, err := sec.LayerPositionY(5)
	require.NoError(t, err)
	assert.InDelta(t, sec.EffectiveDepth, y, tol, "top layer sits at d from the bottom face")

	for _, id := range []int{0, 6, -1} {
		_, err := sec.LayerArea(id)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeUnknownLayer), "layer %d", id)
		_, err = sec.LayerPositionY(id)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeUnknownLayer), "layer %d", id)
	}
}

func TestBarsReturnsCopy(t *testing.T) {
	sec, err := New(sampleLayout(), rebar.Default)
	require.NoError(t, err)

	bars := sec.Bars()
	bars[0].Y = -100
	assert.NotEqual(t, -100.0, sec.Bars()[0].Y)

	layers := sec.Layers()
	layers[0].Area = 0
	area, _ := sec.LayerArea(1)
	assert.InDelta(t, 6.0, area, tol)
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Layout)
		code   rcerrors.Code
		field  string
	}{
		{"single layer", func(l *Layout) { l.VerticalBars = 1 }, rcerrors.ErrCodeInvalidReinforcementLayout, "vertical_bars"},
		{"no vertical bars", func(l *Layout) { l.VerticalBars = 0 }, rcerrors.ErrCodeInvalidReinforcementLayout, "vertical_bars"},
		{"single face bar", func(l *Layout) { l.HorizontalBars = 1 }, rcerrors.ErrCodeInvalidReinforcementLayout, "horizontal_bars"},
		{"zero width", func(l *Layout) { l.Width = 0 }, rcerrors.ErrCodeDegenerateGeometry, "b"},
		{"negative height", func(l *Layout) { l.Height = -60 }, rcerrors.ErrCodeDegenerateGeometry, "h"},
		{"zero cover", func(l *Layout) { l.Cover = 0 }, rcerrors.ErrCodeDegenerateGeometry, "cover"},
		{"cover fills section", func(l *Layout) { l.Cover = 15 }, rcerrors.ErrCodeDegenerateGeometry, "cover"},
		{"no room across width", func(l *Layout) { l.Width = 10 }, rcerrors.ErrCodeDegenerateGeometry, "b"},
		{"overlapping face bars", func(l *Layout) { l.HorizontalBars = 15 }, rcerrors.ErrCodeDegenerateGeometry, "horizontal_bars"},
		{"overlapping side bars", func(l *Layout) { l.VerticalBars = 40 }, rcerrors.ErrCodeDegenerateGeometry, "vertical_bars"},
		{"unknown bar", func(l *Layout) { l.Bar = "#12" }, rcerrors.ErrCodeUnknownRebarSize, "bar"},
		{"unknown tie", func(l *Layout) { l.Tie = "#2" }, rcerrors.ErrCodeUnknownRebarSize, "tie"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := sampleLayout()
			tt.modify(&l)
			sec, err := New(l, rebar.Default)
			require.Error(t, err)
			assert.Nil(t, sec)
			assert.Equal(t, tt.code, rcerrors.GetCode(err))
			assert.Equal(t, tt.field, rcerrors.GetField(err))
		})
	}
}

func TestGroupLayersRejectsInconsistentBars(t *testing.T) {
	t.Run("ambiguous elevation", func(t *testing.T) {
		bars := []Bar{
			{Area: 2, Y: 5, Layer: 1},
			{Area: 2, Y: 5.5, Layer: 1},
			{Area: 2, Y: 50, Layer: 2},
		}
		_, err := groupLayers(bars, 2)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeAmbiguousLayer))
	})

	t.Run("layer out of range", func(t *testing.T) {
		bars := []Bar{{Area: 2, Y: 5, Layer: 3}}
		_, err := groupLayers(bars, 2)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeUnknownLayer))
	})

	t.Run("position query rechecks bars", func(t *testing.T) {
		s := &Section{
			Height: 60,
			bars: []Bar{
				{Area: 2, Y: 5, Layer: 1},
				{Area: 2, Y: 7, Layer: 1},
			},
			layers: []Layer{{ID: 1, Y: 5, Area: 4, Count: 2}},
		}
		_, err := s.LayerPositionY(1)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeAmbiguousLayer))
		_, err = s.DepthFromTop(1)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeAmbiguousLayer))

		// a bar below the layer line is as inconsistent as one above it
		s.bars[1].Y = 3
		_, err = s.LayerPositionY(1)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeAmbiguousLayer))
	})
}
