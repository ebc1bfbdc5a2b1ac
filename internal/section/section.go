package section

import (
	"math"

	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
)

// Bars returns a copy of the generated bar set in placement order
func (s *Section) Bars() []Bar {
	out := make([]Bar, len(s.bars))
	copy(out, s.bars)
	return out
}

// Layers returns a copy of the layer groups ordered from the bottom face
func (s *Section) Layers() []Layer {
	out := make([]Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// LayerCount returns the number of layers
func (s *Section) LayerCount() int {
	return len(s.layers)
}

// GrossArea returns Ag = b·h (cm²)
func (s *Section) GrossArea() float64 {
	return s.Width * s.Height
}

// TotalSteelArea returns Ast, the sum of all bar areas (cm²)
func (s *Section) TotalSteelArea() float64 {
	var total float64
	for _, b := range s.bars {
		total += b.Area
	}
	return total
}

// SteelRatio returns Ast/Ag
func (s *Section) SteelRatio() float64 {
	return s.TotalSteelArea() / s.GrossArea()
}

// LayerArea returns the total bar area of a layer (cm²)
func (s *Section) LayerArea(id int) (float64, error) {
	l, err := s.layer(id)
	if err != nil {
		return 0, err
	}
	return l.Area, nil
}

// LayerPositionY returns the common elevation of the bars in a layer (cm).
func (s *Section) LayerPositionY(id int) (float64, error) {
	l, err := s.layer(id)
	if err != nil {
		return 0, err
	}
	// Bars of one layer must share an elevation
	for _, b := range s.bars {
		if b.Layer == id && math.Abs(b.Y-l.Y) > layerTolerance {
			return 0, rcerrors.New(rcerrors.ErrCodeAmbiguousLayer, "layer",
				"layer %d holds bars at y=%.4f and y=%.4f", id, l.Y, b.Y)
		}
	}
	return l.Y, nil
}

// DepthFromTop returns the distance from the compression face (y = h) to a
// layer centroid
func (s *Section) DepthFromTop(id int) (float64, error) {
	y, err := s.LayerPositionY(id)
	if err != nil {
		return 0, err
	}
	return s.Height - y, nil
}

func (s *Section) layer(id int) (Layer, error) {
	if id < 1 || id > len(s.layers) {
		return Layer{}, rcerrors.New(rcerrors.ErrCodeUnknownLayer, "layer",
			"layer %d outside 1..%d", id, len(s.layers))
	}
	return s.layers[id-1], nil
}
