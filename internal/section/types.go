package section

// Layout describes a rectangular tied column section and its perimeter
// reinforcement in parametric form. Lengths are in cm.
//
// The local coordinate system has its origin at the bottom-left corner:
// - X-axis points to the right along the width b
// - Y-axis points upward along the depth h (y = h is the compression face)
type Layout struct {
	Width  float64 // b
	Height float64 // h
	Cover  float64 // clear cover to the tie

	Bar string // longitudinal bar designation, e.g. "#5"
	Tie string // tie bar designation, e.g. "#3"

	VerticalBars   int // bars along each side face, one per layer (>= 2)
	HorizontalBars int // bars along the top and bottom faces including corners (>= 2)
}

// Bar is one longitudinal reinforcing bar placed on the section
type Bar struct {
	Designation string
	Diameter    float64 // cm
	Area        float64 // cm²

	// Centroid position in section-local coordinates (cm)
	X float64
	Y float64

	// 1-based layer index counted from the bottom face
	Layer int
}

// Layer groups the bars that share one depth coordinate
type Layer struct {
	ID    int
	Y     float64 // common bar centroid elevation (cm)
	Area  float64 // total bar area (cm²)
	Count int     // number of bars
}

// Section is a rectangular column section with its generated bar set.
// It is immutable after construction by New.
type Section struct {
	Width          float64 // b (cm)
	Height         float64 // h (cm)
	Cover          float64 // cm
	TieDiameter    float64 // cm
	BarDiameter    float64 // cm
	EffectiveDepth float64 // d, compression face to layer 1 centroid (cm)

	BarDesignation string
	TieDesignation string

	bars   []Bar
	layers []Layer
}
