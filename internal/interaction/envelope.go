package interaction

import (
	"math"
	"sort"

	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
)

// CurvePoint is one (moment, axial force) vertex of a drawn curve
type CurvePoint struct {
	M float64 // kgf·cm
	P float64 // kgf
}

// Envelope is the ordered capacity diagram of a section.
// Points are sorted by descending Pn. Build gives every Envelope its own copy
// of the points; callers must treat Points as read-only, since the curve
// methods and Check read it on every call. The curves returned by Nominal,
// Design and Closed are fresh slices and may be modified freely.
type Envelope struct {
	Points   []DiagramPoint
	PhiPnMax float64 // design axial capacity cap (kgf)
}

// Build sorts the raw points by descending Pn into an Envelope
func Build(raw *RawPoints) (*Envelope, error) {
	if raw == nil || len(raw.Points) < 3 {
		n := 0
		if raw != nil {
			n = len(raw.Points)
		}
		return nil, rcerrors.New(rcerrors.ErrCodeDegenerateEnvelope, "points",
			"an envelope needs at least 3 points, got %d", n)
	}

	points := make([]DiagramPoint, len(raw.Points))
	copy(points, raw.Points)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Pn > points[j].Pn
	})

	return &Envelope{Points: points, PhiPnMax: raw.PhiPnMax}, nil
}

// Nominal returns the (Mn, Pn) half curve in envelope order
func (e *Envelope) Nominal() []CurvePoint {
	out := make([]CurvePoint, len(e.Points))
	for i, p := range e.Points {
		out[i] = CurvePoint{M: p.Mn, P: p.Pn}
	}
	return out
}

// Design returns the (φMn, min(φPn, φPn,max)) half curve in envelope order
func (e *Envelope) Design() []CurvePoint {
	out := make([]CurvePoint, len(e.Points))
	for i, p := range e.Points {
		out[i] = CurvePoint{M: p.PhiMn(), P: e.FactoredAxial(p)}
	}
	return out
}

// FactoredAxial returns φPn capped at the envelope's φPn,max
func (e *Envelope) FactoredAxial(p DiagramPoint) float64 {
	return math.Min(p.PhiPn(), e.PhiPnMax)
}

// NominalClosed returns the full mirrored nominal curve
func (e *Envelope) NominalClosed() []CurvePoint { return Closed(e.Nominal()) }

// DesignClosed returns the full mirrored design curve
func (e *Envelope) DesignClosed() []CurvePoint { return Closed(e.Design()) }

// MaxNominalMoment returns the largest Mn and the point where it occurs
func (e *Envelope) MaxNominalMoment() DiagramPoint {
	best := e.Points[0]
	for _, p := range e.Points[1:] {
		if p.Mn > best.Mn {
			best = p
		}
	}
	return best
}

// Closed mirrors a half curve about M = 0. The result runs down the given
// half and back up its mirror image; vertices with M = 0 are not repeated.
func Closed(half []CurvePoint) []CurvePoint {
	out := make([]CurvePoint, 0, 2*len(half))
	out = append(out, half...)
	for i := len(half) - 1; i >= 0; i-- {
		if half[i].M == 0 {
			continue
		}
		out = append(out, CurvePoint{M: -half[i].M, P: half[i].P})
	}
	return out
}
