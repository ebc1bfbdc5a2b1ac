package interaction

import (
	"math"
)

// LoadPoint is an externally supplied factored demand (Pu in kgf,
// Mu in kgf·cm). It is not part of the capacity calculation.
type LoadPoint struct {
	Name string
	Pu   float64
	Mu   float64
}

// CheckResult reports whether a demand lies inside the design curve
type CheckResult struct {
	Load   LoadPoint
	Inside bool
}

// Check tests a load point against the closed design curve.
// The moment sign is ignored since the curve is symmetric.
func (e *Envelope) Check(lp LoadPoint) CheckResult {
	return CheckResult{
		Load:   lp,
		Inside: insidePolygon(e.DesignClosed(), math.Abs(lp.Mu), lp.Pu),
	}
}

// CheckAll tests every load point in order
func (e *Envelope) CheckAll(loads []LoadPoint) []CheckResult {
	poly := e.DesignClosed()
	out := make([]CheckResult, len(loads))
	for i, lp := range loads {
		out[i] = CheckResult{Load: lp, Inside: insidePolygon(poly, math.Abs(lp.Mu), lp.Pu)}
	}
	return out
}

// insidePolygon is an even-odd ray cast along +M
func insidePolygon(poly []CurvePoint, m, p float64) bool {
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.P > p) != (b.P > p) {
			x := a.M + (p-a.P)*(b.M-a.M)/(b.P-a.P)
			if m < x {
				inside = !inside
			}
		}
	}
	return inside
}
