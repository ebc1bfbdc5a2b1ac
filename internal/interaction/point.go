// Package interaction builds axial force / bending moment interaction
// diagrams for rectangular tied columns by strain compatibility.
//
// Capacity points come from three regimes: the pure compression limit, a
// sweep of the neutral axis depth c from h towards zero, and the pure tension
// limit. Each regime is a Generator; the Engine merges their output into an
// unordered RawPoints set, and Build turns that into an ordered Envelope.
//
// Sign convention: axial force and strain are positive in compression. The
// compression face is the top face (y = h) of the section.
package interaction

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/aci"
)

// Regime identifies which strategy produced a diagram point
type Regime int

const (
	// PureCompression is the c → ∞ limit: all steel yields in compression
	PureCompression Regime = iota
	// Swept points come from a finite neutral axis depth
	Swept
	// PureTension is the c → 0 limit: all steel yields in tension
	PureTension
)

func (r Regime) String() string {
	switch r {
	case PureCompression:
		return "compression"
	case Swept:
		return "swept"
	case PureTension:
		return "tension"
	default:
		return fmt.Sprintf("Regime(%d)", int(r))
	}
}

// DiagramPoint is one nominal capacity point. Mn is in kgf·cm, Pn in kgf.
type DiagramPoint struct {
	Mn  float64
	Pn  float64
	Phi float64

	Regime Regime

	// Neutral axis depth and net tensile strain; set for Swept points only
	C        float64
	EpsilonT float64
}

// PhiMn returns the design moment φ·Mn
func (p DiagramPoint) PhiMn() float64 { return p.Phi * p.Mn }

// PhiPn returns the uncapped design axial force φ·Pn
func (p DiagramPoint) PhiPn() float64 { return p.Phi * p.Pn }

// Materials bundles the concrete and steel records used by a calculation
type Materials struct {
	Concrete aci.ConcreteMaterial
	Steel    aci.SteelMaterial
}

// Validate checks both material records
func (m Materials) Validate() error {
	if err := m.Concrete.Validate(); err != nil {
		return err
	}
	return m.Steel.Validate()
}
