package interaction

import (
	"math"

	"github.com/alexiusacademia/gorcc/internal/aci"
	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// MinNeutralAxisDepth is the smallest c (cm) evaluated; strains divide by c
const MinNeutralAxisDepth = 1e-5

// LayerState holds strain compatibility results for one reinforcement layer
type LayerState struct {
	Layer    int
	Y        float64 // elevation from the bottom face (cm)
	Depth    float64 // distance from the compression face (cm)
	Area     float64 // cm²
	Strain   float64 // compression positive
	Stress   float64 // kg/cm², capped at ±fy
	Force    float64 // kgf
	LeverArm float64 // about mid-depth, h/2 - depth (cm)
	Yielded  bool
}

// State is the stress/strain state of a section for one neutral axis depth
type State struct {
	C     float64 // neutral axis depth from the compression face (cm)
	A     float64 // stress block depth (cm)
	Beta1 float64

	// Net tensile strain at the extreme tension layer and its φ factor
	EpsilonT float64
	Phi      float64

	// Concrete compression and its lever arm about mid-depth
	Cc            float64 // kgf
	ConcreteLever float64 // cm

	Layers []LayerState

	Pn float64 // kgf
	Mn float64 // kgf·cm
}

// Point returns the state as a swept diagram point
func (st State) Point() DiagramPoint {
	return DiagramPoint{
		Mn:       st.Mn,
		Pn:       st.Pn,
		Phi:      st.Phi,
		Regime:   Swept,
		C:        st.C,
		EpsilonT: st.EpsilonT,
	}
}

// StateAt evaluates force and moment equilibrium for neutral axis depth c
// measured from the compression face.
func StateAt(sec *section.Section, mat Materials, c float64) (State, error) {
	if c < MinNeutralAxisDepth || math.IsNaN(c) || math.IsInf(c, 0) {
		return State{}, rcerrors.New(rcerrors.ErrCodeInvalidInput, "c",
			"neutral axis depth must be a finite value >= %g, got %g", MinNeutralAxisDepth, c)
	}

	h := sec.Height
	fc := mat.Concrete.Fc
	fy := mat.Steel.Fy
	eu := mat.Concrete.Eu
	ey := mat.Steel.YieldStrain()

	st := State{C: c, Beta1: aci.Beta1(fc)}

	// Extreme tension layer is layer 1 at the bottom face
	dt, err := sec.DepthFromTop(1)
	if err != nil {
		return State{}, err
	}
	st.EpsilonT = eu * (dt - c) / c
	st.Phi = aci.Phi(st.EpsilonT, ey)

	// Whitney stress block
	st.A = math.Min(c*st.Beta1, h)
	st.Cc = aci.StressBlockFactor * fc * sec.Width * st.A
	st.ConcreteLever = h/2 - st.A/2

	st.Pn = st.Cc
	st.Mn = st.Cc * st.ConcreteLever

	for _, layer := range sec.Layers() {
		depth := h - layer.Y
		strain := eu * (c - depth) / c
		stress := math.Max(math.Min(strain*mat.Steel.Es, fy), -fy)
		force := stress * layer.Area
		lever := h/2 - depth

		st.Layers = append(st.Layers, LayerState{
			Layer:    layer.ID,
			Y:        layer.Y,
			Depth:    depth,
			Area:     layer.Area,
			Strain:   strain,
			Stress:   stress,
			Force:    force,
			LeverArm: lever,
			Yielded:  math.Abs(strain) >= ey,
		})

		st.Pn += force
		st.Mn += force * lever
	}

	return st, nil
}
