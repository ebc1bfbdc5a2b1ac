package aci

import "fmt"

// ACI 318-19 constants in kg/cm² units

const (
	// Beta1 factors for equivalent rectangular stress block
	// Section 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 280 kg/cm²
	Beta1Min = 0.65 // for f'c >= 550 kg/cm²

	beta1LowerFc = 280.0
	beta1UpperFc = 550.0

	// Ultimate usable concrete strain (Section 22.2.2.1)
	EpsilonCU = 0.003

	// Net tensile strain at the tension-controlled limit (Table 21.2.2)
	EpsilonTensionControlled = 0.005

	// Strength reduction factors (Section 21.2)
	PhiTension     = 0.90 // Tension-controlled sections
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Design axial strength cap for tied columns (Table 22.4.2.1)
	AxialCapFactor = 0.80

	// Whitney stress block intensity
	StressBlockFactor = 0.85

	// Modulus of elasticity for reinforcing steel
	Es = 2100000.0 // kg/cm²
)

// Beta1 returns the stress block depth factor for the given f'c (kg/cm²).
func Beta1(fc float64) float64 {
	switch {
	case fc <= beta1LowerFc:
		return Beta1Max
	case fc < beta1UpperFc:
		return Beta1Max - 0.005*(fc-beta1LowerFc)/70
	default:
		return Beta1Min
	}
}

// Phi returns the strength reduction factor for a net tensile strain et and
// a steel yield strain ey. It is piecewise linear and non-decreasing in et.
func Phi(et, ey float64) float64 {
	if et <= ey {
		// Compression-controlled
		return PhiCompression
	}
	if et >= EpsilonTensionControlled {
		// Tension-controlled
		return PhiTension
	}
	// Transition zone
	return PhiCompression + (PhiTension-PhiCompression)*(et-ey)/(EpsilonTensionControlled-ey)
}

// ConcreteMaterial is an immutable concrete property record
type ConcreteMaterial struct {
	Name string
	Fc   float64 // f'c (kg/cm²)
	Eu   float64 // ultimate usable compressive strain
}

// NewConcrete creates a concrete record with the code ultimate strain
func NewConcrete(name string, fc float64) ConcreteMaterial {
	return ConcreteMaterial{Name: name, Fc: fc, Eu: EpsilonCU}
}

// Validate checks that the concrete properties are usable
func (c ConcreteMaterial) Validate() error {
	if c.Fc <= 0 {
		return fmt.Errorf("f'c must be positive, got %.2f", c.Fc)
	}
	if c.Eu <= 0 {
		return fmt.Errorf("ultimate strain must be positive, got %.4f", c.Eu)
	}
	return nil
}

// SteelMaterial is an immutable reinforcing steel property record
type SteelMaterial struct {
	Name string
	Fy   float64 // yield strength (kg/cm²)
	Es   float64 // elastic modulus (kg/cm²)
}

// NewSteel creates a steel record with the catalog elastic modulus
func NewSteel(name string, fy float64) SteelMaterial {
	return SteelMaterial{Name: name, Fy: fy, Es: Es}
}

// YieldStrain returns fy/Es
func (s SteelMaterial) YieldStrain() float64 {
	return s.Fy / s.Es
}

// Validate checks that the steel properties are usable
func (s SteelMaterial) Validate() error {
	if s.Fy <= 0 {
		return fmt.Errorf("fy must be positive, got %.2f", s.Fy)
	}
	if s.Es <= 0 {
		return fmt.Errorf("Es must be positive, got %.2f", s.Es)
	}
	return nil
}

// Unit conversions between the internal kgf/cm system and the tf/m
// quantities used for reporting and load input.
const (
	KgfPerTonne    = 1000.0   // kgf in one tf
	KgfCmPerTonneM = 100000.0 // kgf·cm in one tf·m
)

// ToTonnes converts kgf to tf
func ToTonnes(kgf float64) float64 { return kgf / KgfPerTonne }

// ToTonneMeters converts kgf·cm to tf·m
func ToTonneMeters(kgfCm float64) float64 { return kgfCm / KgfCmPerTonneM }

// FromTonnes converts tf to kgf
func FromTonnes(tf float64) float64 { return tf * KgfPerTonne }

// FromTonneMeters converts tf·m to kgf·cm
func FromTonneMeters(tfm float64) float64 { return tfm * KgfCmPerTonneM }
