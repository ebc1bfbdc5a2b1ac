package aci

import "math"

// LoadCombination represents an ACI 318-19 strength design load combination
// Based on ACI 318-19 Table 5.3.1
//
// Clauses written with "or" alternatives, such as 0.5(Lr or R), are split into
// one combination per alternative. Clause groups them back together.
type LoadCombination struct {
	ID          string
	Clause      string
	Description string
	// Load factors for each load type
	Dead       float64 // D - Dead load
	Live       float64 // L - Live load
	Roof       float64 // Lr - Roof live load
	Wind       float64 // W - Wind load
	Earthquake float64 // E - Earthquake load
	Rain       float64 // R - Rain load
}

// ACI 318-19 Table 5.3.1 - Load combinations
var LoadCombinations = []LoadCombination{
	{ID: "5.3.1a", Clause: "5.3.1a", Description: "1.4D", Dead: 1.4},

	// 1.2D + 1.6L + 0.5(Lr or R)
	{ID: "5.3.1b-Lr", Clause: "5.3.1b", Description: "1.2D + 1.6L + 0.5Lr", Dead: 1.2, Live: 1.6, Roof: 0.5},
	{ID: "5.3.1b-R", Clause: "5.3.1b", Description: "1.2D + 1.6L + 0.5R", Dead: 1.2, Live: 1.6, Rain: 0.5},

	// 1.2D + 1.6(Lr or R) + (1.0L or 0.5W)
	{ID: "5.3.1c-Lr-L", Clause: "5.3.1c", Description: "1.2D + 1.6Lr + 1.0L", Dead: 1.2, Roof: 1.6, Live: 1.0},
	{ID: "5.3.1c-Lr-W", Clause: "5.3.1c", Description: "1.2D + 1.6Lr + 0.5W", Dead: 1.2, Roof: 1.6, Wind: 0.5},
	{ID: "5.3.1c-R-L", Clause: "5.3.1c", Description: "1.2D + 1.6R + 1.0L", Dead: 1.2, Rain: 1.6, Live: 1.0},
	{ID: "5.3.1c-R-W", Clause: "5.3.1c", Description: "1.2D + 1.6R + 0.5W", Dead: 1.2, Rain: 1.6, Wind: 0.5},

	// 1.2D + 1.0W + 1.0L + 0.5(Lr or R)
	{ID: "5.3.1d-Lr", Clause: "5.3.1d", Description: "1.2D + 1.0W + 1.0L + 0.5Lr", Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5},
	{ID: "5.3.1d-R", Clause: "5.3.1d", Description: "1.2D + 1.0W + 1.0L + 0.5R", Dead: 1.2, Wind: 1.0, Live: 1.0, Rain: 0.5},

	{ID: "5.3.1e", Clause: "5.3.1e", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Earthquake: 1.0, Live: 1.0},
	{ID: "5.3.1f", Clause: "5.3.1f", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "5.3.1g", Clause: "5.3.1g", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// LoadEffect is the unfactored axial force and moment from one load type
type LoadEffect struct {
	P float64 // axial force, compression positive
	M float64 // bending moment
}

// ServiceLoads holds unfactored column actions from different load types
type ServiceLoads struct {
	Dead       LoadEffect
	Live       LoadEffect
	Roof       LoadEffect
	Wind       LoadEffect
	Earthquake LoadEffect
	Rain       LoadEffect
}

// IsZero reports whether no load effect was provided
func (s ServiceLoads) IsZero() bool {
	return s == ServiceLoads{}
}

// Factor combines the service loads with this combination's factors
func (lc LoadCombination) Factor(loads ServiceLoads) (pu, mu float64) {
	pu = lc.Dead*loads.Dead.P +
		lc.Live*loads.Live.P +
		lc.Roof*loads.Roof.P +
		lc.Wind*loads.Wind.P +
		lc.Earthquake*loads.Earthquake.P +
		lc.Rain*loads.Rain.P
	mu = lc.Dead*loads.Dead.M +
		lc.Live*loads.Live.M +
		lc.Roof*loads.Roof.M +
		lc.Wind*loads.Wind.M +
		lc.Earthquake*loads.Earthquake.M +
		lc.Rain*loads.Rain.M
	return pu, mu
}

// FactoredLoad is the result of applying one combination
type FactoredLoad struct {
	Combination LoadCombination
	Pu          float64
	Mu          float64
}

// FactorAll applies every combination to the service loads. Combinations
// whose factors select only absent load types are skipped, as are
// alternatives that repeat an earlier result of the same clause.
func FactorAll(loads ServiceLoads, combinations []LoadCombination) []FactoredLoad {
	type result struct {
		clause string
		pu, mu float64
	}
	seen := map[result]bool{}

	var out []FactoredLoad
	for _, combo := range combinations {
		pu, mu := combo.Factor(loads)
		if pu == 0 && mu == 0 {
			continue
		}
		key := result{combo.Clause, pu, mu}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, FactoredLoad{Combination: combo, Pu: pu, Mu: mu})
	}
	return out
}

// GoverningAxial returns the factored load with the largest axial force.
// ok is false when factored is empty.
func GoverningAxial(factored []FactoredLoad) (gov FactoredLoad, ok bool) {
	for i, f := range factored {
		if i == 0 || f.Pu > gov.Pu {
			gov = f
		}
	}
	return gov, len(factored) > 0
}

// GoverningMoment returns the factored load with the largest absolute moment
func GoverningMoment(factored []FactoredLoad) (gov FactoredLoad, ok bool) {
	for i, f := range factored {
		if i == 0 || math.Abs(f.Mu) > math.Abs(gov.Mu) {
			gov = f
		}
	}
	return gov, len(factored) > 0
}
