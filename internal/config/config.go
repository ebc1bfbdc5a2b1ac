// Package config loads column definitions from TOML files.
//
// Example file:
//
//	name = "C-1"
//
//	[section]
//	b = 30
//	h = 60
//	cover = 4
//
//	[concrete]
//	fc = 280
//
//	[steel]
//	fy = 4200
//
//	[reinforcement]
//	bar = "#5"
//	tie = "#3"
//	vertical = 5
//	horizontal = 3
//
//	[[loads]]
//	name = "gravity"
//	pu = 120   # tf
//	mu = 15    # tf·m
//
//	[service.dead]
//	p = 80
//	m = 6
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/alexiusacademia/gorcc/internal/aci"
	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// Defaults applied to omitted fields
const (
	DefaultConcreteName = "concrete"
	DefaultSteelName    = "steel"
	DefaultBar          = "#5"
	DefaultTie          = "#3"
)

// Column is the file representation of one column definition.
// Lengths are in cm, stresses in kg/cm², loads in tf and tf·m.
type Column struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`

	Section       SectionSpec       `toml:"section"`
	Concrete      ConcreteSpec      `toml:"concrete"`
	Steel         SteelSpec         `toml:"steel"`
	Reinforcement ReinforcementSpec `toml:"reinforcement"`
	Analysis      AnalysisSpec      `toml:"analysis"`

	Loads   []LoadSpec  `toml:"loads"`
	Service ServiceSpec `toml:"service"`
}

// SectionSpec is the gross geometry
type SectionSpec struct {
	B     float64 `toml:"b"`
	H     float64 `toml:"h"`
	Cover float64 `toml:"cover"`
}

// ConcreteSpec is the concrete record
type ConcreteSpec struct {
	Name string  `toml:"name"`
	Fc   float64 `toml:"fc"`
}

// SteelSpec is the longitudinal steel record
type SteelSpec struct {
	Name string  `toml:"name"`
	Fy   float64 `toml:"fy"`
}

// ReinforcementSpec is the parametric bar layout
type ReinforcementSpec struct {
	Bar        string `toml:"bar"`
	Tie        string `toml:"tie"`
	Vertical   int    `toml:"vertical"`
	Horizontal int    `toml:"horizontal"`
}

// AnalysisSpec tunes the calculation
type AnalysisSpec struct {
	Samples int `toml:"samples"`
}

// LoadSpec is a factored demand point
type LoadSpec struct {
	Name string  `toml:"name"`
	Pu   float64 `toml:"pu"`
	Mu   float64 `toml:"mu"`
}

// EffectSpec is an unfactored axial force and moment
type EffectSpec struct {
	P float64 `toml:"p"`
	M float64 `toml:"m"`
}

// ServiceSpec holds unfactored effects per load type
type ServiceSpec struct {
	Dead       EffectSpec `toml:"dead"`
	Live       EffectSpec `toml:"live"`
	Roof       EffectSpec `toml:"roof"`
	Wind       EffectSpec `toml:"wind"`
	Earthquake EffectSpec `toml:"earthquake"`
	Rain       EffectSpec `toml:"rain"`
}

// LoadFromFile reads and validates a column definition
func LoadFromFile(path string) (*Column, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rcerrors.Wrap(rcerrors.ErrCodeInvalidConfig, "file", err, "reading %s", path)
	}
	return Parse(data)
}

// Parse decodes and validates a TOML column definition
func Parse(data []byte) (*Column, error) {
	var col Column
	md, err := toml.Decode(string(data), &col)
	if err != nil {
		return nil, rcerrors.Wrap(rcerrors.ErrCodeInvalidConfig, "file", err, "decoding column definition")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, rcerrors.New(rcerrors.ErrCodeInvalidConfig, undecoded[0].String(),
			"unknown key %q", undecoded[0].String())
	}

	col.applyDefaults()
	if err := col.Validate(); err != nil {
		return nil, err
	}
	return &col, nil
}

func (c *Column) applyDefaults() {
	if c.Concrete.Name == "" {
		c.Concrete.Name = DefaultConcreteName
	}
	if c.Steel.Name == "" {
		c.Steel.Name = DefaultSteelName
	}
	if c.Reinforcement.Bar == "" {
		c.Reinforcement.Bar = DefaultBar
	}
	if c.Reinforcement.Tie == "" {
		c.Reinforcement.Tie = DefaultTie
	}
	if c.Analysis.Samples == 0 {
		c.Analysis.Samples = interaction.DefaultSamples
	}
}

// Validate checks the fields that the section and engine do not validate
func (c *Column) Validate() error {
	if err := c.Materials().Validate(); err != nil {
		return rcerrors.Wrap(rcerrors.ErrCodeInvalidConfig, "materials", err, "invalid material")
	}
	if c.Analysis.Samples < 3 {
		return rcerrors.New(rcerrors.ErrCodeInvalidConfig, "analysis.samples",
			"at least 3 samples are required, got %d", c.Analysis.Samples)
	}
	for i, l := range c.Loads {
		if l.Name == "" {
			return rcerrors.New(rcerrors.ErrCodeInvalidConfig, "loads.name",
				"load %d has no name", i+1)
		}
	}
	return c.Layout().Validate()
}

// Layout returns the parametric section layout
func (c *Column) Layout() section.Layout {
	return section.Layout{
		Width:          c.Section.B,
		Height:         c.Section.H,
		Cover:          c.Section.Cover,
		Bar:            c.Reinforcement.Bar,
		Tie:            c.Reinforcement.Tie,
		VerticalBars:   c.Reinforcement.Vertical,
		HorizontalBars: c.Reinforcement.Horizontal,
	}
}

// Materials returns the concrete and steel records
func (c *Column) Materials() interaction.Materials {
	return interaction.Materials{
		Concrete: aci.NewConcrete(c.Concrete.Name, c.Concrete.Fc),
		Steel:    aci.NewSteel(c.Steel.Name, c.Steel.Fy),
	}
}

// BuildSection generates the section against the catalog
func (c *Column) BuildSection(catalog *rebar.Catalog) (*section.Section, error) {
	return section.New(c.Layout(), catalog)
}

// ServiceLoads converts the service tables to load effects in kgf / kgf·cm
func (c *Column) ServiceLoads() aci.ServiceLoads {
	conv := func(e EffectSpec) aci.LoadEffect {
		return aci.LoadEffect{P: aci.FromTonnes(e.P), M: aci.FromTonneMeters(e.M)}
	}
	return aci.ServiceLoads{
		Dead:       conv(c.Service.Dead),
		Live:       conv(c.Service.Live),
		Roof:       conv(c.Service.Roof),
		Wind:       conv(c.Service.Wind),
		Earthquake: conv(c.Service.Earthquake),
		Rain:       conv(c.Service.Rain),
	}
}

// LoadPoints returns the explicit factored loads followed by the points
// generated from the service loads, in kgf / kgf·cm
func (c *Column) LoadPoints() []interaction.LoadPoint {
	var out []interaction.LoadPoint
	for _, l := range c.Loads {
		out = append(out, interaction.LoadPoint{
			Name: l.Name,
			Pu:   aci.FromTonnes(l.Pu),
			Mu:   aci.FromTonneMeters(l.Mu),
		})
	}
	service := c.ServiceLoads()
	if service.IsZero() {
		return out
	}
	for _, f := range aci.FactorAll(service, aci.LoadCombinations) {
		out = append(out, interaction.LoadPoint{
			Name: f.Combination.Description,
			Pu:   f.Pu,
			Mu:   f.Mu,
		})
	}
	return out
}
