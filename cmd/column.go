package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/alexiusacademia/gorcc/internal/config"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/alexiusacademia/gorcc/internal/section"
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular tied column layout and interaction diagram",
	Long: `Lay out perimeter reinforcement and compute the P-M interaction
diagram of a rectangular tied column.

The column is given either with flags or with a TOML file (--file).
A file is used whole; geometry flags are ignored when it is given.

Subcommands:
  diagram  - Nominal and design interaction diagram with load checks
  layout   - Bar positions and layer grouping
  state    - Stress/strain state at a given neutral axis depth

Example TOML file:
  name = "C-1"

  [section]
  b = 30
  h = 60
  cover = 4

  [concrete]
  fc = 280

  [steel]
  fy = 4200

  [reinforcement]
  bar = "#5"
  tie = "#3"
  vertical = 5
  horizontal = 3

  [[loads]]
  name = "gravity"
  pu = 120
  mu = 15`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}

// columnFlags holds the column definition given on the command line
type columnFlags struct {
	file string
	name string

	width  float64
	height float64
	cover  float64

	fc float64
	fy float64

	bar        string
	tie        string
	vertical   int
	horizontal int

	samples int
	loads   []string
}

func (f *columnFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Column definition TOML file")
	cmd.Flags().StringVar(&f.name, "name", "", "Column name")

	// Geometry flags
	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Column width b (cm)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "Column depth h in the bending direction (cm)")
	cmd.Flags().Float64VarP(&f.cover, "cover", "c", 4, "Clear cover to ties (cm)")

	// Material flags
	cmd.Flags().Float64Var(&f.fc, "fc", 280, "Concrete compressive strength f'c (kg/cm²)")
	cmd.Flags().Float64Var(&f.fy, "fy", 4200, "Steel yield strength fy (kg/cm²)")

	// Reinforcement flags
	cmd.Flags().StringVar(&f.bar, "bar", config.DefaultBar, "Longitudinal bar size")
	cmd.Flags().StringVar(&f.tie, "tie", config.DefaultTie, "Tie bar size")
	cmd.Flags().IntVar(&f.vertical, "vertical", 2, "Bars along each side face (layers)")
	cmd.Flags().IntVar(&f.horizontal, "horizontal", 2, "Bars along top and bottom faces, corners included")

	cmd.Flags().IntVar(&f.samples, "samples", interaction.DefaultSamples, "Neutral axis depths in the sweep")
	cmd.Flags().StringArrayVar(&f.loads, "load", nil, "Factored load point NAME,PU,MU in tf and tf·m (repeatable)")
}

// column returns the definition from the file or the flags
func (f *columnFlags) column() (*config.Column, error) {
	if f.file != "" {
		return config.LoadFromFile(f.file)
	}

	col := &config.Column{
		Name:     f.name,
		Section:  config.SectionSpec{B: f.width, H: f.height, Cover: f.cover},
		Concrete: config.ConcreteSpec{Name: config.DefaultConcreteName, Fc: f.fc},
		Steel:    config.SteelSpec{Name: config.DefaultSteelName, Fy: f.fy},
		Reinforcement: config.ReinforcementSpec{
			Bar:        f.bar,
			Tie:        f.tie,
			Vertical:   f.vertical,
			Horizontal: f.horizontal,
		},
		Analysis: config.AnalysisSpec{Samples: f.samples},
	}
	for _, s := range f.loads {
		l, err := parseLoadFlag(s)
		if err != nil {
			return nil, err
		}
		col.Loads = append(col.Loads, l)
	}
	if err := col.Validate(); err != nil {
		return nil, err
	}
	return col, nil
}

// parseLoadFlag parses NAME,PU,MU
func parseLoadFlag(s string) (config.LoadSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return config.LoadSpec{}, rcerrors.New(rcerrors.ErrCodeInvalidInput, "load",
			"expected NAME,PU,MU, got %q", s)
	}
	pu, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return config.LoadSpec{}, rcerrors.Wrap(rcerrors.ErrCodeInvalidInput, "load", err, "axial load in %q", s)
	}
	mu, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return config.LoadSpec{}, rcerrors.Wrap(rcerrors.ErrCodeInvalidInput, "load", err, "moment in %q", s)
	}
	return config.LoadSpec{Name: strings.TrimSpace(parts[0]), Pu: pu, Mu: mu}, nil
}

// columnSetup is a resolved column ready for calculation
type columnSetup struct {
	def     *config.Column
	section *section.Section
	engine  *interaction.Engine
}

func (f *columnFlags) setup(cmd *cobra.Command) (*columnSetup, error) {
	logger := loggerFromContext(cmd.Context())

	def, err := f.column()
	if err != nil {
		return nil, err
	}
	sec, err := def.BuildSection(rebar.Default)
	if err != nil {
		return nil, err
	}
	logger.Debug("section built",
		"b", sec.Width, "h", sec.Height,
		"bars", len(sec.Bars()), "layers", sec.LayerCount(),
		"ast_cm2", sec.TotalSteelArea())

	engine, err := interaction.NewEngine(def.Materials(),
		interaction.WithSamples(def.Analysis.Samples),
		interaction.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return &columnSetup{def: def, section: sec, engine: engine}, nil
}

func sectionDiagramData(name string, sec *section.Section) diagram.SectionData {
	data := diagram.SectionData{
		Name:           name,
		Width:          sec.Width,
		Height:         sec.Height,
		Cover:          sec.Cover,
		BarDesignation: sec.BarDesignation,
		TieDesignation: sec.TieDesignation,
	}
	for _, b := range sec.Bars() {
		data.Bars = append(data.Bars, diagram.BarMark{X: b.X, Y: b.Y, Layer: b.Layer})
	}
	return data
}

func curveDiagramData(name string, env *interaction.Envelope, checks []interaction.CheckResult) diagram.CurveData {
	toPoints := func(curve []interaction.CurvePoint) []diagram.Point {
		out := make([]diagram.Point, len(curve))
		for i, c := range curve {
			out[i] = diagram.Point{X: aci.ToTonneMeters(c.M), Y: aci.ToTonnes(c.P)}
		}
		return out
	}
	data := diagram.CurveData{
		Title:    name,
		Nominal:  toPoints(env.NominalClosed()),
		Design:   toPoints(env.DesignClosed()),
		PhiPnMax: aci.ToTonnes(env.PhiPnMax),
	}
	for _, c := range checks {
		data.Loads = append(data.Loads, diagram.LoadMark{
			Name:   c.Load.Name,
			Point:  diagram.Point{X: aci.ToTonneMeters(c.Load.Mu), Y: aci.ToTonnes(c.Load.Pu)},
			Inside: c.Inside,
		})
	}
	return data
}

func sectionTitle(def *config.Column) string {
	if def.Name != "" {
		return def.Name
	}
	return fmt.Sprintf("%.0fx%.0f", def.Section.B, def.Section.H)
}
