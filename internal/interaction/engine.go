package interaction

import (
	"github.com/charmbracelet/log"

	"github.com/alexiusacademia/gorcc/internal/aci"
	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// DefaultSamples is the number of neutral axis depths in the sweep (1% of h)
const DefaultSamples = 101

// Generator produces the diagram points of one regime
type Generator interface {
	Regime() Regime
	Generate(sec *section.Section, mat Materials) ([]DiagramPoint, error)
}

// CompressionLimit generates the pure compression point
type CompressionLimit struct{}

func (CompressionLimit) Regime() Regime { return PureCompression }

func (CompressionLimit) Generate(sec *section.Section, mat Materials) ([]DiagramPoint, error) {
	return []DiagramPoint{{
		Mn:     0,
		Pn:     NominalCompression(sec, mat),
		Phi:    aci.PhiCompression,
		Regime: PureCompression,
	}}, nil
}

// NeutralAxisSweep generates points for c stepped linearly from h down to 0.
// Depths below MinNeutralAxisDepth are skipped.
type NeutralAxisSweep struct {
	Samples int
}

func (NeutralAxisSweep) Regime() Regime { return Swept }

func (s NeutralAxisSweep) Generate(sec *section.Section, mat Materials) ([]DiagramPoint, error) {
	n := s.Samples
	if n < 3 {
		return nil, rcerrors.New(rcerrors.ErrCodeInvalidInput, "samples",
			"neutral axis sweep needs at least 3 samples, got %d", n)
	}

	points := make([]DiagramPoint, 0, n)
	for k := 0; k < n; k++ {
		c := sec.Height * (1 - float64(k)/float64(n-1))
		if c < MinNeutralAxisDepth {
			continue
		}
		st, err := StateAt(sec, mat, c)
		if err != nil {
			return nil, err
		}
		points = append(points, st.Point())
	}
	return points, nil
}

// TensionLimit generates the pure tension point
type TensionLimit struct{}

func (TensionLimit) Regime() Regime { return PureTension }

func (TensionLimit) Generate(sec *section.Section, mat Materials) ([]DiagramPoint, error) {
	return []DiagramPoint{{
		Mn:     0,
		Pn:     NominalTension(sec, mat),
		Phi:    aci.PhiTension,
		Regime: PureTension,
	}}, nil
}

// NominalCompression returns Pn0 = 0.85·f'c·(Ag − Ast) + Ast·fy
func NominalCompression(sec *section.Section, mat Materials) float64 {
	ast := sec.TotalSteelArea()
	cc := aci.StressBlockFactor * mat.Concrete.Fc * (sec.GrossArea() - ast)
	return cc + ast*mat.Steel.Fy
}

// NominalTension returns −Ast·fy
func NominalTension(sec *section.Section, mat Materials) float64 {
	return -sec.TotalSteelArea() * mat.Steel.Fy
}

// DesignAxialCap returns φPn,max = 0.80·(0.65·Pn0)
func DesignAxialCap(pn0 float64) float64 {
	return aci.AxialCapFactor * (aci.PhiCompression * pn0)
}

// RawPoints is the unordered output of the engine
type RawPoints struct {
	Points   []DiagramPoint
	PhiPnMax float64
}

// ByRegime returns the points produced by one regime
func (r *RawPoints) ByRegime(regime Regime) []DiagramPoint {
	var out []DiagramPoint
	for _, p := range r.Points {
		if p.Regime == regime {
			out = append(out, p)
		}
	}
	return out
}

// Engine computes raw interaction points for sections of one material pair
type Engine struct {
	materials  Materials
	generators []Generator
	logger     *log.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithSamples sets the number of neutral axis depths in the sweep
func WithSamples(n int) Option {
	return func(e *Engine) {
		for i, g := range e.generators {
			if _, ok := g.(NeutralAxisSweep); ok {
				e.generators[i] = NeutralAxisSweep{Samples: n}
			}
		}
	}
}

// WithLogger enables debug logging of each run
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine for the given materials
func NewEngine(mat Materials, opts ...Option) (*Engine, error) {
	if err := mat.Validate(); err != nil {
		return nil, rcerrors.Wrap(rcerrors.ErrCodeInvalidInput, "materials", err, "invalid material")
	}
	e := &Engine{
		materials: mat,
		generators: []Generator{
			CompressionLimit{},
			NeutralAxisSweep{Samples: DefaultSamples},
			TensionLimit{},
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Materials returns the engine's material pair
func (e *Engine) Materials() Materials { return e.materials }

// Run generates the raw point set for a section
func (e *Engine) Run(sec *section.Section) (*RawPoints, error) {
	raw := &RawPoints{
		PhiPnMax: DesignAxialCap(NominalCompression(sec, e.materials)),
	}
	for _, g := range e.generators {
		pts, err := g.Generate(sec, e.materials)
		if err != nil {
			return nil, err
		}
		e.debug("regime generated", "regime", g.Regime(), "points", len(pts))
		raw.Points = append(raw.Points, pts...)
	}
	e.debug("interaction points ready",
		"points", len(raw.Points),
		"phiPnMax_tf", aci.ToTonnes(raw.PhiPnMax))
	return raw, nil
}

// Envelope runs the engine and builds the ordered envelope
func (e *Engine) Envelope(sec *section.Section) (*Envelope, error) {
	raw, err := e.Run(sec)
	if err != nil {
		return nil, err
	}
	return Build(raw)
}

func (e *Engine) debug(msg string, keyvals ...any) {
	if e.logger != nil {
		e.logger.Debug(msg, keyvals...)
	}
}
