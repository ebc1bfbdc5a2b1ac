package interaction

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gorcc/internal/aci"
	rcerrors "github.com/alexiusacademia/gorcc/internal/errors"
	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/alexiusacademia/gorcc/internal/section"
)

func sampleSection(t *testing.T) *section.Section {
	t.Helper()
	sec, err := section.New(section.Layout{
		Width:          30,
		Height:         60,
		Cover:          4,
		Bar:            "#5",
		Tie:            "#3",
		VerticalBars:   5,
		HorizontalBars: 3,
	}, rebar.Default)
	require.NoError(t, err)
	return sec
}

func sampleMaterials() Materials {
	return Materials{
		Concrete: aci.NewConcrete("C28", 280),
		Steel:    aci.NewSteel("G60", 4200),
	}
}

func sampleEnvelope(t *testing.T) *Envelope {
	t.Helper()
	engine, err := NewEngine(sampleMaterials())
	require.NoError(t, err)
	env, err := engine.Envelope(sampleSection(t))
	require.NoError(t, err)
	return env
}

func assertRelative(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	assert.InEpsilon(t, want, got, 1e-6, msgAndArgs...)
}

func TestClosedForms(t *testing.T) {
	sec := sampleSection(t)
	mat := sampleMaterials()

	pn0 := 0.85*280*(1800-24) + 24*4200.0
	assertRelative(t, pn0, NominalCompression(sec, mat))
	assertRelative(t, -24*4200.0, NominalTension(sec, mat))
	assertRelative(t, 0.80*0.65*pn0, DesignAxialCap(pn0))
}

func TestStateAt(t *testing.T) {
	sec := sampleSection(t)
	mat := sampleMaterials()

	t.Run("equilibrium sums", func(t *testing.T) {
		st, err := StateAt(sec, mat, 25)
		require.NoError(t, err)
		require.Len(t, st.Layers, 5)

		assert.InDelta(t, 0.85*25, st.A, 1e-12)
		assert.InDelta(t, 0.85*280*30*st.A, st.Cc, 1e-6)
		assert.InDelta(t, 30-st.A/2, st.ConcreteLever, 1e-12)

		pn, mn := st.Cc, st.Cc*st.ConcreteLever
		for _, l := range st.Layers {
			assert.InDelta(t, 0.003*(25-l.Depth)/25, l.Strain, 1e-12)
			assert.LessOrEqual(t, math.Abs(l.Stress), 4200.0)
			assert.InDelta(t, l.Stress*l.Area, l.Force, 1e-9)
			assert.InDelta(t, 30-l.Depth, l.LeverArm, 1e-12)
			pn += l.Force
			mn += l.Force * l.LeverArm
		}
		assert.InDelta(t, pn, st.Pn, 1e-6)
		assert.InDelta(t, mn, st.Mn, 1e-6)

		dt, err := sec.DepthFromTop(1)
		require.NoError(t, err)
		assert.InDelta(t, 0.003*(dt-25)/25, st.EpsilonT, 1e-12)
		assert.Equal(t, aci.Phi(st.EpsilonT, mat.Steel.YieldStrain()), st.Phi)

		p := st.Point()
		assert.Equal(t, Swept, p.Regime)
		assert.Equal(t, st.Pn, p.Pn)
		assert.Equal(t, st.Mn, p.Mn)
		assert.Equal(t, 25.0, p.C)
	})

	t.Run("deep neutral axis", func(t *testing.T) {
		st, err := StateAt(sec, mat, 1000)
		require.NoError(t, err)

		assert.Equal(t, 60.0, st.A, "stress block is limited to h")
		assert.Equal(t, aci.PhiCompression, st.Phi)
		for _, l := range st.Layers {
			assert.True(t, l.Yielded)
			assert.Equal(t, 4200.0, l.Stress)
		}
		assertRelative(t, 0.85*280*30*60+24*4200.0, st.Pn)
		assert.InDelta(t, 0, st.Mn, 1e-6)
	})

	t.Run("shallow neutral axis", func(t *testing.T) {
		st, err := StateAt(sec, mat, 1)
		require.NoError(t, err)

		assert.Equal(t, aci.PhiTension, st.Phi)
		for _, l := range st.Layers {
			assert.Equal(t, -4200.0, l.Stress)
		}
		cc := 0.85 * 280 * 30 * 0.85
		assertRelative(t, cc-24*4200, st.Pn)
		assertRelative(t, cc*(30-0.85/2), st.Mn)
	})

	t.Run("invalid depth", func(t *testing.T) {
		for _, c := range []float64{0, -1, 1e-6, math.NaN(), math.Inf(1)} {
			_, err := StateAt(sec, mat, c)
			require.Error(t, err, "c=%g", c)
			assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeInvalidInput))
			assert.Equal(t, "c", rcerrors.GetField(err))
		}
	})
}

func TestEngineRun(t *testing.T) {
	sec := sampleSection(t)
	engine, err := NewEngine(sampleMaterials())
	require.NoError(t, err)

	raw, err := engine.Run(sec)
	require.NoError(t, err)

	// c = 0 is skipped
	assert.Len(t, raw.Points, 1+(DefaultSamples-1)+1)
	assert.Len(t, raw.ByRegime(PureCompression), 1)
	assert.Len(t, raw.ByRegime(PureTension), 1)

	swept := raw.ByRegime(Swept)
	require.Len(t, swept, DefaultSamples-1)
	assert.Equal(t, sec.Height, swept[0].C)

	prevPhi := 0.0
	for i, p := range swept {
		assert.GreaterOrEqual(t, p.C, MinNeutralAxisDepth)
		assert.GreaterOrEqual(t, p.Phi, prevPhi, "phi must not drop as c decreases (point %d)", i)
		assert.GreaterOrEqual(t, p.Phi, aci.PhiCompression)
		assert.LessOrEqual(t, p.Phi, aci.PhiTension)
		prevPhi = p.Phi
	}

	pn0 := NominalCompression(sec, engine.Materials())
	assertRelative(t, 0.80*0.65*pn0, raw.PhiPnMax)
}

func TestEngineSamples(t *testing.T) {
	sec := sampleSection(t)

	engine, err := NewEngine(sampleMaterials(), WithSamples(3))
	require.NoError(t, err)
	raw, err := engine.Run(sec)
	require.NoError(t, err)

	swept := raw.ByRegime(Swept)
	require.Len(t, swept, 2)
	assert.Equal(t, 60.0, swept[0].C)
	assert.Equal(t, 30.0, swept[1].C)

	engine, err = NewEngine(sampleMaterials(), WithSamples(2))
	require.NoError(t, err)
	_, err = engine.Run(sec)
	assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeInvalidInput))
	assert.Equal(t, "samples", rcerrors.GetField(err))
}

func TestNewEngineInvalidMaterials(t *testing.T) {
	mat := sampleMaterials()
	mat.Steel.Fy = 0
	_, err := NewEngine(mat)
	assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeInvalidInput))
}

func TestEngineLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	engine, err := NewEngine(sampleMaterials(), WithLogger(logger))
	require.NoError(t, err)
	_, err = engine.Run(sampleSection(t))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "regime generated")
	assert.Contains(t, buf.String(), "interaction points ready")
}

func TestEnvelope(t *testing.T) {
	env := sampleEnvelope(t)
	n := len(env.Points)

	t.Run("ordered by descending Pn", func(t *testing.T) {
		for i := 1; i < n; i++ {
			assert.GreaterOrEqual(t, env.Points[i-1].Pn, env.Points[i].Pn)
		}
		assert.Equal(t, PureCompression, env.Points[0].Regime)
		assert.Equal(t, PureTension, env.Points[n-1].Regime)
	})

	t.Run("design curve is capped", func(t *testing.T) {
		design := env.Design()
		require.Len(t, design, n)
		for i, d := range design {
			assert.LessOrEqual(t, d.P, env.PhiPnMax)
			assert.InDelta(t, env.Points[i].PhiMn(), d.M, 1e-9)
		}
		assert.Equal(t, env.PhiPnMax, design[0].P)
		assertRelative(t, 0.90*-24*4200.0, design[n-1].P)
	})

	t.Run("closed curves mirror about M = 0", func(t *testing.T) {
		for _, closed := range [][]CurvePoint{env.NominalClosed(), env.DesignClosed()} {
			// Pure compression and tension points lie on the axis
			assert.Len(t, closed, 2*n-2)
			mirror := make(map[CurvePoint]bool, len(closed))
			for _, p := range closed {
				mirror[p] = true
			}
			for _, p := range closed {
				assert.True(t, mirror[CurvePoint{M: -p.M, P: p.P}] || p.M == 0, "missing mirror of %+v", p)
			}
		}
	})

	t.Run("curves are independent of the points", func(t *testing.T) {
		before := append([]DiagramPoint(nil), env.Points...)
		design := env.Design()

		for _, curve := range [][]CurvePoint{env.Nominal(), design, env.DesignClosed()} {
			for i := range curve {
				curve[i] = CurvePoint{M: -1, P: -1}
			}
		}

		assert.Equal(t, before, env.Points)
		assert.NotEqual(t, CurvePoint{M: -1, P: -1}, env.Design()[0])
		assert.Equal(t, env.PhiPnMax, env.Design()[0].P)
	})

	t.Run("maximum moment", func(t *testing.T) {
		peak := env.MaxNominalMoment()
		assert.Equal(t, Swept, peak.Regime)
		for _, p := range env.Points {
			assert.LessOrEqual(t, p.Mn, peak.Mn)
		}
	})
}

func TestBuild(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		_, err := Build(&RawPoints{Points: []DiagramPoint{{Pn: 1}, {Pn: 2}}})
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeDegenerateEnvelope))

		_, err = Build(nil)
		assert.True(t, rcerrors.Is(err, rcerrors.ErrCodeDegenerateEnvelope))
	})

	t.Run("does not modify raw points", func(t *testing.T) {
		raw := &RawPoints{Points: []DiagramPoint{{Pn: -5}, {Pn: 10, Mn: 1}, {Pn: 3, Mn: 2}}, PhiPnMax: 4}
		env, err := Build(raw)
		require.NoError(t, err)

		assert.Equal(t, -5.0, raw.Points[0].Pn)
		assert.Equal(t, []float64{10, 3, -5}, []float64{env.Points[0].Pn, env.Points[1].Pn, env.Points[2].Pn})
		assert.Equal(t, 4.0, env.PhiPnMax)

		raw.Points[1].Pn = 100
		assert.Equal(t, 10.0, env.Points[0].Pn)
	})
}

func TestClosed(t *testing.T) {
	half := []CurvePoint{{M: 0, P: 10}, {M: 4, P: 5}, {M: 2, P: 0}, {M: 0, P: -3}}
	got := Closed(half)
	want := []CurvePoint{
		{M: 0, P: 10}, {M: 4, P: 5}, {M: 2, P: 0}, {M: 0, P: -3},
		{M: -2, P: 0}, {M: -4, P: 5},
	}
	assert.Equal(t, want, got)
}

func TestCheck(t *testing.T) {
	env := sampleEnvelope(t)

	tests := []struct {
		name   string
		load   LoadPoint
		inside bool
	}{
		{"axial only", LoadPoint{Pu: aci.FromTonnes(100)}, true},
		{"moderate eccentricity", LoadPoint{Pu: aci.FromTonnes(100), Mu: aci.FromTonneMeters(5)}, true},
		{"negative moment", LoadPoint{Pu: aci.FromTonnes(100), Mu: aci.FromTonneMeters(-5)}, true},
		{"small tension", LoadPoint{Pu: aci.FromTonnes(-10), Mu: aci.FromTonneMeters(1)}, true},
		{"large moment", LoadPoint{Pu: aci.FromTonnes(100), Mu: aci.FromTonneMeters(100)}, false},
		{"above axial cap", LoadPoint{Pu: aci.FromTonnes(300)}, false},
		{"beyond tension capacity", LoadPoint{Pu: aci.FromTonnes(-120)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.inside, env.Check(tt.load).Inside)
		})
	}

	loads := make([]LoadPoint, len(tests))
	for i, tt := range tests {
		loads[i] = tt.load
	}
	results := env.CheckAll(loads)
	require.Len(t, results, len(tests))
	for i, r := range results {
		assert.Equal(t, tests[i].inside, r.Inside, tests[i].name)
		assert.Equal(t, tests[i].load, r.Load)
	}
}

func TestRegimeString(t *testing.T) {
	assert.Equal(t, "compression", PureCompression.String())
	assert.Equal(t, "swept", Swept.String())
	assert.Equal(t, "tension", PureTension.String())
	assert.Equal(t, "Regime(7)", Regime(7).String())
}
