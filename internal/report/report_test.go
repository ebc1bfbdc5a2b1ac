package report

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/alexiusacademia/gorcc/internal/section"
)

func sampleInput(t *testing.T) Input {
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

	mat := interaction.Materials{
		Concrete: aci.NewConcrete("C28", 280),
		Steel:    aci.NewSteel("G60", 4200),
	}
	engine, err := interaction.NewEngine(mat, interaction.WithSamples(21))
	require.NoError(t, err)
	env, err := engine.Envelope(sec)
	require.NoError(t, err)

	checks := env.CheckAll([]interaction.LoadPoint{
		{Name: "gravity", Pu: aci.FromTonnes(120), Mu: aci.FromTonneMeters(15)},
		{Name: "sway", Pu: aci.FromTonnes(20), Mu: aci.FromTonneMeters(80)},
	})

	return Input{
		Name:      "C-1",
		Section:   sec,
		Materials: mat,
		Envelope:  env,
		Checks:    checks,
	}
}

func TestSaveWorkbook(t *testing.T) {
	in := sampleInput(t)
	path := filepath.Join(t.TempDir(), "c1.xlsx")
	require.NoError(t, SaveWorkbook(in, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetNominal, SheetDesign, SheetBars, SheetLoads}, f.GetSheetList())

	rows, err := f.GetRows(SheetNominal)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(in.Envelope.Points))
	assert.Equal(t, "Regime", rows[0][1])
	assert.Equal(t, "compression", rows[1][1])
	assert.Equal(t, "tension", rows[len(rows)-1][1])

	label, err := f.GetCellValue(SheetDesign, "A1")
	require.NoError(t, err)
	assert.Equal(t, "phiPn,max (tf)", label)
	header, err := f.GetCellValue(SheetDesign, "C3")
	require.NoError(t, err)
	assert.Equal(t, "phiPn (tf)", header)

	bars, err := f.GetRows(SheetBars)
	require.NoError(t, err)
	assert.Equal(t, "Ast (cm2)", bars[len(bars)-1][0])

	name, err := f.GetCellValue(SheetLoads, "A3")
	require.NoError(t, err)
	assert.Equal(t, "sway", name)
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(sampleInput(t), &buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	pn0, err := f.GetCellValue(SheetNominal, "F2")
	require.NoError(t, err)
	assert.NotEmpty(t, pn0)
}

func TestWorkbookRequiresEnvelope(t *testing.T) {
	_, err := BuildWorkbook(Input{})
	assert.Error(t, err)
}

func TestWritePDF(t *testing.T) {
	in := sampleInput(t)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(in, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	pdf, err := BuildPDF(in, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, pdf.PageCount())
}

func TestSavePDFWithDiagram(t *testing.T) {
	in := sampleInput(t)
	dir := t.TempDir()

	png := filepath.Join(dir, "c1.png")
	require.NoError(t, diagram.ExportInteractionDiagram(diagram.CurveData{
		Title:    in.Name,
		Nominal:  []diagram.Point{{X: 0, Y: 500}, {X: 40, Y: 150}, {X: 0, Y: -100}, {X: -40, Y: 150}},
		Design:   []diagram.Point{{X: 0, Y: 270}, {X: 30, Y: 100}, {X: 0, Y: -90}, {X: -30, Y: 100}},
		PhiPnMax: 270,
	}, png))
	in.DiagramPNG = png

	path := filepath.Join(dir, "c1.pdf")
	require.NoError(t, SavePDF(in, path))
	assert.FileExists(t, path)
}

func TestPDFRequiresEnvelope(t *testing.T) {
	_, err := BuildPDF(Input{}, time.Now())
	assert.Error(t, err)
}
