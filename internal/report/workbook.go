// Package report exports interaction diagram results as an XLSX workbook
// and a PDF calculation report.
package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/section"
)

// Input is everything a report needs
type Input struct {
	Name      string
	Section   *section.Section
	Materials interaction.Materials
	Envelope  *interaction.Envelope
	Checks    []interaction.CheckResult

	// Optional PNG of the interaction diagram embedded in the PDF
	DiagramPNG string
}

// Sheet names
const (
	SheetNominal = "Nominal"
	SheetDesign  = "Design"
	SheetBars    = "Bars"
	SheetLoads   = "Loads"
)

// BuildWorkbook lays the envelope out over four sheets.
// The caller owns the returned file and must Close it.
func BuildWorkbook(in Input) (*excelize.File, error) {
	if in.Section == nil || in.Envelope == nil {
		return nil, fmt.Errorf("report needs a section and an envelope")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetNominal); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetDesign, SheetBars, SheetLoads} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	writers := []func(*excelize.File, Input) error{
		writeNominal,
		writeDesign,
		writeBars,
		writeLoads,
	}
	for _, w := range writers {
		if err := w(f, in); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// WriteWorkbook writes the XLSX workbook to w
func WriteWorkbook(in Input, w io.Writer) error {
	f, err := BuildWorkbook(in)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteTo(w)
	return err
}

// SaveWorkbook writes the XLSX workbook to path
func SaveWorkbook(in Input, path string) error {
	f, err := BuildWorkbook(in)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeNominal(f *excelize.File, in Input) error {
	rows := [][]any{{"#", "Regime", "c (cm)", "et", "phi", "Pn (tf)", "Mn (tf-m)"}}
	for i, p := range in.Envelope.Points {
		rows = append(rows, []any{
			i + 1,
			p.Regime.String(),
			p.C,
			p.EpsilonT,
			p.Phi,
			aci.ToTonnes(p.Pn),
			aci.ToTonneMeters(p.Mn),
		})
	}
	return writeRows(f, SheetNominal, rows)
}

func writeDesign(f *excelize.File, in Input) error {
	env := in.Envelope
	rows := [][]any{
		{"phiPn,max (tf)", aci.ToTonnes(env.PhiPnMax)},
		{},
		{"#", "phi", "phiPn (tf)", "phiMn (tf-m)"},
	}
	for i, p := range env.Points {
		rows = append(rows, []any{
			i + 1,
			p.Phi,
			aci.ToTonnes(env.FactoredAxial(p)),
			aci.ToTonneMeters(p.PhiMn()),
		})
	}
	return writeRows(f, SheetDesign, rows)
}

func writeBars(f *excelize.File, in Input) error {
	rows := [][]any{{"#", "Bar", "Layer", "X (cm)", "Y (cm)", "Area (cm2)"}}
	for i, b := range in.Section.Bars() {
		rows = append(rows, []any{i + 1, b.Designation, b.Layer, b.X, b.Y, b.Area})
	}
	rows = append(rows, []any{}, []any{"Ast (cm2)", in.Section.TotalSteelArea()})
	return writeRows(f, SheetBars, rows)
}

func writeLoads(f *excelize.File, in Input) error {
	rows := [][]any{{"Load", "Pu (tf)", "Mu (tf-m)", "Inside"}}
	for _, c := range in.Checks {
		rows = append(rows, []any{
			c.Load.Name,
			aci.ToTonnes(c.Load.Pu),
			aci.ToTonneMeters(c.Load.Mu),
			c.Inside,
		})
	}
	return writeRows(f, SheetLoads, rows)
}
