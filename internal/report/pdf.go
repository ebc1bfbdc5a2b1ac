package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/alexiusacademia/gorcc/internal/interaction"
)

// BuildPDF lays out the calculation report
func BuildPDF(in Input, now time.Time) (*gofpdf.Fpdf, error) {
	if in.Section == nil || in.Envelope == nil {
		return nil, fmt.Errorf("report needs a section and an envelope")
	}
	sec, env := in.Section, in.Envelope

	title := "Column Interaction Diagram"
	if in.Name != "" {
		title = fmt.Sprintf("Column Interaction Diagram - %s", in.Name)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, fmt.Sprintf("ACI 318-19 strain compatibility - %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	heading := func(s string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, s)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	line := func(label, value string) {
		pdf.CellFormat(70, 6, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, value, "", 1, "L", false, 0, "")
	}

	heading("Input data")
	line("Section b x h", fmt.Sprintf("%.1f x %.1f cm", sec.Width, sec.Height))
	line("Cover", fmt.Sprintf("%.1f cm", sec.Cover))
	line("Concrete f'c", fmt.Sprintf("%.0f kg/cm2 (%s)", in.Materials.Concrete.Fc, in.Materials.Concrete.Name))
	line("Steel fy", fmt.Sprintf("%.0f kg/cm2 (%s)", in.Materials.Steel.Fy, in.Materials.Steel.Name))
	line("Bars", fmt.Sprintf("%d %s, ties %s", len(sec.Bars()), sec.BarDesignation, sec.TieDesignation))
	line("Ast", fmt.Sprintf("%.2f cm2 (rho = %.4f)", sec.TotalSteelArea(), sec.SteelRatio()))
	line("Effective depth d", fmt.Sprintf("%.2f cm", sec.EffectiveDepth))
	line("beta1", fmt.Sprintf("%.4f", aci.Beta1(in.Materials.Concrete.Fc)))
	pdf.Ln(4)

	heading("Capacity summary")
	top := env.Points[0]
	bottom := env.Points[len(env.Points)-1]
	peak := env.MaxNominalMoment()
	line("Pn0 (pure compression)", fmt.Sprintf("%.2f tf", aci.ToTonnes(top.Pn)))
	line("phiPn,max", fmt.Sprintf("%.2f tf", aci.ToTonnes(env.PhiPnMax)))
	line("Pnt (pure tension)", fmt.Sprintf("%.2f tf", aci.ToTonnes(bottom.Pn)))
	line("Mn,max", fmt.Sprintf("%.2f tf-m at Pn = %.2f tf", aci.ToTonneMeters(peak.Mn), aci.ToTonnes(peak.Pn)))
	pdf.Ln(4)

	if in.DiagramPNG != "" {
		pdf.ImageOptions(in.DiagramPNG, 30, pdf.GetY(), 150, 0, true,
			gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}, 0, "")
	}

	if len(in.Checks) > 0 {
		heading("Load points")
		writeChecks(pdf, in.Checks)
		pdf.Ln(4)
	}

	pdf.AddPage()
	heading("Envelope points")
	writePointTable(pdf, env)

	return pdf, pdf.Error()
}

func writeChecks(pdf *gofpdf.Fpdf, checks []interaction.CheckResult) {
	widths := []float64{70, 30, 30, 30}
	header := []string{"Load", "Pu (tf)", "Mu (tf-m)", "Status"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, c := range checks {
		status := "OK"
		if !c.Inside {
			status = "OUTSIDE"
		}
		pdf.CellFormat(widths[0], 5, c.Load.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 5, fmt.Sprintf("%.2f", aci.ToTonnes(c.Load.Pu)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 5, fmt.Sprintf("%.2f", aci.ToTonneMeters(c.Load.Mu)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 5, status, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}
}

func writePointTable(pdf *gofpdf.Fpdf, env *interaction.Envelope) {
	widths := []float64{12, 24, 22, 22, 16, 24, 24, 24}
	header := []string{"#", "Regime", "c (cm)", "et", "phi", "Pn (tf)", "Mn (tf-m)", "phiPn (tf)"}
	pdf.SetFont("Helvetica", "B", 8)
	for i, h := range header {
		pdf.CellFormat(widths[i], 5, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)
	for i, p := range env.Points {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			p.Regime.String(),
			fmt.Sprintf("%.2f", p.C),
			fmt.Sprintf("%.5f", p.EpsilonT),
			fmt.Sprintf("%.3f", p.Phi),
			fmt.Sprintf("%.2f", aci.ToTonnes(p.Pn)),
			fmt.Sprintf("%.2f", aci.ToTonneMeters(p.Mn)),
			fmt.Sprintf("%.2f", aci.ToTonnes(env.FactoredAxial(p))),
		}
		for j, s := range cells {
			pdf.CellFormat(widths[j], 4.5, s, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// WritePDF writes the calculation report to w
func WritePDF(in Input, w io.Writer) error {
	pdf, err := BuildPDF(in, time.Now())
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF writes the calculation report to path
func SavePDF(in Input, path string) error {
	pdf, err := BuildPDF(in, time.Now())
	if err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}
