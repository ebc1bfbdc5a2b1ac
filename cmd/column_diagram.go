package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/alexiusacademia/gorcc/internal/report"
	"github.com/spf13/cobra"
)

var (
	diagramFlags columnFlags

	// Output options
	diagramShowASCII  bool
	diagramShowPoints bool
	diagramExportFile string
	diagramXLSXFile   string
	diagramPDFFile    string
)

var columnDiagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Compute the P-M interaction diagram of a column",
	Long: `Compute the nominal and design axial force / bending moment
interaction diagram of a rectangular tied column.

The neutral axis depth is swept from h down to zero; each depth gives
one capacity point by strain compatibility with a Whitney stress block.
The design curve applies φ (0.65 to 0.90 by net tensile strain) and caps
φPn at 0.80·0.65·Pn0.

Load points given with --load or in the file are checked against the
design curve.

Examples:
  gorcc column diagram -b 30 --height 60 -c 4 --fc 280 --fy 4200 \
      --bar "#5" --vertical 5 --horizontal 3 --load "D+L,120,15"

  gorcc column diagram -f c1.toml --ascii -o c1.png --xlsx c1.xlsx`,
	RunE: runColumnDiagram,
}

func init() {
	columnCmd.AddCommand(columnDiagramCmd)
	diagramFlags.register(columnDiagramCmd)

	columnDiagramCmd.Flags().BoolVar(&diagramShowASCII, "ascii", false, "Show ASCII capacity curve")
	columnDiagramCmd.Flags().BoolVar(&diagramShowPoints, "points", false, "List every envelope point")
	columnDiagramCmd.Flags().StringVarP(&diagramExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	columnDiagramCmd.Flags().StringVar(&diagramXLSXFile, "xlsx", "", "Export envelope workbook (xlsx)")
	columnDiagramCmd.Flags().StringVar(&diagramPDFFile, "report", "", "Export calculation report (pdf)")
}

func runColumnDiagram(cmd *cobra.Command, args []string) error {
	logger := loggerFromContext(cmd.Context())
	out := cmd.OutOrStdout()

	setup, err := diagramFlags.setup(cmd)
	if err != nil {
		return err
	}
	def, sec := setup.def, setup.section
	mat := setup.engine.Materials()

	env, err := setup.engine.Envelope(sec)
	if err != nil {
		return err
	}
	checks := env.CheckAll(def.LoadPoints())

	// Print results
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     COLUMN INTERACTION DIAGRAM - ACI 318-19")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
	if def.Name != "" {
		fmt.Fprintf(out, "  Column: %s\n", def.Name)
	}
	if def.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", def.Description)
	}
	fmt.Fprintln(out)

	printInputData(out, setup)

	// Key points
	top := env.Points[0]
	bottom := env.Points[len(env.Points)-1]
	peak := env.MaxNominalMoment()

	fmt.Fprintln(out, "KEY POINTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Pure compression Pn0:\t%.2f tf\n", aci.ToTonnes(top.Pn))
	fmt.Fprintf(w, "  Design axial cap φPn,max:\t%.2f tf\n", aci.ToTonnes(env.PhiPnMax))
	fmt.Fprintf(w, "  Pure tension Pnt:\t%.2f tf\n", aci.ToTonnes(bottom.Pn))
	fmt.Fprintf(w, "  Maximum moment Mn:\t%.2f tf·m at Pn = %.2f tf (c = %.2f cm)\n",
		aci.ToTonneMeters(peak.Mn), aci.ToTonnes(peak.Pn), peak.C)
	fmt.Fprintf(w, "  Envelope points:\t%d\n", len(env.Points))
	w.Flush()
	fmt.Fprintln(out)

	if diagramShowPoints {
		printEnvelopePoints(out, env)
	}

	if len(checks) > 0 {
		printChecks(out, checks)
	}

	if diagramShowASCII {
		data := curveDiagramData(sectionTitle(def), env, checks)
		fmt.Fprintln(out, diagram.DrawInteractionCurve(data, 60, 15))
		fmt.Fprintln(out)
	}

	// Exports
	if diagramExportFile != "" {
		data := curveDiagramData(sectionTitle(def), env, checks)
		if err := diagram.ExportInteractionDiagram(data, diagramExportFile); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		logger.Info("diagram exported", "file", diagramExportFile)
	}

	in := report.Input{
		Name:      sectionTitle(def),
		Section:   sec,
		Materials: mat,
		Envelope:  env,
		Checks:    checks,
	}
	if diagramXLSXFile != "" {
		if err := report.SaveWorkbook(in, diagramXLSXFile); err != nil {
			return fmt.Errorf("exporting workbook: %w", err)
		}
		logger.Info("workbook exported", "file", diagramXLSXFile)
	}
	if diagramPDFFile != "" {
		if strings.EqualFold(filepath.Ext(diagramExportFile), ".png") {
			in.DiagramPNG = diagramExportFile
		} else {
			tmp, err := os.CreateTemp("", "gorcc-*.png")
			if err != nil {
				return err
			}
			tmp.Close()
			defer os.Remove(tmp.Name())
			data := curveDiagramData(sectionTitle(def), env, checks)
			if err := diagram.ExportInteractionDiagram(data, tmp.Name()); err != nil {
				return fmt.Errorf("rendering report diagram: %w", err)
			}
			in.DiagramPNG = tmp.Name()
		}
		if err := report.SavePDF(in, diagramPDFFile); err != nil {
			return fmt.Errorf("exporting report: %w", err)
		}
		logger.Info("report exported", "file", diagramPDFFile)
	}

	return nil
}

func printInputData(out io.Writer, setup *columnSetup) {
	sec := setup.section
	mat := setup.engine.Materials()

	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Column Width (b):\t%.1f cm\n", sec.Width)
	fmt.Fprintf(w, "  Column Depth (h):\t%.1f cm\n", sec.Height)
	fmt.Fprintf(w, "  Clear Cover:\t%.1f cm\n", sec.Cover)
	fmt.Fprintf(w, "  f'c:\t%.0f kg/cm²\n", mat.Concrete.Fc)
	fmt.Fprintf(w, "  fy:\t%.0f kg/cm²\n", mat.Steel.Fy)
	fmt.Fprintf(w, "  β₁:\t%.4f\n", aci.Beta1(mat.Concrete.Fc))
	fmt.Fprintf(w, "  Bars:\t%d %s (%d layers), ties %s\n",
		len(sec.Bars()), sec.BarDesignation, sec.LayerCount(), sec.TieDesignation)
	fmt.Fprintf(w, "  Ast:\t%.2f cm² (ρ = %.4f)\n", sec.TotalSteelArea(), sec.SteelRatio())
	fmt.Fprintf(w, "  Effective Depth (d):\t%.2f cm\n", sec.EffectiveDepth)
	w.Flush()
	fmt.Fprintln(out)
}

func printEnvelopePoints(out io.Writer, env *interaction.Envelope) {
	fmt.Fprintln(out, "ENVELOPE POINTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "#\tRegime\tc (cm)\tεt\tφ\tPn (tf)\tMn (tf·m)\tφPn (tf)\tφMn (tf·m)\t\n")
	for i, p := range env.Points {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.5f\t%.3f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			i+1, p.Regime, p.C, p.EpsilonT, p.Phi,
			aci.ToTonnes(p.Pn), aci.ToTonneMeters(p.Mn),
			aci.ToTonnes(env.FactoredAxial(p)), aci.ToTonneMeters(p.PhiMn()))
	}
	w.Flush()
	fmt.Fprintln(out)
}

func printChecks(out io.Writer, checks []interaction.CheckResult) {
	fmt.Fprintln(out, "LOAD POINTS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load\tPu (tf)\tMu (tf·m)\tStatus\n")
	fmt.Fprintf(w, "  ────\t───────\t─────────\t──────\n")
	for _, c := range checks {
		status := "✓ inside design envelope"
		if !c.Inside {
			status = "⚠ outside design envelope"
		}
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\t%s\n",
			c.Load.Name, aci.ToTonnes(c.Load.Pu), aci.ToTonneMeters(c.Load.Mu), status)
	}
	w.Flush()
	fmt.Fprintln(out)
}
