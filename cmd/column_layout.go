package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/diagram"
	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/spf13/cobra"
)

var (
	layoutFlags columnFlags

	layoutShowDiagram bool
	layoutExportFile  string
)

var columnLayoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Place perimeter bars and list reinforcement layers",
	Long: `Place the longitudinal bars of a rectangular tied column on the
section perimeter and group them into layers.

Each side face holds --vertical bars, one per layer, counted from the
bottom face. The top and bottom faces hold --horizontal bars including
the corners; intermediate bars join the extreme layers.

Examples:
  gorcc column layout -b 30 --height 60 --bar "#5" --vertical 5 --horizontal 3 --diagram
  gorcc column layout -f c1.toml -o c1-section.svg`,
	RunE: runColumnLayout,
}

func init() {
	columnCmd.AddCommand(columnLayoutCmd)
	layoutFlags.register(columnLayoutCmd)

	columnLayoutCmd.Flags().BoolVar(&layoutShowDiagram, "diagram", false, "Show ASCII section schematic")
	columnLayoutCmd.Flags().StringVarP(&layoutExportFile, "output", "o", "", "Export section schematic to file (png, svg, pdf)")
}

func runColumnLayout(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	def, err := layoutFlags.column()
	if err != nil {
		return err
	}
	sec, err := def.BuildSection(rebar.Default)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     COLUMN REINFORCEMENT LAYOUT")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BARS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tBar\tX (cm)\tY (cm)\tLayer\n")
	fmt.Fprintf(w, "  ─\t───\t──────\t──────\t─────\n")
	for i, b := range sec.Bars() {
		fmt.Fprintf(w, "  %d\t%s\t%.3f\t%.3f\t%d\n", i+1, b.Designation, b.X, b.Y, b.Layer)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LAYERS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tY (cm)\tDepth (cm)\tBars\tArea (cm²)\n")
	fmt.Fprintf(w, "  ─────\t──────\t──────────\t────\t──────────\n")
	for _, l := range sec.Layers() {
		fmt.Fprintf(w, "  %d\t%.3f\t%.3f\t%d\t%.2f\n", l.ID, l.Y, sec.Height-l.Y, l.Count, l.Area)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("REINFORCEMENT", []string{
		fmt.Sprintf("Ast = %.2f cm²", sec.TotalSteelArea()),
		fmt.Sprintf("Ag  = %.2f cm²", sec.GrossArea()),
		fmt.Sprintf("ρ   = %.4f", sec.SteelRatio()),
		fmt.Sprintf("d   = %.3f cm", sec.EffectiveDepth),
	}))
	fmt.Fprintln(out)

	data := sectionDiagramData(sectionTitle(def), sec)
	if layoutShowDiagram {
		fmt.Fprintln(out, diagram.DrawASCIISection(data))
	}
	if layoutExportFile != "" {
		if err := diagram.ExportSectionDiagram(data, layoutExportFile); err != nil {
			return fmt.Errorf("exporting section: %w", err)
		}
		loggerFromContext(cmd.Context()).Info("section exported", "file", layoutExportFile)
	}
	return nil
}
