package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/aci"
	"github.com/alexiusacademia/gorcc/internal/interaction"
	"github.com/spf13/cobra"
)

var (
	stateFlags columnFlags

	stateC float64
)

var columnStateCmd = &cobra.Command{
	Use:   "state",
	Short: "Stress/strain state at a given neutral axis depth",
	Long: `Evaluate strain compatibility for one neutral axis depth c,
measured from the compression (top) face, and report the concrete force,
each layer's strain, stress and force, and the resulting Pn and Mn.

Examples:
  gorcc column state -b 30 --height 60 --bar "#5" --vertical 5 --horizontal 3 --depth 25
  gorcc column state -f c1.toml --depth 12.5`,
	RunE: runColumnState,
}

func init() {
	columnCmd.AddCommand(columnStateCmd)
	stateFlags.register(columnStateCmd)

	columnStateCmd.Flags().Float64Var(&stateC, "depth", 0, "Neutral axis depth c from the compression face (cm) [required]")
	columnStateCmd.MarkFlagRequired("depth")
}

func runColumnState(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	setup, err := stateFlags.setup(cmd)
	if err != nil {
		return err
	}
	mat := setup.engine.Materials()

	st, err := interaction.StateAt(setup.section, mat, stateC)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "     COLUMN SECTION STATE - ACI 318-19")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	printInputData(out, setup)

	fmt.Fprintln(out, "NEUTRAL AXIS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.3f cm\n", st.C)
	fmt.Fprintf(w, "  Stress block depth (a):\t%.3f cm\n", st.A)
	fmt.Fprintf(w, "  c/h ratio:\t%.4f\n", st.C/setup.section.Height)
	fmt.Fprintf(w, "  Net tensile strain (εt):\t%.6f\n", st.EpsilonT)
	fmt.Fprintf(w, "  Yield strain (εy):\t%.6f\n", mat.Steel.YieldStrain())
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f (%s)\n", st.Phi, controlZone(st.EpsilonT, mat.Steel.YieldStrain()))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "STEEL LAYER ANALYSIS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Layer\tDepth (cm)\tStrain\tStress (kg/cm²)\tForce (tf)\tStatus\n")
	fmt.Fprintf(w, "  ─────\t──────────\t──────\t──────────────\t──────────\t──────\n")
	for i := len(st.Layers) - 1; i >= 0; i-- {
		l := st.Layers[i]
		status := "Compression"
		if l.Strain < 0 {
			status = "Tension"
		}
		if l.Yielded {
			status += " (yields)"
		}
		fmt.Fprintf(w, "  %d\t%.3f\t%.6f\t%.1f\t%.3f\t%s\n",
			l.Layer, l.Depth, l.Strain, l.Stress, aci.ToTonnes(l.Force), status)
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "INTERNAL FORCES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Cc (concrete compression):\t%.3f tf\n", aci.ToTonnes(st.Cc))
	fmt.Fprintf(w, "  Cc lever arm about mid-depth:\t%.3f cm\n", st.ConcreteLever)
	fmt.Fprintf(w, "  Nominal axial force (Pn):\t%.3f tf\n", aci.ToTonnes(st.Pn))
	fmt.Fprintf(w, "  Nominal moment (Mn):\t%.3f tf·m\n", aci.ToTonneMeters(st.Mn))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  ╔═════════════════════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  φPn = %.2f tf    φMn = %.2f tf·m\n", aci.ToTonnes(st.Phi*st.Pn), aci.ToTonneMeters(st.Phi*st.Mn))
	fmt.Fprintf(out, "  ╚═════════════════════════════════════════════════╝\n")
	fmt.Fprintln(out)

	return nil
}

func controlZone(et, ey float64) string {
	switch {
	case et <= ey:
		return "compression-controlled"
	case et >= aci.EpsilonTensionControlled:
		return "tension-controlled"
	default:
		return "transition zone"
	}
}
