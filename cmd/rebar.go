package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcc/internal/rebar"
	"github.com/spf13/cobra"
)

var rebarCmd = &cobra.Command{
	Use:   "rebar",
	Short: "List the reinforcing bar catalog",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "REBAR CATALOG:")
		fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Bar\tDiameter (cm)\tArea (cm²)\n")
		fmt.Fprintf(w, "  ───\t─────────────\t──────────\n")
		for _, s := range rebar.Default.Sizes() {
			fmt.Fprintf(w, "  %s\t%.4f\t%.2f\n", s.Designation, s.Diameter, s.Area)
		}
		w.Flush()
		fmt.Fprintln(out)
	},
}

func init() {
	rootCmd.AddCommand(rebarCmd)
}
