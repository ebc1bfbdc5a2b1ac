package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcc/internal/version"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gorcc",
	Short: "Reinforced Concrete Column Interaction Diagram Tool",
	Long: `gorcc - Go Reinforced Concrete Column

A CLI tool that computes the axial force / bending moment (P-M)
interaction diagram of rectangular tied concrete columns by strain
compatibility, following ACI 318-19.

This tool helps structural engineers:
  - Place perimeter reinforcement from bar counts per face
  - Sweep the neutral axis to build nominal and design envelopes
  - Inspect the stress/strain state at any neutral axis depth
  - Overlay factored load points on the design envelope
  - Export diagrams (png, svg, pdf), workbooks and reports

Units: cm, kg/cm², tf and tf·m.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
	},
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintf(out, "  ║   gorcc v%-49s║\n", version.Version)
		fmt.Fprintln(out, "  ║   Go Reinforced Concrete Column Interaction Diagrams      ║")
		fmt.Fprintln(out, "  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Fprintln(out, "  ║                                                           ║")
		fmt.Fprintln(out, "  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Features:")
		fmt.Fprintln(out, "    • Perimeter reinforcement layout from bar counts")
		fmt.Fprintln(out, "    • P-M interaction diagram (ACI 318-19)")
		fmt.Fprintln(out, "    • Section state at a given neutral axis depth")
		fmt.Fprintln(out, "    • Factored load points from ACI load combinations")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  Use 'gorcc --help' to see available commands.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  ─────────────────────────────────────────────────────────────")
		fmt.Fprintf(out, "  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Fprintln(out)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
