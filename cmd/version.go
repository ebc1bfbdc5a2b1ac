package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcc/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcc",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		fmt.Fprintln(out, "Reinforced Concrete Column Interaction Diagrams")
		fmt.Fprintln(out, "Based on ACI 318-19 strain compatibility")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
